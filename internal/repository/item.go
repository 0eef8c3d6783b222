package repository

import (
	"context"

	"github.com/osse101/raiddata/internal/domain"
)

// Item defines the persistence operations for item rows
type Item interface {
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	// ExistingItemIDs returns the subset of ids that exist, in one round trip
	ExistingItemIDs(ctx context.Context, ids []string) (map[string]bool, error)
	InsertItem(ctx context.Context, item *domain.Item) error
	// UpdateItem overwrites every field except the recipe pointers, which are
	// owned by the recipe builder
	UpdateItem(ctx context.Context, item *domain.Item) error
	SetItemRecipe(ctx context.Context, itemID, recipeID string) error
	SetItemRecyclingRecipe(ctx context.Context, itemID, recipeID string) error
}
