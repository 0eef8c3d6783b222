package repository

import (
	"context"

	"github.com/osse101/raiddata/internal/domain"
)

// Weapon defines the persistence operations for weapon extension rows
type Weapon interface {
	GetWeapon(ctx context.Context, itemID string) (*domain.Weapon, error)
	InsertWeapon(ctx context.Context, weapon *domain.Weapon) error
	// UpdateWeapon leaves compatible_mods untouched
	UpdateWeapon(ctx context.Context, weapon *domain.Weapon) error
	SetCompatibleMods(ctx context.Context, itemID string, mods []string) error
}
