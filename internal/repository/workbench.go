package repository

import (
	"context"

	"github.com/osse101/raiddata/internal/domain"
)

// Workbench defines persistence for workbenches, their tiers and tier
// requirements
type Workbench interface {
	GetWorkbench(ctx context.Context, id string) (*domain.Workbench, error)
	InsertWorkbench(ctx context.Context, wb *domain.Workbench) error
	UpdateWorkbench(ctx context.Context, wb *domain.Workbench) error

	GetTier(ctx context.Context, workbenchID string, tier int) (*domain.Tier, error)
	InsertTier(ctx context.Context, tier *domain.Tier) error
	UpdateTierName(ctx context.Context, workbenchID string, tier int, name string) error

	DeleteTierRequirements(ctx context.Context, workbenchID string, tier int) error
	InsertTierRequirements(ctx context.Context, rows []domain.TierRequirement) error
	GetTierRequirements(ctx context.Context, workbenchID string, tier int) ([]domain.TierRequirement, error)
}
