package repository

import (
	"context"

	"github.com/osse101/raiddata/internal/domain"
)

// Upgrade defines persistence for weapon upgrade levels
type Upgrade interface {
	GetUpgrade(ctx context.Context, weaponID string, level int) (*domain.Upgrade, error)
	InsertUpgrade(ctx context.Context, up *domain.Upgrade) error
	UpdateUpgrade(ctx context.Context, up *domain.Upgrade) error
}
