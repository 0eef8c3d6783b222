package repository

import (
	"context"

	"github.com/osse101/raiddata/internal/domain"
)

// SyncMetadata tracks which source files have been ingested
type SyncMetadata interface {
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
