package postgres

import (
	"context"

	"github.com/osse101/raiddata/internal/domain"
)

func (q *queries) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var m domain.SyncMetadata
	err := q.db.QueryRow(ctx, `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata WHERE config_name = $1`, configName).
		Scan(&m.ConfigName, &m.LastSyncTime, &m.FileHash, &m.FileModTime)
	if err != nil {
		return nil, lookup(err, domain.ErrSyncNotFound, configName)
	}
	m.LastSyncTime = m.LastSyncTime.UTC()
	m.FileModTime = m.FileModTime.UTC()
	return &m, nil
}

func (q *queries) UpsertSyncMetadata(ctx context.Context, m *domain.SyncMetadata) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE SET
			last_sync_time = EXCLUDED.last_sync_time,
			file_hash = EXCLUDED.file_hash,
			file_mod_time = EXCLUDED.file_mod_time`,
		m.ConfigName, m.LastSyncTime, m.FileHash, m.FileModTime)
	return classify(err)
}
