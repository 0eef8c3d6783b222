package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/raiddata/internal/config"
	"github.com/osse101/raiddata/internal/database"
	"github.com/osse101/raiddata/internal/database/postgres"
)

// Store bundles the connection pool with the repository built on it.
type Store struct {
	Pool  *pgxpool.Pool
	Store *postgres.Store
}

// OpenStore connects to the configured database and, when migrate is set,
// brings the schema up to date before returning.
func OpenStore(ctx context.Context, cfg *config.Config, migrate bool) (*Store, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgConnectStore, err)
	}

	if migrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf(ErrMsgMigrateStore, err)
		}
		slog.Info(LogMsgMigrationsDone)
	}

	slog.Info(LogMsgStoreReady, "max_conns", cfg.DBMaxConns, "tx_max_retries", cfg.TxMaxRetries)
	return &Store{
		Pool:  pool,
		Store: postgres.New(pool, cfg.TxMaxRetries),
	}, nil
}

// Close releases every pooled connection.
func (s *Store) Close() {
	s.Pool.Close()
	slog.Info(LogMsgStoreClosed)
}
