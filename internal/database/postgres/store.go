// Package postgres implements repository.Store on a pgx connection pool
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/repository"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
}

// queries runs every repository statement against db
type queries struct {
	db dbtx
}

var _ repository.Queries = (*queries)(nil)

// Store is the Postgres ingestion target. Statements called on the Store
// itself run in autocommit mode; InTx groups them.
type Store struct {
	*queries
	pool       *pgxpool.Pool
	maxRetries int
}

var _ repository.Store = (*Store)(nil)

// New returns a store on pool. A negative maxRetries uses DefaultMaxRetries.
func New(pool *pgxpool.Pool, maxRetries int) *Store {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Store{
		queries:    &queries{db: pool},
		pool:       pool,
		maxRetries: maxRetries,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf(ErrMsgPing, domain.ErrStoreUnavailable, err)
	}
	return nil
}

// InTx runs fn in a transaction and re-runs it with a growing delay while it
// fails with a transient error
func (s *Store) InTx(ctx context.Context, fn func(q repository.Queries) error) error {
	log := logger.FromContext(ctx)
	delay := RetryBaseDelay

	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			log.Warn(LogMsgTransientRetry, "attempt", attempt, "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
		err = s.attempt(ctx, fn)
		if err == nil || !errors.Is(err, domain.ErrTransient) {
			return err
		}
	}
	log.Error(LogMsgRetriesExhausted, "attempts", s.maxRetries+1, "error", err)
	return fmt.Errorf(ErrMsgRetriesExhausted, s.maxRetries+1, err)
}

func (s *Store) attempt(ctx context.Context, fn func(q repository.Queries) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return classify(fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err))
	}
	defer SafeRollback(ctx, tx)

	if err := fn(&queries{db: tx}); err != nil {
		return classify(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return classify(fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err))
	}
	return nil
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}

// classify tags err with domain.ErrTransient when retrying the transaction
// may succeed and with domain.ErrConstraintViolation when the row broke a key
// or check
func classify(err error) error {
	if err == nil || errors.Is(err, domain.ErrTransient) || errors.Is(err, domain.ErrConstraintViolation) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeSerializationFailure, PgErrorCodeDeadlockDetected, PgErrorCodeLockNotAvailable:
			return fmt.Errorf(ErrMsgClassifiedErr, domain.ErrTransient, err)
		case PgErrorCodeUniqueViolation, PgErrorCodeForeignKeyViolation,
			PgErrorCodeCheckViolation, PgErrorCodeNotNullViolation:
			return fmt.Errorf(ErrMsgClassifiedErr, domain.ErrConstraintViolation, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return fmt.Errorf(ErrMsgClassifiedErr, domain.ErrTransient, err)
	}
	return err
}

// lookup maps a missing row to sentinel
func lookup(err error, sentinel error, key any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf(ErrMsgNotFound, sentinel, key)
	}
	return classify(err)
}

// affected fails with sentinel when a keyed write matched no row
func affected(tag pgconn.CommandTag, err error, sentinel error, key any) error {
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(ErrMsgNotFound, sentinel, key)
	}
	return nil
}
