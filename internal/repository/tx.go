package repository

import "context"

// Queries is every statement the pipeline issues. The same set is available
// on the store and inside a transaction.
type Queries interface {
	Item
	Weapon
	Recipe
	Workbench
	Upgrade
	SyncMetadata
}

// Store is the ingestion target
type Store interface {
	Queries

	// InTx runs fn in one transaction. Any error from fn rolls everything
	// back. Transient failures (serialization, deadlock, dropped connection)
	// re-run fn from the start, so fn must not keep state outside q.
	InTx(ctx context.Context, fn func(q Queries) error) error

	Ping(ctx context.Context) error
}
