// Package pgtest starts a throwaway Postgres for integration tests
package pgtest

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	Image    = "postgres:15-alpine"
	Database = "testdb"
	Username = "testuser"
	Password = "testpass"
)

// Start runs a Postgres container and returns its connection string and a
// terminate func. When Docker is unavailable the connection string is empty
// and callers should skip.
func Start(ctx context.Context) (connStr string, terminate func()) {
	terminate = func() {}

	// testcontainers panics when no Docker host can be found
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("WARNING: Recovered from panic starting postgres container: %v\n", r)
			connStr = ""
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		Image,
		postgres.WithDatabase(Database),
		postgres.WithUsername(Username),
		postgres.WithPassword(Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", terminate
	}

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", terminate
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}
