// Command migrate applies, rolls back or lists the embedded schema
// migrations against the configured database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/raiddata/internal/bootstrap"
	"github.com/osse101/raiddata/internal/config"
	"github.com/osse101/raiddata/internal/database"
)

func main() {
	registry := NewRegistry()
	registry.Register(&UpCommand{})
	registry.Register(&DownCommand{})
	registry.Register(&StatusCommand{})

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}
	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	if err := run(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", cmd.Name(), err)
		os.Exit(1)
	}
}

func run(cmd Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if _, err := bootstrap.SetupLogger(&config.Config{
		LogLevel:    cfg.LogLevel,
		LogFormat:   cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	}); err != nil {
		return err
	}

	ctx, stop := bootstrap.SignalContext(context.Background())
	defer stop()

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := database.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	return cmd.Run(ctx, m, os.Stdout)
}
