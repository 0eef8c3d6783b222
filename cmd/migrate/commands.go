package main

import (
	"context"
	"fmt"
	"io"

	"github.com/osse101/raiddata/internal/database"
)

type UpCommand struct{}

func (c *UpCommand) Name() string { return "up" }
func (c *UpCommand) Description() string { return "Apply all pending migrations" }

func (c *UpCommand) Run(ctx context.Context, m *database.Migrator, out io.Writer) error {
	n, err := m.Up(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Applied %d migration(s)\n", n)
	return nil
}

type DownCommand struct{}

func (c *DownCommand) Name() string { return "down" }
func (c *DownCommand) Description() string { return "Roll back the most recent migration" }

func (c *DownCommand) Run(ctx context.Context, m *database.Migrator, out io.Writer) error {
	if err := m.Down(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Rolled back one migration")
	return nil
}

type StatusCommand struct{}

func (c *StatusCommand) Name() string { return "status" }
func (c *StatusCommand) Description() string { return "Show applied and pending migrations" }

func (c *StatusCommand) Run(ctx context.Context, m *database.Migrator, out io.Writer) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(out, "%05d  %-8s %s\n", s.Version, state, s.Path)
	}
	return nil
}
