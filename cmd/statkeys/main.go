// Command statkeys helps curate the stat mapping file. By default it scans
// the mod and weapon data for stat keys and writes a summary plus a mapping
// scaffold. With -sort it reorders the mod entries of a mapping file in
// place.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/raiddata/internal/config"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/source"
	"github.com/osse101/raiddata/internal/statkeys"
	"github.com/osse101/raiddata/internal/validation"
)

func main() {
	_ = godotenv.Load()

	dataDir := flag.String("data", envOr(config.EnvDataDir, config.DefaultDataDir), "data directory")
	outDir := flag.String("out", "", "output directory (default <data>/"+statkeys.DefaultOut+")")
	sortFile := flag.String("sort", "", "sort the mods section of this stat mapping file and exit")
	flag.Parse()

	slog.SetDefault(slog.New(logger.NewHandler(logger.DefaultConfig(), os.Stderr)))

	if *sortFile != "" {
		if err := statkeys.SortMetricsFile(*sortFile, validation.NewSchemaValidator()); err != nil {
			slog.Error("Failed to sort stat mapping", "file", *sortFile, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Sorted %s\n", *sortFile)
		return
	}

	out := *outDir
	if out == "" {
		out = source.Resolve(*dataDir, statkeys.DefaultOut)
	}
	summary, err := statkeys.Generate(context.Background(), *dataDir, source.FileModItems, source.FileWeaponItems, out)
	if err != nil {
		slog.Error("Failed to generate stat key scaffold", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Mods: %d keys, upgrades: %d keys, written to %s\n", len(summary.Mods), len(summary.Upgrades), out)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
