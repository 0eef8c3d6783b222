// Command ingest loads one scraped data set into the catalog database and
// prints the run report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/raiddata/internal/bootstrap"
	"github.com/osse101/raiddata/internal/config"
	"github.com/osse101/raiddata/internal/metrics"
	"github.com/osse101/raiddata/internal/modifier"
	"github.com/osse101/raiddata/internal/pipeline"
	"github.com/osse101/raiddata/internal/source"
	"github.com/osse101/raiddata/internal/validation"
)

func main() {
	os.Exit(run())
}

func run() int {
	migrate := flag.Bool("migrate", false, "apply pending migrations before ingesting")
	dataDir := flag.String("data", "", "data directory (overrides DATA_DIR)")
	manifestFile := flag.String("manifest", "", "manifest file (overrides MANIFEST_FILE)")
	flag.Parse()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Environment configuration error: %v\n", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *manifestFile != "" {
		cfg.ManifestFile = *manifestFile
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	schemas := validation.NewSchemaValidator()
	manifest := source.DefaultManifest()
	if cfg.ManifestFile != "" {
		if manifest, err = source.LoadManifest(cfg.ManifestFile, schemas); err != nil {
			slog.Error("Failed to load manifest", "file", cfg.ManifestFile, "error", err)
			return 1
		}
	}

	metricsFile := cfg.MetricsFile
	if metricsFile == "" {
		metricsFile = source.Resolve(cfg.DataDir, manifest.MetricsFile)
	}
	tables, err := modifier.Load(metricsFile, schemas)
	if err != nil {
		slog.Error("Failed to load stat mapping", "file", metricsFile, "error", err)
		return 1
	}

	ctx, stop := bootstrap.SignalContext(context.Background())
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg, *migrate)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		return 1
	}
	defer store.Close()

	p, err := pipeline.New(store.Store, pipeline.Options{
		DataDir:       cfg.DataDir,
		Manifest:      manifest,
		Tables:        tables,
		SkipUnchanged: cfg.SkipUnchanged,
		Recorder:      metrics.NewRecorder(),
	})
	if err != nil {
		slog.Error("Failed to create pipeline", "error", err)
		return 1
	}

	report, runErr := p.Run(ctx)
	if report != nil {
		if err := report.Print(os.Stdout); err != nil {
			slog.Error("Failed to print report", "error", err)
		}
	}
	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			slog.Error("Failed to write metrics textfile", "error", err)
		}
	}

	return exitCode(runErr)
}

// exitCode maps the run error to the process exit status. Record and file
// failures are listed in the report and leave the status at 0.
func exitCode(runErr error) int {
	switch {
	case errors.Is(runErr, context.Canceled):
		return bootstrap.ExitCodeInterrupted
	case runErr != nil:
		slog.Error("Ingestion failed", "error", runErr)
		return 1
	}
	return 0
}
