package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/raiddata/internal/config"
	"github.com/osse101/raiddata/internal/logger"
)

// SetupLogger initializes the default logger from cfg. Output goes to stdout
// and, when cfg.LogDir is set, to a timestamped session file in that
// directory after older session files are pruned.
// Returns the log file handle (nil without a log dir; caller must close).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir)

		timestamp := time.Now().Format(LogFileTimestampFormat)
		logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, logFile)
	}

	lcfg := loggerConfig(cfg)
	slog.SetDefault(slog.New(logger.NewHandler(lcfg, w)))

	slog.Info(LogMsgLoggingInitialized, "level", lcfg.LogLevel())
	slog.Info(LogMsgStartingIngest,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", lcfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"data_dir", cfg.DataDir,
		"skip_unchanged", cfg.SkipUnchanged)

	return logFile, nil
}

// loggerConfig maps the ingester config onto the logger package's config.
// Source locations are only added in dev.
func loggerConfig(cfg *config.Config) logger.Config {
	service, version := cfg.ServiceName, cfg.Version
	if service == "" {
		service = logger.DefaultServiceName
	}
	if version == "" {
		version = logger.DefaultVersion
	}
	return logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		service,
		version,
		cfg.Environment,
		cfg.Environment == logger.EnvironmentDev,
	)
}

// cleanupLogs removes old log files, keeping only the most recent ones.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	// ReadDir sorts by name and session names sort by timestamp
	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	if len(logFiles) < LogFileRetentionLimit {
		return
	}
	toDelete := len(logFiles) - LogFileRetentionCount
	for i := 0; i < toDelete; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i].Name())); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i].Name(), "error", err)
		}
	}
}
