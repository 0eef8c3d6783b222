package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingIngest      = "Starting raiddata ingest"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Error messages
const (
	ErrMsgCreateLogsDir = "failed to create logs directory: %w"
	ErrMsgOpenLogFile   = "failed to open log file: %w"
	ErrMsgConnectStore  = "failed to connect to store: %w"
	ErrMsgMigrateStore  = "failed to migrate store: %w"
)

// =============================================================================
// Store and Shutdown
// =============================================================================

const (
	LogMsgStoreReady     = "Store ready"
	LogMsgMigrationsDone = "Migrations applied"
	LogMsgSignalReceived = "Shutdown signal received, finishing record in flight"
	LogMsgSecondSignal   = "Second shutdown signal received, exiting immediately"
	LogMsgStoreClosed    = "Store connections closed"
	ExitCodeInterrupted  = 130
)
