package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
	EnvDatabaseURL       = "DATABASE_URL"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvDataDir           = "DATA_DIR"
	EnvManifestFile      = "MANIFEST_FILE"
	EnvMetricsFile       = "METRICS_FILE"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvEnvironment       = "ENVIRONMENT"
	EnvSkipUnchanged     = "SKIP_UNCHANGED"
	EnvTxMaxRetries      = "TX_MAX_RETRIES"
	EnvMetricsTextfile   = "METRICS_TEXTFILE"
)

// Defaults
const (
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "raiddata"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultDataDir           = "data"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = "dev"
	DefaultTxMaxRetries      = 3
)

// Example values shipped in .env.example
const (
	ExamplePassword = "change_this_secure_password"
)

// Error messages
const (
	ErrMsgInvalidConfig   = "%w: %s"
	ErrMsgFieldInvalid    = "%s (%s)"
	ErrMsgSchemaNotSet    = "%s is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaMismatch  = "%s mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingRequired = "missing required environment variables: %s"
)

// Warnings
const (
	WarnMsgExamplePassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgDebugInProd     = "LOG_LEVEL is debug in a production environment"
	WarnMsgNoRetries       = "TX_MAX_RETRIES is 0, transient store failures will fail records"
)
