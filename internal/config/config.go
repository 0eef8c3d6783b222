package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/raiddata/internal/domain"
)

// Config holds the ingester configuration
type Config struct {
	// DatabaseURL wins over the DB_* parts when set
	DatabaseURL       string
	DBUser            string `validate:"required_without=DatabaseURL"`
	DBPassword        string
	DBHost            string `validate:"required_without=DatabaseURL"`
	DBPort            string `validate:"required_without=DatabaseURL"`
	DBName            string `validate:"required_without=DatabaseURL"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	DataDir      string `validate:"required"`
	ManifestFile string
	// MetricsFile is the stat mapping file; empty means the manifest's
	MetricsFile string

	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	SkipUnchanged   bool
	TxMaxRetries    int `validate:"min=0,max=10"`
	MetricsTextfile string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:       getEnv(EnvDatabaseURL, ""),
		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		DataDir:           getEnv(EnvDataDir, DefaultDataDir),
		ManifestFile:      getEnv(EnvManifestFile, ""),
		MetricsFile:       getEnv(EnvMetricsFile, ""),
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:            getEnv(EnvLogDir, DefaultLogDir),
		ServiceName:       getEnv(EnvServiceName, ""),
		Version:           getEnv(EnvVersion, ""),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		SkipUnchanged:     getEnvAsBool(EnvSkipUnchanged, false),
		TxMaxRetries:      getEnvAsInt(EnvTxMaxRetries, DefaultTxMaxRetries),
		MetricsTextfile:   getEnv(EnvMetricsTextfile, ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every offending field
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf(ErrMsgInvalidConfig, domain.ErrInvalidConfig, err.Error())
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf(ErrMsgFieldInvalid, fe.Field(), fe.Tag()))
	}
	return fmt.Errorf(ErrMsgInvalidConfig, domain.ErrInvalidConfig, strings.Join(fields, ", "))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
