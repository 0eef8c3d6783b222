package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvDataDir,
}

// DatabaseEnvVars must all be set unless DATABASE_URL is
var DatabaseEnvVars = []string{
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaNotSet, EnvSchemaVersion, ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatch, EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := RequiredEnvVars
	if os.Getenv(EnvDatabaseURL) == "" {
		required = append(required[:len(required):len(required)], DatabaseEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingRequired, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that work but are probably not intended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv(EnvDBPassword) == ExamplePassword {
		warnings = append(warnings, WarnMsgExamplePassword)
	}
	if strings.EqualFold(os.Getenv(EnvLogLevel), "debug") && os.Getenv(EnvEnvironment) == "prod" {
		warnings = append(warnings, WarnMsgDebugInProd)
	}
	if os.Getenv(EnvTxMaxRetries) == "0" {
		warnings = append(warnings, WarnMsgNoRetries)
	}
	return warnings, nil
}
