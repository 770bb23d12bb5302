package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// DBPathEnv is the environment variable for the SQLite database file path.
	DBPathEnv = "DB_PATH"

	// ImportFileEnv is the environment variable for the seed CSV file path.
	ImportFileEnv = "IMPORT_FILE"

	// ExportFileEnv is the environment variable for the default backup CSV file path.
	ExportFileEnv = "EXPORT_FILE"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	// Leaving it unset disables the metrics endpoint.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// DefaultDBPath is the database file used when DB_PATH is not set.
	DefaultDBPath = "inventory.db"

	// DefaultImportFile is the seed CSV used when IMPORT_FILE is not set.
	DefaultImportFile = "inventory.csv"

	// DefaultExportFile is the backup CSV used when EXPORT_FILE is not set.
	DefaultExportFile = "inventory_backup.csv"
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")
)

// Config represents the application configuration.
type Config struct {
	DebugMode     bool
	Database      DB
	Import        File
	Export        File
	MetricsServer Server
}

// DB represents database configuration settings.
type DB struct {
	Path string
}

// File represents a CSV file path setting.
type File struct {
	Path string
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if err := allNonEmpty(map[string]string{
		DBPathEnv:     c.Database.Path,
		ImportFileEnv: c.Import.Path,
		ExportFileEnv: c.Export.Path,
	}); err != nil {
		return fmt.Errorf("file path configuration incomplete: %w", err)
	}

	// The metrics server is optional; validate the port only when set.
	if c.MetricsServer.Port != "" {
		if err := allNumbers(map[string]string{
			MetricsServerPortEnv: c.MetricsServer.Port,
		}); err != nil {
			return fmt.Errorf("invalid port number: %w", err)
		}
	}

	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvOrDefault(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Debug("failed to load from .env", slog.Any("err", err))
	}

	conf := &Config{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		Database: DB{
			Path: getEnvOrDefault(DBPathEnv, DefaultDBPath),
		},
		Import: File{
			Path: getEnvOrDefault(ImportFileEnv, DefaultImportFile),
		},
		Export: File{
			Path: getEnvOrDefault(ExportFileEnv, DefaultExportFile),
		},
		MetricsServer: Server{
			Port: os.Getenv(MetricsServerPortEnv),
		},
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
