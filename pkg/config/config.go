package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read through this package only.
type Config struct {
	Env string // development, staging, production

	// Dataset
	Dataset DatasetConfig

	// Database (only used when DATASET_SOURCE=postgres)
	Database DatabaseConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DatasetConfig describes where the reliability dataset comes from.
type DatasetConfig struct {
	Source   string // csv, postgres
	Path     string // CSV file path (csv source)
	Table    string // table name (postgres source)
	Category string // all_events, without_major_event_days, loss_of_supply_removed

	// Relative tolerance for the CAIDI = SAIDI/SAIFI consistency check
	CAIDITolerance float64
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Load reads configuration from environment variables.
// This is the only function that calls os.Getenv().
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Dataset: DatasetConfig{
			Source:         getEnv("DATASET_SOURCE", "csv"),
			Path:           getEnv("DATASET_PATH", "consolidated_ieee_data_by_state_year.csv"),
			Table:          getEnv("DATASET_TABLE", "reliability_by_state_year"),
			Category:       getEnv("DATASET_CATEGORY", "all_events"),
			CAIDITolerance: getEnvAsFloat("CAIDI_TOLERANCE", 0.05),
		},

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 4),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	switch c.Dataset.Source {
	case "csv":
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH is required for the csv source")
		}
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres source")
		}
	default:
		return fmt.Errorf("DATASET_SOURCE must be one of: csv, postgres")
	}

	switch c.Dataset.Category {
	case "all_events", "without_major_event_days", "loss_of_supply_removed":
	default:
		return fmt.Errorf("DATASET_CATEGORY must be one of: all_events, without_major_event_days, loss_of_supply_removed")
	}

	if c.Dataset.CAIDITolerance <= 0 {
		return fmt.Errorf("CAIDI_TOLERANCE must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
