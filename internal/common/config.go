package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Review   ReviewConfig
	Pipeline PipelineConfig
	Export   ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	DialTimeout     time.Duration
}

// ReviewConfig holds the review-flagging thresholds. The defaults encode
// the current heuristic: flag when the accession number is missing or the
// transcription is under 50 characters.
type ReviewConfig struct {
	MinTextLength    int
	RequireAccession bool
}

// PipelineConfig holds batch processing behavior.
type PipelineConfig struct {
	Workers int // 0 = one worker per CPU
}

// ExportConfig holds export-related configuration.
type ExportConfig struct {
	SheetName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Review: ReviewConfig{
			MinTextLength:    getEnvAsInt("REVIEW_MIN_TEXT_LENGTH", 50),
			RequireAccession: getEnvAsBool("REVIEW_REQUIRE_ACCESSION", true),
		},
		Pipeline: PipelineConfig{
			Workers: getEnvAsInt("PIPELINE_WORKERS", 0),
		},
		Export: ExportConfig{
			SheetName: getEnv("EXPORT_SHEET_NAME", "Catalog"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Review.MinTextLength < 0 {
		return NewAppError("CONFIG_ERROR", "REVIEW_MIN_TEXT_LENGTH must be >= 0", ErrInvalidInput)
	}
	if c.Pipeline.Workers < 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_WORKERS must be >= 0", ErrInvalidInput)
	}
	if c.Export.SheetName == "" {
		return NewAppError("CONFIG_ERROR", "EXPORT_SHEET_NAME must not be empty", ErrInvalidInput)
	}
	return nil
}
