package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Staging   StagingConfig
	RateLimit RateLimitConfig
	Ingest    IngestConfig
	App       AppConfig
}

type ServerConfig struct {
	Port string
}

// StoreConfig points at the Redis document store holding project records.
// An empty Addr disables persistence: every repository call fails until a
// store is configured.
type StoreConfig struct {
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig points at the optional Postgres audit database.
type DatabaseConfig struct {
	DSN string
}

type StagingConfig struct {
	Dir string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type IngestConfig struct {
	// SweepSpec is a cron expression (with seconds) for the retry sweep
	// over left-behind staged entries. Empty disables the sweep.
	SweepSpec string
}

type AppConfig struct {
	Environment       string
	Version           string
	StrictTransitions bool
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "4200"),
		},
		Store: StoreConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Staging: StagingConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("RATE_LIMIT", 5),
			Window:   getEnvAsDuration("RATE_WINDOW", time.Second),
		},
		Ingest: IngestConfig{
			SweepSpec: getEnv("INGEST_SWEEP_SPEC", "0 */5 * * * *"),
		},
		App: AppConfig{
			Environment:       getEnv("APP_ENV", "development"),
			Version:           getEnv("APP_VERSION", "1.0.0"),
			StrictTransitions: getEnvAsBool("STATUS_STRICT_TRANSITIONS", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Staging.Dir == "" {
		return fmt.Errorf("UPLOAD_DIR is required")
	}

	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive")
	}

	return nil
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
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
