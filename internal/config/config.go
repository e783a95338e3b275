// Package config loads ledger node settings from environment variables, with
// an optional dotenv file supplying values the environment leaves unset.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/pkg/log"
)

type Config struct {
	// Storage
	DBPath   string
	InMemory bool

	// Logging
	LogLevel  string
	LogFormat string

	// GenesisAdmin becomes the config admin when the ledger is initialized.
	GenesisAdmin address.Address
}

// Load reads configuration from the environment. If envFile is not empty its
// entries are loaded first; variables already set in the environment win.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		DBPath:    getEnv("ORE_DB_PATH", "ore-ledger"),
		InMemory:  getEnvBool("ORE_IN_MEMORY", false),
		LogLevel:  getEnv("ORE_LOG_LEVEL", "info"),
		LogFormat: getEnv("ORE_LOG_FORMAT", "console"),
	}
	if admin := os.Getenv("ORE_GENESIS_ADMIN"); admin != "" {
		a, err := address.FromBase58(admin)
		if err != nil {
			return nil, fmt.Errorf("ORE_GENESIS_ADMIN: %w", err)
		}
		cfg.GenesisAdmin = a
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.InMemory && c.DBPath == "" {
		return fmt.Errorf("ORE_DB_PATH is required unless ORE_IN_MEMORY is set")
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("ORE_LOG_LEVEL: %w", err)
	}
	if _, err := log.ParseLoggerType(c.LogFormat); err != nil {
		return fmt.Errorf("ORE_LOG_FORMAT: %w", err)
	}
	return nil
}

// LogOptions converts the logging settings for log.Init.
func (c *Config) LogOptions() log.Options {
	level, _ := log.ParseLogLevel(c.LogLevel)
	typ, _ := log.ParseLoggerType(c.LogFormat)
	return log.Options{LogLevel: level, Type: typ}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
