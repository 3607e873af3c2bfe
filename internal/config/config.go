package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig
	Match MatchConfig
}

// RedisConfig holds Redis-specific configuration. An empty URL and Addr
// means matches are kept in memory.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
	MatchTTL time.Duration
}

// Enabled reports whether a Redis server was configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Addr != ""
}

// MatchConfig holds match engine tuning
type MatchConfig struct {
	MaxTurns       int
	MaxRerolls     int
	DiceTimeout    time.Duration
	Seed           int64 // 0 picks a time based seed
	AlternateRoles bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			MatchTTL: getEnvAsDurationOrDefault("SKIRMISH_MATCH_TTL", 24*time.Hour),
		},
		Match: MatchConfig{
			MaxTurns:       getEnvAsIntOrDefault("SKIRMISH_MAX_TURNS", 1000),
			MaxRerolls:     getEnvAsIntOrDefault("SKIRMISH_MAX_REROLLS", 100),
			DiceTimeout:    getEnvAsDurationOrDefault("SKIRMISH_DICE_TIMEOUT", 5*time.Second),
			Seed:           int64(getEnvAsIntOrDefault("SKIRMISH_SEED", 0)),
			AlternateRoles: getEnvAsBoolOrDefault("SKIRMISH_ALTERNATE_ROLES", false),
		},
	}

	// Validate ranges
	if cfg.Match.MaxTurns <= 0 {
		return nil, fmt.Errorf("SKIRMISH_MAX_TURNS must be positive, got %d", cfg.Match.MaxTurns)
	}
	if cfg.Match.MaxRerolls <= 0 {
		return nil, fmt.Errorf("SKIRMISH_MAX_REROLLS must be positive, got %d", cfg.Match.MaxRerolls)
	}
	if cfg.Redis.DB < 0 {
		return nil, fmt.Errorf("REDIS_DB must not be negative, got %d", cfg.Redis.DB)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnvOrDefault(key, "")); err == nil {
		return value
	}
	return defaultValue
}
