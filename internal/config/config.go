package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort         int
	DatabasePath       string
	AllowedOrigin      string
	LogLevel           string
	JWTSecret          string
	TokenTTLHours      int
	BcryptCost         int
	EventRetentionDays int
	EventPruneSchedule string // standard cron expression
}

// Load loads configuration from environment variables or sets defaults.
// The JWT secret has no default: the process refuses to start without one.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	ttl, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "100"))
	if err != nil {
		return nil, err
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		return nil, err
	}

	retention, err := strconv.Atoi(getEnv("EVENT_RETENTION_DAYS", "30"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:         port,
		DatabasePath:       getEnv("DATABASE_PATH", "./creatorhub.db"),
		AllowedOrigin:      getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		JWTSecret:          secret,
		TokenTTLHours:      ttl,
		BcryptCost:         cost,
		EventRetentionDays: retention,
		EventPruneSchedule: getEnv("EVENT_PRUNE_SCHEDULE", "0 3 * * *"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
