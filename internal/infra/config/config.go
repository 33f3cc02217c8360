package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseURL string // Overrides the discrete DB_* fields when set
	DBName      string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      int
	DBSSLMode   string
	LogLevel    string
	Environment string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")

	if cfg.DatabaseURL == "" {
		if cfg.DBName == "" {
			return nil, fmt.Errorf("DB_NAME is not set")
		}
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("DB_USER is not set")
		}
	}

	cfg.DBHost = os.Getenv("DB_HOST")
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}

	cfg.DBPort = 5432
	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid DB_PORT %q", portStr)
		}
		cfg.DBPort = port
	}

	cfg.DBSSLMode = os.Getenv("DB_SSLMODE")
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// DSN returns the lib/pq connection string.
func (c *AppConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	parts := []string{
		"host=" + quoteDSNValue(c.DBHost),
		"port=" + strconv.Itoa(c.DBPort),
		"user=" + quoteDSNValue(c.DBUser),
		"dbname=" + quoteDSNValue(c.DBName),
		"sslmode=" + quoteDSNValue(c.DBSSLMode),
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+quoteDSNValue(c.DBPassword))
	}
	return strings.Join(parts, " ")
}

// quoteDSNValue quotes values containing spaces, quotes or backslashes.
func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
