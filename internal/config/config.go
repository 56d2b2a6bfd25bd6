package config

import (
	"fmt"
	"os"
)

// Config holds everything the application reads from the environment.
type Config struct {
	DBDriver   string // "sqlite" or "postgres"
	DBPath     string // sqlite file path
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	TMDBAPIKey string

	HTTPAddr string
	GinMode  string
}

// Load builds a Config from environment variables. A .env file, if present,
// is expected to have been loaded by the caller already.
func Load() (*Config, error) {
	cfg := &Config{
		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		DBPath:     getenv("DB_PATH", "movies.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		TMDBAPIKey: os.Getenv("TMDB_API_KEY"),
		HTTPAddr:   ":" + getenv("PORT", "8080"),
		GinMode:    os.Getenv("GIN_MODE"),
	}

	if cfg.TMDBAPIKey == "" {
		return nil, fmt.Errorf("missing required environment variable: TMDB_API_KEY")
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("missing required environment variable: DB_PATH")
		}
	case "postgres":
		for _, pair := range []struct{ name, value string }{
			{"DB_HOST", cfg.DBHost},
			{"DB_USER", cfg.DBUser},
			{"DB_NAME", cfg.DBName},
		} {
			if pair.value == "" {
				return nil, fmt.Errorf("missing required environment variable: %s", pair.name)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %q", cfg.DBDriver)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
