package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL         = "http://localhost:3001"
	DefaultRequestTimeout = 30 * time.Second
)

// Config holds settings shared by the client, the dev server and dbtool.
type Config struct {
	AppEnv         string
	APIURL         string
	RequestTimeout time.Duration

	Port     string
	DBDriver string
	DBDSN    string
	SeedPath string
}

// LoadDotEnv loads .env when present. A missing file is not an error.
func LoadDotEnv(paths ...string) bool {
	return godotenv.Load(paths...) == nil
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	timeout := DefaultRequestTimeout
	if raw := Get("REQUEST_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("load config: REQUEST_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("load config: REQUEST_TIMEOUT must be positive, got %s", d)
		}
		timeout = d
	}

	driver := Get("DB_DRIVER", "sqlite")
	var dsn string
	switch driver {
	case "sqlite":
		dsn = Get("DB_PATH", "data/routes.db")
	case "pgx":
		dsn = Get("DATABASE_URL", "")
		if dsn == "" {
			return nil, fmt.Errorf("load config: DATABASE_URL is required when DB_DRIVER=pgx")
		}
	default:
		return nil, fmt.Errorf("load config: unsupported DB_DRIVER %q", driver)
	}

	return &Config{
		AppEnv:         Get("APP_ENV", "production"),
		APIURL:         strings.TrimRight(Get("ESTIMATE_API_URL", DefaultAPIURL), "/"),
		RequestTimeout: timeout,
		Port:           Get("PORT", "3001"),
		DBDriver:       driver,
		DBDSN:          dsn,
		SeedPath:       Get("SEED_PATH", "data/seeds/routes.json"),
	}, nil
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
