package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultPort            = "3000"
	DefaultDSN             = "mongodb://localhost:27017/paises"
	DefaultCollection      = "countries"
	DefaultTenantTag       = "alexis"
	DefaultCountriesAPIURL = "https://restcountries.com/v3.1/region/america"
	DefaultSeedTimeout     = 30 * time.Second
)

// Config holds every externally configured value of the service.
type Config struct {
	Port            string
	DSN             string
	Collection      string
	Environment     string
	TenantTag       string
	CountriesAPIURL string
	SeedTimeout     time.Duration
	CORSOrigins     []string
	ViewsDir        string
	PublicDir       string
	LogLevel        string
}

// Load reads the .env file when present and builds a Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", DefaultPort),
		DSN:             getEnv("DB_DSN", getEnv("DATABASE_URL", DefaultDSN)),
		Collection:      getEnv("DB_COLLECTION", DefaultCollection),
		Environment:     strings.ToLower(getEnv("APP_ENV", EnvProduction)),
		TenantTag:       getEnv("TENANT_TAG", DefaultTenantTag),
		CountriesAPIURL: getEnv("COUNTRIES_API_URL", DefaultCountriesAPIURL),
		SeedTimeout:     DefaultSeedTimeout,
		CORSOrigins:     splitCSV(os.Getenv("CORS_ORIGINS")),
		ViewsDir:        getEnv("VIEWS_DIR", "src/views"),
		PublicDir:       getEnv("PUBLIC_DIR", "src/public"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if raw := strings.TrimSpace(os.Getenv("SEED_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_TIMEOUT %q: %w", raw, err)
		}
		cfg.SeedTimeout = d
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	return cfg, nil
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
