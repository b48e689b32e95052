// Package config loads runtime settings from configs/.env and the environment.
// Business rules (thresholds, base rates) are compiled in and never read from here.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog sources
const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
)

const devSessionSecret = "default_session_secret_key" // Development fallback only

// Config holds every runtime setting of the API
type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins []string

	SessionSecret []byte
	SessionTTL    time.Duration
	SecureCookies bool

	CatalogSource string
	DB            DBConfig

	RateLimitRPS   float64
	RateLimitBurst int
	MaxUploadBytes int64
}

// DBConfig holds Postgres connection settings
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds a postgres:// connection string
func (c DBConfig) DSN() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.Name + "?sslmode=" + c.SSLMode
}

// Load reads configs/.env if present, then the process environment
func Load() (Config, error) {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:          get("PORT", "8080"),
		GinMode:       get("GIN_MODE", "debug"),
		CatalogSource: strings.ToLower(get("CATALOG_SOURCE", CatalogStatic)),
		DB: DBConfig{
			Host:     get("DB_HOST", "localhost"),
			Port:     get("DB_PORT", "5432"),
			User:     get("DB_USER", "postgres"),
			Password: get("DB_PASSWORD", "postgres"),
			Name:     get("DB_NAME", "postgres"),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
	}

	release := cfg.GinMode == "release"
	cfg.SecureCookies = release || getenv("RENDER") != ""

	origins := get("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:5174")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	secret := getenv("SESSION_SECRET")
	if secret == "" {
		if release {
			return Config{}, fmt.Errorf("SESSION_SECRET environment variable is required in release mode")
		}
		secret = devSessionSecret
	}
	cfg.SessionSecret = []byte(secret)

	var err error
	if cfg.SessionTTL, err = time.ParseDuration(get("SESSION_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}

	if cfg.RateLimitRPS, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "10"), 64); err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(get("RATE_LIMIT_BURST", "20")); err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}
	if cfg.MaxUploadBytes, err = strconv.ParseInt(get("MAX_UPLOAD_BYTES", "5242880"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %w", err)
	}

	switch cfg.CatalogSource {
	case CatalogStatic, CatalogPostgres:
	default:
		return Config{}, fmt.Errorf("unknown CATALOG_SOURCE %q (expected %s or %s)", cfg.CatalogSource, CatalogStatic, CatalogPostgres)
	}

	return cfg, nil
}
