package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const defaultAuthSessionURL = "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"

type Config struct {
	Port            string
	LogLevel        string
	DefaultLanguage string
	CookieSecure    bool
	UpstreamTimeout time.Duration

	Database DatabaseConfig
	Identity IdentityConfig
	Vision   VisionConfig
	S3       S3Config
}

type DatabaseConfig struct {
	Driver string
	Path   string
	URL    string
}

type IdentityConfig struct {
	SessionURL string
}

type VisionConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	PublicURL string
}

// Enabled reports whether meal images should be uploaded instead of stored inline.
func (cfg S3Config) Enabled() bool {
	return cfg.Bucket != "" && cfg.AccessKey != "" && cfg.SecretKey != ""
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cookieSecure, err := parseBool(getEnv("COOKIE_SECURE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("COOKIE_SECURE: %w", err)
	}
	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil || upstreamTimeout <= 0 {
		return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT: invalid duration %q", os.Getenv("UPSTREAM_TIMEOUT"))
	}

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "tr"),
		CookieSecure:    cookieSecure,
		UpstreamTimeout: upstreamTimeout,
		Database: DatabaseConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:   getEnv("DB_PATH", filepath.Join("data", "kalori.db")),
			URL:    os.Getenv("DATABASE_URL"),
		},
		Identity: IdentityConfig{
			SessionURL: getEnv("AUTH_SESSION_URL", defaultAuthSessionURL),
		},
		Vision: VisionConfig{
			APIKey:  os.Getenv("VISION_API_KEY"),
			BaseURL: os.Getenv("VISION_BASE_URL"),
			Model:   getEnv("VISION_MODEL", "gpt-4o"),
		},
		S3: S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			PublicURL: os.Getenv("S3_PUBLIC_URL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.Database.Driver {
	case DriverSQLite:
		if strings.TrimSpace(cfg.Database.Path) == "" {
			return errors.New("DB_PATH is required for sqlite")
		}
	case DriverPostgres:
		if strings.TrimSpace(cfg.Database.URL) == "" {
			return errors.New("DATABASE_URL is required for postgres")
		}
	default:
		return fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.Database.Driver)
	}
	if strings.TrimSpace(cfg.Identity.SessionURL) == "" {
		return errors.New("AUTH_SESSION_URL must not be empty")
	}
	return nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func parseBool(raw string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(raw))
}
