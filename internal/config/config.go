package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// MinJWTSecretLength is the shortest accepted HS256 signing secret.
const MinJWTSecretLength = 32

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string        `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"60s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"120s"`

	// Database configuration
	DBHost              string        `env:"DB_HOST" env-default:"localhost"`
	DBPort              int           `env:"DB_PORT" env-default:"5432"`
	DBUser              string        `env:"DB_USER" env-default:"postgres"`
	DBPassword          string        `env:"DB_PASSWORD" env-default:"postgres"`
	DBName              string        `env:"DB_NAME" env-default:"techoh"`
	DBSSLMode           string        `env:"DB_SSL_MODE" env-default:"disable"`
	DBMaxConns          int32         `env:"DB_MAX_CONNS" env-default:"25"`
	DBMinConns          int32         `env:"DB_MIN_CONNS" env-default:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" env-default:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" env-default:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" env-default:"1m"`

	// Upper bound for a single call to the record store
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" env-default:"5s"`

	// Identity provider configuration
	JWTSecret   string `env:"AUTH_JWT_SECRET"`
	JWTAudience string `env:"AUTH_JWT_AUDIENCE" env-default:"authenticated"`

	// Rate limiting for authenticated API routes
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" env-default:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" env-default:"20"`

	// Public feed configuration
	FeedMaxLimit uint64 `env:"FEED_MAX_LIMIT" env-default:"100"`

	// Migration source URL used by techohctl migrate
	MigrationsPath string `env:"MIGRATIONS_PATH" env-default:"file://migrations"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Load loads configuration from environment variables. Values from an optional
// .env file (path in ENV_FILE) are applied first and never override the
// process environment.
func Load() (*Config, error) {
	if err := loadDotEnv(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DatabaseURL returns the connection URL understood by the migration driver.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive")
	}
	if len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("AUTH_JWT_SECRET must be at least %d characters", MinJWTSecretLength)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if c.FeedMaxLimit < 1 {
		return fmt.Errorf("FEED_MAX_LIMIT must be at least 1")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
