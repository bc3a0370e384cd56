package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Idle     IdleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
}

// JWTConfig holds access token verification settings. Tokens are issued by
// the authentication collaborator with the same shared secret.
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// IdleConfig holds the idle accountability thresholds. ThresholdMinutes is
// the per-day escalation threshold recorded on detected items;
// PendingFloorMinutes is the tighter floor under which items are never
// surfaced in the employee-facing pending queue.
type IdleConfig struct {
	ThresholdMinutes    int
	PendingFloorMinutes int
	SweepLookbackDays   int
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments; env vars win.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "worklens"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	threshold, err := strconv.Atoi(getEnv("IDLE_THRESHOLD_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid IDLE_THRESHOLD_MINUTES: %w", err)
	}
	floor, err := strconv.Atoi(getEnv("IDLE_PENDING_FLOOR_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid IDLE_PENDING_FLOOR_MINUTES: %w", err)
	}
	lookback, err := strconv.Atoi(getEnv("IDLE_SWEEP_LOOKBACK_DAYS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid IDLE_SWEEP_LOOKBACK_DAYS: %w", err)
	}

	config.Idle = IdleConfig{
		ThresholdMinutes:    threshold,
		PendingFloorMinutes: floor,
		SweepLookbackDays:   lookback,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Idle.ThresholdMinutes <= 0 {
		return fmt.Errorf("IDLE_THRESHOLD_MINUTES must be positive")
	}
	if c.Idle.PendingFloorMinutes < 0 {
		return fmt.Errorf("IDLE_PENDING_FLOOR_MINUTES must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
