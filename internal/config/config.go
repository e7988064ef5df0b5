package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	ERP ERPConfig
	JWT JWTConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// ERPConfig holds the connection settings for the remote HR/ERP backend.
// The console keeps no durable state of its own; every resource read or
// written goes through this API.
type ERPConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// ERP backend configuration
	erpTimeout, err := time.ParseDuration(getEnv("ERP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ERP_TIMEOUT: %w", err)
	}

	config.ERP = ERPConfig{
		BaseURL:   getEnv("ERP_BASE_URL", ""),
		APIKey:    getEnv("ERP_API_KEY", ""),
		APISecret: getEnv("ERP_API_SECRET", ""),
		Timeout:   erpTimeout,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ERP.BaseURL == "" {
		return fmt.Errorf("ERP_BASE_URL is required")
	}
	if c.ERP.APIKey == "" {
		return fmt.Errorf("ERP_API_KEY is required")
	}
	if c.ERP.APISecret == "" {
		return fmt.Errorf("ERP_API_SECRET is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
