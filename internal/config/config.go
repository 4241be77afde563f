package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Auth          AuthConfig
	Assistant     AssistantConfig
	PestDetection PestDetectionConfig
	RateLimit     RateLimitConfig
	CORS          CORSConfig
	Log           LogConfig
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port int
	Env  string // development or production
}

// DatabaseConfig holds the PostgreSQL configuration.
type DatabaseConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DBName       string
	SSLMode      string
	TestDBName   string // Separate database for testing
	MaxOpenConns int
	MaxIdleConns int
}

// AuthConfig holds token signing and password hashing settings.
type AuthConfig struct {
	AccessSecret      string
	RefreshSecret     string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
	BcryptCost        int
}

// AssistantConfig holds the chat completion service settings.
type AssistantConfig struct {
	APIKey string
	Model  string
}

// PestDetectionConfig holds the image classifier settings.
type PestDetectionConfig struct {
	Endpoint string
	APIKey   string
}

// RateLimitConfig holds the request rate limiting settings.
type RateLimitConfig struct {
	Enabled     bool
	Window      time.Duration
	MaxRequests int
}

// CORSConfig holds the allowed cross-origin settings.
type CORSConfig struct {
	AllowOrigin string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// DSN returns the database connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.DBName, c.SSLMode,
	)
}

// Load reads the configuration from environment variables. In the production
// environment, secrets have no fallback values and missing ones are an error.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "farmsight")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("TEST_DB_NAME", "farmsight_test")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("JWT_ACCESS_EXPIRATION", "24h")
	v.SetDefault("JWT_REFRESH_EXPIRATION", "168h")
	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("ASSISTANT_MODEL", "claude-3-5-haiku-latest")
	v.SetDefault("PEST_API_URL", "https://serverless.roboflow.com/pest_detection-bwb31/1")

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)

	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stdout")

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetInt("DB_PORT"),
			Username:     v.GetString("DB_USERNAME"),
			Password:     v.GetString("DB_PASSWORD"),
			DBName:       v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			TestDBName:   v.GetString("TEST_DB_NAME"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Auth: AuthConfig{
			AccessSecret:      v.GetString("JWT_SECRET"),
			RefreshSecret:     v.GetString("JWT_REFRESH_SECRET"),
			AccessExpiration:  v.GetDuration("JWT_ACCESS_EXPIRATION"),
			RefreshExpiration: v.GetDuration("JWT_REFRESH_EXPIRATION"),
			BcryptCost:        v.GetInt("BCRYPT_COST"),
		},
		Assistant: AssistantConfig{
			APIKey: v.GetString("ASSISTANT_API_KEY"),
			Model:  v.GetString("ASSISTANT_MODEL"),
		},
		PestDetection: PestDetectionConfig{
			Endpoint: v.GetString("PEST_API_URL"),
			APIKey:   v.GetString("PEST_API_KEY"),
		},
		RateLimit: RateLimitConfig{
			Enabled:     v.GetBool("RATE_LIMIT_ENABLED"),
			Window:      v.GetDuration("RATE_LIMIT_WINDOW"),
			MaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		},
		CORS: CORSConfig{
			AllowOrigin: v.GetString("CORS_ORIGIN"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}

	if cfg.Server.Env == "production" {
		if cfg.Auth.AccessSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		if cfg.Auth.RefreshSecret == "" {
			return nil, fmt.Errorf("JWT_REFRESH_SECRET is required in production")
		}
		if cfg.Assistant.APIKey == "" {
			return nil, fmt.Errorf("ASSISTANT_API_KEY is required in production")
		}
	} else {
		// Development-only fallbacks so the server starts out of the box.
		if cfg.Auth.AccessSecret == "" {
			cfg.Auth.AccessSecret = "dev-access-secret"
		}
		if cfg.Auth.RefreshSecret == "" {
			cfg.Auth.RefreshSecret = "dev-refresh-secret"
		}
	}

	return cfg, nil
}
