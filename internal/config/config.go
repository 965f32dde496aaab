package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"debt-portal/internal/validation"

	"github.com/joho/godotenv"
)

const (
	FallbackDriverMemory = "memory"
	FallbackDriverSQLite = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Fallback FallbackConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port             string        `env:"SERVER_PORT" validate:"required,port"`
	Host             string        `env:"SERVER_HOST"`
	Environment      string        `env:"APP_ENV" validate:"oneof=development production testing"`
	ReadTimeout      time.Duration `env:"SERVER_READ_TIMEOUT" validate:"gte=0"`
	WriteTimeout     time.Duration `env:"SERVER_WRITE_TIMEOUT" validate:"gte=0"`
	ShutdownTimeout  time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" validate:"gt=0"`
	CORSAllowOrigins []string
}

// UpstreamConfig describes the case-management database the portal prefers
// over its fallback records. Leaving RESTEndpoint empty keeps the service in
// fallback mode permanently.
type UpstreamConfig struct {
	Host         string        `env:"CACHE_HOST"`
	Port         int           `env:"CACHE_PORT" validate:"port"`
	Namespace    string        `env:"CACHE_NAMESPACE"`
	Username     string        `env:"CACHE_USERNAME"`
	Password     string        `env:"CACHE_PASSWORD"`
	RESTEndpoint string        `env:"CACHE_REST_ENDPOINT" validate:"omitempty,upstream_url"`
	Timeout      time.Duration `env:"CACHE_TIMEOUT" validate:"gte=0"`
}

type FallbackConfig struct {
	Driver string `env:"FALLBACK_STORE_DRIVER" validate:"oneof=memory sqlite"`
	DSN    string `env:"FALLBACK_STORE_DSN" validate:"required_if=Driver sqlite"`
}

type SecurityConfig struct {
	RateLimitPerSecond int    `env:"RATE_LIMIT_PER_SECOND" validate:"gte=0"`
	RateLimitBurst     int    `env:"RATE_LIMIT_BURST" validate:"gte=0"`
	BodyLimit          string `env:"BODY_LIMIT" validate:"required"`
}

type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Load reads configuration from the environment, after merging an optional
// .env file from the working directory, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", getEnv("PORT", "5001")),
			Host:            getEnv("SERVER_HOST", ""),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 0),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Upstream: UpstreamConfig{
			Host:         getEnv("CACHE_HOST", "localhost"),
			Port:         getIntEnv("CACHE_PORT", 1972),
			Namespace:    getEnv("CACHE_NAMESPACE", "USER"),
			Username:     getEnv("CACHE_USERNAME", "_SYSTEM"),
			Password:     getEnv("CACHE_PASSWORD", "SYS"),
			RESTEndpoint: getEnv("CACHE_REST_ENDPOINT", ""),
			Timeout:      getDurationEnv("CACHE_TIMEOUT", 0),
		},
		Fallback: FallbackConfig{
			Driver: strings.ToLower(getEnv("FALLBACK_STORE_DRIVER", FallbackDriverMemory)),
			DSN:    getEnv("FALLBACK_STORE_DSN", "file::memory:?cache=shared"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
			BodyLimit:          getEnv("BODY_LIMIT", "64K"),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := validation.GetValidator().ValidateStruct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// IsConfigured reports whether an upstream REST endpoint has been set.
func (c *UpstreamConfig) IsConfigured() bool {
	return c.RESTEndpoint != ""
}

// Address returns the host:port pair the server listens on.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins).")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
