package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Store     StoreConfig
	Shipping  ShippingConfig
	Routing   RoutingConfig
	Session   SessionConfig
	LogLevel  string
	LogFormat string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	RequestTimeout  time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// StoreConfig is the single fulfillment point every delivery starts from
type StoreConfig struct {
	Lat float64
	Lng float64
}

type ShippingConfig struct {
	RatePerKm             float64
	Minimum               float64
	FreeShippingThreshold float64
}

type RoutingConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Backend       string // "memory" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
	SweepInterval time.Duration // memory backend only
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
			RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", 60*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Store: StoreConfig{
			Lat: getEnvAsFloat("STORE_LAT", 7.9959),
			Lng: getEnvAsFloat("STORE_LNG", -62.3880),
		},
		Shipping: ShippingConfig{
			RatePerKm:             getEnvAsFloat("SHIPPING_RATE_PER_KM", 0.80),
			Minimum:               getEnvAsFloat("SHIPPING_MINIMUM", 2.00),
			FreeShippingThreshold: getEnvAsFloat("FREE_SHIPPING_THRESHOLD", 10.00),
		},
		Routing: RoutingConfig{
			BaseURL: getEnv("ROUTING_BASE_URL", "https://router.project-osrm.org"),
			Timeout: getEnvAsDuration("ROUTING_TIMEOUT", 5*time.Second),
		},
		Session: SessionConfig{
			Backend:       strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			TTL:           getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.Store.Lat < -90 || c.Store.Lat > 90 || c.Store.Lng < -180 || c.Store.Lng > 180 {
		return fmt.Errorf("store location out of range: %f,%f", c.Store.Lat, c.Store.Lng)
	}

	if c.Shipping.RatePerKm < 0 || c.Shipping.Minimum < 0 || c.Shipping.FreeShippingThreshold < 0 {
		return fmt.Errorf("shipping parameters must not be negative")
	}

	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	if c.Routing.BaseURL == "" {
		return fmt.Errorf("ROUTING_BASE_URL is required")
	}

	switch c.Session.Backend {
	case "memory":
	case "redis":
		if c.Session.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when SESSION_BACKEND=redis")
		}
	default:
		return fmt.Errorf("invalid session backend: %s (must be memory or redis)", c.Session.Backend)
	}

	return nil
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
