// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Backend     BackendConfig
	Session     SessionConfig
	CORS        CORSConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type BackendConfig struct {
	// BaseURL of the Boost REST backend, e.g. http://localhost:8080
	BaseURL string
	// Timeout in seconds for backend calls. 0 disables the client timeout.
	Timeout int
}

type SessionConfig struct {
	SecretKey  string
	CookieName string
	TTL        int // in hours
	FlashName  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "3000"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8080"),
			Timeout: getEnvAsInt("BACKEND_TIMEOUT", 0),
		},
		Session: SessionConfig{
			SecretKey:  getEnv("SESSION_SECRET", "boost-secret-change-in-production"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "boost_session"),
			TTL:        getEnvAsInt("SESSION_TTL", 24),
			FlashName:  getEnv("FLASH_COOKIE_NAME", "boost_flash"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Session.SecretKey == "boost-secret-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("session secret key must be changed in production")
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
