package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the site
type Config struct {
	Server ServerConfig
	GitHub GitHubConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Mode            string
	StaticDir       string
	ShutdownTimeout time.Duration
}

// GitHubConfig holds the listing API configuration
type GitHubConfig struct {
	APIURL string
	Token  string
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Load loads configuration from a .env file, if present, and the environment
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", ""),
			Mode:            getEnv("GIN_MODE", "release"),
			StaticDir:       getEnv("STATIC_DIR", "./static"),
			ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		},
		GitHub: GitHubConfig{
			APIURL: getEnv("GITHUB_API_URL", "https://api.github.com"),
			Token:  getEnv("GITHUB_TOKEN", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 0 and 65535, got %q", c.Server.Port)
	}
	u, err := url.Parse(c.GitHub.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("GITHUB_API_URL must be an absolute URL, got %q", c.GitHub.APIURL)
	}
	if c.Server.StaticDir == "" {
		return fmt.Errorf("STATIC_DIR is required")
	}
	return nil
}

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
