// Package config loads server configuration from environment variables,
// with a .env file honored in development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	OAuth       OAuthConfig
	Session     SessionConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Logging     LoggingConfig
	Environment string
	Version     string
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type OAuthConfig struct {
	GitHubClientID     string
	GitHubClientSecret string
	CallbackURL        string
}

type SessionConfig struct {
	Lifetime time.Duration
}

type RateLimitConfig struct {
	PublicPerMinute   int
	WritePerMinute    int
	LoginPer15Minutes int
	TrustedProxyCIDRs []string
}

type CORSConfig struct {
	AllowAllOrigins bool
	AllowedOrigins  []string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("PORT", 8080),
		},
		Database: DatabaseConfig{
			URI:  getEnv("MONGO_URI", ""),
			Name: getEnv("MONGO_DATABASE", "eventhub"),
		},
		OAuth: OAuthConfig{
			GitHubClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			GitHubClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			CallbackURL:        getEnv("GITHUB_CALLBACK_URL", "http://localhost:8080/auth/github/callback"),
		},
		Session: SessionConfig{
			Lifetime: time.Duration(getEnvInt("SESSION_LIFETIME_HOURS", 24)) * time.Hour,
		},
		RateLimit: RateLimitConfig{
			PublicPerMinute:   getEnvInt("RATE_LIMIT_PUBLIC", 120),
			WritePerMinute:    getEnvInt("RATE_LIMIT_WRITE", 60),
			LoginPer15Minutes: getEnvInt("RATE_LIMIT_LOGIN", 10),
			TrustedProxyCIDRs: getEnvList("TRUSTED_PROXY_CIDRS"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Environment: getEnv("ENVIRONMENT", "development"),
		Version:     getEnv("APP_VERSION", "dev"),
	}

	cfg.CORS = corsFromEnv(cfg.Environment)

	if cfg.Database.URI == "" {
		return Config{}, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.Environment == "production" {
		if cfg.OAuth.GitHubClientID == "" || cfg.OAuth.GitHubClientSecret == "" {
			return Config{}, fmt.Errorf("GITHUB_CLIENT_ID and GITHUB_CLIENT_SECRET are required in production")
		}
		if !cfg.CORS.AllowAllOrigins && len(cfg.CORS.AllowedOrigins) == 0 {
			return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS is required in production")
		}
	}
	return cfg, nil
}

func corsFromEnv(environment string) CORSConfig {
	origins := getEnvList("CORS_ALLOWED_ORIGINS")
	if environment != "production" && len(origins) == 0 {
		return CORSConfig{AllowAllOrigins: true}
	}
	return CORSConfig{AllowedOrigins: origins}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
