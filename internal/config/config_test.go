package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoad_RequiresMongoURI(t *testing.T) {
	withEnv(t, map[string]string{
		"MONGO_URI": "",
	})
	os.Unsetenv("MONGO_URI")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when MONGO_URI is unset, got nil")
	}
	if !strings.Contains(err.Error(), "MONGO_URI") {
		t.Errorf("expected error to mention MONGO_URI, got: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	withEnv(t, map[string]string{
		"MONGO_URI": "mongodb://localhost:27017",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Name != "eventhub" {
		t.Errorf("expected default database name, got %q", cfg.Database.Name)
	}
	if cfg.Session.Lifetime != 24*time.Hour {
		t.Errorf("expected default session lifetime 24h, got %v", cfg.Session.Lifetime)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected default environment development, got %q", cfg.Environment)
	}
	if !cfg.CORS.AllowAllOrigins {
		t.Error("development without explicit origins should allow all")
	}
}

func TestLoad_ProductionRequiresOAuthCredentials(t *testing.T) {
	withEnv(t, map[string]string{
		"MONGO_URI":            "mongodb://localhost:27017",
		"ENVIRONMENT":          "production",
		"CORS_ALLOWED_ORIGINS": "https://app.example.com",
	})
	os.Unsetenv("GITHUB_CLIENT_ID")
	os.Unsetenv("GITHUB_CLIENT_SECRET")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing OAuth credentials in production")
	}
	if !strings.Contains(err.Error(), "GITHUB_CLIENT_ID") {
		t.Errorf("expected error to mention GITHUB_CLIENT_ID, got: %v", err)
	}
}

func TestLoad_ProductionRequiresCORSOrigins(t *testing.T) {
	withEnv(t, map[string]string{
		"MONGO_URI":            "mongodb://localhost:27017",
		"ENVIRONMENT":          "production",
		"GITHUB_CLIENT_ID":     "client-id",
		"GITHUB_CLIENT_SECRET": "client-secret",
	})
	os.Unsetenv("CORS_ALLOWED_ORIGINS")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing CORS origins in production")
	}
	if !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
		t.Errorf("expected error to mention CORS_ALLOWED_ORIGINS, got: %v", err)
	}
}

func TestLoad_ParsesOriginList(t *testing.T) {
	withEnv(t, map[string]string{
		"MONGO_URI":            "mongodb://localhost:27017",
		"ENVIRONMENT":          "production",
		"GITHUB_CLIENT_ID":     "client-id",
		"GITHUB_CLIENT_SECRET": "client-secret",
		"CORS_ALLOWED_ORIGINS": "https://a.example.com, https://b.example.com",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("expected trimmed origin, got %q", cfg.CORS.AllowedOrigins[1])
	}
	if cfg.CORS.AllowAllOrigins {
		t.Error("production must never allow all origins")
	}
}
