package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsAndEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CACHE_TTL", "45s")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("UPLOADS_CV_MAX_BYTES", "2048")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Cache.TTL != 45*time.Second {
		t.Errorf("Cache.TTL = %v, want 45s", cfg.Cache.TTL)
	}
	if !cfg.Redis.Enabled {
		t.Error("Redis.Enabled should be true")
	}
	if cfg.Uploads.CVMaxBytes != 2048 {
		t.Errorf("Uploads.CVMaxBytes = %d, want 2048", cfg.Uploads.CVMaxBytes)
	}
	if cfg.Uploads.DocumentMaxBytes != 5*1024*1024 {
		t.Errorf("Uploads.DocumentMaxBytes = %d, want default", cfg.Uploads.DocumentMaxBytes)
	}
	if cfg.JWT.AccessTokenExpiration != "24h" {
		t.Errorf("JWT.AccessTokenExpiration = %q, want 24h", cfg.JWT.AccessTokenExpiration)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"7000\"\njwt:\n  secret: from-file\ncache:\n  ttl: 90s\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Port != "7000" {
		t.Errorf("Server.Port = %q, want 7000", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "from-file" {
		t.Errorf("JWT.Secret = %q, want from-file", cfg.JWT.Secret)
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Errorf("Cache.TTL = %v, want 90s", cfg.Cache.TTL)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{"JWT_SECRET": ""}},
		{name: "bad expiration", env: map[string]string{"JWT_SECRET": "x", "JWT_ACCESS_TOKEN_EXPIRATION": "soon"}},
		{name: "zero upload limit", env: map[string]string{"JWT_SECRET": "x", "UPLOADS_DOCUMENT_MAX_BYTES": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSetFieldFromEnvRejectsBadInt(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected error for invalid integer env value")
	}
}
