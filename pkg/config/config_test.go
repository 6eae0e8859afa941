package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Style != "clinical" {
		t.Errorf("default style = %q, want clinical", cfg.Render.Style)
	}
	if cfg.Render.Width != 600 {
		t.Errorf("default width = %v, want 600", cfg.Render.Width)
	}
	if !cfg.Render.Labels {
		t.Error("labels should default to on")
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should default to enabled")
	}
	if cfg.Cache.Duration() != 7*24*time.Hour {
		t.Errorf("default TTL = %v, want 168h", cfg.Cache.Duration())
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Render != want.Render || cfg.Cache != want.Cache || cfg.Server.Addr != want.Server.Addr {
		t.Error("missing file should return defaults")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[render]
style = "print"
width = 900

[cache]
enabled = false
redis_url = "redis://localhost:6379/0"
ttl = "1h"

[server]
addr = ":9090"
allowed_origins = ["https://clinic.example"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Render.Style != "print" || cfg.Render.Width != 900 {
		t.Errorf("render config not applied: %+v", cfg.Render)
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled override not applied")
	}
	if cfg.Cache.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("redis_url = %q", cfg.Cache.RedisURL)
	}
	if cfg.Cache.Duration() != time.Hour {
		t.Errorf("ttl = %v, want 1h", cfg.Cache.Duration())
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://clinic.example" {
		t.Errorf("allowed_origins = %v", cfg.Server.AllowedOrigins)
	}

	// Untouched fields keep their defaults.
	if cfg.Render.Scale != 2.0 {
		t.Errorf("scale should keep its default, got %v", cfg.Render.Scale)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[render\nstyle="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed TOML")
	}
}

func TestPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Path(); got != filepath.Join("/tmp/xdg", "pedeeg", "config.toml") {
		t.Errorf("Path() = %q", got)
	}
}
