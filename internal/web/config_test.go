package web

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web.json")
	data := `{
		"server": {"port": 9090, "host": "127.0.0.1"},
		"auth": {"enabled": true, "api_key": "secret"},
		"features": {"by_address_enabled": false, "stats_enabled": true}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 9090 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server = %s:%d, want 127.0.0.1:9090", cfg.Server.Host, cfg.Server.Port)
	}
	if !cfg.Auth.Enabled || cfg.Auth.APIKey != "secret" {
		t.Errorf("auth = %+v, want enabled with key secret", cfg.Auth)
	}
	if cfg.Features.ByAddressEnabled || !cfg.Features.StatsEnabled {
		t.Errorf("features = %+v, want by-address off, stats on", cfg.Features)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file must return an error")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed file must return an error")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.Enabled {
		t.Error("auth must default to disabled")
	}
	if !cfg.Features.ByAddressEnabled || !cfg.Features.StatsEnabled {
		t.Errorf("features = %+v, want both enabled", cfg.Features)
	}
}
