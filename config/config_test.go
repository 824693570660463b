package config

import (
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.AppName != "pager" {
		t.Errorf("AppName = %q, want pager", cfg.AppName)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 8080 {
		t.Errorf("addr = %s:%d, want 127.0.0.1:8080", cfg.Host, cfg.Port)
	}
	if cfg.Logger == nil || cfg.Logger.Level != 4 || cfg.Logger.Format != "text" {
		t.Errorf("Logger = %+v, want level 4 text", cfg.Logger)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("PAGER_SERVER_PORT", "9090")
	t.Setenv("PAGER_LOGGER_FORMAT", "json")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want env override 9090", cfg.Port)
	}
	if cfg.Logger.Format != "json" {
		t.Errorf("Logger.Format = %q, want env override json", cfg.Logger.Format)
	}
}
