package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestNewDefaults(t *testing.T) {
	cfg, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestNewMissingFileUsesDefaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("a missing config file is not an error: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestNewFromFile(t *testing.T) {
	path := writeConfigFile(t, `
base_url: https://api.example.com
addr: ":9090"
cache_ttl: 30m
reminder_lead: 1h
log_level: debug
`)
	cfg, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.CacheTTL != 30*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.ReminderLead != time.Hour {
		t.Errorf("ReminderLead = %v", cfg.ReminderLead)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestNewEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `base_url: https://file.example.com`)
	t.Setenv("F1_BASE_URL", "https://env.example.com")
	t.Setenv("F1_CACHE_TTL", "15m")
	t.Setenv("TELEGRAM_TOKEN", "token-from-env")

	cfg, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, environment should win", cfg.BaseURL)
	}
	if cfg.CacheTTL != 15*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.TelegramToken != "token-from-env" {
		t.Errorf("TelegramToken = %q", cfg.TelegramToken)
	}
}

func TestNewInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "base_url: [}")
	if _, err := New(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base_url", func(c *Config) { c.BaseURL = "" }},
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"zero cache_ttl", func(c *Config) { c.CacheTTL = 0 }},
		{"negative reminder_lead", func(c *Config) { c.ReminderLead = -time.Minute }},
		{"zero live_refresh", func(c *Config) { c.LiveRefresh = 0 }},
		{"bad log_level", func(c *Config) { c.LogLevel = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New("")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
