// Package config loads the application configuration from an optional
// YAML file with environment variable overrides.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultBaseURL      = "https://f1api.dev"
	DefaultAddr         = ":8080"
	DefaultDBPath       = "./f1-analytics.db"
	DefaultCacheTTL     = time.Hour
	DefaultReminderLead = 30 * time.Minute
	DefaultLiveRefresh  = 5 * time.Minute
	DefaultLogLevel     = "info"
)

var ErrInvalidLogLevel = errors.New("log_level must be one of: debug, info, warn, error")

type Config struct {
	BaseURL      string
	APIKey       string
	Addr         string
	DBPath       string
	CacheTTL     time.Duration
	ReminderLead time.Duration
	LiveRefresh  time.Duration
	LogLevel     string

	// Only ever read from the environment, never from the file.
	TelegramToken string
}

// fileConfig is the YAML shape; durations are Go duration strings.
type fileConfig struct {
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	Addr         string `yaml:"addr"`
	DBPath       string `yaml:"db_path"`
	CacheTTL     string `yaml:"cache_ttl"`
	ReminderLead string `yaml:"reminder_lead"`
	LiveRefresh  string `yaml:"live_refresh"`
	LogLevel     string `yaml:"log_level"`
}

// New builds the configuration. The file at path is optional; a missing
// file just means defaults plus environment.
func New(path string) (*Config, error) {
	cfg := &Config{
		BaseURL:      DefaultBaseURL,
		Addr:         DefaultAddr,
		DBPath:       DefaultDBPath,
		CacheTTL:     DefaultCacheTTL,
		ReminderLead: DefaultReminderLead,
		LiveRefresh:  DefaultLiveRefresh,
		LogLevel:     DefaultLogLevel,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrapf(err, "reading config file %q", path)
			}
		} else {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return nil, errors.Wrapf(err, "parsing config file %q", path)
			}
			if err := cfg.applyFile(fc); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(fc fileConfig) error {
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.APIKey != "" {
		c.APIKey = fc.APIKey
	}
	if fc.Addr != "" {
		c.Addr = fc.Addr
	}
	if fc.DBPath != "" {
		c.DBPath = fc.DBPath
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	for _, d := range []struct {
		raw  string
		key  string
		dest *time.Duration
	}{
		{fc.CacheTTL, "cache_ttl", &c.CacheTTL},
		{fc.ReminderLead, "reminder_lead", &c.ReminderLead},
		{fc.LiveRefresh, "live_refresh", &c.LiveRefresh},
	} {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", d.key)
		}
		*d.dest = parsed
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.BaseURL, "F1_BASE_URL")
	setString(&c.APIKey, "F1_API_KEY")
	setString(&c.Addr, "F1_ADDR")
	setString(&c.DBPath, "F1_DB_PATH")
	setString(&c.LogLevel, "F1_LOG_LEVEL")
	setString(&c.TelegramToken, "TELEGRAM_TOKEN")
	setDuration(&c.CacheTTL, "F1_CACHE_TTL")
	setDuration(&c.ReminderLead, "F1_REMINDER_LEAD")
	setDuration(&c.LiveRefresh, "F1_LIVE_REFRESH")
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.CacheTTL <= 0 {
		return errors.New("cache_ttl must be positive")
	}
	if c.ReminderLead <= 0 {
		return errors.New("reminder_lead must be positive")
	}
	if c.LiveRefresh <= 0 {
		return errors.New("live_refresh must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

func setString(dst *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*dst = value
	}
}

func setDuration(dst *time.Duration, key string) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return
	}
	if d, err := time.ParseDuration(value); err == nil {
		*dst = d
	}
}
