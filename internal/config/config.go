// Package config loads server configuration.
//
// Values are resolved in order: built-in defaults, then the optional YAML file
// named by COMMISSIONER_CONFIG_PATH, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ConfigPathEnv names the environment variable holding the YAML config path.
const ConfigPathEnv = "COMMISSIONER_CONFIG_PATH"

// Config defines server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Report  ReportConfig  `yaml:"report"`
	Metrics MetricsConfig `yaml:"metrics"`
	Static  StaticConfig  `yaml:"static"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" env:"COMMISSIONER_ADDR"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"COMMISSIONER_DB_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

type ReportConfig struct {
	// Locale selects number grouping and labels, e.g. "zh-CN" or "en".
	Locale string `yaml:"locale" env:"COMMISSIONER_LOCALE"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"COMMISSIONER_METRICS"`
	Path    string `yaml:"path" env:"COMMISSIONER_METRICS_PATH"`
}

type StaticConfig struct {
	// Path is a directory of front-end files served at /. Empty disables it.
	Path string `yaml:"path" env:"COMMISSIONER_STATIC_PATH"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		DB:      DBConfig{Path: "./data/commission.db"},
		Log:     LogConfig{Level: "info"},
		Report:  ReportConfig{Locale: "zh-CN"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(ConfigPathEnv); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports missing required settings.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server address is required"))
	}
	if strings.TrimSpace(c.DB.Path) == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics path must start with /: %q", c.Metrics.Path))
	}
	return errors.Join(errs...)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
