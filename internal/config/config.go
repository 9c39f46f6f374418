// Package config loads the server's YAML-driven configuration: listen
// address, retry cap, node budget, default strategy, integrations, and log
// rotation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration document.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	MaxRetries int `yaml:"max_retries"`
	NodeBudget int `yaml:"node_budget"`

	DiscordWebhookSecret string `yaml:"discord_webhook_secret"`
	GCSBucket            string `yaml:"gcs_bucket"`
	PostgresDSN          string `yaml:"postgres_dsn"`

	DefaultStrategy string `yaml:"default_strategy"`

	// LogFilePath, if set, rotates server logs to this file via lumberjack
	// in addition to stdout.
	LogFilePath   string `yaml:"log_file_path"`
	LogMaxSizeMB  int    `yaml:"log_max_size_mb"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAgeDays int    `yaml:"log_max_age_days"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		MaxRetries:      20,
		NodeBudget:      1500,
		DefaultStrategy: "SMART_DYNAMIC",
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default() so an unset field keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
