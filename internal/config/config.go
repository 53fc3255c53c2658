// Package config holds runtime settings with defaults, optionally overlaid
// from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	CacheDir          string `yaml:"cache_dir"`
	DBPath            string `yaml:"db_path"`
	APIBaseURL        string `yaml:"api_base_url"`
	PageBaseURL       string `yaml:"page_base_url"`
	RequestTimeoutSec int    `yaml:"request_timeout_secs"`
}

// RequestTimeout returns the HTTP timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// Default returns the built-in configuration.
func Default() Config {
	cacheDir := filepath.Join(userConfigDir(), "hnrecap")
	return Config{
		CacheDir:          cacheDir,
		DBPath:            filepath.Join(cacheDir, "recap.db"),
		APIBaseURL:        "https://hacker-news.firebaseio.com/v0",
		PageBaseURL:       "https://news.ycombinator.com",
		RequestTimeoutSec: 10,
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path means defaults only; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
