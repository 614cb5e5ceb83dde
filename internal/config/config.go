package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings
const (
	EnvLogDir  = "CHEFBOT_LOG_DIR"
	EnvMetrics = "CHEFBOT_METRICS"
	EnvColor   = "CHEFBOT_COLOR"
)

// Config represents the application configuration
type Config struct {
	LogDir            string `yaml:"log_dir"`
	ChatLog           string `yaml:"chat_log"`
	OrderLog          string `yaml:"order_log"`
	RecommendationLog string `yaml:"recommendation_log"`
	Metrics           struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
	Styles struct {
		Color bool `yaml:"color"`
	} `yaml:"styles"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		LogDir:            ".",
		ChatLog:           "chat_log.txt",
		OrderLog:          "order_history.txt",
		RecommendationLog: "recommendations.txt",
	}
	cfg.Metrics.Enabled = true
	cfg.Styles.Color = true
	return cfg
}

// LoadEnv loads variables from the given .env files. Missing files are ignored.
func LoadEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		c.LogDir = dir
	}
	if v := os.Getenv(EnvMetrics); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMetrics, v, err)
		}
		c.Metrics.Enabled = enabled
	}
	if v := os.Getenv(EnvColor); v != "" {
		color, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvColor, v, err)
		}
		c.Styles.Color = color
	}
	return nil
}

// Validate checks that every log file has a name
func (c *Config) Validate() error {
	if c.LogDir == "" {
		return fmt.Errorf("log_dir is required")
	}
	for field, value := range map[string]string{
		"chat_log":           c.ChatLog,
		"order_log":          c.OrderLog,
		"recommendation_log": c.RecommendationLog,
	} {
		if value == "" {
			return fmt.Errorf("%s is required", field)
		}
	}
	return nil
}
