package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDurationMinutes = 25
	DefaultToggleKey       = "ctrl+f"
	DefaultTickInterval    = time.Second
	DefaultLogLevel        = "info"
)

type Config struct {
	DataDir      string
	DBPath       string
	LogPath      string
	ExportDir    string
	Duration     int
	ToggleKey    string
	TickInterval time.Duration
	LogLevel     string
	MetricsAddr  string
	BlockList    []string
}

// fileConfig mirrors <data-dir>/config.yaml. Zero values keep the defaults.
type fileConfig struct {
	DurationMinutes int      `yaml:"duration_minutes"`
	ToggleKey       string   `yaml:"toggle_key"`
	TickInterval    string   `yaml:"tick_interval"`
	LogLevel        string   `yaml:"log_level"`
	MetricsAddr     string   `yaml:"metrics_addr"`
	BlockList       []string `yaml:"blocklist"`
}

type envConfig struct {
	Duration    int    `envconfig:"DURATION"`
	ToggleKey   string `envconfig:"TOGGLE_KEY"`
	LogLevel    string `envconfig:"LOG_LEVEL"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`
}

// New resolves configuration for dataDir: built-in defaults, then
// config.yaml, then TIMEAIFY_* environment variables.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, "timeaify.db"),
		LogPath:      filepath.Join(dataDir, "timeaify.log"),
		ExportDir:    filepath.Join(dataDir, "exports"),
		Duration:     DefaultDurationMinutes,
		ToggleKey:    DefaultToggleKey,
		TickInterval: DefaultTickInterval,
		LogLevel:     DefaultLogLevel,
	}
	if err := cfg.applyFile(filepath.Join(dataDir, "config.yaml")); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if fc.DurationMinutes != 0 {
		c.Duration = fc.DurationMinutes
	}
	if strings.TrimSpace(fc.ToggleKey) != "" {
		c.ToggleKey = strings.TrimSpace(fc.ToggleKey)
	}
	if fc.TickInterval != "" {
		d, err := time.ParseDuration(fc.TickInterval)
		if err != nil {
			return fmt.Errorf("decode config tick_interval: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config tick_interval must be positive")
		}
		c.TickInterval = d
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.MetricsAddr != "" {
		c.MetricsAddr = fc.MetricsAddr
	}
	c.BlockList = append(c.BlockList, fc.BlockList...)
	return nil
}

func (c *Config) applyEnv() error {
	env := envConfig{}
	if err := envconfig.Process("timeaify", &env); err != nil {
		return fmt.Errorf("load env config: %w", err)
	}
	if env.Duration != 0 {
		c.Duration = env.Duration
	}
	if env.ToggleKey != "" {
		c.ToggleKey = env.ToggleKey
	}
	if env.LogLevel != "" {
		c.LogLevel = env.LogLevel
	}
	if env.MetricsAddr != "" {
		c.MetricsAddr = env.MetricsAddr
	}
	return nil
}
