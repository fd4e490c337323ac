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

const (
	EnvConfigFile   = "PIZZA_CONFIG"
	EnvLogLevel     = "PIZZA_LOG_LEVEL"
	EnvJSONLogs     = "PIZZA_JSON_LOGS"
	EnvWindowWidth  = "PIZZA_WINDOW_WIDTH"
	EnvWindowHeight = "PIZZA_WINDOW_HEIGHT"
)

// Config holds diagnostics and window settings. Pricing is fixed and is not
// configurable.
type Config struct {
	LogLevel     string  `yaml:"log_level"`
	JSONLogs     bool    `yaml:"json_logs"`
	WindowWidth  float32 `yaml:"window_width"`
	WindowHeight float32 `yaml:"window_height"`
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		JSONLogs:     false,
		WindowWidth:  720,
		WindowHeight: 420,
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// PIZZA_CONFIG, then a .env file in the working directory, then the process
// environment. Later sources win. A missing .env is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvJSONLogs); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvJSONLogs, err)
		}
		c.JSONLogs = b
	}
	if v, ok := os.LookupEnv(EnvWindowWidth); ok {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvWindowWidth, err)
		}
		c.WindowWidth = float32(f)
	}
	if v, ok := os.LookupEnv(EnvWindowHeight); ok {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvWindowHeight, err)
		}
		c.WindowHeight = float32(f)
	}
	return nil
}

// Validate rejects window sizes that cannot hold the form.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: window size %.0fx%.0f must be positive", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
