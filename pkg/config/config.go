package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "AIJOHUB_"

// Config holds all runtime configuration for the client.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Log     LogConfig     `koanf:"log"`
	Session SessionConfig `koanf:"session"`
}

// APIConfig describes how to reach the Aijo Hub backend.
type APIConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

// SessionConfig controls where the persisted session lives.
type SessionConfig struct {
	Dir string `koanf:"dir"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://api.aijostore.id:8080",
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		Session: SessionConfig{
			Dir: "",
		},
	}
}

// Load builds the configuration from defaults and AIJOHUB_* environment
// variables. A .env file in the working directory is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// transformEnvKey converts environment variable names to koanf paths.
// For example: API_BASE_URL -> api.base_url
func transformEnvKey(s string) string {
	s = strings.ToLower(s)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' })
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + "." + strings.Join(parts[1:], "_")
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api base URL is required (set AIJOHUB_API_BASE_URL)")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api base URL must start with http:// or https://, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", c.API.Timeout)
	}
	return nil
}

// SessionDir resolves the directory holding the persisted session,
// creating it if needed.
func (c *Config) SessionDir() (string, error) {
	dir := c.Session.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "aijohub")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create session dir: %w", err)
	}
	return dir, nil
}
