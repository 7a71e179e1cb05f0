package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is stockdeck's runtime configuration.
type Config struct {
	FixturePath string // empty means the built-in demo data
	LogFile     string
	LogLevel    string
	LogFormat   string
}

const (
	defaultConfigPath = "~/.config/stockdeck/config.toml"
	defaultLogFile    = "~/.local/state/stockdeck/stockdeck.log"
	defaultLogLevel   = "info"
	defaultLogFormat  = "json"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogFile:   mustExpand(defaultLogFile),
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		FixturePath string `toml:"fixture_path"`
		LogFile     string `toml:"log_file"`
		LogLevel    string `toml:"log_level"`
		LogFormat   string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if fixture := strings.TrimSpace(raw.FixturePath); fixture != "" {
		cfg.FixturePath = mustExpand(fixture)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}
	switch format := strings.ToLower(strings.TrimSpace(raw.LogFormat)); format {
	case "":
	case "json", "console":
		cfg.LogFormat = format
	default:
		return Config{}, fmt.Errorf("parse config: unknown log_format %q", raw.LogFormat)
	}

	return cfg, nil
}

// WithFixture overrides the fixture path, as the -fixture flag does.
func (c Config) WithFixture(path string) Config {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		c.FixturePath = mustExpand(trimmed)
	}
	return c
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
