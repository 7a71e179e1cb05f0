package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads a fixture from a TOML file. An empty path yields the built-in
// data set. Sections missing from the file fall back to the built-in data so a
// file can override just the products, for example.
func Load(path string) (Fixture, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return Fixture{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Fixture{}, fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(bytes)
}

// Parse decodes TOML fixture data, filling absent sections from Default.
func Parse(data []byte) (Fixture, error) {
	var raw Fixture
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}

	def := Default()
	if raw.Stores == nil {
		raw.Stores = def.Stores
	}
	if raw.Products == nil {
		raw.Products = def.Products
	}
	if raw.Activities == nil {
		raw.Activities = def.Activities
	}
	if raw.Conflicts == nil {
		raw.Conflicts = def.Conflicts
	}
	if raw.Settings == (Settings{}) {
		raw.Settings = def.Settings
	} else if strings.TrimSpace(string(raw.Settings.SyncFrequency)) == "" {
		raw.Settings.SyncFrequency = def.Settings.SyncFrequency
	}
	return raw, nil
}

// Encode renders a fixture as TOML, suitable for Load.
func Encode(f Fixture) ([]byte, error) {
	bytes, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal fixture: %w", err)
	}
	return bytes, nil
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
