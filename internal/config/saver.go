package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the config to the default location.
func Save(cfg *Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("config: cannot determine home directory")
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the full config to path, creating parent directories as
// needed.
func SaveTo(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
