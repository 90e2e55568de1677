package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/inkwell/internal/pools"
)

const (
	configDir  = ".config/inkwell"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointer and zero-value
// checks distinguish "absent" from "explicitly set", so file values merge
// shallowly over defaults.
type rawConfig struct {
	Vault    rawVaultConfig    `json:"vault"`
	Sections rawSectionsConfig `json:"sections"`
	Pools    []pools.Pool      `json:"characterPools"`
	UI       rawUIConfig       `json:"ui"`
}

type rawVaultConfig struct {
	Root string `json:"root"`
}

type rawSectionsConfig struct {
	Notes     []string `json:"notes"`
	Separator *string  `json:"separator"`
}

type rawUIConfig struct {
	ShowFooter *bool  `json:"showFooter"`
	Theme      string `json:"theme"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/inkwell/config.json.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = Path()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // defaults when no config file exists
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	merge(cfg, &raw)

	cfg.Vault.Root = ExpandPath(cfg.Vault.Root)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge applies file values over the defaults in cfg.
func merge(cfg *Config, raw *rawConfig) {
	if raw.Vault.Root != "" {
		cfg.Vault.Root = raw.Vault.Root
	}
	if raw.Sections.Notes != nil {
		cfg.Sections.Notes = raw.Sections.Notes
	}
	if raw.Sections.Separator != nil {
		cfg.Sections.Separator = *raw.Sections.Separator
	}
	if raw.Pools != nil {
		cfg.Pools = raw.Pools
	}
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}
}

// ExpandPath expands ~ to the home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Path returns the default config file path, or "" when the home directory
// cannot be determined.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
