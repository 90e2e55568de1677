// Package config loads and persists inkwell settings.
package config

import (
	"github.com/marcus/inkwell/internal/pools"
)

// DefaultSeparator is placed between existing content and a newly appended
// section block in a target note.
const DefaultSeparator = "\n\n---\n\n"

// Config is the root configuration structure. Mutations do not persist
// themselves; callers save explicitly after each change.
type Config struct {
	Vault    VaultConfig    `json:"vault"`
	Sections SectionsConfig `json:"sections"`
	Pools    []pools.Pool   `json:"characterPools"`
	UI       UIConfig       `json:"ui"`
}

// VaultConfig locates the note vault on disk.
type VaultConfig struct {
	Root string `json:"root"` // vault root directory (supports ~ expansion)
}

// SectionsConfig configures the add-section-link command.
type SectionsConfig struct {
	// Notes lists the vault-relative paths offered as section-link targets.
	// When empty, the whole vault is offered. Each path appears at most once.
	Notes []string `json:"notes"`
	// Separator is inserted between existing content and an appended block.
	Separator string `json:"separator"`
}

// UIConfig configures appearance.
type UIConfig struct {
	ShowFooter bool   `json:"showFooter"`
	Theme      string `json:"theme"` // glamour style for the preview overlay
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Vault: VaultConfig{Root: "."},
		Sections: SectionsConfig{
			Separator: DefaultSeparator,
		},
		UI: UIConfig{
			ShowFooter: true,
			Theme:      "dark",
		},
	}
}

// Validate repairs invalid values in place.
func (c *Config) Validate() error {
	if c.Sections.Separator == "" {
		c.Sections.Separator = DefaultSeparator
	}
	if c.UI.Theme == "" {
		c.UI.Theme = "dark"
	}
	return nil
}

// HasSectionNote reports whether path is already configured as a section
// target.
func (c *Config) HasSectionNote(path string) bool {
	for _, p := range c.Sections.Notes {
		if p == path {
			return true
		}
	}
	return false
}

// AddSectionNote appends path to the section-target list. Reports false if
// the path is already present; each path appears at most once.
func (c *Config) AddSectionNote(path string) bool {
	if c.HasSectionNote(path) {
		return false
	}
	c.Sections.Notes = append(c.Sections.Notes, path)
	return true
}

// RemoveSectionNote deletes path from the section-target list. Reports
// whether it was present.
func (c *Config) RemoveSectionNote(path string) bool {
	for i, p := range c.Sections.Notes {
		if p == path {
			c.Sections.Notes = append(c.Sections.Notes[:i], c.Sections.Notes[i+1:]...)
			return true
		}
	}
	return false
}
