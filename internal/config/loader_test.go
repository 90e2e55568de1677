package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sections.Separator != DefaultSeparator {
		t.Errorf("got separator %q, want default", cfg.Sections.Separator)
	}
	if !cfg.UI.ShowFooter {
		t.Error("footer should be shown by default")
	}
	if len(cfg.Sections.Notes) != 0 || len(cfg.Pools) != 0 {
		t.Error("section notes and pools should start empty")
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Error("should return default config")
	}
}

func TestLoadFrom_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{
		"sections": {
			"notes": ["chapters/index.md"],
			"separator": "\n***\n"
		},
		"characterPools": [
			{"id": "p1", "name": "Cast", "members": ["people/freya.md"], "enabled": true}
		],
		"ui": {"showFooter": false}
	}`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if len(cfg.Sections.Notes) != 1 || cfg.Sections.Notes[0] != "chapters/index.md" {
		t.Errorf("section notes = %v", cfg.Sections.Notes)
	}
	if cfg.Sections.Separator != "\n***\n" {
		t.Errorf("separator = %q", cfg.Sections.Separator)
	}
	if len(cfg.Pools) != 1 || cfg.Pools[0].Name != "Cast" || !cfg.Pools[0].Enabled {
		t.Errorf("pools = %+v", cfg.Pools)
	}
	if cfg.UI.ShowFooter {
		t.Error("showFooter should be false")
	}
	// Defaults survive for absent fields.
	if cfg.Vault.Root != "." {
		t.Errorf("vault root = %q, want default", cfg.Vault.Root)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want default", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{invalid`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("invalid JSON should error")
	}
}

func TestLoadFrom_EmptySeparatorRepaired(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"sections": {"separator": ""}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sections.Separator != DefaultSeparator {
		t.Errorf("empty separator should be repaired, got %q", cfg.Sections.Separator)
	}
}

func TestSectionNotes_Uniqueness(t *testing.T) {
	cfg := Default()

	if !cfg.AddSectionNote("chapters/index.md") {
		t.Error("first add should succeed")
	}
	if cfg.AddSectionNote("chapters/index.md") {
		t.Error("duplicate add should be rejected")
	}
	if len(cfg.Sections.Notes) != 1 {
		t.Errorf("notes = %v", cfg.Sections.Notes)
	}

	if !cfg.RemoveSectionNote("chapters/index.md") {
		t.Error("remove should succeed")
	}
	if cfg.RemoveSectionNote("chapters/index.md") {
		t.Error("second remove should fail")
	}
}
