package config

import (
	"path/filepath"
	"testing"

	"github.com/marcus/inkwell/internal/pools"
)

func TestSaveTo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg := Default()
	cfg.AddSectionNote("chapters/index.md")
	cfg.Sections.Separator = "\n***\n"
	cfg.Pools, _ = pools.Add(cfg.Pools, "Cast")
	pools.AddMember(cfg.Pools, cfg.Pools[0].ID, "people/freya.md")

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if len(loaded.Sections.Notes) != 1 || loaded.Sections.Notes[0] != "chapters/index.md" {
		t.Errorf("section notes = %v", loaded.Sections.Notes)
	}
	if loaded.Sections.Separator != "\n***\n" {
		t.Errorf("separator = %q", loaded.Sections.Separator)
	}
	if len(loaded.Pools) != 1 {
		t.Fatalf("pools = %+v", loaded.Pools)
	}
	p := loaded.Pools[0]
	if p.ID != cfg.Pools[0].ID || p.Name != "Cast" || len(p.Members) != 1 {
		t.Errorf("pool round trip lost data: %+v", p)
	}
}
