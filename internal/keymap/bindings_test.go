package keymap

import "testing"

func TestLookup(t *testing.T) {
	bindings := DefaultBindings()

	tests := []struct {
		key, context string
		want         string
	}{
		{"ctrl+s", "editor", "add-section-link"},
		{"ctrl+d", "editor", "add-dialogue-block"},
		{"esc", "preview", "close-preview"},
		{"esc", "settings", "toggle-settings"},
		{"j", "settings", "cursor-down"},
		{"k", "settings", "cursor-up"},
		{"x", "settings", "delete"},
		{" ", "settings", "toggle-pool"},
		{"ctrl+s", "settings", ""}, // editor bindings do not leak
		{"zz", "editor", ""},
	}
	for _, tt := range tests {
		if got := Lookup(bindings, tt.key, tt.context); got != tt.want {
			t.Errorf("Lookup(%q, %q) = %q, want %q", tt.key, tt.context, got, tt.want)
		}
	}
}

func TestHintsForSkipsUnnamed(t *testing.T) {
	bindings := []Binding{
		{Key: "a", Command: "one", Name: "one", Context: "c"},
		{Key: "b", Command: "two", Name: "", Context: "c"},
		{Key: "c", Command: "three", Name: "three", Context: "other"},
	}
	got := HintsFor(bindings, "c")
	if len(got) != 1 || got[0].Command != "one" {
		t.Errorf("HintsFor = %+v", got)
	}
}
