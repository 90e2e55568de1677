// Package keymap declares the key bindings surfaced in the footer and
// dispatched by the app.
package keymap

// Binding associates a key with a command in a given context.
type Binding struct {
	Key     string
	Command string
	Name    string // short label for the footer
	Context string
}

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Editor context: the four authoring commands plus conveniences.
		{Key: "ctrl+s", Command: "add-section-link", Name: "section", Context: "editor"},
		{Key: "ctrl+r", Command: "add-character-ref", Name: "character", Context: "editor"},
		{Key: "ctrl+d", Command: "add-dialogue-block", Name: "dialogue", Context: "editor"},
		{Key: "ctrl+e", Command: "add-ellipsis", Name: "ellipsis", Context: "editor"},
		{Key: "ctrl+y", Command: "copy-note-link", Name: "yank link", Context: "editor"},
		{Key: "ctrl+p", Command: "toggle-preview", Name: "preview", Context: "editor"},
		{Key: "ctrl+g", Command: "open-note", Name: "open", Context: "editor"},
		{Key: "ctrl+o", Command: "save-note", Name: "save", Context: "editor"},
		{Key: "f2", Command: "toggle-settings", Name: "settings", Context: "editor"},
		{Key: "ctrl+q", Command: "quit", Name: "quit", Context: "editor"},
		{Key: "ctrl+c", Command: "quit", Name: "", Context: "editor"},

		// Settings context
		{Key: "up", Command: "cursor-up", Name: "", Context: "settings"},
		{Key: "k", Command: "cursor-up", Name: "", Context: "settings"},
		{Key: "down", Command: "cursor-down", Name: "", Context: "settings"},
		{Key: "j", Command: "cursor-down", Name: "", Context: "settings"},
		{Key: "enter", Command: "activate", Name: "edit/add", Context: "settings"},
		{Key: " ", Command: "toggle-pool", Name: "toggle", Context: "settings"},
		{Key: "r", Command: "rename-pool", Name: "rename", Context: "settings"},
		{Key: "d", Command: "delete", Name: "delete", Context: "settings"},
		{Key: "x", Command: "delete", Name: "", Context: "settings"},
		{Key: "f2", Command: "toggle-settings", Name: "back", Context: "settings"},
		{Key: "esc", Command: "toggle-settings", Name: "", Context: "settings"},

		// Preview context
		{Key: "j", Command: "scroll-down", Name: "scroll", Context: "preview"},
		{Key: "k", Command: "scroll-up", Name: "", Context: "preview"},
		{Key: "esc", Command: "close-preview", Name: "close", Context: "preview"},
	}
}

// Lookup returns the command bound to key in context, or "".
func Lookup(bindings []Binding, key, context string) string {
	for _, b := range bindings {
		if b.Key == key && b.Context == context {
			return b.Command
		}
	}
	return ""
}

// HintsFor returns the footer-worthy bindings for a context, in declaration
// order, skipping unnamed bindings.
func HintsFor(bindings []Binding, context string) []Binding {
	var out []Binding
	for _, b := range bindings {
		if b.Context == context && b.Name != "" {
			out = append(out, b)
		}
	}
	return out
}
