package wikilink

import (
	"regexp"
	"strings"
	"testing"

	"github.com/marcus/inkwell/internal/vault"
)

func TestShorten_UniqueBaseName(t *testing.T) {
	all := []vault.Note{
		{Path: "chapters/one.md", Base: "one"},
		{Path: "chapters/two.md", Base: "two"},
		{Path: "people/freya.md", Base: "freya"},
	}

	got := Shorten(all[2], all)
	if got != "freya" {
		t.Errorf("got %q, want bare base name %q", got, "freya")
	}
}

func TestShorten_AmbiguousBaseName(t *testing.T) {
	all := []vault.Note{
		{Path: "arcs/intro.md", Base: "intro"},
		{Path: "chapters/intro.md", Base: "intro"},
		{Path: "people/freya.md", Base: "freya"},
	}

	// Every colliding note should shorten to its extension-less full path.
	if got := Shorten(all[0], all); got != "arcs/intro" {
		t.Errorf("got %q, want %q", got, "arcs/intro")
	}
	if got := Shorten(all[1], all); got != "chapters/intro" {
		t.Errorf("got %q, want %q", got, "chapters/intro")
	}
}

func TestGenerateID(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]{6}$`)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if !pattern.MatchString(id) {
			t.Fatalf("GenerateID() = %q, want 6 lowercase alphanumerics", id)
		}
	}
}

func TestGenerateIDCoversAlphabet(t *testing.T) {
	// With uniform draws, 12000 characters miss a given alphabet entry
	// with probability (35/36)^12000; a miss here means a biased or
	// truncated range.
	seen := make(map[byte]bool)
	for i := 0; i < 2000; i++ {
		for _, c := range []byte(GenerateID()) {
			seen[c] = true
		}
	}
	for _, c := range []byte(idAlphabet) {
		if !seen[c] {
			t.Errorf("character %q never generated", c)
		}
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Section!! 2", "My-Section-2"},
		{"already-fine", "already-fine"},
		{"under_scored__run", "under-scored-run"},
		{"  padded  ", "padded"},
		{"tabs\tand  spaces", "tabs-and-spaces"},
		{"   ", ""},
		{"##", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeID(tt.in); got != tt.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompose(t *testing.T) {
	if got := Compose("Note"); got != "[[Note]]" {
		t.Errorf("Compose = %q", got)
	}
	if got := ComposeAliased("Note", "Al"); got != "[[Note|Al]]" {
		t.Errorf("ComposeAliased = %q", got)
	}
	if got := ComposeAnchor("Note", "id1", "Sel"); got != "[[Note#^id1|Sel]]" {
		t.Errorf("ComposeAnchor = %q", got)
	}
}

func TestAppendBlock_EmptyTarget(t *testing.T) {
	got := AppendBlock("", "\n\n---\n\n", "The duel", "abc123")
	want := "The duel ^abc123\n"
	if got != want {
		t.Errorf("got %q, want %q (no leading separator)", got, want)
	}
}

func TestAppendBlock_NonEmptyTarget(t *testing.T) {
	got := AppendBlock("# Sections\n\nOld entry ^old1\n\n", "\n\n---\n\n", "The duel", "abc123")
	want := "# Sections\n\nOld entry ^old1\n\n---\n\nThe duel ^abc123\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "\n\n\n---") {
		t.Error("trailing whitespace should be trimmed before the separator")
	}
}
