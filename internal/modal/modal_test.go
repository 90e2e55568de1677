package modal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// run executes the command returned by a modal Update and returns the
// resulting message, or nil.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestInput_SubmitAndCancel(t *testing.T) {
	in := NewInput("test-input", "Title", "", "seed")

	got := run(in.Update(keyMsg("enter")))
	done, ok := got.(InputDoneMsg)
	if !ok {
		t.Fatalf("got %T, want InputDoneMsg", got)
	}
	if done.ID != "test-input" || done.Value != "seed" {
		t.Errorf("got %+v", done)
	}

	got = run(NewInput("test-input", "Title", "", "").Update(keyMsg("esc")))
	if c, ok := got.(CanceledMsg); !ok || c.ID != "test-input" {
		t.Errorf("esc should cancel, got %#v", got)
	}
}

func TestInput_Typing(t *testing.T) {
	in := NewInput("t", "Title", "", "")
	run(in.Update(keyMsg("h")))
	run(in.Update(keyMsg("i")))

	got := run(in.Update(keyMsg("enter")))
	if done, ok := got.(InputDoneMsg); !ok || done.Value != "hi" {
		t.Errorf("got %#v, want value %q", got, "hi")
	}
}

func TestSelect_FilterAndPick(t *testing.T) {
	items := []string{"chapters/one.md", "chapters/two.md", "people/freya.md"}
	sel := NewSelect("pick", "Pick a note", items, func(s string) string { return s })

	// Filter down to the people note.
	for _, r := range "freya" {
		run(sel.Update(keyMsg(string(r))))
	}

	got := run(sel.Update(keyMsg("enter")))
	picked, ok := got.(PickedMsg[string])
	if !ok {
		t.Fatalf("got %T, want PickedMsg[string]", got)
	}
	if picked.Item != "people/freya.md" || picked.Index != 2 {
		t.Errorf("got %+v", picked)
	}
}

func TestSelect_Navigation(t *testing.T) {
	items := []string{"a", "b", "c"}
	sel := NewSelect("pick", "Pick", items, func(s string) string { return s })

	run(sel.Update(keyMsg("down")))
	run(sel.Update(keyMsg("down")))
	run(sel.Update(keyMsg("up")))

	got := run(sel.Update(keyMsg("enter")))
	if picked, ok := got.(PickedMsg[string]); !ok || picked.Item != "b" {
		t.Errorf("got %#v, want item b", got)
	}
}

func TestSelect_EnterWithNoMatches(t *testing.T) {
	sel := NewSelect("pick", "Pick", []string{"aaa"}, func(s string) string { return s })
	run(sel.Update(keyMsg("z")))

	if got := run(sel.Update(keyMsg("enter"))); got != nil {
		t.Errorf("enter with no matches should do nothing, got %#v", got)
	}

	if got := run(sel.Update(keyMsg("esc"))); got == nil {
		t.Error("esc should still cancel")
	}
}

func TestConfirm(t *testing.T) {
	c := NewConfirm("quit", "Quit?", "Unsaved changes will be lost.")

	if got := run(c.Update(keyMsg("y"))); got.(ConfirmDoneMsg).OK != true {
		t.Error("y should confirm")
	}
	if got := run(c.Update(keyMsg("n"))); got.(ConfirmDoneMsg).OK != false {
		t.Error("n should decline")
	}
	if _, ok := run(c.Update(keyMsg("esc"))).(CanceledMsg); !ok {
		t.Error("esc should cancel")
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query, s string
		want     bool
	}{
		{"", "anything", true},
		{"fry", "people/freya.md", true},
		{"FRY", "people/freya.md", true},
		{"xyz", "people/freya.md", false},
		{"fm", "freya.md", true},
	}
	for _, tt := range tests {
		if got, _ := fuzzyMatch(tt.query, tt.s); got != tt.want {
			t.Errorf("fuzzyMatch(%q, %q) = %v, want %v", tt.query, tt.s, got, tt.want)
		}
	}
}

func TestFuzzyMatch_Ranges(t *testing.T) {
	ok, ranges := fuzzyMatch("ab", "aXb")
	if !ok {
		t.Fatal("should match")
	}
	want := []Range{{0, 1}, {2, 3}}
	if len(ranges) != len(want) || ranges[0] != want[0] || ranges[1] != want[1] {
		t.Errorf("ranges = %v, want %v", ranges, want)
	}

	// Adjacent matches coalesce into one range.
	_, ranges = fuzzyMatch("ab", "abc")
	if len(ranges) != 1 || ranges[0] != (Range{0, 2}) {
		t.Errorf("ranges = %v, want single coalesced range", ranges)
	}
}
