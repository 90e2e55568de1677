package editor

import "testing"

func TestNewAndContent(t *testing.T) {
	b := New("line one\nline two")
	if got := b.Content(); got != "line one\nline two" {
		t.Errorf("Content = %q", got)
	}
	if b.Dirty() {
		t.Error("fresh buffer should be clean")
	}
}

func TestSelection_SameLine(t *testing.T) {
	b := New("hello world")
	b.SetCursor(Pos{0, 6})
	for i := 0; i < 5; i++ {
		b.MoveRight(true)
	}
	if got := b.SelectedText(); got != "world" {
		t.Errorf("SelectedText = %q, want %q", got, "world")
	}
}

func TestSelection_Backwards(t *testing.T) {
	b := New("hello world")
	b.SetCursor(Pos{0, 5})
	for i := 0; i < 5; i++ {
		b.MoveLeft(true)
	}
	if got := b.SelectedText(); got != "hello" {
		t.Errorf("SelectedText = %q, want %q", got, "hello")
	}
}

func TestSelection_MultiLine(t *testing.T) {
	b := New("one\ntwo\nthree")
	b.SetCursor(Pos{0, 1})
	b.MoveDown(true)
	b.MoveDown(true)
	if got := b.SelectedText(); got != "ne\ntwo\nt" {
		t.Errorf("SelectedText = %q", got)
	}
}

func TestReplaceSelection(t *testing.T) {
	b := New("the duel began")
	b.SetCursor(Pos{0, 4})
	for i := 0; i < 4; i++ {
		b.MoveRight(true)
	}
	b.ReplaceSelection("[[fight#^ab12cd|duel]]")

	if got := b.Content(); got != "the [[fight#^ab12cd|duel]] began" {
		t.Errorf("Content = %q", got)
	}
	if !b.Dirty() {
		t.Error("edit should mark buffer dirty")
	}
	// Cursor sits after the inserted text.
	if b.Cursor() != (Pos{0, 26}) {
		t.Errorf("cursor = %+v", b.Cursor())
	}
}

func TestInsertAtCursorBack_MultiLine(t *testing.T) {
	b := New("")
	b.InsertAtCursorBack("> [[Freya]]\n> \"\"", 1)

	if got := b.Content(); got != "> [[Freya]]\n> \"\"" {
		t.Errorf("Content = %q", got)
	}
	// Cursor between the quotes.
	if b.Cursor() != (Pos{1, 3}) {
		t.Errorf("cursor = %+v, want {1 3}", b.Cursor())
	}
}

func TestInsertAtCursor_MidLine(t *testing.T) {
	b := New("ab")
	b.SetCursor(Pos{0, 1})
	b.InsertAtCursor("X\nY")

	if got := b.Content(); got != "aX\nYb" {
		t.Errorf("Content = %q", got)
	}
	if b.Cursor() != (Pos{1, 1}) {
		t.Errorf("cursor = %+v", b.Cursor())
	}
}

func TestBackspaceAndDelete(t *testing.T) {
	b := New("abc")
	b.SetCursor(Pos{0, 2})
	b.Backspace()
	if got := b.Content(); got != "ac" {
		t.Errorf("after backspace = %q", got)
	}
	b.Delete()
	if got := b.Content(); got != "a" {
		t.Errorf("after delete = %q", got)
	}

	// Backspace joins lines.
	b = New("one\ntwo")
	b.SetCursor(Pos{1, 0})
	b.Backspace()
	if got := b.Content(); got != "onetwo" {
		t.Errorf("after join = %q", got)
	}
}

func TestApplyTransform_PreservesCursor(t *testing.T) {
	b := New("opening line")
	b.SetCursor(Pos{0, 7})
	b.ApplyTransform(func(cur string) string {
		return cur + "\n\nappended ^ab12cd\n"
	})

	if b.Cursor() != (Pos{0, 7}) {
		t.Errorf("cursor moved to %+v", b.Cursor())
	}
	if got := b.Content(); got != "opening line\n\nappended ^ab12cd\n" {
		t.Errorf("Content = %q", got)
	}
	if !b.Dirty() {
		t.Error("transform should mark buffer dirty")
	}
}

func TestSetContent_ResetsState(t *testing.T) {
	b := New("old")
	b.InsertAtCursor("x")
	b.SetContent("brand new")
	if b.Dirty() {
		t.Error("SetContent should mark clean")
	}
	if got := b.Content(); got != "brand new" {
		t.Errorf("Content = %q", got)
	}
}
