// Package editor implements the line-based text buffer the authoring
// commands operate on: cursor, shift-selection, and text insertion with
// explicit cursor placement.
package editor

import "strings"

// Pos addresses a rune cell in the buffer. Col may equal the line length
// (cursor past the last rune).
type Pos struct {
	Row, Col int
}

// Less reports whether p comes before q in document order.
func (p Pos) Less(q Pos) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Buffer is a text document with a cursor and an optional selection. The
// selection spans from the anchor to the cursor in either direction.
type Buffer struct {
	lines  [][]rune
	cursor Pos
	anchor *Pos
	dirty  bool
	scroll int
}

// New creates a buffer holding content.
func New(content string) *Buffer {
	b := &Buffer{}
	b.setLines(content)
	return b
}

func (b *Buffer) setLines(content string) {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	b.lines = make([][]rune, len(raw))
	for i, l := range raw {
		b.lines[i] = []rune(l)
	}
}

// Content returns the full buffer text.
func (b *Buffer) Content() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// SetContent replaces the buffer text, clamping the cursor and dropping any
// selection. The buffer is marked clean; use ApplyTransform for edits.
func (b *Buffer) SetContent(content string) {
	b.setLines(content)
	b.anchor = nil
	b.dirty = false
	b.clampCursor()
}

// ApplyTransform replaces the buffer text with f(current), preserving the
// cursor position as closely as the new text allows. Used for whole-note
// transformations like appending a section block to the open note.
func (b *Buffer) ApplyTransform(f func(current string) string) {
	cur := b.cursor
	b.setLines(f(b.Content()))
	b.anchor = nil
	b.cursor = cur
	b.clampCursor()
	b.dirty = true
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor, clamping it to the document, and clears any
// selection.
func (b *Buffer) SetCursor(p Pos) {
	b.cursor = p
	b.anchor = nil
	b.clampCursor()
}

// Dirty reports whether the buffer has unsaved edits.
func (b *Buffer) Dirty() bool { return b.dirty }

// MarkClean clears the dirty flag, e.g. after a save.
func (b *Buffer) MarkClean() { b.dirty = false }

// HasSelection reports whether a non-empty selection exists.
func (b *Buffer) HasSelection() bool {
	return b.anchor != nil && *b.anchor != b.cursor
}

// selectionBounds returns the selection endpoints in document order.
func (b *Buffer) selectionBounds() (Pos, Pos) {
	a, c := *b.anchor, b.cursor
	if c.Less(a) {
		return c, a
	}
	return a, c
}

// SelectedText returns the selected text, or "" when nothing is selected.
func (b *Buffer) SelectedText() string {
	if !b.HasSelection() {
		return ""
	}
	start, end := b.selectionBounds()
	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col])
	}
	var parts []string
	parts = append(parts, string(b.lines[start.Row][start.Col:]))
	for r := start.Row + 1; r < end.Row; r++ {
		parts = append(parts, string(b.lines[r]))
	}
	parts = append(parts, string(b.lines[end.Row][:end.Col]))
	return strings.Join(parts, "\n")
}

// InsertAtCursor inserts s at the cursor (replacing the selection if one
// exists) and leaves the cursor after the inserted text.
func (b *Buffer) InsertAtCursor(s string) {
	b.InsertAtCursorBack(s, 0)
}

// InsertAtCursorBack inserts s like InsertAtCursor, then moves the cursor
// back rune-wise across the inserted text. back=1 on a string ending in
// `""` leaves the cursor between the quotes.
func (b *Buffer) InsertAtCursorBack(s string, back int) {
	if b.HasSelection() {
		start, end := b.selectionBounds()
		b.deleteRange(start, end)
		b.cursor = start
	}
	b.anchor = nil
	b.cursor = b.insertText(b.cursor, s)
	for i := 0; i < back; i++ {
		b.retreat()
	}
	b.dirty = true
}

// ReplaceSelection replaces the selected text with s. Without a selection
// it behaves like InsertAtCursor.
func (b *Buffer) ReplaceSelection(s string) {
	b.InsertAtCursor(s)
}

// insertText splices s into the document at p and returns the position just
// after the inserted text.
func (b *Buffer) insertText(p Pos, s string) Pos {
	segs := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	line := b.lines[p.Row]
	head := append([]rune{}, line[:p.Col]...)
	tail := append([]rune{}, line[p.Col:]...)

	if len(segs) == 1 {
		b.lines[p.Row] = append(append(head, []rune(segs[0])...), tail...)
		return Pos{Row: p.Row, Col: p.Col + len([]rune(segs[0]))}
	}

	newLines := make([][]rune, 0, len(segs))
	newLines = append(newLines, append(head, []rune(segs[0])...))
	for i := 1; i < len(segs)-1; i++ {
		newLines = append(newLines, []rune(segs[i]))
	}
	last := []rune(segs[len(segs)-1])
	endCol := len(last)
	newLines = append(newLines, append(last, tail...))

	out := make([][]rune, 0, len(b.lines)+len(newLines)-1)
	out = append(out, b.lines[:p.Row]...)
	out = append(out, newLines...)
	out = append(out, b.lines[p.Row+1:]...)
	b.lines = out
	return Pos{Row: p.Row + len(segs) - 1, Col: endCol}
}

// deleteRange removes the text between start and end (document order).
func (b *Buffer) deleteRange(start, end Pos) {
	if start.Row == end.Row {
		line := b.lines[start.Row]
		b.lines[start.Row] = append(append([]rune{}, line[:start.Col]...), line[end.Col:]...)
		return
	}
	head := b.lines[start.Row][:start.Col]
	tail := b.lines[end.Row][end.Col:]
	merged := append(append([]rune{}, head...), tail...)

	out := make([][]rune, 0, len(b.lines)-(end.Row-start.Row))
	out = append(out, b.lines[:start.Row]...)
	out = append(out, merged)
	out = append(out, b.lines[end.Row+1:]...)
	b.lines = out
}

// retreat moves the cursor one rune left, wrapping to the previous line end.
func (b *Buffer) retreat() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
		return
	}
	if b.cursor.Row > 0 {
		b.cursor.Row--
		b.cursor.Col = len(b.lines[b.cursor.Row])
	}
}

// advance moves the cursor one rune right, wrapping to the next line start.
func (b *Buffer) advance() {
	if b.cursor.Col < len(b.lines[b.cursor.Row]) {
		b.cursor.Col++
		return
	}
	if b.cursor.Row < len(b.lines)-1 {
		b.cursor.Row++
		b.cursor.Col = 0
	}
}

func (b *Buffer) clampCursor() {
	if b.cursor.Row < 0 {
		b.cursor.Row = 0
	}
	if b.cursor.Row >= len(b.lines) {
		b.cursor.Row = len(b.lines) - 1
	}
	if b.cursor.Col < 0 {
		b.cursor.Col = 0
	}
	if b.cursor.Col > len(b.lines[b.cursor.Row]) {
		b.cursor.Col = len(b.lines[b.cursor.Row])
	}
}

// beginExtend ensures an anchor exists before a selection-extending move.
func (b *Buffer) beginExtend(extend bool) {
	if !extend {
		b.anchor = nil
		return
	}
	if b.anchor == nil {
		a := b.cursor
		b.anchor = &a
	}
}

// Movement. extend=true keeps/extends the selection.

func (b *Buffer) MoveLeft(extend bool) {
	b.beginExtend(extend)
	b.retreat()
}

func (b *Buffer) MoveRight(extend bool) {
	b.beginExtend(extend)
	b.advance()
}

func (b *Buffer) MoveUp(extend bool) {
	b.beginExtend(extend)
	if b.cursor.Row > 0 {
		b.cursor.Row--
		b.clampCursor()
	} else {
		b.cursor.Col = 0
	}
}

func (b *Buffer) MoveDown(extend bool) {
	b.beginExtend(extend)
	if b.cursor.Row < len(b.lines)-1 {
		b.cursor.Row++
		b.clampCursor()
	} else {
		b.cursor.Col = len(b.lines[b.cursor.Row])
	}
}

func (b *Buffer) MoveLineStart(extend bool) {
	b.beginExtend(extend)
	b.cursor.Col = 0
}

func (b *Buffer) MoveLineEnd(extend bool) {
	b.beginExtend(extend)
	b.cursor.Col = len(b.lines[b.cursor.Row])
}

// InsertRune types a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.InsertAtCursor(string(r))
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertAtCursor("\n")
}

// Backspace deletes the selection, or the rune before the cursor.
func (b *Buffer) Backspace() {
	if b.HasSelection() {
		b.InsertAtCursor("")
		return
	}
	if b.cursor == (Pos{0, 0}) {
		return
	}
	end := b.cursor
	b.retreat()
	b.deleteRange(b.cursor, end)
	b.dirty = true
}

// Delete deletes the selection, or the rune under the cursor.
func (b *Buffer) Delete() {
	if b.HasSelection() {
		b.InsertAtCursor("")
		return
	}
	start := b.cursor
	if start.Col == len(b.lines[start.Row]) && start.Row == len(b.lines)-1 {
		return
	}
	b.advance()
	end := b.cursor
	b.cursor = start
	b.deleteRange(start, end)
	b.dirty = true
}
