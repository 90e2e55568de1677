package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/marcus/inkwell/internal/styles"
)

// View renders a height-line window of the buffer, scrolled so the cursor
// stays visible. Selection cells are highlighted; the cursor cell is
// rendered inverted when focused.
func (b *Buffer) View(width, height int, focused bool) string {
	if height <= 0 {
		return ""
	}

	if b.cursor.Row < b.scroll {
		b.scroll = b.cursor.Row
	}
	if b.cursor.Row >= b.scroll+height {
		b.scroll = b.cursor.Row - height + 1
	}
	if b.scroll < 0 {
		b.scroll = 0
	}

	var selStart, selEnd Pos
	hasSel := b.HasSelection()
	if hasSel {
		selStart, selEnd = b.selectionBounds()
	}

	var out []string
	for row := b.scroll; row < b.scroll+height; row++ {
		if row >= len(b.lines) {
			out = append(out, styles.EditorLineNo.Render("~"))
			continue
		}
		out = append(out, b.renderLine(row, width, focused, hasSel, selStart, selEnd))
	}
	return strings.Join(out, "\n")
}

func (b *Buffer) renderLine(row, width int, focused, hasSel bool, selStart, selEnd Pos) string {
	line := b.lines[row]

	var sb strings.Builder
	used := 0
	for col := 0; col <= len(line); col++ {
		var cell string
		if col < len(line) {
			cell = string(line[col])
			if cell == "\t" {
				cell = "    "
			}
		} else if focused && b.cursor.Row == row && b.cursor.Col == col {
			cell = " " // cursor past end of line
		} else {
			break
		}

		w := runewidth.StringWidth(cell)
		if used+w > width {
			break
		}
		used += w

		switch {
		case focused && b.cursor.Row == row && b.cursor.Col == col:
			sb.WriteString(styles.EditorCursor.Render(cell))
		case hasSel && inSelection(Pos{row, col}, selStart, selEnd):
			sb.WriteString(styles.EditorSelection.Render(cell))
		default:
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// inSelection reports whether p lies in [start, end).
func inSelection(p, start, end Pos) bool {
	return !p.Less(start) && p.Less(end)
}
