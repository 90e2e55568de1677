package editor

import tea "github.com/charmbracelet/bubbletea"

// HandleKey processes an editing or movement key. Reports whether the key
// was consumed; app-level bindings are checked before this is called.
func (b *Buffer) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left":
		b.MoveLeft(false)
	case "right":
		b.MoveRight(false)
	case "up":
		b.MoveUp(false)
	case "down":
		b.MoveDown(false)
	case "shift+left":
		b.MoveLeft(true)
	case "shift+right":
		b.MoveRight(true)
	case "shift+up":
		b.MoveUp(true)
	case "shift+down":
		b.MoveDown(true)
	case "home":
		b.MoveLineStart(false)
	case "end":
		b.MoveLineEnd(false)
	case "shift+home":
		b.MoveLineStart(true)
	case "shift+end":
		b.MoveLineEnd(true)
	case "enter":
		b.InsertNewline()
	case "backspace":
		b.Backspace()
	case "delete":
		b.Delete()
	case "tab":
		b.InsertAtCursor("\t")
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			b.InsertAtCursor(string(msg.Runes))
			return true
		}
		if msg.Type == tea.KeySpace {
			b.InsertRune(' ')
			return true
		}
		return false
	}
	return true
}
