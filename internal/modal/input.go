package modal

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/inkwell/internal/styles"
)

// Input is a single-line text prompt. Enter submits the current value
// (possibly empty); Esc cancels.
type Input struct {
	id    string
	title string
	hint  string
	input textinput.Model
}

// NewInput creates a text prompt pre-filled with initial.
func NewInput(id, title, placeholder, initial string) *Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	return &Input{id: id, title: title, input: ti}
}

// WithHint adds a muted helper line under the input.
func (m *Input) WithHint(hint string) *Input {
	m.hint = hint
	return m
}

func (m *Input) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return cancelCmd(m.id)
	case "enter":
		value := m.input.Value()
		id := m.id
		return func() tea.Msg { return InputDoneMsg{ID: id, Value: value} }
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Input) View(width int) string {
	boxWidth := min(60, width-4)
	if boxWidth < 30 {
		boxWidth = 30
	}
	m.input.Width = boxWidth - 8

	lines := []string{
		styles.ModalTitle.Render(m.title),
		"",
		m.input.View(),
	}
	if m.hint != "" {
		lines = append(lines, "", styles.Muted.Render(m.hint))
	}
	lines = append(lines, "", styles.Muted.Render("enter confirm · esc cancel"))
	return styles.ModalBox.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
