package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/inkwell/internal/styles"
)

// Confirm is a yes/no dialog. y or Enter answers yes, n answers no, Esc
// cancels without answering.
type Confirm struct {
	id      string
	title   string
	message string
}

func NewConfirm(id, title, message string) *Confirm {
	return &Confirm{id: id, title: title, message: message}
}

func (m *Confirm) Update(msg tea.KeyMsg) tea.Cmd {
	id := m.id
	switch msg.String() {
	case "y", "enter":
		return func() tea.Msg { return ConfirmDoneMsg{ID: id, OK: true} }
	case "n":
		return func() tea.Msg { return ConfirmDoneMsg{ID: id, OK: false} }
	case "esc":
		return cancelCmd(id)
	}
	return nil
}

func (m *Confirm) View(width int) string {
	boxWidth := min(50, width-4)
	if boxWidth < 30 {
		boxWidth = 30
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitle.Render(m.title),
		"",
		m.message,
		"",
		styles.Muted.Render("y/enter yes · n no · esc cancel"),
	)
	return styles.ModalBox.Width(boxWidth).Render(content)
}
