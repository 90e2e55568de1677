package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/inkwell/internal/keymap"
	"github.com/marcus/inkwell/internal/styles"
	"github.com/marcus/inkwell/internal/ui"
)

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	bodyHeight := m.height - 2 // header + footer
	if m.statusMsg != "" {
		bodyHeight--
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch {
	case m.showPreview:
		body = m.previewView(bodyHeight)
	case m.showSettings:
		body = m.settingsView(m.width, bodyHeight)
	default:
		body = m.buf.View(m.width, bodyHeight, m.modal == nil)
	}
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, body)

	parts := []string{m.headerView(), body}
	if m.statusMsg != "" {
		parts = append(parts, m.toastView())
	}
	parts = append(parts, m.footerView())
	screen := strings.Join(parts, "\n")

	if m.modal != nil {
		return ui.Overlay(screen, m.modal.View(min(m.width-4, 64)), m.width, m.height)
	}
	return screen
}

func (m Model) headerView() string {
	title := m.notePath
	if title == "" {
		title = "inkwell"
	}
	if m.showSettings {
		title = "settings"
	}
	left := " " + title
	if m.buf.Dirty() {
		left += styles.HeaderDirty.Render(" ●")
	}
	return styles.HeaderBar.Width(m.width).Render(left)
}

func (m Model) footerView() string {
	if !m.cfg.UI.ShowFooter {
		return styles.FooterBar.Width(m.width).Render("")
	}
	var hints []string
	for _, b := range keymap.HintsFor(m.bindings, m.context()) {
		hints = append(hints, styles.KeyHint.Render(b.Key)+" "+b.Name)
	}
	return styles.FooterBar.Width(m.width).Render(" " + strings.Join(hints, "  "))
}

func (m Model) toastView() string {
	if m.statusIsError {
		return styles.ToastError.Render(" " + m.statusMsg)
	}
	return styles.ToastSuccess.Render(" " + m.statusMsg)
}

// togglePreview renders the buffer through glamour and shows it in place of
// the editor. Rendering happens once per toggle, not per frame.
func (m Model) togglePreview() (tea.Model, tea.Cmd) {
	if m.showPreview {
		m.showPreview = false
		return m, nil
	}
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.cfg.UI.Theme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.showToast("Preview unavailable: "+err.Error(), true)
		return m, nil
	}
	out, err := r.Render(m.buf.Content())
	if err != nil {
		m.showToast("Preview failed: "+err.Error(), true)
		return m, nil
	}
	m.preview = out
	m.previewScroll = 0
	m.showPreview = true
	return m, nil
}

func (m Model) previewView(height int) string {
	lines := strings.Split(m.preview, "\n")
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := m.previewScroll
	if scroll > maxScroll {
		scroll = maxScroll
	}
	end := min(scroll+height, len(lines))
	return strings.Join(lines[scroll:end], "\n")
}
