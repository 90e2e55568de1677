package modal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/inkwell/internal/styles"
)

const selectMaxVisible = 8

// Select is a filtered picker over any item type. The label projection
// supplies the display text used for both rendering and fuzzy filtering, so
// one component serves strings and note handles alike.
type Select[T any] struct {
	id    string
	title string
	items []T
	label func(T) string

	input    textinput.Model
	filtered []selectMatch
	cursor   int
	offset   int
}

// selectMatch references an item by original index along with its matched
// spans.
type selectMatch struct {
	index  int
	ranges []Range
}

// NewSelect creates a picker over items with the given display projection.
func NewSelect[T any](id, title string, items []T, label func(T) string) *Select[T] {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Focus()
	m := &Select[T]{
		id:    id,
		title: title,
		items: items,
		label: label,
		input: ti,
	}
	m.refilter()
	return m
}

func (m *Select[T]) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return cancelCmd(m.id)

	case "enter":
		if m.cursor < 0 || m.cursor >= len(m.filtered) {
			return nil
		}
		idx := m.filtered[m.cursor].index
		item := m.items[idx]
		id := m.id
		return func() tea.Msg { return PickedMsg[T]{ID: id, Item: item, Index: idx} }

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		m.scrollToCursor()
		return nil

	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		m.scrollToCursor()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return cmd
}

// refilter recomputes the match list for the current query and clamps the
// cursor.
func (m *Select[T]) refilter() {
	query := m.input.Value()
	m.filtered = m.filtered[:0]
	for i, item := range m.items {
		if ok, ranges := fuzzyMatch(query, m.label(item)); ok {
			m.filtered = append(m.filtered, selectMatch{index: i, ranges: ranges})
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor()
}

func (m *Select[T]) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+selectMaxVisible {
		m.offset = m.cursor - selectMaxVisible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Select[T]) View(width int) string {
	boxWidth := min(70, width-4)
	if boxWidth < 40 {
		boxWidth = 40
	}
	contentWidth := boxWidth - 6
	m.input.Width = contentWidth - 2

	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString("> " + m.input.View())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", contentWidth))
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(styles.Muted.Render("No matches"))
	}

	if m.offset > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↑ %d more above", m.offset)))
		b.WriteString("\n")
	}

	end := min(m.offset+selectMaxVisible, len(m.filtered))
	for i := m.offset; i < end; i++ {
		match := m.filtered[i]
		text := m.label(m.items[match.index])

		cursor := "  "
		style := styles.ListItemNormal
		if i == m.cursor {
			cursor = styles.ListCursor.Render("▸ ")
			style = styles.ListItemFocused
		}
		line := highlight(text, match.ranges, styles.MatchHighlight)
		b.WriteString(cursor + style.Render(line))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(m.filtered) {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↓ %d more below", len(m.filtered)-end)))
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("enter select · esc cancel"))
	return styles.ModalBox.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Left, b.String()))
}
