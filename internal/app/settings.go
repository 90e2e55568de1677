package app

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/inkwell/internal/keymap"
	"github.com/marcus/inkwell/internal/modal"
	"github.com/marcus/inkwell/internal/pools"
	"github.com/marcus/inkwell/internal/styles"
	"github.com/marcus/inkwell/internal/vault"
)

// rowKind identifies what a settings row represents and which actions
// apply to it.
type rowKind int

const (
	rowSectionNote rowKind = iota
	rowAddSectionNote
	rowSeparator
	rowPool
	rowMember
	rowAddMember
	rowAddPool
)

// settingsRow is one navigable line of the settings pane. Pools and
// members are addressed by pool ID plus member index, rebuilt after every
// mutation so stale indices never survive a change.
type settingsRow struct {
	kind        rowKind
	path        string // rowSectionNote
	poolID      string // rowPool, rowMember, rowAddMember
	memberIndex int    // rowMember
}

type settingsState struct {
	cursor int
	rows   []settingsRow
	scroll int
}

// rebuildSettingsRows regenerates the row list from the current config.
func (m *Model) rebuildSettingsRows() {
	var rows []settingsRow
	for _, p := range m.cfg.Sections.Notes {
		rows = append(rows, settingsRow{kind: rowSectionNote, path: p})
	}
	rows = append(rows, settingsRow{kind: rowAddSectionNote})
	rows = append(rows, settingsRow{kind: rowSeparator})
	for _, p := range m.cfg.Pools {
		rows = append(rows, settingsRow{kind: rowPool, poolID: p.ID})
		for i := range p.Members {
			rows = append(rows, settingsRow{kind: rowMember, poolID: p.ID, memberIndex: i})
		}
		rows = append(rows, settingsRow{kind: rowAddMember, poolID: p.ID})
	}
	rows = append(rows, settingsRow{kind: rowAddPool})

	m.settings.rows = rows
	if m.settings.cursor >= len(rows) {
		m.settings.cursor = len(rows) - 1
	}
	if m.settings.cursor < 0 {
		m.settings.cursor = 0
	}
}

// toggleSettings enters or leaves the settings pane.
func (m *Model) toggleSettings() {
	m.showSettings = !m.showSettings
	if m.showSettings {
		m.settings.cursor = 0
		m.rebuildSettingsRows()
	}
}

// handleSettingsKey dispatches a key in the settings pane through the
// settings binding table, so the footer hints and the behavior come from
// one place. Returns any command emitted by an opened modal.
func (m *Model) handleSettingsKey(key tea.KeyMsg) tea.Cmd {
	if len(m.settings.rows) == 0 {
		m.rebuildSettingsRows()
	}
	row := m.settings.rows[m.settings.cursor]

	switch keymap.Lookup(m.bindings, key.String(), "settings") {
	case "cursor-up":
		if m.settings.cursor > 0 {
			m.settings.cursor--
		}
	case "cursor-down":
		if m.settings.cursor < len(m.settings.rows)-1 {
			m.settings.cursor++
		}
	case "toggle-settings":
		m.showSettings = false

	case "activate":
		return m.activateSettingsRow(row)

	case "toggle-pool":
		if row.kind == rowPool {
			if p := pools.Find(m.cfg.Pools, row.poolID); p != nil {
				pools.Toggle(m.cfg.Pools, row.poolID, !p.Enabled)
				m.saveConfig()
				m.rebuildSettingsRows()
			}
		}

	case "rename-pool":
		if row.kind == rowPool {
			if p := pools.Find(m.cfg.Pools, row.poolID); p != nil {
				m.settingsPoolID = row.poolID
				m.modal = modal.NewInput(idSetRenamePool, "Rename pool", "", p.Name)
			}
		}

	case "delete":
		switch row.kind {
		case rowSectionNote:
			if m.cfg.RemoveSectionNote(row.path) {
				m.saveConfig()
				m.rebuildSettingsRows()
			}
		case rowMember:
			if pools.RemoveMember(m.cfg.Pools, row.poolID, row.memberIndex) {
				m.saveConfig()
				m.rebuildSettingsRows()
			}
		case rowPool:
			if p := pools.Find(m.cfg.Pools, row.poolID); p != nil {
				m.settingsPoolID = row.poolID
				m.modal = modal.NewConfirm(idSetRemovePool, "Remove pool",
					fmt.Sprintf("Remove %q and its %d members?", p.Name, len(p.Members)))
			}
		}
	}
	return nil
}

// activateSettingsRow handles Enter on a row: add/edit actions open the
// matching prompt.
func (m *Model) activateSettingsRow(row settingsRow) tea.Cmd {
	switch row.kind {
	case rowAddSectionNote:
		notes := m.index.Notes()
		if len(notes) == 0 {
			m.showToast("The vault has no notes", true)
			return nil
		}
		m.modal = notePicker(idSetAddSection, "Add section note", notes)

	case rowSeparator:
		// Edited in quoted form so \n escapes stay visible and typable.
		m.modal = modal.NewInput(idSetSeparator, "Section separator",
			"", strconv.Quote(m.cfg.Sections.Separator)).
			WithHint(`quoted Go string, e.g. "\n\n---\n\n"`)

	case rowAddMember:
		notes := m.index.Notes()
		if len(notes) == 0 {
			m.showToast("The vault has no notes", true)
			return nil
		}
		m.settingsPoolID = row.poolID
		m.modal = notePicker(idSetAddMember, "Add character", notes)

	case rowAddPool:
		m.modal = modal.NewInput(idSetNewPool, "New pool", "pool name", "")
	}
	return nil
}

// Settings prompt completions, routed from Update.

func (m *Model) settingsSectionNotePicked(n vault.Note) {
	if !m.cfg.AddSectionNote(n.Path) {
		m.showToast(n.Path+" is already a section note", true)
		return
	}
	m.saveConfig()
	m.rebuildSettingsRows()
}

func (m *Model) settingsMemberPicked(n vault.Note) {
	if pools.AddMember(m.cfg.Pools, m.settingsPoolID, n.Path) {
		m.saveConfig()
		m.rebuildSettingsRows()
	}
	m.settingsPoolID = ""
}

func (m *Model) settingsPoolNamed(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		m.showToast("Pool name cannot be empty", true)
		return
	}
	m.cfg.Pools, _ = pools.Add(m.cfg.Pools, name)
	m.saveConfig()
	m.rebuildSettingsRows()
}

func (m *Model) settingsPoolRenamed(name string) {
	name = strings.TrimSpace(name)
	if name != "" && pools.Rename(m.cfg.Pools, m.settingsPoolID, name) {
		m.saveConfig()
		m.rebuildSettingsRows()
	}
	m.settingsPoolID = ""
}

func (m *Model) settingsPoolRemoveConfirmed(ok bool) {
	if ok {
		m.cfg.Pools = pools.Remove(m.cfg.Pools, m.settingsPoolID)
		m.saveConfig()
		m.rebuildSettingsRows()
	}
	m.settingsPoolID = ""
}

func (m *Model) settingsSeparatorEntered(raw string) {
	sep, err := strconv.Unquote(strings.TrimSpace(raw))
	if err != nil {
		m.showToast("Not a valid quoted string", true)
		return
	}
	if sep == "" {
		m.showToast("Separator cannot be empty", true)
		return
	}
	m.cfg.Sections.Separator = sep
	m.saveConfig()
	m.rebuildSettingsRows()
}

// settingsView renders the settings pane.
func (m *Model) settingsView(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.SettingsHeader.Render("Section notes"))
	b.WriteString("\n")

	lines := []string{}
	for _, row := range m.settings.rows {
		lines = append(lines, m.renderSettingsRow(row))
	}

	// Window the rows around the cursor.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	if m.settings.cursor < m.settings.scroll {
		m.settings.scroll = m.settings.cursor
	}
	if m.settings.cursor >= m.settings.scroll+visible {
		m.settings.scroll = m.settings.cursor - visible + 1
	}
	end := min(m.settings.scroll+visible, len(lines))
	for i := m.settings.scroll; i < end; i++ {
		b.WriteString(lines[i])
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderSettingsRow(row settingsRow) string {
	selected := len(m.settings.rows) > 0 && m.settings.rows[m.settings.cursor] == row

	cursor := "  "
	if selected {
		cursor = styles.ListCursor.Render("▸ ")
	}

	var text string
	switch row.kind {
	case rowSectionNote:
		text = "  " + row.path
	case rowAddSectionNote:
		text = styles.Muted.Render("  + add section note")
	case rowSeparator:
		text = fmt.Sprintf("  separator: %s", strconv.Quote(m.cfg.Sections.Separator))
	case rowPool:
		p := pools.Find(m.cfg.Pools, row.poolID)
		if p == nil {
			return ""
		}
		mark := "[x]"
		name := p.Name
		if !p.Enabled {
			mark = "[ ]"
			name = styles.SettingsDisabled.Render(name)
		}
		text = styles.SettingsHeader.Render(mark+" "+name) +
			styles.Muted.Render(fmt.Sprintf("  (%d)", len(p.Members)))
	case rowMember:
		p := pools.Find(m.cfg.Pools, row.poolID)
		if p == nil || row.memberIndex >= len(p.Members) {
			return ""
		}
		text = "    · " + p.Members[row.memberIndex]
	case rowAddMember:
		text = styles.Muted.Render("    + add character")
	case rowAddPool:
		text = styles.Muted.Render("  + new pool")
	}

	if selected {
		return cursor + styles.ListItemFocused.Render(text)
	}
	return cursor + text
}
