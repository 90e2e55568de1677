package app

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/inkwell/internal/msg"
	"github.com/marcus/inkwell/internal/pools"
	"github.com/marcus/inkwell/internal/vault"
	"github.com/marcus/inkwell/internal/wikilink"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// waitForVaultChange blocks on the watcher channel, rescans the index, and
// reports the change. Re-armed from Update after every delivery.
func (m Model) waitForVaultChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Changes
	ix := m.index
	logger := m.logger
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		if err := ix.Rescan(); err != nil {
			logger.Warn("rescan failed", "error", err.Error())
			return msg.ErrorMsg{Err: err}
		}
		return msg.VaultChangedMsg{}
	}
}

// --- add section wikilink ---

// startSectionLink begins the section-link flow: the current selection is
// the section's display text and the text registered in the target note.
func (m *Model) startSectionLink() {
	selection := m.buf.SelectedText()
	if selection == "" {
		m.showToast("Select the text to use as the section name", true)
		return
	}

	var candidates []vault.Note
	if len(m.cfg.Sections.Notes) > 0 {
		for _, p := range m.cfg.Sections.Notes {
			if n, ok := m.index.Resolve(p); ok {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			m.showToast("None of the configured section notes exist", true)
			return
		}
	} else {
		candidates = m.index.Notes()
		if len(candidates) == 0 {
			m.showToast("The vault has no notes", true)
			return
		}
	}

	m.section = &sectionFlow{selection: selection}
	m.modal = notePicker(idSectionTarget, "Add section to…", candidates)
}

func (m *Model) sectionTargetPicked(target vault.Note) {
	m.section.target = target
	m.modal = newIDPrompt()
}

// sectionIDEntered finishes the flow: normalize or generate the ID, insert
// the anchor link over the selection, and register the section in the
// target note.
func (m *Model) sectionIDEntered(raw string) {
	flow := m.section
	m.section = nil

	id := wikilink.NormalizeID(raw)
	if id == "" {
		id = wikilink.GenerateID()
	}

	short := wikilink.Shorten(flow.target, m.index.Notes())
	m.buf.ReplaceSelection(wikilink.ComposeAnchor(short, id, flow.selection))

	sep := m.cfg.Sections.Separator
	if flow.target.Path == m.notePath {
		// Target is the open document: append through the buffer so the
		// edit is visible (and saved) with the rest of it. The author's
		// trailing whitespace stays untouched; only notes rewritten on
		// disk get the trim.
		m.buf.ApplyTransform(func(cur string) string {
			block := wikilink.Block(flow.selection, id)
			if cur == "" {
				return block
			}
			return cur + sep + block
		})
	} else {
		err := m.index.Update(flow.target.Path, func(cur string) string {
			return wikilink.AppendBlock(cur, sep, flow.selection, id)
		})
		if err != nil {
			m.showToast("Could not update "+flow.target.Path+": "+err.Error(), true)
			return
		}
	}
	m.showToast("Section linked to "+flow.target.Base, false)
}

// --- character reference / dialogue block ---

// startCharacter begins the character-reference flow (dialogue=true for the
// dialogue block variant). The candidate list is the flattened members of
// every enabled pool.
func (m *Model) startCharacter(dialogue bool) {
	members := pools.ActiveMembers(m.cfg.Pools)
	if len(members) == 0 {
		m.showToast("No active character pools", true)
		return
	}

	var candidates []vault.Note
	for _, p := range members {
		if n, ok := m.index.Resolve(p); ok {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		m.showToast("No character notes found in the vault", true)
		return
	}

	m.character = &characterFlow{dialogue: dialogue}
	m.modal = notePicker(idCharTarget, "Character", candidates)
}

func (m *Model) characterPicked(target vault.Note) {
	m.character.target = target
	m.modal = newAliasPrompt(target.Base)
}

// characterAliasEntered composes the reference and inserts it: inline at
// the selection for a plain reference, or as a dialogue blockquote with the
// cursor parked inside the empty quotes.
func (m *Model) characterAliasEntered(alias string) {
	flow := m.character
	m.character = nil

	short := wikilink.Shorten(flow.target, m.index.Notes())
	var link string
	if alias == "" || alias == short {
		link = wikilink.Compose(short)
	} else {
		link = wikilink.ComposeAliased(short, alias)
	}

	if flow.dialogue {
		m.buf.InsertAtCursorBack("> "+link+"\n> \"\"", 1)
	} else {
		m.buf.ReplaceSelection(link)
	}
}

// --- one-shot commands ---

// insertEllipsis drops the dramatic-pause fragment at the cursor.
func (m *Model) insertEllipsis() {
	m.buf.InsertAtCursor(wikilink.Ellipsis)
}

// copyNoteLink puts a plain link to the open note on the system clipboard.
func (m *Model) copyNoteLink() {
	if m.notePath == "" {
		m.showToast("No note open", true)
		return
	}
	n, ok := m.index.Resolve(m.notePath)
	if !ok {
		n = vault.Note{Path: m.notePath, Base: vault.BaseName(m.notePath)}
	}
	link := wikilink.Compose(wikilink.Shorten(n, m.index.Notes()))
	if err := clipboard.WriteAll(link); err != nil {
		m.showToast("Clipboard unavailable: "+err.Error(), true)
		return
	}
	m.showToast("Copied "+link, false)
}

// saveNote writes the buffer back to disk.
func (m *Model) saveNote() {
	if m.notePath == "" {
		m.showToast("No note open", true)
		return
	}
	if err := m.index.Write(m.notePath, m.buf.Content()); err != nil {
		m.showToast("Save failed: "+err.Error(), true)
		return
	}
	m.buf.MarkClean()
	m.showToast("Saved "+m.notePath, false)
}

// startOpenNote offers the whole vault for switching notes.
func (m *Model) startOpenNote() {
	if m.buf.Dirty() {
		m.showToast("Save the open note first", true)
		return
	}
	notes := m.index.Notes()
	if len(notes) == 0 {
		m.showToast("The vault has no notes", true)
		return
	}
	m.modal = notePicker(idOpenNote, "Open note", notes)
}

func (m *Model) openNote(n vault.Note) {
	content, err := m.index.Read(n.Path)
	if err != nil {
		m.showToast("Could not read "+n.Path+": "+err.Error(), true)
		return
	}
	m.notePath = n.Path
	m.buf.SetContent(content)
	m.previewScroll = 0
}
