package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/inkwell/internal/keymap"
	"github.com/marcus/inkwell/internal/modal"
	"github.com/marcus/inkwell/internal/msg"
	"github.com/marcus/inkwell/internal/vault"
)

func (m Model) Update(raw tea.Msg) (tea.Model, tea.Cmd) {
	switch ev := raw.(type) {
	case tea.WindowSizeMsg:
		m.width = ev.Width
		m.height = ev.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.clearExpiredToast()
		return m, tickCmd()

	case msg.ToastMsg:
		m.showToastFor(ev.Message, ev.Duration, ev.IsError)
		return m, nil

	case msg.VaultChangedMsg:
		return m, tea.Batch(m.waitForVaultChange(),
			msg.ShowToast("Vault re-indexed", 2*time.Second))

	case msg.ErrorMsg:
		return m, tea.Batch(m.waitForVaultChange(),
			msg.ShowErrorToast(ev.Err.Error(), 4*time.Second))

	case modal.CanceledMsg:
		m.modal = nil
		m.section = nil
		m.character = nil
		m.settingsPoolID = ""
		m.showToast("Cancelled", false)
		return m, nil

	case modal.InputDoneMsg:
		m.modal = nil
		switch ev.ID {
		case idSectionID:
			m.sectionIDEntered(ev.Value)
		case idCharAlias:
			m.characterAliasEntered(ev.Value)
		case idSetNewPool:
			m.settingsPoolNamed(ev.Value)
		case idSetRenamePool:
			m.settingsPoolRenamed(ev.Value)
		case idSetSeparator:
			m.settingsSeparatorEntered(ev.Value)
		}
		return m, nil

	case modal.ConfirmDoneMsg:
		m.modal = nil
		switch ev.ID {
		case idQuitConfirm:
			if ev.OK {
				return m, tea.Quit
			}
		case idSetRemovePool:
			m.settingsPoolRemoveConfirmed(ev.OK)
		}
		return m, nil

	case modal.PickedMsg[vault.Note]:
		m.modal = nil
		switch ev.ID {
		case idOpenNote:
			m.openNote(ev.Item)
		case idSectionTarget:
			m.sectionTargetPicked(ev.Item)
		case idCharTarget:
			m.characterPicked(ev.Item)
		case idSetAddSection:
			m.settingsSectionNotePicked(ev.Item)
		case idSetAddMember:
			m.settingsMemberPicked(ev.Item)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(ev)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open modal gets every key.
	if m.modal != nil {
		return m, m.modal.Update(key)
	}

	keyStr := key.String()

	if m.showPreview {
		switch keymap.Lookup(m.bindings, keyStr, "preview") {
		case "scroll-down":
			m.previewScroll++
		case "scroll-up":
			if m.previewScroll > 0 {
				m.previewScroll--
			}
		case "close-preview":
			m.showPreview = false
		default:
			if keyStr == "ctrl+p" {
				m.showPreview = false
			}
		}
		return m, nil
	}

	if m.showSettings {
		return m, m.handleSettingsKey(key)
	}

	switch keymap.Lookup(m.bindings, keyStr, "editor") {
	case "add-section-link":
		m.startSectionLink()
	case "add-character-ref":
		m.startCharacter(false)
	case "add-dialogue-block":
		m.startCharacter(true)
	case "add-ellipsis":
		m.insertEllipsis()
	case "copy-note-link":
		m.copyNoteLink()
	case "toggle-preview":
		return m.togglePreview()
	case "open-note":
		m.startOpenNote()
	case "save-note":
		m.saveNote()
	case "toggle-settings":
		m.toggleSettings()
	case "quit":
		if m.buf.Dirty() {
			m.modal = modal.NewConfirm(idQuitConfirm, "Quit",
				"The open note has unsaved changes. Quit anyway?")
			return m, nil
		}
		return m, tea.Quit
	default:
		m.buf.HandleKey(key)
	}
	return m, nil
}
