// Package app wires the editor, vault index, prompts, and settings pane
// into the root Bubble Tea model.
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/inkwell/internal/config"
	"github.com/marcus/inkwell/internal/editor"
	"github.com/marcus/inkwell/internal/keymap"
	"github.com/marcus/inkwell/internal/modal"
	"github.com/marcus/inkwell/internal/vault"
)

// Prompt IDs. Every modal result message carries the ID of the prompt that
// produced it; these name the steps of each command flow.
const (
	idOpenNote       = "open-note"
	idSectionTarget  = "section-target"
	idSectionID      = "section-id"
	idCharTarget     = "character-target"
	idCharAlias      = "character-alias"
	idQuitConfirm    = "quit-confirm"
	idSetAddSection  = "settings-add-section-note"
	idSetAddMember   = "settings-add-member"
	idSetNewPool     = "settings-new-pool"
	idSetRenamePool  = "settings-rename-pool"
	idSetSeparator   = "settings-separator"
	idSetRemovePool  = "settings-remove-pool"
)

// sectionFlow tracks the add-section-link command between prompts.
type sectionFlow struct {
	selection string
	target    vault.Note
}

// characterFlow tracks the character reference and dialogue commands
// between prompts.
type characterFlow struct {
	dialogue bool
	target   vault.Note
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg     *config.Config
	cfgPath string // config file location; "" means the default
	index   *vault.Index
	watcher *vault.Watcher
	logger  *slog.Logger

	buf      *editor.Buffer
	notePath string // open note, vault-relative; "" when none yet

	width, height int
	ready         bool

	// At most one modal is open; commands cannot stack prompts.
	modal modal.Modal

	// Pending command flows (nil when idle).
	section   *sectionFlow
	character *characterFlow

	// Settings pane
	showSettings bool
	settings     settingsState
	// Pool a settings prompt is acting on.
	settingsPoolID string

	// Preview overlay
	showPreview   bool
	preview       string
	previewScroll int

	bindings []keymap.Binding

	// Toast state
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool
}

// New creates the application model. notePath may be empty, in which case
// an open-note picker is shown immediately.
func New(cfg *config.Config, cfgPath string, ix *vault.Index, w *vault.Watcher, logger *slog.Logger, notePath, content string) Model {
	m := Model{
		cfg:      cfg,
		cfgPath:  cfgPath,
		index:    ix,
		watcher:  w,
		logger:   logger,
		buf:      editor.New(content),
		notePath: notePath,
		bindings: keymap.DefaultBindings(),
	}
	if notePath == "" {
		m.modal = notePicker(idOpenNote, "Open note", ix.Notes())
	}
	return m
}

// Init starts the clock and the vault-change listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.waitForVaultChange())
}

// notePicker builds the standard filtered note picker.
func notePicker(id, title string, notes []vault.Note) modal.Modal {
	return modal.NewSelect(id, title, notes, func(n vault.Note) string { return n.Path })
}

func newIDPrompt() modal.Modal {
	return modal.NewInput(idSectionID, "Section ID", "leave blank to generate", "").
		WithHint("letters, digits and hyphens; anything else is stripped")
}

func newAliasPrompt(base string) modal.Modal {
	return modal.NewInput(idCharAlias, "Display as", "", base)
}

// context returns the active keymap context.
func (m *Model) context() string {
	switch {
	case m.showPreview:
		return "preview"
	case m.showSettings:
		return "settings"
	default:
		return "editor"
	}
}

// saveConfig persists the settings object. Called explicitly after every
// mutation.
func (m *Model) saveConfig() {
	var err error
	if m.cfgPath != "" {
		err = config.SaveTo(m.cfgPath, m.cfg)
	} else {
		err = config.Save(m.cfg)
	}
	if err != nil {
		m.logger.Error("config save failed", slog.String("error", err.Error()))
		m.showToast("Could not save settings: "+err.Error(), true)
	}
}

// showToast sets a transient status message with the default lifetime.
func (m *Model) showToast(text string, isError bool) {
	m.showToastFor(text, 3*time.Second, isError)
}

// showToastFor sets a status message that expires after d.
func (m *Model) showToastFor(text string, d time.Duration, isError bool) {
	if d <= 0 {
		d = 3 * time.Second
	}
	m.statusMsg = text
	m.statusExpiry = time.Now().Add(d)
	m.statusIsError = isError
}

// clearExpiredToast drops the status message once its time is up.
func (m *Model) clearExpiredToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}
}
