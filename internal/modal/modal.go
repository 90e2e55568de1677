// Package modal provides the prompt dialogs the app uses to request a value
// from the user: free text, confirmation, and filtered item selection.
//
// Each prompt is created with an ID. Closing a prompt emits exactly one
// result message carrying that ID, or CanceledMsg when the user dismissed
// it. Cancellation is a data value the caller must check, never an error.
package modal

import tea "github.com/charmbracelet/bubbletea"

// Modal is a prompt awaiting user input. At most one modal is open at a
// time; the app routes every key to it until a result message is emitted.
type Modal interface {
	// Update processes a key press. The returned command, if non-nil,
	// produces the prompt's result or cancellation message.
	Update(msg tea.KeyMsg) tea.Cmd
	// View renders the prompt box at the given maximum width.
	View(width int) string
}

// CanceledMsg reports that the prompt with the given ID was dismissed
// without producing a value.
type CanceledMsg struct {
	ID string
}

// InputDoneMsg carries the text submitted to an Input prompt.
type InputDoneMsg struct {
	ID    string
	Value string
}

// ConfirmDoneMsg carries the answer to a Confirm prompt.
type ConfirmDoneMsg struct {
	ID string
	OK bool
}

// PickedMsg carries the item chosen in a Select prompt.
type PickedMsg[T any] struct {
	ID    string
	Item  T
	Index int // index into the original item slice
}

func cancelCmd(id string) tea.Cmd {
	return func() tea.Msg { return CanceledMsg{ID: id} }
}
