// Package msg defines tea messages shared between the app and its
// collaborators.
package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastMsg displays a temporary message.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool // true for error toasts (red), false for success (green)
}

// ShowToast returns a command to show a toast message.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration}
	}
}

// ShowErrorToast returns a command to show an error-styled toast.
func ShowErrorToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration, IsError: true}
	}
}

// VaultChangedMsg signals that files in the vault changed on disk and the
// index was rescanned.
type VaultChangedMsg struct{}

// ErrorMsg carries a non-fatal error to surface as a toast.
type ErrorMsg struct {
	Err error
}
