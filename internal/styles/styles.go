// Package styles centralizes the lipgloss color palette and shared styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Accent    = lipgloss.Color("#F59E0B") // Amber

	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")
)

// Chrome
var (
	HeaderBar = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgSecondary).
			Bold(true).
			Padding(0, 1)

	HeaderDirty = lipgloss.NewStyle().
			Foreground(Accent).
			Background(BgSecondary).
			Bold(true)

	FooterBar = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgSecondary).
			Padding(0, 1)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgTertiary).
		Padding(0, 1)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
)

// Editor
var (
	EditorCursor = lipgloss.NewStyle().
			Reverse(true)

	EditorSelection = lipgloss.NewStyle().
			Background(BgTertiary)

	EditorLineNo = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// Modals and lists
var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ListItemNormal = lipgloss.NewStyle().
			Foreground(TextPrimary)

	ListItemFocused = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgTertiary)

	ListCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	MatchHighlight = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Toasts
var (
	ToastSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(Success).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Error).
			Padding(0, 1)
)

// Settings pane
var (
	SettingsHeader = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SettingsDisabled = lipgloss.NewStyle().
				Foreground(TextMuted).
				Strikethrough(true)
)
