package shared

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dylan/matchdrag/config"
)

var (
	// Column headers
	HeaderStyle       lipgloss.Style
	HeaderActiveStyle lipgloss.Style

	// Prompt beside each response slot
	PromptStyle lipgloss.Style

	// Cells
	ChoiceStyle      lipgloss.Style
	AnsweredStyle    lipgloss.Style
	PlaceholderStyle lipgloss.Style
	DraggingStyle    lipgloss.Style
	DropZoneStyle    lipgloss.Style

	// Cursor highlight
	CursorStyle lipgloss.Style

	// Status bar
	StatusBarStyle lipgloss.Style

	// Help styles
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
	HelpTitleStyle   lipgloss.Style
	HelpGroupStyle   lipgloss.Style
	HelpOverlayStyle lipgloss.Style

	// Feedback
	FeedbackWarningStyle lipgloss.Style
	FeedbackErrorStyle   lipgloss.Style

	// Detail line under an error feedback
	ErrorStyle lipgloss.Style
)

// InitStyles configures all styles from a resolved theme.
func InitStyles(theme config.ThemeConfig) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Dim))

	HeaderActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	PromptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	ChoiceStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FG))

	AnsweredStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Answered)).
		Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Placeholder)).
		Italic(true)

	DraggingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dragging)).
		Bold(true)

	DropZoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	CursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CursorBG))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFG)).
		Background(lipgloss.Color(theme.StatusBarBG)).
		Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	HelpTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	HelpGroupStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent2))

	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Muted)).
		BorderBackground(lipgloss.Color(theme.BG)).
		Background(lipgloss.Color(theme.BG)).
		Padding(1, 2)

	FeedbackWarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackWarningFG)).
		Background(lipgloss.Color(theme.FeedbackWarningBG)).
		Padding(0, 1)

	FeedbackErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackErrorFG)).
		Background(lipgloss.Color(theme.FeedbackErrorBG)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))
}

// FeedbackStyle returns the style for a feedback level.
func FeedbackStyle(level FeedbackLevel) lipgloss.Style {
	switch level {
	case FeedbackError:
		return FeedbackErrorStyle
	case FeedbackWarning:
		return FeedbackWarningStyle
	default:
		return StatusBarStyle
	}
}

func init() {
	// Initialize with defaults so styles work even without explicit InitStyles call
	InitStyles(config.DefaultTheme())
}
