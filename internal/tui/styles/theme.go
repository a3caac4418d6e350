package styles

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/rtcsync/internal/tui/colors"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colors.Text).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay0)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colors.Blue)

	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Surface1).
			Padding(0, 1).
			MarginTop(1)
)

// Drift above these bounds is shown as a warning or an error.
const (
	DriftWarn  = 2 * time.Second
	DriftError = 60 * time.Second
)

// DriftStyle colors a drift value by magnitude.
func DriftStyle(d time.Duration) lipgloss.Style {
	if d < 0 {
		d = -d
	}
	switch {
	case d >= DriftError:
		return ErrorStyle
	case d >= DriftWarn:
		return WarningStyle
	default:
		return SuccessStyle
	}
}
