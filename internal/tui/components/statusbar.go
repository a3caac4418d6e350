package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/rtcsync/internal/tui/colors"
)

// Activity is what the monitor is doing with the device.
type Activity int

const (
	ActivityIdle Activity = iota
	ActivityReading
	ActivitySyncing
)

func (a Activity) String() string {
	switch a {
	case ActivityReading:
		return "READING"
	case ActivitySyncing:
		return "SYNCING"
	default:
		return "IDLE"
	}
}

// ConnectionInfo is shown on the right of the status bar.
type ConnectionInfo struct {
	BaudRate int
	Driver   string
}

type StatusBar struct {
	portPath       string
	activity       Activity
	err            error
	width          int
	connectionInfo ConnectionInfo
}

func NewStatusBar(portPath string, info ConnectionInfo) *StatusBar {
	return &StatusBar{portPath: portPath, connectionInfo: info}
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetActivity(a Activity) {
	sb.activity = a
}

// SetError marks the last exchange as failed; nil clears it.
func (sb *StatusBar) SetError(err error) {
	sb.err = err
}

// View renders the bar as "MODE port ● | 115200 baud native | 15:04:05".
func (sb *StatusBar) View(timestamp string) string {
	terminalWidth := sb.width
	if terminalWidth <= 0 {
		terminalWidth = 80
	}

	badgeColor := colors.Blue
	switch sb.activity {
	case ActivityReading:
		badgeColor = colors.Mauve
	case ActivitySyncing:
		badgeColor = colors.Yellow
	}
	mode := lipgloss.NewStyle().
		Foreground(colors.Base).
		Background(badgeColor).
		Bold(true).
		Padding(0, 1).
		Render(sb.activity.String())

	port := lipgloss.NewStyle().
		Foreground(colors.Mauve).
		Bold(true).
		Padding(0, 1).
		Render(sb.portPath)

	indicator := lipgloss.NewStyle().Foreground(colors.Green).Render("●")
	if sb.err != nil {
		indicator = lipgloss.NewStyle().Foreground(colors.Red).Render("✗")
	}

	divider := lipgloss.NewStyle().
		Foreground(colors.Surface1).
		Padding(0, 1).
		Render("│")

	details := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1).
		Render(fmt.Sprintf("%d baud %s", sb.connectionInfo.BaudRate, sb.connectionInfo.Driver))

	clock := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1).
		Render(timestamp)

	leftSide := lipgloss.JoinHorizontal(lipgloss.Left, mode, port, indicator, divider)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Left, details, divider, clock)

	spacerWidth := terminalWidth - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	return lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(terminalWidth).
		Render(lipgloss.JoinHorizontal(lipgloss.Left, leftSide, spacer, rightSide))
}
