package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/allbin/rtcsync/internal/ports"
	"github.com/allbin/rtcsync/internal/tui/colors"
)

const (
	columnKeyPort        = "port"
	columnKeyDescription = "description"
	columnKeyHardwareID  = "hwid"
)

// PortTable renders enumerated ports as a static table.
func PortTable(list []ports.PortInfo) string {
	columns := []table.Column{
		table.NewColumn(columnKeyPort, "Port", 16),
		table.NewColumn(columnKeyDescription, "Description", 30),
		table.NewColumn(columnKeyHardwareID, "Hardware ID", 38),
	}

	rows := make([]table.Row, 0, len(list))
	for _, p := range list {
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyPort:        p.Name,
			columnKeyDescription: p.Description,
			columnKeyHardwareID:  p.HardwareID(),
		}))
	}

	return table.New(columns).
		WithRows(rows).
		BorderRounded().
		HeaderStyle(lipgloss.NewStyle().Bold(true).Foreground(colors.Mauve)).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(colors.Text).
			BorderForeground(colors.Surface1).
			Align(lipgloss.Left)).
		View()
}
