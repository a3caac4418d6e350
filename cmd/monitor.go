/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/allbin/rtcsync/internal/reference"
	"github.com/allbin/rtcsync/internal/tui/models"
)

var monitorInterval time.Duration

// monitorCmd represents the monitor command
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch the device clock drift in real time",
	Long: `Open the port once and read the device clock every --interval, showing
device time, host time and drift.

Keys: s syncs the clock from the host, r reads immediately, ? toggles help,
q or ctrl+c quits. Errors are shown and polling continues.

Examples:
  rtcsync monitor
  rtcsync monitor -p /dev/ttyUSB0 --interval 10s`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMonitor(cmd, opts, monitorInterval)
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().DurationVarP(&monitorInterval, "interval", "i", 2*time.Second,
		"Time between clock reads")
}

func runMonitor(cmd *cobra.Command, o Options, interval time.Duration) error {
	now := reference.System
	if o.NTPHost != "" {
		clock, _, err := reference.NTP(o.NTPHost, o.Timeout)
		if err != nil {
			return err
		}
		now = clock
	}

	s, err := openSession(cmd, o, now)
	if err != nil {
		return err
	}
	defer s.Close()

	m := models.NewMonitor(cmd.Context(), s.client, models.MonitorConfig{
		PortPath: s.port,
		BaudRate: o.Baud,
		Driver:   string(o.Driver),
		Interval: interval,
		Timeout:  o.Timeout,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
