/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allbin/rtcsync"
	"github.com/allbin/rtcsync/internal/tui/components"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	Long: `List the serial ports the clock could be attached to.

On Linux the native driver scans /dev for communication-capable devices
(ttyUSB*, ttyACM*, ttyS*, ttyAMA* and other platform-specific ports) and reads
USB metadata from sysfs. The portable driver asks the operating system's
device registry instead.

The last port listed is the best guess used when no --port is given
(the first one on Windows).`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _ := cmd.Flags().GetBool("table")
		return runList(cmd, opts, table)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

func runList(cmd *cobra.Command, o Options, table bool) error {
	out := cmd.OutOrStdout()

	found, err := enumeratorFor(o.Driver).Enumerate()
	if err != nil {
		return &userError{msg: "No available serial ports found!", err: fmt.Errorf("%w: %v", rtcsync.ErrNoPortFound, err)}
	}
	if len(found) == 0 {
		return &userError{msg: "No available serial ports found!", err: rtcsync.ErrNoPortFound}
	}

	fmt.Fprintln(out, "Available serial ports:")
	if table {
		fmt.Fprintln(out, components.PortTable(found))
		return nil
	}
	for _, p := range found {
		fmt.Fprintln(out, p.Name)
	}
	return nil
}
