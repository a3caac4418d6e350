/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allbin/rtcsync"
	"github.com/allbin/rtcsync/serial"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [port]",
	Short: "Display detailed information about a serial port",
	Long: `Display detailed information about a serial port including USB metadata.

Without an argument the port that would be picked for set and get is shown.

Examples:
  rtcsync info /dev/ttyUSB0
  rtcsync info`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", rtcsync.ErrInvalidArgument, err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		o := opts
		if len(args) == 1 {
			o.Port = args[0]
		}
		return runInfo(cmd, o)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, o Options) error {
	out := cmd.OutOrStdout()

	portPath := o.Port
	if portPath == "" {
		found, err := enumeratorFor(o.Driver).Enumerate()
		if err != nil {
			return fmt.Errorf("%w: %v", rtcsync.ErrNoPortFound, err)
		}
		p, ok := selectPort().Select(found)
		if !ok {
			return &userError{msg: "Cannot find default port and no port given!", err: rtcsync.ErrNoPortFound}
		}
		portPath = p.Name
	}

	info, err := serial.GetPortInfo(portPath)
	if err != nil {
		return &userError{
			msg: fmt.Sprintf("Error getting port info for %s", portPath),
			err: fmt.Errorf("%w: %v", rtcsync.ErrNoPortFound, err),
		}
	}

	fmt.Fprintf(out, "Port Information: %s\n\n", info.Path)
	fmt.Fprintf(out, "  Name:        %s\n", info.Name)
	fmt.Fprintf(out, "  Description: %s\n", info.Description)

	if !info.IsUSB() {
		return nil
	}

	fmt.Fprintln(out, "\nUSB Device Information:")
	for _, field := range []struct{ label, value string }{
		{"Vendor ID", info.VendorID},
		{"Product ID", info.ProductID},
		{"Serial", info.SerialNumber},
		{"Interface", info.InterfaceNumber},
		{"Bus", info.BusNumber},
		{"Device", info.DeviceNumber},
		{"Manufacturer", info.Manufacturer},
		{"Product", info.Product},
	} {
		if field.value != "" {
			fmt.Fprintf(out, "  %-13s %s\n", field.label+":", field.value)
		}
	}
	return nil
}
