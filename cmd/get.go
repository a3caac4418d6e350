/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allbin/rtcsync/internal/reference"
	"github.com/allbin/rtcsync/internal/tui/models"
	"github.com/allbin/rtcsync/internal/tui/styles"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Read the device clock",
	Long: `Read the device clock and print it with the drift against the host.

Examples:
  rtcsync get
  rtcsync get -p /dev/ttyACM0`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, opts)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, o Options) error {
	out := cmd.OutOrStdout()

	s, err := openSession(cmd, o, reference.System)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.Timeout)
	defer cancel()

	fmt.Fprintln(out, "Getting time...")
	res, err := s.client.GetTime(ctx)
	if err != nil {
		return &userError{msg: "Error retrieving time!", err: err}
	}

	fmt.Fprintln(out, "Current clock time:")
	fmt.Fprintf(out, "unix epoch: %d\n", res.Unix())
	fmt.Fprintln(out, styles.ValueStyle.Render(res.Time.Format(models.TimeLayout)))
	fmt.Fprintf(out, "Drift (host - device): %s\n", styles.DriftStyle(res.Drift).Render(res.Drift.String()))
	return nil
}
