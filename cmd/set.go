/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/allbin/rtcsync"
	"github.com/allbin/rtcsync/internal/reference"
	"github.com/allbin/rtcsync/internal/tui/styles"
)

// setLayout is the date format of the "Setting time to" line.
const setLayout = `01\02\2006 15:04:05`

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the device clock to the host's local time",
	Long: `Set the device clock to the host's local time, or to NTP time with --ntp.

The clock must be in Serial Set Mode and acknowledges the new time with '*'.

Examples:
  rtcsync set
  rtcsync set -p /dev/ttyUSB0 -b 57600
  rtcsync set --ntp pool.ntp.org`,
	Args: noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSet(cmd, opts)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, o Options) error {
	out := cmd.OutOrStdout()

	now := reference.System
	if o.NTPHost != "" {
		clock, offset, err := reference.NTP(o.NTPHost, o.Timeout)
		if err != nil {
			return &userError{msg: fmt.Sprintf("Unable to get the time from %s!", o.NTPHost), err: err}
		}
		log.WithField("offset", offset).Debug("ntp offset")
		fmt.Fprintf(out, "Using NTP time from %s (host clock offset %s)\n", o.NTPHost, offset.Round(time.Millisecond))
		now = clock
	}

	s, err := openSession(cmd, o, now)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.Timeout)
	defer cancel()

	target := now().Truncate(time.Second)
	fmt.Fprintf(out, "Setting time to %s\n", target.Format(setLayout))

	res, err := s.client.SetTime(ctx, target)
	if err != nil {
		return setError(err)
	}
	log.WithField("written", res.Written).Debug("set-time frame sent")

	fmt.Fprintln(out, styles.SuccessStyle.Render("Success syncing time!"))
	return nil
}

// setError picks the message by failure class. Only a timeout while sending
// counts as a send timeout; a missing or wrong reply means the clock is not
// in Serial Set Mode.
func setError(err error) error {
	switch {
	case errors.Is(err, rtcsync.ErrEpochRange):
		return err
	case errors.Is(err, rtcsync.ErrWriteTimeout):
		return &userError{msg: "Timeout sending sync data! Please check your serial connection", err: err}
	case errors.Is(err, rtcsync.ErrConnectionFailed):
		return &userError{msg: "Lost the serial connection while syncing! Please check your serial connection", err: err}
	default:
		return &userError{msg: "There was an error syncing the time! Make sure your clock is in Serial Set Mode", err: err}
	}
}
