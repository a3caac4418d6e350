package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/allbin/rtcsync"
	"github.com/allbin/rtcsync/internal/transport"
)

const (
	defaultReadTimeout = transport.DefaultReadTimeout
	defaultTimeout     = 5 * time.Second

	// minReadTimeout is the termios VTIME resolution.
	minReadTimeout = 100 * time.Millisecond
)

// Options are the settings shared by every command, merged from flags,
// RTCSYNC_* environment variables and the config file.
type Options struct {
	Port        string
	Baud        int
	NTPHost     string
	ReadTimeout time.Duration
	Timeout     time.Duration
	Driver      transport.Driver
	Verbose     bool
}

func loadOptions(v *viper.Viper) (Options, error) {
	baud, err := strconv.Atoi(strings.TrimSpace(v.GetString("baud")))
	if err != nil || baud <= 0 {
		return Options{}, &userError{
			msg: "Invalid baud rate specified. Must be a integer.",
			err: fmt.Errorf("%w: baud %q", rtcsync.ErrInvalidArgument, v.GetString("baud")),
		}
	}

	driver, err := transport.ParseDriver(v.GetString("driver"))
	if err != nil {
		return Options{}, err
	}

	o := Options{
		Port:        strings.TrimSpace(v.GetString("port")),
		Baud:        baud,
		NTPHost:     strings.TrimSpace(v.GetString("ntp")),
		ReadTimeout: v.GetDuration("read-timeout"),
		Timeout:     v.GetDuration("timeout"),
		Driver:      driver,
		Verbose:     v.GetBool("verbose"),
	}
	switch {
	case o.ReadTimeout <= 0:
		o.ReadTimeout = defaultReadTimeout
	case o.ReadTimeout < minReadTimeout:
		return Options{}, fmt.Errorf("%w: read timeout must be at least %s, got %s",
			rtcsync.ErrInvalidArgument, minReadTimeout, o.ReadTimeout)
	}
	if o.Timeout <= 0 {
		return Options{}, fmt.Errorf("%w: timeout must be positive, got %s", rtcsync.ErrInvalidArgument, o.Timeout)
	}
	return o, nil
}
