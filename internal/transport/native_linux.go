//go:build linux

package transport

import (
	"errors"
	"fmt"
	"time"

	"github.com/allbin/rtcsync"
	"github.com/allbin/rtcsync/serial"
)

func openNative(cfg Config) (Conn, error) {
	port, err := serial.Open(cfg.Port,
		serial.WithBaudRate(cfg.BaudRate),
		serial.WithDataBits(8),
		serial.WithStopBits(1),
		serial.WithParity(serial.ParityNone),
		serial.WithReadTimeout(vtimeTimeout(cfg.ReadTimeout)),
	)
	if err != nil {
		return nil, classifyNative(err)
	}
	return port, nil
}

// vtimeTimeout rounds d to the 100ms resolution of termios VTIME. Anything
// shorter rounds up to 100ms, since VTIME=0 would make reads return at once.
func vtimeTimeout(d time.Duration) time.Duration {
	d = d.Round(100 * time.Millisecond)
	if d < 100*time.Millisecond {
		return 100 * time.Millisecond
	}
	return d
}

func classifyNative(err error) error {
	switch {
	case errors.Is(err, serial.ErrInvalidBaudRate), errors.Is(err, serial.ErrInvalidConfig):
		return fmt.Errorf("%w: %v", rtcsync.ErrInvalidArgument, err)
	case errors.Is(err, serial.ErrPermissionDenied):
		return fmt.Errorf("%w: %v", rtcsync.ErrPrivilegeRequired, err)
	default:
		return fmt.Errorf("%w: %v", rtcsync.ErrConnectionFailed, err)
	}
}
