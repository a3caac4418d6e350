// Package transport opens the serial connection used to talk to the clock.
package transport

import (
	"fmt"
	"io"
	"time"

	"github.com/allbin/rtcsync"
)

// Driver selects the serial implementation.
type Driver string

const (
	// DriverNative uses the termios implementation in package serial (Linux only).
	DriverNative Driver = "native"
	// DriverPortable uses go.bug.st/serial and works on every supported OS.
	DriverPortable Driver = "portable"
)

// DefaultReadTimeout matches what the clock firmware expects between bytes of a reply.
const DefaultReadTimeout = time.Second

// Conn is an open serial connection. Read returns (0, nil) once the read
// timeout expires without data.
type Conn interface {
	io.ReadWriteCloser
	FlushInput() error
}

// Opener opens a connection. Open is the production Opener; tests swap in a
// function returning a MockTransport.
type Opener func(Config) (Conn, error)

var _ Opener = Open

// Config describes the connection to open.
type Config struct {
	Port        string
	BaudRate    int
	ReadTimeout time.Duration
	Driver      Driver
}

// ParseDriver validates a driver name from the command line or config file.
func ParseDriver(name string) (Driver, error) {
	switch Driver(name) {
	case "", DriverNative:
		return DriverNative, nil
	case DriverPortable:
		return DriverPortable, nil
	default:
		return "", fmt.Errorf("%w: unknown driver %q (valid: native, portable)", rtcsync.ErrInvalidArgument, name)
	}
}

// Open opens cfg.Port with the selected driver. Errors match the rtcsync
// failure classes: ErrInvalidArgument, ErrPrivilegeRequired or ErrConnectionFailed.
func Open(cfg Config) (Conn, error) {
	if cfg.Port == "" {
		return nil, fmt.Errorf("%w: serial port path is required", rtcsync.ErrInvalidArgument)
	}
	if cfg.BaudRate <= 0 {
		return nil, fmt.Errorf("%w: baud rate must be positive, got %d", rtcsync.ErrInvalidArgument, cfg.BaudRate)
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}

	switch cfg.Driver {
	case "", DriverNative:
		return openNative(cfg)
	case DriverPortable:
		return openPortable(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", rtcsync.ErrInvalidArgument, cfg.Driver)
	}
}
