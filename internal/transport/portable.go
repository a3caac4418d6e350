package transport

import (
	"errors"
	"fmt"

	"go.bug.st/serial"

	"github.com/allbin/rtcsync"
)

// portableConn adapts a go.bug.st/serial port to Conn.
type portableConn struct {
	port serial.Port
	name string
}

func openPortable(cfg Config) (Conn, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, classifyPortable(cfg.Port, err)
	}

	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("%w: failed to set read timeout: %v", rtcsync.ErrConnectionFailed, err)
	}

	return &portableConn{port: port, name: cfg.Port}, nil
}

func (c *portableConn) Read(p []byte) (int, error) {
	return c.port.Read(p)
}

func (c *portableConn) Write(p []byte) (int, error) {
	return c.port.Write(p)
}

func (c *portableConn) Close() error {
	return c.port.Close()
}

func (c *portableConn) FlushInput() error {
	return c.port.ResetInputBuffer()
}

func (c *portableConn) FlushOutput() error {
	return c.port.ResetOutputBuffer()
}

func (c *portableConn) Drain() error {
	return c.port.Drain()
}

func (c *portableConn) String() string {
	return c.name
}

func classifyPortable(name string, err error) error {
	var portErr *serial.PortError
	if errors.As(err, &portErr) {
		switch portErr.Code() {
		case serial.PermissionDenied:
			return fmt.Errorf("%w: failed to open %s: %v", rtcsync.ErrPrivilegeRequired, name, err)
		case serial.InvalidSpeed, serial.InvalidDataBits, serial.InvalidParity, serial.InvalidStopBits:
			return fmt.Errorf("%w: failed to open %s: %v", rtcsync.ErrInvalidArgument, name, err)
		}
	}
	return fmt.Errorf("%w: failed to open %s: %v", rtcsync.ErrConnectionFailed, name, err)
}
