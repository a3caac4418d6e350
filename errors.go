package rtcsync

import (
	"errors"
	"fmt"
)

// Failure classes. Callers match them with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNoPortFound       = errors.New("no serial port found")
	ErrConnectionFailed  = errors.New("unable to connect to the serial port")
	ErrPrivilegeRequired = errors.New("insufficient privileges to access the serial port")
	ErrProtocolMismatch  = errors.New("unexpected response from device")
	ErrTimeout           = errors.New("timed out waiting for device")
	ErrEpochRange        = errors.New("time does not fit in a 32-bit epoch")

	// ErrShortResponse is a ProtocolMismatch where the time header arrived without a full payload.
	ErrShortResponse = fmt.Errorf("%w: short time response", ErrProtocolMismatch)

	// ErrWriteTimeout is a Timeout hit while sending a command, before any reply was awaited.
	ErrWriteTimeout = fmt.Errorf("%w: sending command", ErrTimeout)
)
