package cmd

import (
	"errors"

	"github.com/allbin/rtcsync"
)

// Process exit codes, one per failure class.
const (
	exitOK = iota
	exitError
	exitInvalidArgument
	exitNoPortFound
	exitConnectionFailed
	exitProtocolMismatch
	exitTimeout
	exitPrivilegeRequired
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, rtcsync.ErrInvalidArgument), errors.Is(err, rtcsync.ErrEpochRange):
		return exitInvalidArgument
	case errors.Is(err, rtcsync.ErrNoPortFound):
		return exitNoPortFound
	case errors.Is(err, rtcsync.ErrPrivilegeRequired):
		return exitPrivilegeRequired
	case errors.Is(err, rtcsync.ErrConnectionFailed):
		return exitConnectionFailed
	case errors.Is(err, rtcsync.ErrProtocolMismatch):
		return exitProtocolMismatch
	case errors.Is(err, rtcsync.ErrTimeout):
		return exitTimeout
	default:
		return exitError
	}
}

// userError pairs the message shown to the user with the classified cause.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg + ": " + e.err.Error() }

func (e *userError) Unwrap() error { return e.err }

// errorText is what Execute prints for err.
func errorText(err error) string {
	var ue *userError
	if errors.As(err, &ue) {
		return ue.msg + "\n" + ue.err.Error()
	}
	return "Error: " + err.Error()
}
