package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/allbin/rtcsync"
	"github.com/allbin/rtcsync/internal/ports"
	"github.com/allbin/rtcsync/internal/transport"
)

// Seams for tests.
var (
	openTransport transport.Opener = transport.Open
	enumeratorFor                  = defaultEnumerator
	selectPort                     = ports.DefaultSelector
)

func defaultEnumerator(d transport.Driver) ports.Enumerator {
	if d == transport.DriverPortable {
		return ports.DetailedEnumerator{}
	}
	return ports.DefaultEnumerator()
}

// session is an open connection to the clock.
type session struct {
	port   string
	conn   transport.Conn
	client *rtcsync.Client
}

// openSession resolves the port, opens it and prints the same progress lines
// for every command. The caller must Close the session.
func openSession(cmd *cobra.Command, o Options, now func() time.Time) (*session, error) {
	out := cmd.OutOrStdout()

	if o.Port != "" {
		fmt.Fprintf(out, "Port specified: %s\n", o.Port)
	}

	res, err := ports.Resolve(o.Port, enumeratorFor(o.Driver), selectPort())
	if err != nil {
		return nil, &userError{msg: "Cannot find default port and no port given!", err: err}
	}
	if res.Guessed {
		fmt.Fprintf(out, "No port specified, using best guess serial port:\n%s, %s\n\n",
			res.Port.Description, res.Port.HardwareID())
	}

	log.WithField("port", res.Port.Name).Debug("opening serial port")
	conn, err := openTransport(transport.Config{
		Port:        res.Port.Name,
		BaudRate:    o.Baud,
		ReadTimeout: o.ReadTimeout,
		Driver:      o.Driver,
	})
	if err != nil {
		return nil, openError(res.Port.Name, err)
	}
	fmt.Fprintf(out, "Connected to %s @ %d baud\n", res.Port.Name, o.Baud)

	client := rtcsync.NewClient(conn,
		rtcsync.WithNow(now),
		rtcsync.WithLogger(log.WithField("port", res.Port.Name)),
	)
	return &session{port: res.Port.Name, conn: conn, client: client}, nil
}

func (s *session) Close() {
	if err := s.conn.Close(); err != nil {
		log.WithError(err).Warn("closing serial port")
	}
}

func openError(port string, err error) error {
	switch {
	case errors.Is(err, rtcsync.ErrPrivilegeRequired):
		return &userError{
			msg: fmt.Sprintf("Permission denied opening %s.\nPlease re-run with sudo or add your user to the dialout group.", port),
			err: err,
		}
	case errors.Is(err, rtcsync.ErrInvalidArgument):
		return err
	default:
		return &userError{
			msg: "Unable to connect to the given serial port!\nTry the --list option to list available ports.",
			err: err,
		}
	}
}
