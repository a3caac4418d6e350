package rtcsync

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Client runs the set-time and get-time exchanges over a serial connection.
// Each call sends one command and reads one reply; a Client is not safe for
// concurrent use.
type Client struct {
	rw  io.ReadWriter
	loc *time.Location
	now func() time.Time
	log logrus.FieldLogger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLocation sets the zone the device clock is kept in. Defaults to time.Local.
func WithLocation(loc *time.Location) ClientOption {
	return func(c *Client) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithNow sets the reference clock used by SyncTime and for drift. Defaults to time.Now.
func WithNow(now func() time.Time) ClientOption {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used for frame tracing.
func WithLogger(log logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient returns a Client talking over rw.
func NewClient(rw io.ReadWriter, opts ...ClientOption) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		rw:  rw,
		loc: time.Local,
		now: time.Now,
		log: discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetResult describes a completed set-time exchange.
type SetResult struct {
	Time    time.Time // time written, in the client location
	Epoch   uint32    // device epoch sent on the wire
	Written int       // command bytes reported sent
}

// GetResult describes a completed get-time exchange.
type GetResult struct {
	Epoch uint32        // raw device epoch
	Time  time.Time     // device clock in the client location
	Host  time.Time     // reference time when the reply was parsed
	Drift time.Duration // Host - Time, truncated to seconds
}

// Unix returns the device time as a real Unix timestamp.
func (r GetResult) Unix() int64 {
	return r.Time.Unix()
}

// SyncTime sets the device clock to the reference clock.
func (c *Client) SyncTime(ctx context.Context) (SetResult, error) {
	return c.SetTime(ctx, c.now())
}

// SetTime sets the device clock to t and waits for the acknowledgement.
func (c *Client) SetTime(ctx context.Context, t time.Time) (SetResult, error) {
	t = t.In(c.loc).Truncate(time.Second)
	epoch, err := LocalEpoch(t)
	if err != nil {
		return SetResult{}, err
	}
	res := SetResult{Time: t, Epoch: epoch}

	c.flush()

	n, err := c.write(ctx, SetTimeCommand(epoch))
	res.Written = n
	if err != nil {
		return res, err
	}

	resp, err := c.read(ctx, 1)
	if err != nil {
		return res, err
	}
	if err := ParseAck(resp, n); err != nil {
		return res, err
	}

	c.log.WithField("epoch", epoch).Debug("device clock set")
	return res, nil
}

// GetTime asks the device for its clock.
func (c *Client) GetTime(ctx context.Context) (GetResult, error) {
	c.flush()

	if _, err := c.write(ctx, GetTimeCommand()); err != nil {
		return GetResult{}, err
	}

	resp, err := c.read(ctx, FrameLen)
	if err != nil {
		return GetResult{}, err
	}
	epoch, err := ParseTimeResponse(resp)
	if err != nil {
		return GetResult{}, err
	}

	device := FromLocalEpoch(epoch, c.loc)
	host := c.now().In(c.loc)
	return GetResult{
		Epoch: epoch,
		Time:  device,
		Host:  host,
		Drift: host.Sub(device).Truncate(time.Second),
	}, nil
}

// Optional transport capabilities. The native serial port has all of them.
type (
	inputFlusher  interface{ FlushInput() error }
	outputFlusher interface{ FlushOutput() error }
	drainer       interface{ Drain() error }
	contextWriter interface {
		WriteContext(ctx context.Context, p []byte) (int, error)
	}
	contextReader interface {
		ReadContext(ctx context.Context, p []byte) (int, error)
	}
)

// flush drops stale bytes in both directions, such as a boot banner or the
// tail of an abandoned command, when the transport allows it.
func (c *Client) flush() {
	if f, ok := c.rw.(outputFlusher); ok {
		if err := f.FlushOutput(); err != nil {
			c.log.WithError(err).Debug("flush output failed")
		}
	}
	if f, ok := c.rw.(inputFlusher); ok {
		if err := f.FlushInput(); err != nil {
			c.log.WithError(err).Debug("flush input failed")
		}
	}
}

// write sends frame and, when the transport can drain, waits until it has
// left the UART so the reply timeout starts after transmission.
func (c *Client) write(ctx context.Context, frame []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteTimeout, err)
	}

	c.log.WithField("tx", hex.EncodeToString(frame)).Debug("sending frame")
	var (
		n   int
		err error
	)
	if w, ok := c.rw.(contextWriter); ok {
		n, err = w.WriteContext(ctx, frame)
	} else {
		n, err = c.rw.Write(frame)
	}
	if err != nil {
		return n, writeError(ioError("write", err))
	}

	if d, ok := c.rw.(drainer); ok {
		if err := d.Drain(); err != nil {
			return n, writeError(ioError("drain", err))
		}
	}
	return n, nil
}

// read reads up to n bytes. It stops early when a read returns no data, which
// is how the transport reports an expired read timeout.
func (c *Client) read(ctx context.Context, n int) ([]byte, error) {
	buf := make([]byte, n)
	got := 0
	for got < n {
		if err := ctx.Err(); err != nil {
			return buf[:got], fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		m, err := c.readOnce(ctx, buf[got:])
		got += m
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return buf[:got], ioError("read", err)
		}
		if m == 0 {
			break
		}
	}

	c.log.WithField("rx", hex.EncodeToString(buf[:got])).Debug("received frame")
	return buf[:got], nil
}

func (c *Client) readOnce(ctx context.Context, p []byte) (int, error) {
	if r, ok := c.rw.(contextReader); ok {
		return r.ReadContext(ctx, p)
	}
	return c.rw.Read(p)
}

func ioError(op string, err error) error {
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %v", ErrTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrConnectionFailed, op, err)
}

// writeError narrows a timeout during sending to ErrWriteTimeout.
func writeError(err error) error {
	if errors.Is(err, ErrTimeout) {
		return fmt.Errorf("%w: %v", ErrWriteTimeout, err)
	}
	return err
}
