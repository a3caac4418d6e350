// Package reference provides the time the device clock is set to.
package reference

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"

	"github.com/allbin/rtcsync"
)

// DefaultTimeout bounds a single NTP query.
const DefaultTimeout = 2 * time.Second

// query is swapped out in tests.
var query = ntp.QueryWithOptions

// Clock is a time source.
type Clock func() time.Time

// System is the host clock.
var System Clock = time.Now

// NTP queries host once and returns the host clock corrected by the measured
// offset. A failed or invalid reply is reported as rtcsync.ErrConnectionFailed;
// there is no fallback to the uncorrected host clock.
func NTP(host string, timeout time.Duration) (Clock, time.Duration, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	resp, err := query(host, ntp.QueryOptions{Version: 4, Timeout: timeout})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ntp query %s: %v", rtcsync.ErrConnectionFailed, host, err)
	}
	if err := resp.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: ntp reply from %s rejected: %v", rtcsync.ErrConnectionFailed, host, err)
	}

	offset := resp.ClockOffset
	return func() time.Time { return time.Now().Add(offset) }, offset, nil
}
