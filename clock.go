package rtcsync

import (
	"fmt"
	"math"
	"time"
)

// LocalEpoch returns t's wall clock, in t's location, as seconds since the epoch
// as though that wall clock were UTC. This is the value the device stores.
func LocalEpoch(t time.Time) (uint32, error) {
	_, offset := t.Zone()
	v := t.Unix() + int64(offset)
	if v < 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s", ErrEpochRange, t.Format(time.RFC3339))
	}
	return uint32(v), nil
}

// FromLocalEpoch interprets a device epoch as a wall clock in loc.
// A nil loc means time.Local.
func FromLocalEpoch(v uint32, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	wall := time.Unix(int64(v), 0).UTC()
	return time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), 0, loc)
}
