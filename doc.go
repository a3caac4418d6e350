// Package rtcsync reads and sets the clock of a binary epoch clock over a serial line.
//
// The device speaks a five byte protocol. The host sets the clock with an ASCII
// 't' followed by a little-endian uint32 epoch and the device answers '*'. The
// host asks for the clock with the ASCII bytes "gTIME" and the device answers
// with 't' and the stored epoch.
//
// The device keeps local wall-clock time, so the epoch on the wire is the host's
// local time expressed as if it were UTC. LocalEpoch and FromLocalEpoch convert
// between that representation and time.Time.
//
// # Basic Usage
//
//	port, err := serial.Open("/dev/ttyUSB0", serial.WithReadTimeout(time.Second))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	client := rtcsync.NewClient(port)
//	res, err := client.GetTime(ctx)
//	fmt.Println(res.Time, res.Drift)
//
//	_, err = client.SyncTime(ctx)
//
// # Error Handling
//
// Every failure is terminal for the call and matches one of the sentinel errors:
//
//	switch {
//	case errors.Is(err, rtcsync.ErrTimeout):
//	    // the device did not answer within the read timeout
//	case errors.Is(err, rtcsync.ErrProtocolMismatch):
//	    // the device answered, but not what the protocol expects
//	}
//
// The transport is any io.ReadWriter whose Read returns (0, nil) or io.EOF when
// its read timeout expires.
package rtcsync
