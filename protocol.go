package rtcsync

import (
	"encoding/binary"
	"fmt"
)

const (
	// TimeHeader prefixes the set-time command and the get-time response.
	TimeHeader byte = 't'
	// Ack is the device reply to a successful set-time command.
	Ack byte = '*'
	// FrameLen is the length of every command and of the get-time response.
	FrameLen = 5

	payloadLen = 4
)

var getTimeCommand = [FrameLen]byte{'g', 'T', 'I', 'M', 'E'}

// EncodeEpoch packs an epoch as 4 little-endian bytes.
func EncodeEpoch(epoch uint32) [payloadLen]byte {
	var b [payloadLen]byte
	binary.LittleEndian.PutUint32(b[:], epoch)
	return b
}

// DecodeEpoch unpacks the first 4 bytes of b as a little-endian epoch.
func DecodeEpoch(b []byte) (uint32, error) {
	if len(b) < payloadLen {
		return 0, fmt.Errorf("%w: got %d payload bytes, want %d", ErrShortResponse, len(b), payloadLen)
	}
	return binary.LittleEndian.Uint32(b), nil
}

// SetTimeCommand returns the 5 byte frame that sets the device clock.
func SetTimeCommand(epoch uint32) []byte {
	payload := EncodeEpoch(epoch)
	cmd := make([]byte, 0, FrameLen)
	cmd = append(cmd, TimeHeader)
	return append(cmd, payload[:]...)
}

// GetTimeCommand returns the 5 byte frame that asks for the device clock.
func GetTimeCommand() []byte {
	cmd := getTimeCommand
	return cmd[:]
}

// ParseAck checks the reply to a set-time command. written is the number of
// command bytes the transport reported as sent.
func ParseAck(resp []byte, written int) error {
	if len(resp) == 0 {
		return fmt.Errorf("%w: no acknowledgement", ErrTimeout)
	}
	if written < 1 {
		return fmt.Errorf("%w: reply %q to a set-time command that was not sent", ErrProtocolMismatch, resp)
	}
	if len(resp) != 1 || resp[0] != Ack {
		return fmt.Errorf("%w: got %q, want %q", ErrProtocolMismatch, resp, Ack)
	}
	return nil
}

// ParseTimeResponse extracts the device epoch from a get-time reply.
func ParseTimeResponse(resp []byte) (uint32, error) {
	if len(resp) == 0 {
		return 0, fmt.Errorf("%w: no time response", ErrTimeout)
	}
	if resp[0] != TimeHeader {
		return 0, fmt.Errorf("%w: response starts with %q, want %q", ErrProtocolMismatch, resp[0], TimeHeader)
	}
	return DecodeEpoch(resp[1:])
}
