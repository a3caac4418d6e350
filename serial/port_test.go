//go:build linux

package serial

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BaudRate != 115200 {
		t.Errorf("Expected BaudRate 115200, got %d", config.BaudRate)
	}
	if config.DataBits != 8 {
		t.Errorf("Expected DataBits 8, got %d", config.DataBits)
	}
	if config.StopBits != 1 {
		t.Errorf("Expected StopBits 1, got %d", config.StopBits)
	}
	if config.Parity != ParityNone {
		t.Errorf("Expected Parity None, got %v", config.Parity)
	}
	if config.ReadTimeout != time.Second {
		t.Errorf("Expected ReadTimeout 1s, got %v", config.ReadTimeout)
	}
}

func TestFunctionalOptions(t *testing.T) {
	config := DefaultConfig()

	if err := WithBaudRate(9600)(&config); err != nil {
		t.Errorf("WithBaudRate failed: %v", err)
	}
	if config.BaudRate != 9600 {
		t.Errorf("Expected BaudRate 9600, got %d", config.BaudRate)
	}

	if err := WithDataBits(7)(&config); err != nil {
		t.Errorf("WithDataBits failed: %v", err)
	}
	if config.DataBits != 7 {
		t.Errorf("Expected DataBits 7, got %d", config.DataBits)
	}

	if err := WithStopBits(2)(&config); err != nil {
		t.Errorf("WithStopBits failed: %v", err)
	}
	if config.StopBits != 2 {
		t.Errorf("Expected StopBits 2, got %d", config.StopBits)
	}

	if err := WithParity(ParityEven)(&config); err != nil {
		t.Errorf("WithParity failed: %v", err)
	}
	if config.Parity != ParityEven {
		t.Errorf("Expected Parity Even, got %v", config.Parity)
	}
}

func TestInvalidBaudRate(t *testing.T) {
	config := DefaultConfig()
	err := WithBaudRate(123456)(&config)
	if err != ErrInvalidBaudRate {
		t.Errorf("Expected ErrInvalidBaudRate, got %v", err)
	}
	if config.BaudRate != 115200 {
		t.Errorf("BaudRate changed to %d on invalid input", config.BaudRate)
	}
}

func TestInvalidDataBits(t *testing.T) {
	config := DefaultConfig()
	if err := WithDataBits(9)(&config); err != ErrInvalidConfig {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestInvalidStopBits(t *testing.T) {
	config := DefaultConfig()
	if err := WithStopBits(3)(&config); err != ErrInvalidConfig {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestGetBaudRate(t *testing.T) {
	tests := []struct {
		input    int
		hasError bool
	}{
		{115200, false},
		{9600, false},
		{57600, false},
		{0, true},
		{-9600, true},
		{123456, true},
	}

	for _, test := range tests {
		result, err := getBaudRate(test.input)
		if test.hasError {
			if err != ErrInvalidBaudRate {
				t.Errorf("Expected ErrInvalidBaudRate for %d, got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for baud rate %d: %v", test.input, err)
		}
		if result == 0 {
			t.Errorf("Got zero result for valid baud rate %d", test.input)
		}
	}
}

func TestOpenNonExistentDevice(t *testing.T) {
	_, err := Open("/dev/nonexistent")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
}

func TestOpenRejectsInvalidOption(t *testing.T) {
	_, err := Open("/dev/nonexistent", WithBaudRate(42))
	if err != ErrInvalidBaudRate {
		t.Errorf("Expected ErrInvalidBaudRate before touching the device, got %v", err)
	}
}

func TestClassifyOpenError(t *testing.T) {
	tests := []struct {
		errno unix.Errno
		want  error
	}{
		{unix.ENOENT, ErrDeviceNotFound},
		{unix.ENXIO, ErrDeviceNotFound},
		{unix.EACCES, ErrPermissionDenied},
		{unix.EPERM, ErrPermissionDenied},
		{unix.EBUSY, ErrDeviceInUse},
	}

	for _, tt := range tests {
		err := classifyOpenError("/dev/ttyUSB0", tt.errno)
		if !errors.Is(err, tt.want) {
			t.Errorf("classifyOpenError(%v) = %v, want %v", tt.errno, err, tt.want)
		}
	}

	err := classifyOpenError("/dev/ttyUSB0", unix.EIO)
	if !errors.Is(err, unix.EIO) {
		t.Errorf("unclassified errno should be preserved, got %v", err)
	}
}

func TestClosedPort(t *testing.T) {
	p := &port{fd: -1, closed: true}

	if _, err := p.Read(make([]byte, 1)); err != ErrPortClosed {
		t.Errorf("Read on closed port: got %v, want ErrPortClosed", err)
	}
	if _, err := p.Write([]byte("t")); err != ErrPortClosed {
		t.Errorf("Write on closed port: got %v, want ErrPortClosed", err)
	}
	if err := p.FlushInput(); err != ErrPortClosed {
		t.Errorf("FlushInput on closed port: got %v, want ErrPortClosed", err)
	}
	if err := p.FlushOutput(); err != ErrPortClosed {
		t.Errorf("FlushOutput on closed port: got %v, want ErrPortClosed", err)
	}
	if err := p.Drain(); err != ErrPortClosed {
		t.Errorf("Drain on closed port: got %v, want ErrPortClosed", err)
	}
	if err := p.Close(); err != ErrPortClosed {
		t.Errorf("Close on closed port: got %v, want ErrPortClosed", err)
	}
}

func TestContextAlreadyDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &port{fd: -1}

	if _, err := p.ReadContext(ctx, make([]byte, 10)); err != context.Canceled {
		t.Errorf("ReadContext: got %v, want context.Canceled", err)
	}
	if _, err := p.WriteContext(ctx, []byte("gTIME")); err != context.Canceled {
		t.Errorf("WriteContext: got %v, want context.Canceled", err)
	}
}
