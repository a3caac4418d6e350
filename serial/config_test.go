//go:build linux

package serial

import (
	"testing"
	"time"
)

func TestWithReadTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		wantErr bool
		vtime   uint8
	}{
		{"0ms (non-blocking)", 0, false, 0},
		{"100ms (valid)", 100 * time.Millisecond, false, 1},
		{"1s (default)", time.Second, false, 10},
		{"2500ms (valid)", 2500 * time.Millisecond, false, 25},
		{"25500ms (max)", 25500 * time.Millisecond, false, 255},
		{"150ms (not multiple of 100ms)", 150 * time.Millisecond, true, 0},
		{"250ns (not multiple of 100ms)", 250 * time.Nanosecond, true, 0},
		{"25600ms (exceeds max)", 25600 * time.Millisecond, true, 0},
		{"-100ms (negative)", -100 * time.Millisecond, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := WithReadTimeout(tt.timeout)(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithReadTimeout(%v) error = %v, wantErr %v", tt.timeout, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if config.ReadTimeout != tt.timeout {
				t.Errorf("ReadTimeout = %v, want %v", config.ReadTimeout, tt.timeout)
			}
			if got := config.vtime(); got != tt.vtime {
				t.Errorf("vtime() = %d, want %d", got, tt.vtime)
			}
		})
	}
}
