package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/allbin/rtcsync/internal/ports"
)

func TestActivityString(t *testing.T) {
	tests := []struct {
		a    Activity
		want string
	}{
		{ActivityIdle, "IDLE"},
		{ActivityReading, "READING"},
		{ActivitySyncing, "SYNCING"},
		{Activity(42), "IDLE"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Activity(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestStatusBarView(t *testing.T) {
	sb := NewStatusBar("/dev/ttyUSB0", ConnectionInfo{BaudRate: 115200, Driver: "native"})
	sb.SetWidth(100)
	sb.SetActivity(ActivitySyncing)

	view := sb.View("12:34:56")
	for _, want := range []string{"SYNCING", "/dev/ttyUSB0", "115200 baud native", "12:34:56", "●"} {
		if !strings.Contains(view, want) {
			t.Errorf("status bar missing %q:\n%s", want, view)
		}
	}

	sb.SetError(errors.New("timeout"))
	if view := sb.View("12:34:57"); !strings.Contains(view, "✗") {
		t.Errorf("status bar should show the error indicator:\n%s", view)
	}
}

func TestPortTable(t *testing.T) {
	view := PortTable([]ports.PortInfo{
		{Name: "/dev/ttyUSB0", Description: "FT232R USB UART", VendorID: "0403", ProductID: "6001", USB: true},
		{Name: "/dev/ttyS0", Description: "Standard Serial Port"},
	})

	for _, want := range []string{"Port", "Hardware ID", "/dev/ttyUSB0", "USB VID:PID=0403:6001", "/dev/ttyS0", "n/a"} {
		if !strings.Contains(view, want) {
			t.Errorf("table missing %q:\n%s", want, view)
		}
	}
}
