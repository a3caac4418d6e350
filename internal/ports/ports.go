// Package ports finds the serial port to talk to when none is given.
package ports

import (
	"fmt"
	"strings"

	"github.com/allbin/rtcsync"
)

// PortInfo describes an attached serial device.
type PortInfo struct {
	Name         string // device path, e.g. /dev/ttyUSB0 or COM3
	Description  string
	VendorID     string
	ProductID    string
	SerialNumber string
	USB          bool
}

// HardwareID formats the USB identifiers as "USB VID:PID=0403:6001 SER=A12345".
// Ports without USB metadata report "n/a".
func (p PortInfo) HardwareID() string {
	if !p.USB {
		return "n/a"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "USB VID:PID=%s:%s", strings.ToUpper(p.VendorID), strings.ToUpper(p.ProductID))
	if p.SerialNumber != "" {
		fmt.Fprintf(&b, " SER=%s", p.SerialNumber)
	}
	return b.String()
}

// Enumerator lists the serial ports available on the system.
type Enumerator interface {
	Enumerate() ([]PortInfo, error)
}

// EnumeratorFunc adapts a function to Enumerator.
type EnumeratorFunc func() ([]PortInfo, error)

func (f EnumeratorFunc) Enumerate() ([]PortInfo, error) { return f() }

// StaticEnumerator returns a fixed list.
type StaticEnumerator []PortInfo

func (s StaticEnumerator) Enumerate() ([]PortInfo, error) {
	return append([]PortInfo(nil), s...), nil
}

// Selector picks the best guess from an enumerated list.
type Selector interface {
	Select(ports []PortInfo) (PortInfo, bool)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func([]PortInfo) (PortInfo, bool)

func (f SelectorFunc) Select(ports []PortInfo) (PortInfo, bool) { return f(ports) }

// Resolution is the outcome of Resolve.
type Resolution struct {
	Port    PortInfo
	Guessed bool // true when Port was picked from the enumeration
}

// Resolve returns the port to connect to. An explicit port is used verbatim and
// nothing is enumerated. Otherwise sel picks from what e reports, and an empty
// list yields rtcsync.ErrNoPortFound.
func Resolve(explicit string, e Enumerator, sel Selector) (Resolution, error) {
	if explicit != "" {
		return Resolution{Port: PortInfo{Name: explicit}}, nil
	}

	found, err := e.Enumerate()
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %v", rtcsync.ErrNoPortFound, err)
	}

	port, ok := sel.Select(found)
	if !ok {
		return Resolution{}, rtcsync.ErrNoPortFound
	}
	return Resolution{Port: port, Guessed: true}, nil
}
