//go:build windows

package ports

// DefaultEnumerator queries the registry through go.bug.st/serial.
func DefaultEnumerator() Enumerator { return DetailedEnumerator{} }

// DefaultSelector picks the lowest numbered COM port.
func DefaultSelector() Selector { return FirstPort }
