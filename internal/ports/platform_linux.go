//go:build linux

package ports

// DefaultEnumerator reads the native sysfs tree.
func DefaultEnumerator() Enumerator { return SysfsEnumerator{} }

// DefaultSelector picks the most recently attached port.
func DefaultSelector() Selector { return LastPort }
