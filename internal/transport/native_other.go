//go:build !linux

package transport

// The termios driver is Linux only; elsewhere native means the portable driver.
func openNative(cfg Config) (Conn, error) {
	return openPortable(cfg)
}
