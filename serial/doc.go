// Package serial is the native Linux serial port used by rtcsync.
//
// It talks to the tty through termios ioctls from golang.org/x/sys/unix and is
// tuned for short request/response exchanges with a microcontroller: raw mode,
// 8N1 by default, and a read timeout implemented with VMIN=0/VTIME so that a
// Read returns (0, nil) when the device stays silent.
//
// # Basic Usage
//
//	port, err := serial.Open("/dev/ttyUSB0",
//	    serial.WithBaudRate(115200),
//	    serial.WithReadTimeout(time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	_ = port.FlushInput()
//	n, err := port.Write([]byte("gTIME"))
//	buf := make([]byte, 5)
//	n, err = port.Read(buf)
//
// # Port Discovery
//
//	ports, err := serial.ListPorts()
//	for _, portPath := range ports {
//	    info, _ := serial.GetPortInfo(portPath)
//	    fmt.Printf("%s: %s (VID=%s PID=%s Serial=%s)\n",
//	        info.Path, info.Description, info.VendorID, info.ProductID, info.SerialNumber)
//	}
//
// USB metadata is read from sysfs (/sys/class/tty/<name>/device).
//
// # Error Handling
//
// Open classifies failures so callers can react with errors.Is:
//
//	if errors.Is(err, serial.ErrPermissionDenied) {
//	    // re-run with sudo or join the dialout group
//	}
//
// # Default Configuration
//
//   - BaudRate: 115200
//   - DataBits: 8
//   - StopBits: 1
//   - Parity: None
//   - ReadTimeout: 1 second
//
// Everything except this file and errors.go is Linux only.
package serial
