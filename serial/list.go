//go:build linux

package serial

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// devDir and sysfsRoot are variables so tests can point them at a fake tree.
var (
	devDir    = "/dev"
	sysfsRoot = "/sys"
)

var (
	// Device node classes we consider serial ports, in listing order:
	// on-board UARTs first, then USB adapters, so a plugged-in device lists last.
	portPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^ttyS(\d+)$`),   // Standard serial ports
		regexp.MustCompile(`^ttyAMA(\d+)$`), // ARM/Raspberry Pi serial
		regexp.MustCompile(`^ttymxc(\d+)$`), // i.MX serial ports
		regexp.MustCompile(`^ttyO(\d+)$`),   // OMAP serial ports
		regexp.MustCompile(`^ttySAC(\d+)$`), // Samsung serial ports
		regexp.MustCompile(`^ttyTHS(\d+)$`), // Tegra serial ports
		regexp.MustCompile(`^ttyUSB(\d+)$`), // USB serial adapters
		regexp.MustCompile(`^ttyACM(\d+)$`), // USB CDC/ACM devices
	}
)

// ListPorts returns the serial port device paths on the system, ordered by
// class (see portPatterns) and then by device number.
// Virtual terminals and pseudo-terminals never match the patterns above.
func ListPorts() ([]string, error) {
	entries, err := os.ReadDir(devDir)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		path        string
		class, unit int
	}
	var found []candidate
	for _, entry := range entries {
		class, unit, ok := classifyPortName(entry.Name())
		if !ok {
			continue
		}
		fullPath := filepath.Join(devDir, entry.Name())
		if isCharacterDevice(fullPath) {
			found = append(found, candidate{path: fullPath, class: class, unit: unit})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].class != found[j].class {
			return found[i].class < found[j].class
		}
		return found[i].unit < found[j].unit
	})

	ports := make([]string, 0, len(found))
	for _, c := range found {
		ports = append(ports, c.path)
	}
	return ports, nil
}

// classifyPortName returns the pattern index and device number of a port name.
func classifyPortName(name string) (class, unit int, ok bool) {
	for i, pattern := range portPatterns {
		if m := pattern.FindStringSubmatch(name); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, 0, false
			}
			return i, n, true
		}
	}
	return 0, 0, false
}

func isPortName(name string) bool {
	_, _, ok := classifyPortName(name)
	return ok
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// PortInfo describes a serial port and, for USB adapters, the device behind it.
type PortInfo struct {
	Name            string
	Path            string
	Description     string
	VendorID        string
	ProductID       string
	SerialNumber    string
	Manufacturer    string
	Product         string
	InterfaceNumber string
	BusNumber       string
	DeviceNumber    string
}

// IsUSB reports whether USB metadata was found for the port.
func (i *PortInfo) IsUSB() bool {
	return i.VendorID != "" && i.ProductID != ""
}

// GetPortInfo returns detailed information about a specific port
func GetPortInfo(portPath string) (*PortInfo, error) {
	if !isCharacterDevice(portPath) {
		return nil, ErrDeviceNotFound
	}

	name := filepath.Base(portPath)
	info := &PortInfo{
		Name:        name,
		Path:        portPath,
		Description: getPortDescription(name),
	}

	if strings.HasPrefix(name, "ttyUSB") || strings.HasPrefix(name, "ttyACM") {
		enrichUSBInfo(info)
	}

	return info, nil
}

// getPortDescription provides human-readable descriptions for different port types
func getPortDescription(name string) string {
	switch {
	case strings.HasPrefix(name, "ttyUSB"):
		return "USB Serial Port"
	case strings.HasPrefix(name, "ttyACM"):
		return "USB CDC/ACM Device"
	case strings.HasPrefix(name, "ttyAMA"):
		return "ARM Serial Port"
	case strings.HasPrefix(name, "ttymxc"):
		return "i.MX Serial Port"
	case strings.HasPrefix(name, "ttySAC"):
		return "Samsung Serial Port"
	case strings.HasPrefix(name, "ttyTHS"):
		return "Tegra Serial Port"
	case strings.HasPrefix(name, "ttyO"):
		return "OMAP Serial Port"
	case strings.HasPrefix(name, "ttyS"):
		return "Standard Serial Port"
	default:
		return "Serial Port"
	}
}

// enrichUSBInfo fills the USB fields from sysfs.
//
// /sys/class/tty/<name>/device resolves to the tty node below the USB interface
// (ttyUSB) or to the interface itself (ttyACM). The interface directory holds
// bInterfaceNumber and the USB device directory above it holds idVendor and friends.
func enrichUSBInfo(info *PortInfo) {
	devicePath := filepath.Join(sysfsRoot, "class", "tty", info.Name, "device")
	dir, err := filepath.EvalSymlinks(devicePath)
	if err != nil {
		return
	}

	for depth := 0; depth < 4 && dir != "/" && dir != "."; depth++ {
		if info.InterfaceNumber == "" {
			info.InterfaceNumber = readSysfsFile(filepath.Join(dir, "bInterfaceNumber"))
		}
		if vendor := readSysfsFile(filepath.Join(dir, "idVendor")); vendor != "" {
			info.VendorID = vendor
			info.ProductID = readSysfsFile(filepath.Join(dir, "idProduct"))
			info.SerialNumber = readSysfsFile(filepath.Join(dir, "serial"))
			info.Manufacturer = readSysfsFile(filepath.Join(dir, "manufacturer"))
			info.Product = readSysfsFile(filepath.Join(dir, "product"))
			info.BusNumber = readSysfsFile(filepath.Join(dir, "busnum"))
			info.DeviceNumber = readSysfsFile(filepath.Join(dir, "devnum"))
			return
		}
		dir = filepath.Dir(dir)
	}
}

// readSysfsFile returns the trimmed content of a sysfs attribute, or "" if unreadable
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
