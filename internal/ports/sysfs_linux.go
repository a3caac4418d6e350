//go:build linux

package ports

import (
	"github.com/allbin/rtcsync/serial"
)

// SysfsEnumerator lists /dev tty nodes and reads USB details from sysfs.
type SysfsEnumerator struct{}

func (SysfsEnumerator) Enumerate() ([]PortInfo, error) {
	paths, err := serial.ListPorts()
	if err != nil {
		return nil, err
	}

	ports := make([]PortInfo, 0, len(paths))
	for _, path := range paths {
		info, err := serial.GetPortInfo(path)
		if err != nil {
			// The node vanished between listing and inspection.
			continue
		}
		ports = append(ports, fromSysfs(info))
	}
	return ports, nil
}

func fromSysfs(info *serial.PortInfo) PortInfo {
	p := PortInfo{
		Name:         info.Path,
		Description:  info.Description,
		VendorID:     info.VendorID,
		ProductID:    info.ProductID,
		SerialNumber: info.SerialNumber,
		USB:          info.IsUSB(),
	}
	if info.Product != "" {
		p.Description = info.Product
		if info.Manufacturer != "" {
			p.Description = info.Manufacturer + " " + info.Product
		}
	}
	return p
}
