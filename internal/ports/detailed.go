package ports

import (
	"sort"

	"go.bug.st/serial/enumerator"
)

// DetailedEnumerator lists ports through the operating system's device
// registry and reports USB identifiers where available.
type DetailedEnumerator struct{}

func (DetailedEnumerator) Enumerate() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		ports = append(ports, fromDetails(d))
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].Name < ports[j].Name })
	return ports, nil
}

func fromDetails(d *enumerator.PortDetails) PortInfo {
	info := PortInfo{
		Name:        d.Name,
		Description: d.Product,
		USB:         d.IsUSB,
	}
	if d.IsUSB {
		info.VendorID = d.VID
		info.ProductID = d.PID
		info.SerialNumber = d.SerialNumber
	}
	if info.Description == "" {
		info.Description = d.Name
	}
	return info
}
