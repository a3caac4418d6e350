package ports

// LastPort selects the last enumerated port. The Linux enumerator lists
// on-board UARTs before USB adapters, so a plugged-in adapter wins over
// ttyS nodes that exist whether or not hardware is behind them.
var LastPort = SelectorFunc(func(ports []PortInfo) (PortInfo, bool) {
	if len(ports) == 0 {
		return PortInfo{}, false
	}
	return ports[len(ports)-1], true
})

// FirstPort selects the first enumerated port.
var FirstPort = SelectorFunc(func(ports []PortInfo) (PortInfo, bool) {
	if len(ports) == 0 {
		return PortInfo{}, false
	}
	return ports[0], true
})
