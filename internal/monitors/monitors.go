// Package monitors records the output pins a circuit definition asks to watch.
package monitors

import (
	"fmt"

	"logsim/internal/devices"
	"logsim/internal/token"
)

// Status is the result of MakeMonitor.
type Status uint8

const (
	OK Status = iota
	AlreadyMonitored
	NotAnOutput
	DeviceNotFound
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case AlreadyMonitored:
		return "ALREADY_MONITORED"
	case NotAnOutput:
		return "NOT_AN_OUTPUT"
	case DeviceNotFound:
		return "DEVICE_NOT_FOUND"
	}
	return fmt.Sprintf("Status(%d)", s)
}

// Monitors is the ordered set of monitored outputs.
type Monitors struct {
	devices *devices.Devices
	entries []devices.PinRef
	seen    map[devices.PinRef]struct{}
}

// New creates an empty monitor set over d.
func New(d *devices.Devices) *Monitors {
	return &Monitors{
		devices: d,
		seen:    make(map[devices.PinRef]struct{}),
	}
}

// MakeMonitor starts monitoring output pin of dev; devices.NoPin names the
// device's unnamed output.
func (m *Monitors) MakeMonitor(dev, pin token.NameID) Status {
	d, ok := m.devices.Get(dev)
	if !ok {
		return DeviceNotFound
	}
	if !d.HasOutput(pin) {
		return NotAnOutput
	}
	ref := devices.PinRef{Device: dev, Pin: pin}
	if _, dup := m.seen[ref]; dup {
		return AlreadyMonitored
	}
	m.seen[ref] = struct{}{}
	m.entries = append(m.entries, ref)
	return OK
}

// Has reports whether the pin is monitored.
func (m *Monitors) Has(dev, pin token.NameID) bool {
	_, ok := m.seen[devices.PinRef{Device: dev, Pin: pin}]
	return ok
}

// Len returns the number of monitored pins.
func (m *Monitors) Len() int {
	return len(m.entries)
}

// Entries returns monitored pins in registration order.
func (m *Monitors) Entries() []devices.PinRef {
	return m.entries
}
