// Package network wires device outputs to device inputs.
package network

import (
	"fmt"

	"logsim/internal/devices"
	"logsim/internal/token"
)

// Status is the result of MakeConnection.
type Status uint8

const (
	OK Status = iota
	InputToInput
	OutputToOutput
	InputAlreadyConnected
	DeviceNotFound
	FirstPinNotFound
	SecondPinNotFound
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case InputToInput:
		return "INPUT_TO_INPUT"
	case OutputToOutput:
		return "OUTPUT_TO_OUTPUT"
	case InputAlreadyConnected:
		return "INPUT_ALREADY_CONNECTED"
	case DeviceNotFound:
		return "DEVICE_NOT_FOUND"
	case FirstPinNotFound:
		return "FIRST_PIN_NOT_FOUND"
	case SecondPinNotFound:
		return "SECOND_PIN_NOT_FOUND"
	}
	return fmt.Sprintf("Status(%d)", s)
}

// Network holds the connections between devices.
type Network struct {
	devices *devices.Devices
	count   int
}

// New creates a network over the given devices.
func New(d *devices.Devices) *Network {
	return &Network{devices: d}
}

// Len returns the number of connections made.
func (n *Network) Len() int {
	return n.count
}

// MakeConnection connects pin1 of dev1 with pin2 of dev2. Either end may be
// the input; devices.NoPin names a device's unnamed output.
func (n *Network) MakeConnection(dev1, pin1, dev2, pin2 token.NameID) Status {
	first, ok1 := n.devices.Get(dev1)
	second, ok2 := n.devices.Get(dev2)
	if !ok1 || !ok2 {
		return DeviceNotFound
	}

	switch {
	case first.HasInput(pin1):
		if _, connected := first.Driver(pin1); connected {
			return InputAlreadyConnected
		}
		if second.HasInput(pin2) {
			return InputToInput
		}
		if !second.HasOutput(pin2) {
			return SecondPinNotFound
		}
		first.Connect(pin1, devices.PinRef{Device: dev2, Pin: pin2})

	case first.HasOutput(pin1):
		if second.HasOutput(pin2) {
			return OutputToOutput
		}
		if !second.HasInput(pin2) {
			return SecondPinNotFound
		}
		if _, connected := second.Driver(pin2); connected {
			return InputAlreadyConnected
		}
		second.Connect(pin2, devices.PinRef{Device: dev1, Pin: pin1})

	default:
		return FirstPinNotFound
	}
	n.count++
	return OK
}

// ConnectedOutput returns the output driving input pin of dev.
func (n *Network) ConnectedOutput(dev, pin token.NameID) (devices.PinRef, bool) {
	d, ok := n.devices.Get(dev)
	if !ok {
		return devices.PinRef{}, false
	}
	return d.Driver(pin)
}

// CheckConnectivity reports whether every input of every device is driven.
func (n *Network) CheckConnectivity() bool {
	return len(n.FloatingInputs()) == 0
}

// FloatingInputs lists the unconnected inputs in declaration order.
func (n *Network) FloatingInputs() []devices.PinRef {
	var out []devices.PinRef
	for _, d := range n.devices.All() {
		for _, in := range d.InputIDs {
			if _, ok := d.Driver(in); !ok {
				out = append(out, devices.PinRef{Device: d.ID, Pin: in})
			}
		}
	}
	return out
}
