// Package devices stores the devices declared by a circuit definition.
//
// It validates device parameters and creates pins; it does not simulate.
package devices

import (
	"fmt"

	"logsim/internal/names"
	"logsim/internal/token"
)

// Status is the result of MakeDevice.
type Status uint8

const (
	OK Status = iota
	DeviceAlreadyExists
	ParameterNotAllowed
	ParameterRequired
	ParameterOutOfRange
	InvalidType
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case DeviceAlreadyExists:
		return "DEVICE_ALREADY_EXISTS"
	case ParameterNotAllowed:
		return "PARAMETER_NOT_ALLOWED"
	case ParameterRequired:
		return "PARAMETER_REQUIRED"
	case ParameterOutOfRange:
		return "PARAMETER_OUT_OF_RANGE"
	case InvalidType:
		return "INVALID_TYPE"
	}
	return fmt.Sprintf("Status(%d)", s)
}

// DefaultMaxInputs is the fan-in upper bound for AND/OR/NAND/NOR gates.
const DefaultMaxInputs = 16

// NoPin is the pin id of a device's single unnamed output.
const NoPin = token.NoName

// PinRef identifies one pin of one device.
type PinRef struct {
	Device token.NameID
	Pin    token.NameID
}

// Device is one declared device and the wiring of its inputs.
type Device struct {
	ID       token.NameID
	Kind     token.Kind
	Param    int
	HasParam bool

	InputIDs  []token.NameID // в порядке объявления
	OutputIDs []token.NameID

	inputs map[token.NameID]*PinRef // nil = не подключён
}

// HasInput reports whether pin is an input of the device.
func (d *Device) HasInput(pin token.NameID) bool {
	_, ok := d.inputs[pin]
	return ok
}

// HasOutput reports whether pin is an output of the device.
func (d *Device) HasOutput(pin token.NameID) bool {
	for _, id := range d.OutputIDs {
		if id == pin {
			return true
		}
	}
	return false
}

// Driver returns the output connected to input pin.
func (d *Device) Driver(pin token.NameID) (PinRef, bool) {
	out := d.inputs[pin]
	if out == nil {
		return PinRef{}, false
	}
	return *out, true
}

// Connect wires input pin to out. The caller has validated both ends.
func (d *Device) Connect(pin token.NameID, out PinRef) {
	d.inputs[pin] = &out
}

// Devices is the set of devices of one session.
type Devices struct {
	names     *names.Table
	list      []*Device
	byID      map[token.NameID]*Device
	maxInputs int

	dtypeInputs  []token.NameID
	dtypeOutputs []token.NameID
}

// Option configures Devices.
type Option func(*Devices)

// WithMaxInputs overrides the gate fan-in upper bound.
func WithMaxInputs(n int) Option {
	return func(d *Devices) {
		if n > 0 {
			d.maxInputs = n
		}
	}
}

// New creates an empty device set that interns pin names in nt.
func New(nt *names.Table, opts ...Option) *Devices {
	d := &Devices{
		names:     nt,
		byID:      make(map[token.NameID]*Device),
		maxInputs: DefaultMaxInputs,
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, k := range []token.Kind{token.PinClk, token.PinSet, token.PinClear, token.PinData} {
		d.dtypeInputs = append(d.dtypeInputs, nt.LookupOrInsert(k.Text()))
	}
	for _, k := range []token.Kind{token.PinQ, token.PinQBar} {
		d.dtypeOutputs = append(d.dtypeOutputs, nt.LookupOrInsert(k.Text()))
	}
	return d
}

// Get returns the device with the given name id.
func (d *Devices) Get(id token.NameID) (*Device, bool) {
	dev, ok := d.byID[id]
	return dev, ok
}

// Len returns the number of devices.
func (d *Devices) Len() int {
	return len(d.list)
}

// All returns devices in declaration order.
func (d *Devices) All() []*Device {
	return d.list
}

// OfKind returns devices of kind k in declaration order.
func (d *Devices) OfKind(k token.Kind) []*Device {
	var out []*Device
	for _, dev := range d.list {
		if dev.Kind == k {
			out = append(out, dev)
		}
	}
	return out
}

// MakeDevice validates and creates a device. hasParam reports whether the
// definition carried a <n> parameter.
func (d *Devices) MakeDevice(id token.NameID, kind token.Kind, param int, hasParam bool) Status {
	if _, exists := d.byID[id]; exists {
		return DeviceAlreadyExists
	}

	var inputs, outputs []token.NameID
	switch kind {
	case token.DevAnd, token.DevOr, token.DevNand, token.DevNor:
		if !hasParam {
			return ParameterRequired
		}
		if param < 1 || param > d.maxInputs {
			return ParameterOutOfRange
		}
		inputs = d.gateInputs(param)
		outputs = []token.NameID{NoPin}

	case token.DevXor:
		if hasParam {
			return ParameterNotAllowed
		}
		inputs = d.gateInputs(2)
		outputs = []token.NameID{NoPin}

	case token.DevNot:
		if hasParam {
			return ParameterNotAllowed
		}
		inputs = d.gateInputs(1)
		outputs = []token.NameID{NoPin}

	case token.DevDType:
		if hasParam {
			return ParameterNotAllowed
		}
		inputs = d.dtypeInputs
		outputs = d.dtypeOutputs

	case token.DevClock:
		if !hasParam {
			return ParameterRequired
		}
		if param <= 0 {
			return ParameterOutOfRange
		}
		outputs = []token.NameID{NoPin}

	case token.DevSwitch:
		if !hasParam {
			return ParameterRequired
		}
		if param != 0 && param != 1 {
			return ParameterOutOfRange
		}
		outputs = []token.NameID{NoPin}

	default:
		return InvalidType
	}

	dev := &Device{
		ID:        id,
		Kind:      kind,
		Param:     param,
		HasParam:  hasParam,
		InputIDs:  inputs,
		OutputIDs: outputs,
		inputs:    make(map[token.NameID]*PinRef, len(inputs)),
	}
	for _, in := range inputs {
		dev.inputs[in] = nil
	}
	d.list = append(d.list, dev)
	d.byID[id] = dev
	return OK
}

func (d *Devices) gateInputs(n int) []token.NameID {
	out := make([]token.NameID, n)
	for i := range out {
		out[i] = d.names.LookupOrInsert(fmt.Sprintf("I%d", i+1))
	}
	return out
}
