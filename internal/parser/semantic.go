package parser

import (
	"fmt"

	"logsim/internal/devices"
	"logsim/internal/diag"
	"logsim/internal/monitors"
	"logsim/internal/network"
	"logsim/internal/token"
)

// applyDevices creates every named device and maps rejections to diagnostics.
func (p *Parser) applyDevices(ids []token.NameID, dt deviceType) {
	if p.opts.Devices == nil {
		return
	}
	for _, id := range ids {
		switch p.opts.Devices.MakeDevice(id, dt.kind, dt.param, dt.hasParam) {
		case devices.OK:
		case devices.DeviceAlreadyExists:
			p.semantic(diag.SemNameClash, "Device with this name already exists")
		case devices.ParameterNotAllowed:
			p.semantic(diag.SynUnexpectedParam, "Device of this type does not require a parameter")
		case devices.ParameterRequired:
			p.semantic(diag.SynMissingParam, "Device of this type requires a parameter")
		case devices.ParameterOutOfRange:
			switch dt.kind {
			case token.DevSwitch:
				p.semantic(diag.SynInvalidSwitchParam, "Parameter for a SWITCH device can only be 0 or 1")
			case token.DevClock:
				p.semantic(diag.SemInvalidClockParam, "Parameter for a CLOCK device has to be > 0")
			default:
				p.semantic(diag.SemInvalidAndParam, fmt.Sprintf("Gates can only have 1-%d inputs", p.opts.MaxInputs))
			}
		case devices.InvalidType:
			// parseDeviceType only lets device kinds through
		}
	}
}

// applyConnection wires first to second.
func (p *Parser) applyConnection(first, second pinRef) {
	if p.opts.Network == nil {
		return
	}
	switch p.opts.Network.MakeConnection(first.device, first.pin, second.device, second.pin) {
	case network.OK:
	case network.InputToInput:
		p.semantic(diag.SemConnectInToIn, "")
	case network.OutputToOutput:
		p.semantic(diag.SemConnectOutToOut, "")
	case network.InputAlreadyConnected:
		p.semantic(diag.SemMultipleConnections, "")
	case network.DeviceNotFound:
		p.semantic(diag.SemUndefinedDevice, "")
	case network.FirstPinNotFound:
		p.semantic(undefinedPin(first), "")
	case network.SecondPinNotFound:
		p.semantic(undefinedPin(second), "")
	}
}

func undefinedPin(ref pinRef) diag.Code {
	if ref.output {
		return diag.SemUndefinedOutPin
	}
	return diag.SemUndefinedInPin
}

// applyMonitors registers pins in order and stops at the first input pin.
func (p *Parser) applyMonitors(pins []pinRef) {
	for _, ref := range pins {
		if !ref.output {
			p.semantic(diag.SemMonitorInputPin, "")
			return
		}
		if p.opts.Monitors == nil {
			continue
		}
		switch p.opts.Monitors.MakeMonitor(ref.device, ref.pin) {
		case monitors.OK:
		case monitors.AlreadyMonitored:
			p.semantic(diag.SemMonitorSamePin, "")
		case monitors.NotAnOutput:
			p.semantic(diag.SemMonitorInputPin, "")
		case monitors.DeviceNotFound:
			p.semantic(diag.SemUndefinedDevice, "")
		}
	}
}
