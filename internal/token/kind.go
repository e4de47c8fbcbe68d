package token

import "fmt"

// Kind represents the type of a scanned symbol.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Ident represents a user identifier (device name or plain pin name).
	Ident
	// Number represents an unsigned decimal literal.
	Number

	// KwDevices represents the 'DEVICES' block keyword.
	KwDevices // DEVICES
	// KwConnections represents the 'CONNECTIONS' block keyword.
	KwConnections // CONNECTIONS
	// KwMonitors represents the 'MONITORS' block keyword.
	KwMonitors // MONITORS

	Equal      // =
	Connect    // -
	Dot        // .
	LeftAngle  // <
	RightAngle // >
	Colon      // :
	Semicolon  // ;
	Comma      // ,

	DevAnd    // AND
	DevOr     // OR
	DevNor    // NOR
	DevNand   // NAND
	DevXor    // XOR
	DevDType  // DTYPE
	DevClock  // CLOCK
	DevSwitch // SWITCH
	DevNot    // NOT

	PinClk   // CLK
	PinSet   // SET
	PinClear // CLEAR
	PinData  // DATA

	PinQ    // Q
	PinQBar // QBAR
)

// Category groups kinds the way the grammar tests them.
type Category uint8

const (
	CatIdentifier Category = iota
	CatNumber
	CatKeyword
	CatOperator
	CatDeviceType
	CatDTypeInput
	CatDTypeOutput
)

var categoryNames = [...]string{
	CatIdentifier:  "Identifier",
	CatNumber:      "Number",
	CatKeyword:     "Keyword",
	CatOperator:    "Operator",
	CatDeviceType:  "DeviceType",
	CatDTypeInput:  "DTypeInput",
	CatDTypeOutput: "DTypeOutput",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// Category returns the group the kind belongs to.
func (k Kind) Category() Category {
	switch {
	case k == Number:
		return CatNumber
	case k >= KwDevices && k <= KwMonitors:
		return CatKeyword
	case k >= Equal && k <= Comma:
		return CatOperator
	case k >= DevAnd && k <= DevNot:
		return CatDeviceType
	case k >= PinClk && k <= PinData:
		return CatDTypeInput
	case k >= PinQ && k <= PinQBar:
		return CatDTypeOutput
	default:
		return CatIdentifier
	}
}

// IsKeyword reports whether the kind is a block keyword.
func (k Kind) IsKeyword() bool { return k.Category() == CatKeyword }

// IsOperator reports whether the kind is a single-character operator.
func (k Kind) IsOperator() bool { return k.Category() == CatOperator }

// IsDeviceType reports whether the kind names a device type.
func (k Kind) IsDeviceType() bool { return k.Category() == CatDeviceType }

// IsDTypeInput reports whether the kind is a D-type input pin name.
func (k Kind) IsDTypeInput() bool { return k.Category() == CatDTypeInput }

// IsDTypeOutput reports whether the kind is a D-type output pin name.
func (k Kind) IsDTypeOutput() bool { return k.Category() == CatDTypeOutput }

// IsReserved reports whether the kind is part of the fixed vocabulary.
func (k Kind) IsReserved() bool { return k >= KwDevices && k <= PinQBar }

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	}
	if k.IsReserved() {
		return reservedText[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}
