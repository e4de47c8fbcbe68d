package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo             Code = 1000
	LexInvalidCharacter Code = 1001

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynMissingSemicolon   Code = 2002
	SynMissingParam       Code = 2003
	SynInvalidSwitchParam Code = 2004
	SynUnexpectedParam    Code = 2005
	SynNoDevices          Code = 2006
	SynNoConnections      Code = 2007
	SynNoMonitors         Code = 2008
	SynUnexpectedEOF      Code = 2009

	// Семантические
	SemInfo                Code = 3000
	SemUndefinedDevice     Code = 3001
	SemNameClash           Code = 3002
	SemUndefinedInPin      Code = 3003
	SemUndefinedOutPin     Code = 3004
	SemConnectInToIn       Code = 3005
	SemConnectOutToOut     Code = 3006
	SemFloatingInput       Code = 3007
	SemMultipleConnections Code = 3008
	SemInvalidAndParam     Code = 3009
	SemInvalidClockParam   Code = 3010
	SemMonitorInputPin     Code = 3011
	SemMonitorSamePin      Code = 3012

	// Ошибки I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:             "Lexical information",
	LexInvalidCharacter: "Unexpected token",

	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynMissingSemicolon:   "Missing ';' at the end of statement",
	SynMissingParam:       "Missing parameter for device type",
	SynInvalidSwitchParam: "Invalid parameter for SWITCH device",
	SynUnexpectedParam:    "Unexpected parameter for device type",
	SynNoDevices:          "No devices found",
	SynNoConnections:      "No connections found",
	SynNoMonitors:         "No monitor pins found",
	SynUnexpectedEOF:      "Unexpected end of file",

	SemInfo:                "Semantic information",
	SemUndefinedDevice:     "Undefined device name",
	SemNameClash:           "Name clash",
	SemUndefinedInPin:      "Undefined input pin",
	SemUndefinedOutPin:     "Undefined output pin",
	SemConnectInToIn:       "Attempting to connect input pin to input pin",
	SemConnectOutToOut:     "Attempting to connect output pin to output pin",
	SemFloatingInput:       "Floating input",
	SemMultipleConnections: "Attempting to connect multiple pins to a single pin",
	SemInvalidAndParam:     "Invalid number of inputs for the gate",
	SemInvalidClockParam:   "Invalid clock period",
	SemMonitorInputPin:     "Attempting to monitor an input pin",
	SemMonitorSamePin:      "Pin is already monitored",

	IOLoadFileError: "Failed to load file",
}

// Class is the coarse error taxonomy.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassLexical
	ClassSyntax
	ClassSemantic
	ClassIO
)

func (c Class) String() string {
	switch c {
	case ClassLexical:
		return "lexical"
	case ClassSyntax:
		return "syntax"
	case ClassSemantic:
		return "semantic"
	case ClassIO:
		return "io"
	}
	return "unknown"
}

// Class returns the taxonomy group of the code.
func (c Code) Class() Class {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return ClassLexical
	case ic >= 2000 && ic < 3000:
		return ClassSyntax
	case ic >= 3000 && ic < 4000:
		return ClassSemantic
	case ic >= 4000 && ic < 5000:
		return ClassIO
	}
	return ClassUnknown
}

// DefaultSeverity is the severity a diagnostic of this code gets unless
// the reporter overrides it. Duplicate monitors are only a warning.
func (c Code) DefaultSeverity() Severity {
	switch {
	case c == SemMonitorSamePin:
		return SevWarning
	case c == LexInfo || c == SynInfo || c == SemInfo:
		return SevInfo
	}
	return SevError
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title is the fixed short message of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
