package token

// Reserved lists every reserved kind in name-table order.
var Reserved = []Kind{
	KwDevices, KwConnections, KwMonitors,
	Equal, Connect, Dot, LeftAngle, RightAngle, Colon, Semicolon, Comma,
	DevAnd, DevOr, DevNor, DevNand, DevXor, DevDType, DevClock, DevSwitch, DevNot,
	PinClk, PinSet, PinClear, PinData,
	PinQ, PinQBar,
}

var reservedText = map[Kind]string{
	KwDevices:     "DEVICES",
	KwConnections: "CONNECTIONS",
	KwMonitors:    "MONITORS",

	Equal:      "=",
	Connect:    "-",
	Dot:        ".",
	LeftAngle:  "<",
	RightAngle: ">",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",

	DevAnd:    "AND",
	DevOr:     "OR",
	DevNor:    "NOR",
	DevNand:   "NAND",
	DevXor:    "XOR",
	DevDType:  "DTYPE",
	DevClock:  "CLOCK",
	DevSwitch: "SWITCH",
	DevNot:    "NOT",

	PinClk:   "CLK",
	PinSet:   "SET",
	PinClear: "CLEAR",
	PinData:  "DATA",

	PinQ:    "Q",
	PinQBar: "QBAR",
}

var reservedByText = func() map[string]Kind {
	m := make(map[string]Kind, len(reservedText))
	for k, s := range reservedText {
		m[s] = k
	}
	return m
}()

// LookupReserved returns the reserved kind spelled by text.
// Case matters: "devices" is an identifier.
func LookupReserved(text string) (Kind, bool) {
	k, ok := reservedByText[text]
	return k, ok
}

// Text returns the literal spelling of a reserved kind, or "" for other kinds.
func (k Kind) Text() string {
	return reservedText[k]
}

// IsOperatorChar reports whether r is one of the single-character operators.
func IsOperatorChar(r rune) bool {
	switch r {
	case '=', '-', '.', '<', '>', ':', ';', ',':
		return true
	default:
		return false
	}
}
