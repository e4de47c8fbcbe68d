package diag

// Severity ranks a circuit diagnostic. Only SevError rejects the
// definition file; warnings such as a repeated monitor are reported and
// the file is still accepted.
type Severity uint8

const (
	SevInfo Severity = iota
	// SevWarning is reported but keeps the circuit valid.
	SevWarning
	// SevError invalidates the circuit definition.
	SevError
)

// Rejects reports whether a diagnostic of this severity makes the
// definition file invalid.
func (s Severity) Rejects() bool {
	return s >= SevError
}

// Valid reports whether s is one of the known severities. Cached payloads
// are checked with it before being trusted.
func (s Severity) Valid() bool {
	return s <= SevError
}

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
