package parser

// Outcome is the result of one production.
type Outcome uint8

const (
	// Accepted: the construct parsed.
	Accepted Outcome = iota
	// Rejected: a syntax error was reported, symbols remain.
	Rejected
	// UnexpectedEnd: the symbol stream ran out mid-construct.
	UnexpectedEnd
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case UnexpectedEnd:
		return "unexpected-end"
	default:
		return "unknown"
	}
}
