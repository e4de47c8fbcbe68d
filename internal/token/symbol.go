package token

import "fmt"

// NameID is an index into the name table.
type NameID int

// NoName marks a symbol that was never interned (invalid characters).
const NoName NameID = -1

// Symbol is one scanned token: its kind, interned name and start position.
// Two symbols are equal iff all four fields match, so == works.
type Symbol struct {
	Kind Kind
	ID   NameID
	Line int // 0-based
	Col  int // 0-based
}

func (s Symbol) String() string {
	return fmt.Sprintf("Symbol(%s, %d, position=%d:%d)", s.Kind, s.ID, s.Line, s.Col)
}

// Is reports whether the symbol has kind k.
func (s Symbol) Is(k Kind) bool { return s.Kind == k }

// IsIdent reports whether the symbol is a user identifier.
func (s Symbol) IsIdent() bool { return s.Kind == Ident }
