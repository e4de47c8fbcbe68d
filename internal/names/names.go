// Package names interns the strings of a circuit definition file.
//
// Every string maps to one dense integer id for the lifetime of a session.
// Reserved words are inserted first, in token.Reserved order, so their ids
// are identical across runs.
package names

import (
	"fmt"
	"slices"
	"unicode"

	"fortio.org/safecast"

	"logsim/internal/token"
)

// Table is the name table of one parse session.
type Table struct {
	byID  []string                // индекс -> строка
	index map[string]token.NameID // строка -> ID
	kinds []token.Kind            // индекс -> вид символа

	nextErrorCode int
}

// New creates a table pre-populated with every reserved symbol.
func New() *Table {
	t := &Table{
		byID:  make([]string, 0, len(token.Reserved)+32),
		index: make(map[string]token.NameID, len(token.Reserved)+32),
		kinds: make([]token.Kind, 0, len(token.Reserved)+32),
	}
	for _, k := range token.Reserved {
		t.insert(k.Text(), k)
	}
	return t
}

func (t *Table) insert(s string, k token.Kind) token.NameID {
	n, err := safecast.Conv[int32](len(t.byID))
	if err != nil {
		panic(fmt.Errorf("name table overflow: %w", err))
	}
	id := token.NameID(n)
	// собственная копия, чтобы не держать исходный буфер
	cpy := string([]byte(s))
	t.byID = append(t.byID, cpy)
	t.kinds = append(t.kinds, k)
	t.index[cpy] = id
	return id
}

// Query returns the id of s without inserting it.
func (t *Table) Query(s string) (token.NameID, bool) {
	id, ok := t.index[s]
	return id, ok
}

// LookupOrInsert returns the id of s, assigning the next id if s is new.
func (t *Table) LookupOrInsert(s string) token.NameID {
	if id, ok := t.index[s]; ok {
		return id
	}
	return t.insert(s, externalKind(s))
}

// LookupMany interns every string and returns ids in input order.
func (t *Table) LookupMany(ss []string) []token.NameID {
	out := make([]token.NameID, len(ss))
	for i, s := range ss {
		out[i] = t.LookupOrInsert(s)
	}
	return out
}

// GetString returns the string for id. It panics on a negative id.
func (t *Table) GetString(id token.NameID) (string, bool) {
	if id < 0 {
		panic(fmt.Sprintf("names: negative name id %d", id))
	}
	if int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

// MustString returns the string for id and panics if it was never assigned.
func (t *Table) MustString(id token.NameID) string {
	s, ok := t.GetString(id)
	if !ok {
		panic(fmt.Sprintf("names: unknown name id %d", id))
	}
	return s
}

// Classify returns the symbol kind of id: the reserved kind for reserved
// words, Number for all-digit strings and Ident otherwise.
func (t *Table) Classify(id token.NameID) token.Kind {
	if id < 0 {
		panic(fmt.Sprintf("names: negative name id %d", id))
	}
	if int(id) >= len(t.kinds) {
		return token.Invalid
	}
	return t.kinds[id]
}

// AllocateErrorCodes returns n fresh sequential codes. Codes are never
// reused within a table's lifetime.
func (t *Table) AllocateErrorCodes(n int) []int {
	if n < 0 {
		panic(fmt.Sprintf("names: negative error code count %d", n))
	}
	out := make([]int, n)
	for i := range out {
		out[i] = t.nextErrorCode
		t.nextErrorCode++
	}
	return out
}

// Len returns the number of interned strings, reserved ones included.
func (t *Table) Len() int {
	return len(t.byID)
}

// Snapshot returns a copy of all interned strings in id order.
func (t *Table) Snapshot() []string {
	return slices.Clone(t.byID)
}

func externalKind(s string) token.Kind {
	if isNumeric(s) {
		return token.Number
	}
	return token.Ident
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
