package diag

import "sort"

// Errors collects the diagnostics of one parse session.
type Errors struct {
	items []Diagnostic
}

// NewErrors returns an empty collector.
func NewErrors() *Errors {
	return &Errors{items: make([]Diagnostic, 0, 8)}
}

// Add appends d with the given caret hints.
func (e *Errors) Add(d Diagnostic, showEndOfWord, showCursor bool) {
	d.ShowEndOfWord = showEndOfWord
	d.ShowCursor = showCursor
	e.items = append(e.items, d)
}

// Len returns the number of recorded diagnostics.
func (e *Errors) Len() int {
	return len(e.items)
}

// At returns the i-th diagnostic in recording order.
func (e *Errors) At(i int) Diagnostic {
	return e.items[i]
}

// Replace overwrites the i-th diagnostic.
func (e *Errors) Replace(i int, d Diagnostic) {
	e.items[i] = d
}

// Items возвращает read-only slice диагностик в порядке добавления.
// ВАЖНО: не модифицируйте возвращаемый срез!
func (e *Errors) Items() []Diagnostic {
	return e.items
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (e *Errors) HasErrors() bool {
	for i := range e.items {
		if e.items[i].Severity.Rejects() {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning
func (e *Errors) HasWarnings() bool {
	for i := range e.items {
		if e.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Count returns how many diagnostics have exactly severity sev.
func (e *Errors) Count(sev Severity) int {
	n := 0
	for i := range e.items {
		if e.items[i].Severity == sev {
			n++
		}
	}
	return n
}

// Sorted returns a copy ordered by (line or 0, depth). Ties keep recording order.
func (e *Errors) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(e.items))
	copy(out, e.items)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].Line(), out[j].Line()
		if li != lj {
			return li < lj
		}
		return out[i].Depth < out[j].Depth
	})
	return out
}
