package diag

import (
	"logsim/internal/token"
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Code        Code
	Severity    Severity
	Description string
	Symbol      *token.Symbol
	Depth       int

	// ShowEndOfWord moves the caret past the end of Symbol's text.
	ShowEndOfWord bool
	// ShowCursor controls whether renderers print the source line and caret.
	ShowCursor bool
}

// New creates a diagnostic with the code's default severity.
func New(code Code, description string) Diagnostic {
	return Diagnostic{
		Code:        code,
		Severity:    code.DefaultSeverity(),
		Description: description,
		ShowCursor:  true,
	}
}

// At attaches the offending symbol. A nil symbol leaves the diagnostic unpositioned.
func (d Diagnostic) At(sym *token.Symbol) Diagnostic {
	if sym == nil {
		d.Symbol = nil
		return d
	}
	cp := *sym
	d.Symbol = &cp
	return d
}

// Message is the fixed short message of the diagnostic's kind.
func (d Diagnostic) Message() string {
	return d.Code.Title()
}

// Line returns the 0-based line of the symbol, or 0 when there is none.
func (d Diagnostic) Line() int {
	if d.Symbol == nil {
		return 0
	}
	return d.Symbol.Line
}
