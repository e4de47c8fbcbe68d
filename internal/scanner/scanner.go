// Package scanner turns circuit definition text into symbols.
package scanner

import (
	"logsim/internal/diag"
	"logsim/internal/names"
	"logsim/internal/source"
	"logsim/internal/token"
)

const (
	lineComment       = "//"
	blockCommentOpen  = "/*"
	blockCommentClose = "*/"
)

// Scanner produces one Symbol per call from a single file.
// The sequence is finite and cannot be restarted.
type Scanner struct {
	cur   Cursor
	names *names.Table
	rep   diag.Reporter
}

// New creates a scanner bound to f. Every produced token is interned in nt;
// invalid characters are reported to rep.
func New(f *source.File, nt *names.Table, rep diag.Reporter) *Scanner {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	return &Scanner{
		cur:   NewCursor(f),
		names: nt,
		rep:   rep,
	}
}

// File returns the file being scanned.
func (s *Scanner) File() *source.File {
	return s.cur.File
}

// Cursor exposes the underlying cursor.
func (s *Scanner) Cursor() *Cursor {
	return &s.cur
}

// Next implements parser.SymbolSource.
func (s *Scanner) Next() (token.Symbol, bool) {
	return s.GetSymbol()
}

// GetSymbol returns the next symbol, or false at end of file.
// Once it has returned false it keeps returning false.
func (s *Scanner) GetSymbol() (token.Symbol, bool) {
	for {
		s.cur.AdvanceToNextChar(notSpace)
		if s.cur.EOF() {
			return token.Symbol{}, false
		}
		ch := s.cur.File.At(s.cur.Off)

		if ch == '/' {
			next, _ := s.cur.Peek(2)
			switch next {
			case lineComment:
				s.cur.AdvanceToNextChar(isNewline)
				continue
			case blockCommentOpen:
				// незакрытый комментарий съедает файл до конца
				s.cur.AdvancePastLiteral(blockCommentClose)
				continue
			}
		}

		var text string
		switch {
		case isNameStart(ch):
			text = s.cur.NextName()
		case isDigit(ch):
			text = s.cur.NextNumber()
		case token.IsOperatorChar(ch):
			r, _ := s.cur.NextChar(anyChar)
			text = string(r)
		default:
			s.reportInvalidChar()
			// всегда сдвигаемся хотя бы на одну руну
			s.cur.Move(s.cur.Off + 1)
			if ch != '/' {
				s.cur.AdvanceToNextChar(isResumeChar)
			}
			continue
		}

		id := s.names.LookupOrInsert(text)
		pos := s.cur.File.Position(s.cur.Off - len([]rune(text)))
		return token.Symbol{
			Kind: s.names.Classify(id),
			ID:   id,
			Line: pos.Line,
			Col:  pos.Col,
		}, true
	}
}

func (s *Scanner) reportInvalidChar() {
	pos := s.cur.Position()
	sym := token.Symbol{Kind: token.Ident, ID: token.NoName, Line: pos.Line, Col: pos.Col}
	d := diag.New(diag.LexInvalidCharacter, "Invalid character").At(&sym)
	s.rep.Add(d, false, true)
}

// All drains the scanner and returns every remaining symbol.
func (s *Scanner) All() []token.Symbol {
	var out []token.Symbol
	for {
		sym, ok := s.GetSymbol()
		if !ok {
			return out
		}
		out = append(out, sym)
	}
}
