package parser

import (
	"fmt"
	"strings"

	"logsim/internal/diag"
	"logsim/internal/names"
	"logsim/internal/token"
)

// sliceSource feeds pre-split words as symbols, one per column.
type sliceSource struct {
	syms []token.Symbol
	pos  int
}

func (s *sliceSource) Next() (token.Symbol, bool) {
	if s.pos >= len(s.syms) {
		return token.Symbol{}, false
	}
	sym := s.syms[s.pos]
	s.pos++
	return sym, true
}

func wordsSource(nt *names.Table, words []string) *sliceSource {
	src := &sliceSource{}
	for i, w := range words {
		id := nt.LookupOrInsert(w)
		src.syms = append(src.syms, token.Symbol{Kind: nt.Classify(id), ID: id, Line: 0, Col: i})
	}
	return src
}

// newWordsParser builds a parser without collaborators.
func newWordsParser(words ...string) (*Parser, *diag.Errors) {
	nt := names.New()
	errs := diag.NewErrors()
	return New(wordsSource(nt, words), nt, errs, Options{}), errs
}

func diagnosticsSummary(errs *diag.Errors) string {
	if errs == nil {
		return "<nil errors>"
	}
	if errs.Len() == 0 {
		return "<none>"
	}
	lines := make([]string, errs.Len())
	for i, d := range errs.Items() {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Description)
	}
	return strings.Join(lines, "; ")
}

func descriptions(errs *diag.Errors) []string {
	out := make([]string, 0, errs.Len())
	for _, d := range errs.Items() {
		out = append(out, d.Description)
	}
	return out
}
