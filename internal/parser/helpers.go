package parser

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"logsim/internal/diag"
	"logsim/internal/token"
	"logsim/internal/trace"
)

// getNext сдвигает окно: prev <- cur, cur <- следующий символ.
// Возвращает false, если поток закончился.
func (p *Parser) getNext() bool {
	if p.cur != nil {
		p.prev = p.cur
	}
	sym, ok := p.src.Next()
	if !ok {
		p.cur = nil
		return false
	}
	p.cur = &sym
	return true
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur != nil && p.cur.Kind == k
}

// enter/leave track production depth for diagnostic ordering.
func (p *Parser) enter() { p.depth++ }
func (p *Parser) leave() { p.depth-- }

// throw reports a syntax error. With prevWord the caret goes after the
// previous symbol, otherwise under the current one.
func (p *Parser) throw(code diag.Code, desc string, prevWord bool) {
	p.report(code, desc, prevWord, true)
}

// semantic reports a collaborator rejection without a caret.
func (p *Parser) semantic(code diag.Code, desc string) {
	p.report(code, desc, false, false)
}

func (p *Parser) report(code diag.Code, desc string, prevWord, showCursor bool) {
	sym := p.cur
	if prevWord {
		sym = p.prev
	}
	d := diag.New(code, desc).At(sym)
	d.Depth = p.depth
	p.errs.Add(d, prevWord, showCursor)
	if d.Severity.Rejects() {
		p.syntaxValid = false
	}
}

type skipResult uint8

const (
	skipSemicolon skipResult = iota // стоим на ';'
	skipNextBlock                   // стоим на ключевом слове
	skipEOF
)

// skipToEndOfLine moves to the next ';' without passing a block keyword.
func (p *Parser) skipToEndOfLine() skipResult {
	res := p.skipLine()
	trace.Point(p.tracer, trace.ScopeStatement, "recover", skipName(res), p.opts.ParentSpan)
	return res
}

func (p *Parser) skipLine() skipResult {
	if p.cur == nil {
		return skipEOF
	}
	for p.cur.Kind != token.Semicolon {
		if p.cur.Kind.IsKeyword() {
			return skipNextBlock
		}
		if !p.getNext() {
			return skipEOF
		}
	}
	return skipSemicolon
}

// skipToBlock moves forward until kw is current.
func (p *Parser) skipToBlock(kw token.Kind) bool {
	trace.Point(p.tracer, trace.ScopeBlock, "skip-to", kw.Text(), p.opts.ParentSpan)
	if p.cur == nil {
		return false
	}
	for p.cur.Kind != kw {
		if !p.getNext() {
			return false
		}
	}
	return true
}

func skipName(r skipResult) string {
	switch r {
	case skipSemicolon:
		return "semicolon"
	case skipNextBlock:
		return "next-block"
	default:
		return "eof"
	}
}

// number reads the current Number symbol. Values past MaxInt saturate.
func (p *Parser) number() int {
	s, ok := p.names.GetString(p.cur.ID)
	if !ok {
		return math.MaxInt
	}
	n, err := strconv.Atoi(strings.Map(asciiDigit, s))
	if err != nil {
		return math.MaxInt
	}
	return n
}

// asciiDigit maps any Unicode decimal digit to '0'..'9'. Decimal digits come
// in runs of ten starting at zero, so the value is the rune's position in its run.
func asciiDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	if !unicode.IsDigit(r) {
		return -1
	}
	n := 0
	for unicode.IsDigit(r - rune(n+1)) {
		n++
	}
	return '0' + rune(n%10)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
