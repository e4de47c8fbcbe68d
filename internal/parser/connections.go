package parser

import (
	"logsim/internal/devices"
	"logsim/internal/diag"
	"logsim/internal/token"
	"logsim/internal/trace"
)

// pinContext selects the follow set accepted after a bare device name.
type pinContext uint8

const (
	inConnection pinContext = iota // followed by '-' or ';'
	inMonitor                      // followed by ',' or ';'
)

// expectedPinEnd is the description the pin parser uses when a
// connection's second pin runs into the end of input.
const expectedPinEnd = "Expected '.', '-', or ';'"

// pinRef is a parsed "device[.pin]" reference.
type pinRef struct {
	device token.NameID
	pin    token.NameID // devices.NoPin when no suffix
	output bool
}

// ParseConnectionsBlock parses "CONNECTIONS" ":" conn_stmt {conn_stmt}.
func (p *Parser) ParseConnectionsBlock() (out Outcome) {
	p.enter()
	defer p.leave()
	span := trace.Begin(p.tracer, trace.ScopeBlock, "connections", p.opts.ParentSpan)
	defer func() { span.End(out.String()) }()

	if p.cur == nil {
		p.throw(diag.SynUnexpectedEOF, "Missing CONNECTIONS block", true)
		return UnexpectedEnd
	}
	if !p.at(token.KwConnections) {
		p.throw(diag.SynNoConnections, "Missing CONNECTIONS block", false)
		return Rejected
	}
	if !p.getNext() {
		p.throw(diag.SynUnexpectedEOF, "Expected ':'", true)
		return UnexpectedEnd
	}
	if !p.at(token.Colon) {
		p.throw(diag.SynUnexpectedToken, "Expected ':'", false)
		return Rejected
	}
	if !p.getNext() {
		p.throw(diag.SynNoConnections, "Empty CONNECTIONS block", true)
		return UnexpectedEnd
	}

	switch p.parseConnectionStatement() {
	case UnexpectedEnd:
		p.throw(diag.SynNoConnections, "Empty CONNECTIONS block", false)
		return UnexpectedEnd
	case Rejected:
		switch p.skipToEndOfLine() {
		case skipNextBlock:
			return Rejected
		case skipEOF:
			p.throw(diag.SynNoConnections, "Empty CONNECTIONS block", false)
			return UnexpectedEnd
		}
		p.getNext()
	}

	for p.cur != nil && !p.at(token.KwMonitors) {
		if p.parseConnectionStatement() == Accepted {
			continue
		}
		switch p.skipToEndOfLine() {
		case skipNextBlock:
			return Rejected
		case skipEOF:
			return UnexpectedEnd
		}
		p.getNext()
	}
	return Accepted
}

// parseConnectionStatement parses pin "-" pin ";".
func (p *Parser) parseConnectionStatement() Outcome {
	p.enter()
	defer p.leave()

	if p.cur == nil {
		p.throw(diag.SynUnexpectedEOF, "Expected connection statement", true)
		return UnexpectedEnd
	}
	first, res := p.parsePin(inConnection)
	if res != Accepted {
		return res
	}

	if p.cur == nil {
		p.throw(diag.SynUnexpectedEOF, "Expected '-'", true)
		return UnexpectedEnd
	}
	if !p.at(token.Connect) {
		p.throw(diag.SynUnexpectedToken, "Expected '-'", false)
		return Rejected
	}
	p.getNext()

	second, res := p.parsePin(inConnection)
	if res != Accepted {
		// "A - B" at end of input reads better as a missing ';'
		if p.errs.Len() == 1 && p.errs.At(0).Description == expectedPinEnd {
			d := p.errs.At(0)
			d.Code = diag.SynMissingSemicolon
			d.Severity = diag.SynMissingSemicolon.DefaultSeverity()
			d.Description = ""
			p.errs.Replace(0, d)
		}
		return res
	}

	if p.cur == nil {
		p.throw(diag.SynMissingSemicolon, "", true)
		return UnexpectedEnd
	}
	if !p.at(token.Semicolon) {
		p.throw(diag.SynUnexpectedToken, "Expected ';'", true)
		return Rejected
	}
	if p.syntaxValid {
		p.applyConnection(first, second)
	}
	p.getNext()
	return Accepted
}

// parsePin parses device ["." pin_name].
func (p *Parser) parsePin(ctx pinContext) (pinRef, Outcome) {
	p.enter()
	defer p.leave()

	ref := pinRef{pin: devices.NoPin}
	if p.cur == nil {
		p.throw(diag.SynUnexpectedEOF, "Expected pin's device name", true)
		return ref, UnexpectedEnd
	}
	if !p.at(token.Ident) {
		p.throw(diag.SynUnexpectedToken, "Expected pin's device name", false)
		return ref, Rejected
	}
	ref.device = p.cur.ID

	if !p.getNext() {
		if ctx == inConnection {
			p.throw(diag.SynUnexpectedEOF, expectedPinEnd, true)
		} else {
			p.throw(diag.SynUnexpectedEOF, "Expected ',' or ';'", true)
		}
		return ref, UnexpectedEnd
	}

	// без суффикса: единственный выход устройства
	switch {
	case ctx == inConnection && (p.at(token.Semicolon) || p.at(token.Connect)),
		ctx == inMonitor && (p.at(token.Comma) || p.at(token.Semicolon)):
		ref.output = true
		return ref, Accepted
	}

	if !p.at(token.Dot) {
		if ctx == inConnection {
			p.throw(diag.SynUnexpectedToken, expectedPinEnd, false)
		} else {
			p.throw(diag.SynUnexpectedToken, "Expected '.', ',' or ';'", false)
		}
		return ref, Rejected
	}

	if !p.getNext() {
		p.throw(diag.SynUnexpectedEOF, "Expected pin name", true)
		return ref, UnexpectedEnd
	}
	switch {
	case p.cur.Kind.IsDTypeInput(), p.at(token.Ident):
		ref.pin = p.cur.ID
	case p.cur.Kind.IsDTypeOutput():
		ref.pin = p.cur.ID
		ref.output = true
	default:
		p.throw(diag.SynUnexpectedToken, "Expected pin name", false)
		return ref, Rejected
	}
	p.getNext()
	return ref, Accepted
}
