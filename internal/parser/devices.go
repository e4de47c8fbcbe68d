package parser

import (
	"logsim/internal/diag"
	"logsim/internal/token"
	"logsim/internal/trace"
)

// deviceType is the right-hand side of a device statement.
type deviceType struct {
	kind     token.Kind
	param    int
	hasParam bool
}

// ParseDevicesBlock parses "DEVICES" ":" device_stmt {device_stmt}.
func (p *Parser) ParseDevicesBlock() (out Outcome) {
	p.enter()
	defer p.leave()
	span := trace.Begin(p.tracer, trace.ScopeBlock, "devices", p.opts.ParentSpan)
	defer func() { span.End(out.String()) }()

	if p.cur == nil {
		p.throw(diag.SynUnexpectedEOF, "Missing DEVICES block", true)
		return UnexpectedEnd
	}
	if !p.at(token.KwDevices) {
		p.throw(diag.SynNoDevices, "Missing DEVICES block", false)
		return Rejected
	}
	if !p.getNext() {
		p.throw(diag.SynUnexpectedEOF, "Expected ':' after DEVICES", true)
		return UnexpectedEnd
	}
	if !p.at(token.Colon) {
		p.throw(diag.SynUnexpectedToken, "Expected ':' after DEVICES", false)
		return Rejected
	}
	if !p.getNext() {
		p.throw(diag.SynNoDevices, "Empty DEVICES block", true)
		return UnexpectedEnd
	}

	// первая инструкция обязательна
	switch p.parseDeviceStatement() {
	case UnexpectedEnd:
		p.throw(diag.SynNoDevices, "Empty DEVICES block", false)
		return UnexpectedEnd
	case Rejected:
		switch p.skipToEndOfLine() {
		case skipNextBlock:
			return Rejected
		case skipEOF:
			p.throw(diag.SynNoDevices, "Empty DEVICES block", false)
			return UnexpectedEnd
		}
		p.getNext()
	}

	for p.cur != nil && !p.at(token.KwConnections) {
		res := p.parseDeviceStatement()
		if res == Accepted {
			continue
		}
		switch p.skipToEndOfLine() {
		case skipNextBlock:
			return Rejected
		case skipEOF:
			return res
		}
		p.getNext()
	}
	return Accepted
}

// parseDeviceStatement parses name {"," name} "=" device_type ";".
func (p *Parser) parseDeviceStatement() Outcome {
	p.enter()
	defer p.leave()

	if p.cur == nil {
		p.throw(diag.SynUnexpectedEOF, "Expected device definition", true)
		return UnexpectedEnd
	}
	if !p.at(token.Ident) {
		p.throw(diag.SynUnexpectedToken, "Expected device name", false)
		return Rejected
	}
	ids := []token.NameID{p.cur.ID}
	p.getNext()

	for p.at(token.Comma) {
		if !p.getNext() {
			p.throw(diag.SynUnexpectedEOF, "Expected device name", true)
			return UnexpectedEnd
		}
		if !p.at(token.Ident) {
			p.throw(diag.SynUnexpectedToken, "Expected device name", false)
			return Rejected
		}
		ids = append(ids, p.cur.ID)
		p.getNext()
	}

	if p.cur == nil {
		p.throw(diag.SynUnexpectedEOF, "Expected ',' or '='", true)
		return UnexpectedEnd
	}
	if !p.at(token.Equal) {
		p.throw(diag.SynUnexpectedToken, "Expected ',' or '='", false)
		return Rejected
	}
	p.getNext()

	dt, res := p.parseDeviceType()
	if res != Accepted {
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
		p.applyDevices(ids, dt)
	}
	p.getNext()
	return Accepted
}

// parseDeviceType parses type ["<" number ">"]. The closing ';' stays current.
func (p *Parser) parseDeviceType() (deviceType, Outcome) {
	p.enter()
	defer p.leave()

	var dt deviceType
	if p.cur == nil {
		p.throw(diag.SynUnexpectedEOF, "Expected device type", true)
		return dt, UnexpectedEnd
	}
	if !p.cur.Kind.IsDeviceType() {
		p.throw(diag.SynUnexpectedToken, "Expected device type", false)
		return dt, Rejected
	}
	dt.kind = p.cur.Kind

	if !p.getNext() {
		p.throw(diag.SynUnexpectedEOF, "Expected '<' or ';'", true)
		return dt, UnexpectedEnd
	}
	if p.at(token.Semicolon) {
		return dt, Accepted
	}
	if !p.at(token.LeftAngle) {
		p.throw(diag.SynUnexpectedToken, "Expected '<' or ';'", true)
		return dt, Rejected
	}

	if !p.getNext() {
		p.throw(diag.SynUnexpectedEOF, "Expected number parameter", true)
		return dt, UnexpectedEnd
	}
	if !p.at(token.Number) {
		p.throw(diag.SynUnexpectedToken, "Expected number parameter", false)
		return dt, Rejected
	}
	dt.param = p.number()
	dt.hasParam = true

	if !p.getNext() {
		p.throw(diag.SynUnexpectedEOF, "Expected '>'", true)
		return dt, UnexpectedEnd
	}
	if !p.at(token.RightAngle) {
		p.throw(diag.SynUnexpectedToken, "Expected '>'", false)
		return dt, Rejected
	}
	p.getNext()
	return dt, Accepted
}
