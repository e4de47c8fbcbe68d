package parser

import (
	"logsim/internal/diag"
	"logsim/internal/token"
	"logsim/internal/trace"
)

// ParseMonitorsBlock parses the optional "MONITORS" ":" [monitor_stmt].
// End of input where the block would start is accepted.
func (p *Parser) ParseMonitorsBlock() (out Outcome) {
	p.enter()
	defer p.leave()
	span := trace.Begin(p.tracer, trace.ScopeBlock, "monitors", p.opts.ParentSpan)
	defer func() { span.End(out.String()) }()

	if p.cur == nil {
		return Accepted
	}
	if !p.at(token.KwMonitors) {
		p.throw(diag.SynUnexpectedToken, "Expected MONITORS keyword or end of file", false)
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
	p.getNext()

	if res := p.parseMonitorStatement(); res != Accepted {
		return res
	}
	if p.cur != nil {
		p.throw(diag.SynUnexpectedToken, "Expected end of file", false)
		return Rejected
	}
	return Accepted
}

// parseMonitorStatement parses pin {"," pin} ";". An empty statement is accepted.
func (p *Parser) parseMonitorStatement() Outcome {
	p.enter()
	defer p.leave()

	if p.cur == nil {
		return Accepted
	}
	first, res := p.parsePin(inMonitor)
	if res != Accepted {
		return res
	}
	pins := []pinRef{first}

	for p.at(token.Comma) {
		p.getNext()
		next, res := p.parsePin(inMonitor)
		if res != Accepted {
			return res
		}
		pins = append(pins, next)
	}

	if p.cur == nil {
		p.throw(diag.SynMissingSemicolon, "", true)
		return UnexpectedEnd
	}
	if !p.at(token.Semicolon) {
		p.throw(diag.SynUnexpectedToken, "Expected ',' or ';'", false)
		return UnexpectedEnd
	}
	if p.syntaxValid {
		p.applyMonitors(pins)
	}
	p.getNext()
	return Accepted
}
