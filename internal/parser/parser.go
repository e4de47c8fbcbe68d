package parser

import (
	"logsim/internal/devices"
	"logsim/internal/diag"
	"logsim/internal/monitors"
	"logsim/internal/names"
	"logsim/internal/network"
	"logsim/internal/token"
	"logsim/internal/trace"
)

// SymbolSource yields symbols until it reports false.
// *scanner.Scanner satisfies it.
type SymbolSource interface {
	Next() (token.Symbol, bool)
}

// DeviceMaker creates devices. *devices.Devices satisfies it.
type DeviceMaker interface {
	MakeDevice(id token.NameID, kind token.Kind, param int, hasParam bool) devices.Status
}

// Connector wires pins. *network.Network satisfies it.
type Connector interface {
	MakeConnection(dev1, pin1, dev2, pin2 token.NameID) network.Status
	CheckConnectivity() bool
}

// MonitorMaker registers monitors. *monitors.Monitors satisfies it.
type MonitorMaker interface {
	MakeMonitor(dev, pin token.NameID) monitors.Status
}

// Options configures a Parser. Nil collaborators skip the matching semantic step.
type Options struct {
	Devices  DeviceMaker
	Network  Connector
	Monitors MonitorMaker

	// MaxInputs is the gate input limit quoted in diagnostics (0 means 16).
	MaxInputs int

	Tracer     trace.Tracer
	ParentSpan uint64
}

// Parser — состояние парсера на один файл
type Parser struct {
	src   SymbolSource
	names *names.Table
	errs  *diag.Errors
	opts  Options

	cur  *token.Symbol // текущий символ, nil после конца потока
	prev *token.Symbol // последний символ перед cur

	syntaxValid bool // false после первой ошибки
	depth       int  // глубина вложенности текущей продукции

	tracer trace.Tracer
}

// New creates a parser over src and reads the first symbol.
// Diagnostics are appended to errs; nt resolves number spellings.
func New(src SymbolSource, nt *names.Table, errs *diag.Errors, opts Options) *Parser {
	if errs == nil {
		errs = diag.NewErrors()
	}
	if opts.MaxInputs <= 0 {
		opts.MaxInputs = devices.DefaultMaxInputs
	}
	tr := opts.Tracer
	if tr == nil {
		tr = trace.Nop
	}
	p := &Parser{
		src:         src,
		names:       nt,
		errs:        errs,
		opts:        opts,
		syntaxValid: true,
		tracer:      tr,
	}
	p.getNext()
	return p
}

// ParseNetwork parses a whole definition file.
// It returns true only if no error-severity diagnostic was raised.
func (p *Parser) ParseNetwork() bool {
	span := trace.Begin(p.tracer, trace.ScopeFile, "parse", p.opts.ParentSpan)
	defer func() {
		span.WithExtra("diagnostics", itoa(p.errs.Len())).End(validity(p.syntaxValid))
	}()

	switch p.ParseDevicesBlock() {
	case UnexpectedEnd:
		p.syntaxValid = false
		return false
	case Rejected:
		p.syntaxValid = false
		if !p.skipToBlock(token.KwConnections) {
			return false
		}
	}

	switch p.ParseConnectionsBlock() {
	case UnexpectedEnd:
		p.syntaxValid = false
		return false
	case Rejected:
		p.syntaxValid = false
		if !p.skipToBlock(token.KwMonitors) {
			return false
		}
	}

	if p.syntaxValid && p.opts.Network != nil && !p.opts.Network.CheckConnectivity() {
		p.report(diag.SemFloatingInput, "Some pins are not connected", false, true)
	}

	if p.ParseMonitorsBlock() != Accepted {
		p.syntaxValid = false
		return false
	}
	return p.syntaxValid
}

// SyntaxValid reports whether no error has been raised so far.
func (p *Parser) SyntaxValid() bool {
	return p.syntaxValid
}

// Errors returns the collector the parser reports into.
func (p *Parser) Errors() *diag.Errors {
	return p.errs
}

// Current returns the symbol under the parser, or nil at end of input.
func (p *Parser) Current() *token.Symbol {
	return p.cur
}

func validity(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
