package parser

import (
	"slices"
	"strings"
	"testing"

	"logsim/internal/diag"
	"logsim/internal/token"
)

type blockCase struct {
	name  string
	words string
	want  Outcome
	descs []string
}

func runBlockCases(t *testing.T, cases []blockCase, parse func(*Parser) Outcome) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			p, errs := newWordsParser(strings.Fields(tt.words)...)
			if got := parse(p); got != tt.want {
				t.Fatalf("outcome = %s, want %s (%s)", got, tt.want, diagnosticsSummary(errs))
			}
			if got := descriptions(errs); !slices.Equal(got, tt.descs) {
				t.Fatalf("descriptions = %q, want %q", got, tt.descs)
			}
		})
	}
}

func TestDevicesBlock(t *testing.T) {
	runBlockCases(t, []blockCase{
		{"no input", "", UnexpectedEnd, []string{"Missing DEVICES block"}},
		{"wrong keyword", "CONNECTIONS", Rejected, []string{"Missing DEVICES block"}},
		{"keyword at end", "DEVICES", UnexpectedEnd, []string{"Expected ':' after DEVICES"}},
		{"missing colon", "DEVICES ;", Rejected, []string{"Expected ':' after DEVICES"}},
		{"header only", "DEVICES :", UnexpectedEnd, []string{"Empty DEVICES block"}},
		{"type as name", "DEVICES : CLOCK = AND", UnexpectedEnd, []string{"Expected device name", "Empty DEVICES block"}},
		{"two bad statements", "DEVICES : A = AD ; B C = AND ;", Accepted, []string{"Expected device type", "Expected ',' or '='"}},
		{"stops at next block", "DEVICES : A = AND < 2 > ; CONNECTIONS", Accepted, nil},
		{"bad first statement then next block", "DEVICES : CONNECTIONS", Rejected, []string{"Expected device name"}},
		{"bad later statement at end", "DEVICES : A = XOR ; B = FOO", Rejected, []string{"Expected device type"}},
	}, (*Parser).ParseDevicesBlock)
}

func TestDevicesBlockStopsAtConnections(t *testing.T) {
	p, _ := newWordsParser("DEVICES", ":", "A", "=", "XOR", ";", "CONNECTIONS")
	if got := p.ParseDevicesBlock(); got != Accepted {
		t.Fatalf("outcome = %s", got)
	}
	if !p.at(token.KwConnections) {
		t.Fatalf("current = %v, want CONNECTIONS", p.Current())
	}
	if !p.SyntaxValid() {
		t.Fatalf("syntax must stay valid")
	}
}

func TestDevicesBlockAggregatesInOrder(t *testing.T) {
	p, errs := newWordsParser(strings.Fields("DEVICES : A = AD ; B C = AND ;")...)
	p.ParseDevicesBlock()
	if errs.Len() != 2 {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(errs))
	}
	first, second := errs.At(0), errs.At(1)
	if first.Code != diag.SynUnexpectedToken || first.Message() != "Unexpected token" {
		t.Errorf("first = [%s] %s", first.Code.ID(), first.Message())
	}
	if first.Symbol == nil || first.Symbol.Col != 4 {
		t.Errorf("first symbol = %v, want AD at column 4", first.Symbol)
	}
	if second.Symbol == nil || second.Symbol.Col != 7 {
		t.Errorf("second symbol = %v, want C at column 7", second.Symbol)
	}
	// device type is one production deeper than the statement
	if first.Depth != second.Depth+1 {
		t.Errorf("depths = %d, %d", first.Depth, second.Depth)
	}
	if sorted := errs.Sorted(); sorted[0].Description != "Expected ',' or '='" {
		t.Errorf("sorted order = %q, %q", sorted[0].Description, sorted[1].Description)
	}
}

func TestConnectionsBlock(t *testing.T) {
	runBlockCases(t, []blockCase{
		{"no input", "", UnexpectedEnd, []string{"Missing CONNECTIONS block"}},
		{"wrong keyword", "MONITORS", Rejected, []string{"Missing CONNECTIONS block"}},
		{"missing colon", "CONNECTIONS A", Rejected, []string{"Expected ':'"}},
		{"keyword at end", "CONNECTIONS", UnexpectedEnd, []string{"Expected ':'"}},
		{"header only", "CONNECTIONS :", UnexpectedEnd, []string{"Empty CONNECTIONS block"}},
		{"two bad statements", "CONNECTIONS : A - AND ; C D", UnexpectedEnd, []string{"Expected pin's device name", "Expected '.', '-', or ';'"}},
		{"stops at monitors", "CONNECTIONS : A - B . I1 ; C . Q - D . I2 ; MONITORS", Accepted, nil},
		{"bad statement then monitors", "CONNECTIONS : A - B ; C = D ; MONITORS", Accepted, []string{"Expected '.', '-', or ';'"}},
		{"bad statement runs into block", "CONNECTIONS : A - B ; C C MONITORS", Rejected, []string{"Expected '.', '-', or ';'"}},
	}, (*Parser).ParseConnectionsBlock)
}

func TestMonitorsBlock(t *testing.T) {
	runBlockCases(t, []blockCase{
		{"absent", "", Accepted, nil},
		{"empty", "MONITORS :", Accepted, nil},
		{"keyword at end", "MONITORS", UnexpectedEnd, []string{"Expected ':'"}},
		{"missing colon", "MONITORS ;", Rejected, []string{"Expected ':'"}},
		{"misspelt keyword", "MONITOR", Rejected, []string{"Expected MONITORS keyword or end of file"}},
		{"one statement", "MONITORS : A , B . Q ;", Accepted, nil},
		{"second statement", "MONITORS : A ; B ;", Rejected, []string{"Expected end of file"}},
	}, (*Parser).ParseMonitorsBlock)
}
