package parser

import (
	"slices"
	"strings"
	"testing"

	"logsim/internal/devices"
	"logsim/internal/diag"
	"logsim/internal/token"
)

func TestDeviceStatement(t *testing.T) {
	tests := []struct {
		name  string
		words string
		want  Outcome
		descs []string
	}{
		{"two switches", "A , B = SWITCH ;", Accepted, nil},
		{"missing type", "A = ;", Rejected, []string{"Expected device type"}},
		{"three nots", "A , B , C = NOT ;", Accepted, nil},
		{"missing equals", "A , B , C SWITCH ;", Rejected, []string{"Expected ',' or '='"}},
		{"trailing name", "A , B , C = SWITCH < 1 > A", Rejected, []string{"Expected ';'"}},
		{"dangling comma", "A ,", UnexpectedEnd, []string{"Expected device name"}},
		{"missing semicolon", "A = AND < 2 >", UnexpectedEnd, []string{""}},
		{"param not closed", "A = AND < 2 ;", Rejected, []string{"Expected '>'"}},
		{"param not a number", "A = CLOCK < X > ;", Rejected, []string{"Expected number parameter"}},
		{"bad param opener", "A = CLOCK > ;", Rejected, []string{"Expected '<' or ';'"}},
		{"param at end", "A = DTYPE <", UnexpectedEnd, []string{"Expected number parameter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, errs := newWordsParser(strings.Fields(tt.words)...)
			if got := p.parseDeviceStatement(); got != tt.want {
				t.Fatalf("outcome = %s, want %s (%s)", got, tt.want, diagnosticsSummary(errs))
			}
			if got := descriptions(errs); !slices.Equal(got, tt.descs) {
				t.Fatalf("descriptions = %q, want %q", got, tt.descs)
			}
		})
	}
}

func TestDeviceTypeParameter(t *testing.T) {
	p, errs := newWordsParser("CLOCK", "<", "99999999999999999999999", ">", ";")
	dt, res := p.parseDeviceType()
	if res != Accepted {
		t.Fatalf("outcome = %s (%s)", res, diagnosticsSummary(errs))
	}
	if !dt.hasParam || dt.param <= 0 {
		t.Fatalf("overflowing parameter must saturate, got %+v", dt)
	}
	if !p.at(token.Semicolon) {
		t.Fatalf("';' must remain current")
	}
}

func TestDeviceTypeUnicodeParameter(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{"１２", 12},
		{"٣", 3},
		{"0９", 9},
		{"𝟗", 9},
	}
	for _, tt := range tests {
		p, errs := newWordsParser("CLOCK", "<", tt.digits, ">", ";")
		dt, res := p.parseDeviceType()
		if res != Accepted {
			t.Fatalf("%q: outcome = %s (%s)", tt.digits, res, diagnosticsSummary(errs))
		}
		if dt.param != tt.want {
			t.Errorf("%q: param = %d, want %d", tt.digits, dt.param, tt.want)
		}
	}
}

func TestPin(t *testing.T) {
	tests := []struct {
		name   string
		words  []string
		want   Outcome
		output bool
		noPin  bool
	}{
		{"bare device", []string{"A", "-"}, Accepted, true, true},
		{"bare device before semicolon", []string{"A", ";"}, Accepted, true, true},
		{"gate input", []string{"A", ".", "I1"}, Accepted, false, false},
		{"dtype output", []string{"A", ".", "QBAR"}, Accepted, true, false},
		{"dtype input", []string{"A", ".", "CLK"}, Accepted, false, false},
		{"missing dot", []string{"A", "I1"}, Rejected, false, false},
		{"dot at end", []string{"A", "."}, UnexpectedEnd, false, false},
		{"keyword as pin", []string{"A", ".", "DEVICES"}, Rejected, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, errs := newWordsParser(tt.words...)
			ref, res := p.parsePin(inConnection)
			if res != tt.want {
				t.Fatalf("outcome = %s, want %s (%s)", res, tt.want, diagnosticsSummary(errs))
			}
			if res != Accepted {
				return
			}
			if ref.output != tt.output {
				t.Errorf("output = %v, want %v", ref.output, tt.output)
			}
			if (ref.pin == devices.NoPin) != tt.noPin {
				t.Errorf("pin = %d, want none: %v", ref.pin, tt.noPin)
			}
		})
	}
}

func TestPinMonitorContext(t *testing.T) {
	p, errs := newWordsParser("A", "-")
	if _, res := p.parsePin(inMonitor); res != Rejected {
		t.Fatalf("outcome = %s, want rejected", res)
	}
	if got := errs.At(0).Description; got != "Expected '.', ',' or ';'" {
		t.Fatalf("description = %q", got)
	}
}

func TestConnectionStatement(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  Outcome
		code  diag.Code
		desc  string
	}{
		{"second pin at end", []string{"A", "-", "B"}, UnexpectedEnd, diag.SynMissingSemicolon, ""},
		{"missing dash at end", []string{"A", ".", "asa"}, UnexpectedEnd, diag.SynUnexpectedEOF, "Expected '-'"},
		{"trailing name", []string{"A", "-", "B", ".", "Q", "A"}, Rejected, diag.SynUnexpectedToken, "Expected ';'"},
		{"missing dash", []string{"A", ";"}, Rejected, diag.SynUnexpectedToken, "Expected '-'"},
		{"missing semicolon after suffix", []string{"A", "-", "B", ".", "I1"}, UnexpectedEnd, diag.SynMissingSemicolon, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, errs := newWordsParser(tt.words...)
			if got := p.parseConnectionStatement(); got != tt.want {
				t.Fatalf("outcome = %s, want %s (%s)", got, tt.want, diagnosticsSummary(errs))
			}
			if errs.Len() != 1 {
				t.Fatalf("want exactly one diagnostic, got %s", diagnosticsSummary(errs))
			}
			d := errs.At(0)
			if d.Code != tt.code || d.Description != tt.desc {
				t.Fatalf("got [%s] %q, want [%s] %q", d.Code.ID(), d.Description, tt.code.ID(), tt.desc)
			}
			if p.SyntaxValid() {
				t.Fatalf("syntax still valid after %s", tt.want)
			}
		})
	}
}

func TestMissingSemicolonRewriteOnlyForFirstDiagnostic(t *testing.T) {
	p, errs := newWordsParser("A", "-", "B")
	errs.Add(diag.New(diag.LexInvalidCharacter, "Invalid character"), false, true)
	p.parseConnectionStatement()
	if errs.Len() != 2 {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(errs))
	}
	if d := errs.At(1); d.Description != expectedPinEnd {
		t.Fatalf("second pin diagnostic rewritten: %s", diagnosticsSummary(errs))
	}
}

func TestMonitorStatement(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  Outcome
		desc  string
	}{
		{"empty", nil, Accepted, ""},
		{"device at end", []string{"A"}, UnexpectedEnd, "Expected ',' or ';'"},
		{"dash", []string{"A", "-"}, Rejected, "Expected '.', ',' or ';'"},
		{"list without semicolon", []string{"A", ",", "B", ".", "Q"}, UnexpectedEnd, ""},
		{"list with stray dot", []string{"A", ",", "B", ".", "Q", "."}, UnexpectedEnd, "Expected ',' or ';'"},
		{"list", []string{"A", ",", "B", ".", "Q", ";"}, Accepted, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, errs := newWordsParser(tt.words...)
			if got := p.parseMonitorStatement(); got != tt.want {
				t.Fatalf("outcome = %s, want %s (%s)", got, tt.want, diagnosticsSummary(errs))
			}
			if tt.want == Accepted {
				if errs.Len() != 0 {
					t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(errs))
				}
				return
			}
			if errs.Len() != 1 || errs.At(0).Description != tt.desc {
				t.Fatalf("diagnostics = %s, want %q", diagnosticsSummary(errs), tt.desc)
			}
		})
	}
}

func TestMonitorMissingSemicolonCode(t *testing.T) {
	p, errs := newWordsParser("A", ",", "B", ".", "Q")
	p.parseMonitorStatement()
	if errs.At(0).Code != diag.SynMissingSemicolon {
		t.Fatalf("code = %s", errs.At(0).Code.ID())
	}
}
