package devices

import (
	"testing"

	"logsim/internal/names"
	"logsim/internal/token"
)

func TestMakeDeviceStatuses(t *testing.T) {
	tests := []struct {
		name     string
		kind     token.Kind
		param    int
		hasParam bool
		want     Status
	}{
		{"and ok", token.DevAnd, 2, true, OK},
		{"and missing param", token.DevAnd, 0, false, ParameterRequired},
		{"and zero inputs", token.DevAnd, 0, true, ParameterOutOfRange},
		{"nand too many", token.DevNand, 17, true, ParameterOutOfRange},
		{"nor max", token.DevNor, 16, true, OK},
		{"xor ok", token.DevXor, 0, false, OK},
		{"xor with param", token.DevXor, 2, true, ParameterNotAllowed},
		{"not ok", token.DevNot, 0, false, OK},
		{"dtype with param", token.DevDType, 1, true, ParameterNotAllowed},
		{"clock ok", token.DevClock, 3, true, OK},
		{"clock zero", token.DevClock, 0, true, ParameterOutOfRange},
		{"clock missing", token.DevClock, 0, false, ParameterRequired},
		{"switch low", token.DevSwitch, 0, true, OK},
		{"switch two", token.DevSwitch, 2, true, ParameterOutOfRange},
		{"switch missing", token.DevSwitch, 0, false, ParameterRequired},
		{"bad type", token.Ident, 0, false, InvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := names.New()
			d := New(nt)
			id := nt.LookupOrInsert("DEV")
			if got := d.MakeDevice(id, tt.kind, tt.param, tt.hasParam); got != tt.want {
				t.Fatalf("MakeDevice = %v, want %v", got, tt.want)
			}
			wantLen := 0
			if tt.want == OK {
				wantLen = 1
			}
			if d.Len() != wantLen {
				t.Errorf("Len = %d, want %d", d.Len(), wantLen)
			}
		})
	}
}

func TestNameClash(t *testing.T) {
	nt := names.New()
	d := New(nt)
	id := nt.LookupOrInsert("A")
	if st := d.MakeDevice(id, token.DevXor, 0, false); st != OK {
		t.Fatalf("first MakeDevice = %v", st)
	}
	if st := d.MakeDevice(id, token.DevNot, 0, false); st != DeviceAlreadyExists {
		t.Fatalf("second MakeDevice = %v, want DEVICE_ALREADY_EXISTS", st)
	}
}

func TestPins(t *testing.T) {
	nt := names.New()
	d := New(nt)
	g := nt.LookupOrInsert("G")
	ff := nt.LookupOrInsert("FF")
	d.MakeDevice(g, token.DevAnd, 3, true)
	d.MakeDevice(ff, token.DevDType, 0, false)

	gate, _ := d.Get(g)
	if len(gate.InputIDs) != 3 {
		t.Fatalf("gate inputs = %d, want 3", len(gate.InputIDs))
	}
	for i, want := range []string{"I1", "I2", "I3"} {
		if got := nt.MustString(gate.InputIDs[i]); got != want {
			t.Errorf("input %d = %q, want %q", i, got, want)
		}
	}
	if !gate.HasOutput(NoPin) || gate.HasInput(NoPin) {
		t.Errorf("gate must have a single unnamed output")
	}

	flip, _ := d.Get(ff)
	clk, _ := nt.Query("CLK")
	q, _ := nt.Query("QBAR")
	if !flip.HasInput(clk) || !flip.HasOutput(q) || flip.HasOutput(NoPin) {
		t.Errorf("unexpected DTYPE pins: in=%v out=%v", flip.InputIDs, flip.OutputIDs)
	}
	if _, ok := flip.Driver(clk); ok {
		t.Errorf("fresh input must be unconnected")
	}
	if got := len(d.OfKind(token.DevDType)); got != 1 {
		t.Errorf("OfKind(DTYPE) = %d, want 1", got)
	}
}

func TestWithMaxInputs(t *testing.T) {
	nt := names.New()
	d := New(nt, WithMaxInputs(4))
	if st := d.MakeDevice(nt.LookupOrInsert("A"), token.DevOr, 5, true); st != ParameterOutOfRange {
		t.Fatalf("MakeDevice = %v, want PARAMETER_OUT_OF_RANGE", st)
	}
}
