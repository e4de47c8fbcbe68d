package network

import (
	"testing"

	"logsim/internal/devices"
	"logsim/internal/names"
	"logsim/internal/token"
)

type fixture struct {
	nt  *names.Table
	dev *devices.Devices
	net *Network
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	nt := names.New()
	d := devices.New(nt)
	mk := func(name string, k token.Kind, p int, has bool) {
		if st := d.MakeDevice(nt.LookupOrInsert(name), k, p, has); st != devices.OK {
			t.Fatalf("MakeDevice(%s) = %v", name, st)
		}
	}
	mk("SW1", token.DevSwitch, 0, true)
	mk("SW2", token.DevSwitch, 1, true)
	mk("G", token.DevAnd, 2, true)
	mk("FF", token.DevDType, 0, false)
	return fixture{nt: nt, dev: d, net: New(d)}
}

func (f fixture) id(s string) token.NameID {
	id, ok := f.nt.Query(s)
	if !ok {
		return f.nt.LookupOrInsert(s)
	}
	return id
}

func TestMakeConnection(t *testing.T) {
	f := newFixture(t)
	no := devices.NoPin
	tests := []struct {
		name   string
		d1, p1 string
		d2, p2 string
		want   Status
	}{
		{"output to input", "SW1", "", "G", "I1", OK},
		{"input to output", "G", "I2", "SW2", "", OK},
		{"input already connected", "SW2", "", "G", "I1", InputAlreadyConnected},
		{"input already connected reversed", "G", "I1", "SW2", "", InputAlreadyConnected},
		{"input to input", "FF", "CLK", "G", "I1", InputToInput},
		{"fresh input to input", "FF", "CLK", "FF", "DATA", InputToInput},
		{"output to output", "SW1", "", "SW2", "", OutputToOutput},
		{"missing device", "NOPE", "", "G", "I1", DeviceNotFound},
		{"unknown first pin", "G", "I9", "SW1", "", FirstPinNotFound},
		{"dtype needs pin", "FF", "", "G", "I1", FirstPinNotFound},
		{"unknown second pin", "SW1", "", "FF", "Q9", SecondPinNotFound},
		{"output to dtype", "FF", "Q", "FF", "DATA", OK},
	}
	for _, tt := range tests {
		p1, p2 := no, no
		if tt.p1 != "" {
			p1 = f.id(tt.p1)
		}
		if tt.p2 != "" {
			p2 = f.id(tt.p2)
		}
		if got := f.net.MakeConnection(f.id(tt.d1), p1, f.id(tt.d2), p2); got != tt.want {
			t.Errorf("%s: MakeConnection = %v, want %v", tt.name, got, tt.want)
		}
	}
	if f.net.Len() != 3 {
		t.Errorf("Len = %d, want 3", f.net.Len())
	}

	out, ok := f.net.ConnectedOutput(f.id("G"), f.id("I1"))
	if !ok || out.Device != f.id("SW1") || out.Pin != no {
		t.Errorf("ConnectedOutput(G.I1) = %v,%v", out, ok)
	}
	out, ok = f.net.ConnectedOutput(f.id("G"), f.id("I2"))
	if !ok || out.Device != f.id("SW2") {
		t.Errorf("ConnectedOutput(G.I2) = %v,%v", out, ok)
	}
}

func TestCheckConnectivity(t *testing.T) {
	f := newFixture(t)
	if f.net.CheckConnectivity() {
		t.Fatalf("fresh network must have floating inputs")
	}
	if got := len(f.net.FloatingInputs()); got != 6 {
		t.Fatalf("FloatingInputs = %d, want 6", got)
	}
	no := devices.NoPin
	f.net.MakeConnection(f.id("SW1"), no, f.id("G"), f.id("I1"))
	f.net.MakeConnection(f.id("SW2"), no, f.id("G"), f.id("I2"))
	for _, in := range []string{"CLK", "SET", "CLEAR", "DATA"} {
		if st := f.net.MakeConnection(f.id("FF"), f.id(in), f.id("SW1"), no); st != OK {
			t.Fatalf("connect FF.%s = %v", in, st)
		}
	}
	if !f.net.CheckConnectivity() {
		t.Fatalf("all inputs are driven: %v", f.net.FloatingInputs())
	}
}
