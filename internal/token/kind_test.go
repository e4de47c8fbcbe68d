package token_test

import (
	"testing"

	"logsim/internal/token"
)

func TestCategory(t *testing.T) {
	cases := map[token.Kind]token.Category{
		token.Ident:         token.CatIdentifier,
		token.Number:        token.CatNumber,
		token.KwDevices:     token.CatKeyword,
		token.KwMonitors:    token.CatKeyword,
		token.Equal:         token.CatOperator,
		token.Comma:         token.CatOperator,
		token.DevAnd:        token.CatDeviceType,
		token.DevNot:        token.CatDeviceType,
		token.PinClk:        token.CatDTypeInput,
		token.PinData:       token.CatDTypeInput,
		token.PinQ:          token.CatDTypeOutput,
		token.PinQBar:       token.CatDTypeOutput,
		token.Invalid:       token.CatIdentifier,
		token.KwConnections: token.CatKeyword,
	}
	for k, want := range cases {
		if got := k.Category(); got != want {
			t.Errorf("%v.Category() = %v, want %v", k, got, want)
		}
	}
}

func TestReservedOrderAndText(t *testing.T) {
	want := []string{
		"DEVICES", "CONNECTIONS", "MONITORS",
		"=", "-", ".", "<", ">", ":", ";", ",",
		"AND", "OR", "NOR", "NAND", "XOR", "DTYPE", "CLOCK", "SWITCH", "NOT",
		"CLK", "SET", "CLEAR", "DATA",
		"Q", "QBAR",
	}
	if len(token.Reserved) != len(want) {
		t.Fatalf("len(Reserved) = %d, want %d", len(token.Reserved), len(want))
	}
	for i, k := range token.Reserved {
		if k.Text() != want[i] {
			t.Errorf("Reserved[%d] = %q, want %q", i, k.Text(), want[i])
		}
		got, ok := token.LookupReserved(want[i])
		if !ok || got != k {
			t.Errorf("LookupReserved(%q) = %v,%v want %v", want[i], got, ok, k)
		}
		if !k.IsReserved() {
			t.Errorf("%v must be reserved", k)
		}
	}
}

func TestLookupReservedNegative(t *testing.T) {
	for _, s := range []string{"devices", "Devices", "AD", "I1", "", "/", "_"} {
		if k, ok := token.LookupReserved(s); ok {
			t.Errorf("LookupReserved(%q) = %v, want not found", s, k)
		}
	}
}

func TestSymbolEquality(t *testing.T) {
	a := token.Symbol{Kind: token.Ident, ID: 0, Line: 0, Col: 0}
	b := token.Symbol{Kind: token.Ident, ID: 0, Line: 0, Col: 0}
	c := token.Symbol{Kind: token.Ident, ID: 1, Line: 0, Col: 0}
	if a != b {
		t.Errorf("expected %v == %v", a, b)
	}
	if a == c {
		t.Errorf("expected %v != %v", a, c)
	}
}

func TestOperatorChars(t *testing.T) {
	for _, r := range "=-.<>:;," {
		if !token.IsOperatorChar(r) {
			t.Errorf("%q must be an operator char", r)
		}
	}
	for _, r := range "/*!_a1 " {
		if token.IsOperatorChar(r) {
			t.Errorf("%q must not be an operator char", r)
		}
	}
}
