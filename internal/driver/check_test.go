package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"logsim/internal/diag"
	"logsim/internal/source"
)

const circuit = `DEVICES:
SW1, SW2 = SWITCH<0>;
A = AND<2>;
CONNECTIONS:
SW1 - A.I1;
A.I2 - SW2;
MONITORS:
A;
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestCheckAcceptsCircuit(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.def", circuit)
	res, err := Check(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected OK, got %d diagnostics", res.Errors.Len())
	}
	want := Stats{Devices: 3, Connections: 2, Monitors: 1}
	if res.Stats != want {
		t.Fatalf("stats = %+v, want %+v", res.Stats, want)
	}
	if res.Names == nil || res.Network == nil {
		t.Fatalf("fresh result must carry the model")
	}
}

func TestCheckLexicalErrorFailsCheck(t *testing.T) {
	f := source.FromBytes("lex.def", []byte("$"+circuit))
	res := CheckFile(context.Background(), f, Options{})
	if !res.Parsed {
		t.Fatalf("invalid character must not reject the parse")
	}
	if res.OK() {
		t.Fatalf("lexical error must fail the check")
	}
	if got := res.Errors.At(0).Code; got != diag.LexInvalidCharacter {
		t.Fatalf("code = %v, want LexInvalidCharacter", got)
	}
}

func TestCheckSyntaxError(t *testing.T) {
	f := source.FromBytes("bad.def", []byte("DEVICES:\nA = AND<2>\nCONNECTIONS:\n"))
	res := CheckFile(context.Background(), f, Options{})
	if res.OK() {
		t.Fatalf("expected failure")
	}
	if !res.Errors.HasErrors() {
		t.Fatalf("expected error diagnostics")
	}
}

func TestCheckMaxInputs(t *testing.T) {
	src := "DEVICES:\nA = AND<3>;\nCONNECTIONS:\n"
	f := source.FromBytes("gate.def", []byte(src))
	res := CheckFile(context.Background(), f, Options{MaxInputs: 2})
	if res.OK() {
		t.Fatalf("AND<3> must be rejected with a fan-in limit of 2")
	}
}

func TestCheckMissingFile(t *testing.T) {
	_, err := Check(context.Background(), filepath.Join(t.TempDir(), "none.def"), Options{})
	if err == nil {
		t.Fatalf("expected load error")
	}
}

func TestLoadFailureResult(t *testing.T) {
	res := loadFailure("x.def", os.ErrNotExist)
	if res.OK() {
		t.Fatalf("load failure must not be OK")
	}
	if res.Errors.Len() != 1 || res.Errors.At(0).Code != diag.IOLoadFileError {
		t.Fatalf("unexpected diagnostics")
	}
	if res.Errors.At(0).Symbol != nil {
		t.Fatalf("load failure has no position")
	}
}

func TestTokenizeFile(t *testing.T) {
	res := TokenizeFile(source.FromBytes("t.def", []byte("A = AND<2>;")))
	if got := len(res.Symbols); got != 7 {
		t.Fatalf("symbols = %d, want 7", got)
	}
	if res.Errors.Len() != 0 {
		t.Fatalf("unexpected diagnostics")
	}
}
