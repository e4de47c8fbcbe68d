package fuzztests

import (
	"context"
	"testing"
	"time"

	"logsim/internal/devices"
	"logsim/internal/diag"
	"logsim/internal/monitors"
	"logsim/internal/names"
	"logsim/internal/network"
	"logsim/internal/parser"
	"logsim/internal/scanner"
	"logsim/internal/source"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func parse(input []byte) (bool, *diag.Errors) {
	file := source.FromBytes("fuzz.def", input)
	nt := names.New()
	errs := diag.NewErrors()
	devs := devices.New(nt)
	net := network.New(devs)
	p := parser.New(scanner.New(file, nt, errs), nt, errs, parser.Options{
		Devices:  devs,
		Network:  net,
		Monitors: monitors.New(devs),
	})
	return p.ParseNetwork(), errs
}

// FuzzParseNetwork checks that an accepted file carries no error other
// than lexical ones.
func FuzzParseNetwork(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		ok, errs := parse(clampInput(input))
		if !ok {
			return
		}
		for _, d := range errs.Items() {
			if d.Severity == diag.SevError && d.Code.Class() != diag.ClassLexical {
				t.Fatalf("accepted with %s: %s", d.Code.ID(), d.Description)
			}
		}
	})
}

// FuzzParserNoHang tests that recovery always reaches end of input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("DEVICES: A = AND<2>\nB = OR<2>;\nCONNECTIONS:")) // missing semicolon
	f.Add([]byte("DEVICES: ,,,,,,,,,,"))
	f.Add([]byte("MONITORS: A;"))
	f.Add([]byte("DEVICES: A = AND<2>; CONNECTIONS: A - - - - ;"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = parse(input)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
