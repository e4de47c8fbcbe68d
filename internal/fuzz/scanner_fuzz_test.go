package fuzztests

import (
	"testing"

	"logsim/internal/diag"
	"logsim/internal/names"
	"logsim/internal/scanner"
	"logsim/internal/source"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// FuzzScannerSymbols checks that scanning terminates, that every symbol
// lies inside the file and that end of input is sticky.
func FuzzScannerSymbols(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := source.FromBytes("fuzz.def", clampInput(input))
		nt := names.New()
		errs := diag.NewErrors()
		sc := scanner.New(file, nt, errs)

		// каждый символ занимает хотя бы один знак
		for i, sym := range sc.All() {
			if i > file.Len() {
				t.Fatalf("more symbols than characters")
			}
			if sym.Line < 0 || sym.Line >= file.LineCount() || sym.Col < 0 {
				t.Fatalf("symbol %v outside of file", sym)
			}
			if _, ok := nt.GetString(sym.ID); !ok {
				t.Fatalf("symbol %v has no interned text", sym)
			}
		}
		for range 3 {
			if _, ok := sc.GetSymbol(); ok {
				t.Fatalf("symbol after end of input")
			}
		}
		for _, d := range errs.Items() {
			if d.Code != diag.LexInvalidCharacter {
				t.Fatalf("scanner reported %s", d.Code.ID())
			}
		}
	})
}
