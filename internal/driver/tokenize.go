package driver

import (
	"logsim/internal/diag"
	"logsim/internal/names"
	"logsim/internal/scanner"
	"logsim/internal/source"
	"logsim/internal/token"
)

type TokenizeResult struct {
	File    *source.File
	Names   *names.Table
	Symbols []token.Symbol
	Errors  *diag.Errors
}

// Tokenize loads path and scans it to the end.
func Tokenize(path string) (*TokenizeResult, error) {
	f, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return TokenizeFile(f), nil
}

// TokenizeFile scans f; lexical diagnostics land in Errors.
func TokenizeFile(f *source.File) *TokenizeResult {
	nt := names.New()
	errs := diag.NewErrors()
	return &TokenizeResult{
		File:    f,
		Names:   nt,
		Symbols: scanner.New(f, nt, errs).All(),
		Errors:  errs,
	}
}
