package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"logsim/internal/names"
	"logsim/internal/token"
)

type TokenOutput struct {
	Kind     string `json:"kind"`
	Category string `json:"category"`
	ID       int    `json:"id"`
	Text     string `json:"text,omitempty"`
	Line     int    `json:"line"`
	Col      int    `json:"col"`
}

func tokenText(nt *names.Table, sym token.Symbol) string {
	if nt == nil || sym.ID == token.NoName {
		return ""
	}
	s, _ := nt.GetString(sym.ID)
	return s
}

// FormatTokensPretty выводит символы в человекочитаемом формате
func FormatTokensPretty(w io.Writer, syms []token.Symbol, nt *names.Table) error {
	for i, sym := range syms {
		if _, err := fmt.Fprintf(w, "%3d: %-12s %-10s", i+1, sym.Kind.String(), sym.Kind.Category().String()); err != nil {
			return err
		}
		if text := tokenText(nt, sym); text != "" {
			fmt.Fprintf(w, " %q", text)
		}
		fmt.Fprintf(w, " id=%d at %d:%d\n", sym.ID, sym.Line+1, sym.Col+1)
	}
	return nil
}

// FormatTokensJSON выводит символы в JSON формате
func FormatTokensJSON(w io.Writer, syms []token.Symbol, nt *names.Table) error {
	output := make([]TokenOutput, 0, len(syms))
	for _, sym := range syms {
		output = append(output, TokenOutput{
			Kind:     sym.Kind.String(),
			Category: sym.Kind.Category().String(),
			ID:       int(sym.ID),
			Text:     tokenText(nt, sym),
			Line:     sym.Line + 1,
			Col:      sym.Col + 1,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
