package diag

import (
	"fmt"
	"strings"
)

// FormatGolden renders diagnostics in recording order, one per line, in a
// stable form suitable for golden comparisons:
//
//	error SYN2001 2:5 Unexpected token: Expected ';'
//
// Positions are 1-based; unpositioned diagnostics print "-".
func FormatGolden(items []Diagnostic) string {
	var sb strings.Builder
	for i, d := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		pos := "-"
		if d.Symbol != nil {
			pos = fmt.Sprintf("%d:%d", d.Symbol.Line+1, d.Symbol.Col+1)
		}
		fmt.Fprintf(&sb, "%s %s %s %s", strings.ToLower(d.Severity.String()), d.Code.ID(), pos, d.Code.Title())
		if d.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(d.Description)
		}
	}
	return sb.String()
}
