package diagfmt

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"logsim/internal/diag"
	"logsim/internal/source"
)

type palette struct {
	err, warn, info, code, path, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan),
		code:  color.New(color.Faint),
		path:  color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Порядок: errs.Sorted(), то есть по строке, затем по глубине.
// Для каждой диагностики печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>[: <Description>]
//
// затем строку исходника и каретку под символом (если ShowCursor).
func Pretty(w io.Writer, errs *diag.Errors, f *source.File, opts PrettyOpts) error {
	if errs == nil {
		return nil
	}
	items := errs.Sorted()
	omitted := 0
	if opts.Max > 0 && len(items) > opts.Max {
		omitted = len(items) - opts.Max
		items = items[:opts.Max]
	}

	pal := newPalette(opts.Color)
	path := displayPath(f, opts.PathMode, opts.BaseDir, opts.Fallback)

	var sb strings.Builder
	prevLine := -1
	for _, d := range items {
		// подряд идущие диагностики одной строки печатаются без отступа
		grouped := d.Symbol != nil && d.Symbol.Line == prevLine
		prevLine = -1
		if d.Symbol != nil {
			prevLine = d.Symbol.Line
		}
		indent := ""
		if opts.ShowDepth && d.Depth > 1 && !grouped {
			indent = strings.Repeat("  ", d.Depth-1)
		}

		sb.WriteString(indent)
		if d.Symbol != nil {
			sb.WriteString(pal.path.Sprintf("%s:%d:%d", path, d.Symbol.Line+1, d.Symbol.Col+1))
		} else {
			sb.WriteString(pal.path.Sprint(path))
		}
		fmt.Fprintf(&sb, ": %s %s: %s", pal.severity(d.Severity).Sprint(d.Severity.String()), pal.code.Sprint(d.Code.ID()), d.Message())
		if d.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(d.Description)
		}
		sb.WriteByte('\n')

		if src, ok := sourceLine(f, d); ok {
			line := []rune(src)
			col := d.Symbol.Col
			if d.ShowEndOfWord {
				col = wordEnd(line, col)
			}
			sb.WriteString(indent + "  " + src + "\n")
			sb.WriteString(indent + "  " + padTo(line, col) + pal.caret.Sprint("^") + "\n")
		}
	}
	if omitted > 0 {
		fmt.Fprintf(&sb, "... %d more diagnostic(s) not shown\n", omitted)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// sourceLine returns the text under d without its newline.
func sourceLine(f *source.File, d diag.Diagnostic) (string, bool) {
	if f == nil || d.Symbol == nil || !d.ShowCursor {
		return "", false
	}
	if d.Symbol.Line < 0 || d.Symbol.Line >= f.LineCount() {
		return "", false
	}
	return strings.TrimRight(f.Line(d.Symbol.Line), "\r\n"), true
}

// wordEnd returns the column just past the symbol starting at col.
// Names and numbers run to the end of the word, operators are one character.
func wordEnd(line []rune, col int) int {
	if col < 0 || col >= len(line) {
		return col
	}
	if !isWordRune(line[col]) {
		return col + 1
	}
	for col < len(line) && isWordRune(line[col]) {
		col++
	}
	return col
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// padTo builds the whitespace that puts the caret under column col.
// Tabs are kept so the caret lines up with the echoed source line.
func padTo(line []rune, col int) string {
	var sb strings.Builder
	for i := 0; i < col; i++ {
		if i >= len(line) {
			sb.WriteByte(' ')
			continue
		}
		r := line[i]
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
