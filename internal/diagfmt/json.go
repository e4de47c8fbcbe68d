package diagfmt

import (
	"encoding/json"
	"io"

	"logsim/internal/diag"
	"logsim/internal/source"
)

// LocationJSON представляет позицию символа, 1-based.
type LocationJSON struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity    string        `json:"severity"`
	Code        string        `json:"code"`
	Message     string        `json:"message"`
	Description string        `json:"description,omitempty"`
	Location    *LocationJSON `json:"location,omitempty"`
	Depth       int           `json:"depth"`
	EndOfWord   bool          `json:"end_of_word,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	File        string           `json:"file"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
// Count и счётчики описывают весь набор, даже если Max обрезал список.
func BuildDiagnosticsOutput(errs *diag.Errors, f *source.File, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{
		File:        displayPath(f, opts.PathMode, opts.BaseDir, opts.Fallback),
		Diagnostics: make([]DiagnosticJSON, 0),
	}
	if errs == nil {
		return out
	}

	items := errs.Sorted()
	out.Count = len(items)
	out.Errors = errs.Count(diag.SevError)
	out.Warnings = errs.Count(diag.SevWarning)
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	for _, d := range items {
		dj := DiagnosticJSON{
			Severity:    d.Severity.String(),
			Code:        d.Code.ID(),
			Message:     d.Message(),
			Description: d.Description,
			Depth:       d.Depth,
			EndOfWord:   d.ShowEndOfWord,
		}
		if d.Symbol != nil {
			dj.Location = &LocationJSON{Line: d.Symbol.Line + 1, Col: d.Symbol.Col + 1}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	return out
}

// JSON форматирует диагностики одного файла в JSON.
func JSON(w io.Writer, errs *diag.Errors, f *source.File, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(errs, f, opts))
}

// JSONMany writes one document holding the reports of several files.
func JSONMany(w io.Writer, reports []DiagnosticsOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(struct {
		Files []DiagnosticsOutput `json:"files"`
	}{reports})
}
