package diag

// Reporter — минимальный контракт получения диагностик от сканера и парсера.
// *Errors реализует его напрямую.
type Reporter interface {
	Add(d Diagnostic, showEndOfWord, showCursor bool)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Add(Diagnostic, bool, bool) {}

// MultiReporter fans a diagnostic out to several reporters.
type MultiReporter []Reporter

func (m MultiReporter) Add(d Diagnostic, showEndOfWord, showCursor bool) {
	for _, r := range m {
		if r != nil {
			r.Add(d, showEndOfWord, showCursor)
		}
	}
}
