package diagfmt

import "logsim/internal/source"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short or relative paths, otherwise the basename.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// String returns the mode name understood by source.File.FormatPath.
func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	BaseDir   string // для PathModeRelative, "" - текущая директория
	ShowDepth bool   // отступ по глубине продукции
	Max       int    // обрезка вывода, не Errors; 0 - без ограничений
	Fallback  string // имя файла, если f == nil
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode PathMode
	BaseDir  string
	Max      int
	Fallback string
}

func displayPath(f *source.File, mode PathMode, baseDir, fallback string) string {
	if f == nil {
		if fallback != "" {
			return fallback
		}
		return "<input>"
	}
	return f.FormatPath(mode.String(), baseDir)
}
