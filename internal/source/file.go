package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Load reads a file from disk, normalizes BOM/CRLF/NFC and builds line tables.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := newFile(path, content)
	return f, nil
}

// FromBytes builds a virtual file from memory (tests, stdin).
func FromBytes(name string, content []byte) *File {
	f := newFile(name, content)
	f.Flags |= FileVirtual
	return f
}

func newFile(path string, content []byte) *File {
	var flags FileFlags

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	content, hadNFC := normalizeNFC(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if hadNFC {
		flags |= FileNormalizedNFC
	}
	// пустой файл эквивалентен файлу из одного перевода строки
	if len(content) == 0 {
		content = []byte{'\n'}
		flags |= FileWasEmpty
	}

	chars := []rune(string(content))
	lengths, ends := buildLineTables(chars)
	return &File{
		Path:        normalizePath(path),
		Content:     content,
		Hash:        sha256.Sum256(content),
		Flags:       flags,
		chars:       chars,
		lineLengths: lengths,
		lineEnds:    ends,
	}
}

// Len returns the number of characters in the file.
func (f *File) Len() int {
	return len(f.chars)
}

// At returns the character at off. off must be in [0, Len()).
func (f *File) At(off int) rune {
	return f.chars[off]
}

// Slice returns the text between two character offsets, clamped to the file.
func (f *File) Slice(start, end int) string {
	if end > len(f.chars) {
		end = len(f.chars)
	}
	if start >= end {
		return ""
	}
	return string(f.chars[start:end])
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.lineLengths)
}

// Position resolves a character offset into a 0-based line and column.
// off may equal Len(), which is the end-of-file position.
// It panics when off is negative or past end of file.
func (f *File) Position(off int) Position {
	if off < 0 {
		panic(fmt.Sprintf("source: negative offset %d", off))
	}
	if off > len(f.chars) {
		panic(fmt.Sprintf("source: offset %d past end of file (%d)", off, len(f.chars)))
	}
	target := toU32(off)
	// бинпоиск: первая строка, у которой конец >= off
	line := sort.Search(len(f.lineEnds), func(i int) bool {
		return f.lineEnds[i] >= target
	})
	col := int(target) - int(f.lineEnds[line]) + int(f.lineLengths[line]) - 1
	return Position{Offset: off, Line: line, Col: col}
}

// Line returns the raw text of line lineno (0-based), including its newline.
// It panics when lineno is out of range.
func (f *File) Line(lineno int) string {
	if lineno < 0 || lineno >= len(f.lineLengths) {
		panic(fmt.Sprintf("source: line %d out of range [0,%d)", lineno, len(f.lineLengths)))
	}
	start := 0
	if lineno > 0 {
		start = int(f.lineEnds[lineno-1]) + 1
	}
	end := int(f.lineEnds[lineno]) + 1
	return f.Slice(start, end)
}

// LineAt returns the line containing off.
func (f *File) LineAt(off int) string {
	return f.Line(f.Position(off).Line)
}

// FormatPath форматирует путь к файлу в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return normalizePath(abs)
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return f.Path
		}
		if rel, err := filepath.Rel(baseDir, abs); err == nil {
			return normalizePath(rel)
		}
		return f.Path

	case "basename":
		return filepath.Base(f.Path)

	case "auto":
		// Auto: если путь короткий или относительный - как есть, иначе basename
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.Base(f.Path)

	default:
		return f.Path
	}
}
