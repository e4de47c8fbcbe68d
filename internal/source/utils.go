package source

import (
	"fmt"
	"path/filepath"
	"slices"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены (true, если хотя бы одна).
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// normalizeNFC приводит текст к NFC, чтобы одинаковые имена устройств
// интернировались в один id независимо от способа набора.
func normalizeNFC(content []byte) ([]byte, bool) {
	if norm.NFC.IsNormal(content) {
		return content, false
	}
	return norm.NFC.Bytes(content), true
}

// buildLineTables splits chars after every '\n' (a trailing chunk without a
// newline is a line too) and returns per-line lengths and end offsets.
// The last line is extended by one to represent end of file.
func buildLineTables(chars []rune) (lengths, ends []uint32) {
	lengths = make([]uint32, 0, 16)
	start := 0
	for i, r := range chars {
		if r == '\n' {
			lengths = append(lengths, toU32(i+1-start))
			start = i + 1
		}
	}
	if start < len(chars) {
		lengths = append(lengths, toU32(len(chars)-start))
	}

	ends = make([]uint32, len(lengths))
	var acc uint32
	for i, l := range lengths {
		acc += l
		ends[i] = acc - 1
	}
	// EOF
	ends[len(ends)-1]++
	lengths[len(lengths)-1]++
	return lengths, ends
}

func toU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
