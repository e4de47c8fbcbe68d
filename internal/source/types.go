package source

type (
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
	// FileWasEmpty marks a file whose content was empty and replaced by a single newline.
	FileWasEmpty
)

// File captures the content of one circuit definition file together with
// the per-line tables used to resolve character offsets.
//
// Offsets are character (rune) offsets, 0-based. The cursor may reach
// exactly Len() which denotes end of file.
type File struct {
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags

	chars       []rune
	lineLengths []uint32 // длина строки с '\n'; у последней строки +1 под EOF
	lineEnds    []uint32 // смещение последнего символа строки; у последней +1 под EOF
}

// Position is a resolved cursor position.
type Position struct {
	Offset int
	Line   int // 0-based
	Col    int // 0-based
}
