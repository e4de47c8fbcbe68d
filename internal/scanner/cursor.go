package scanner

import (
	"fmt"

	"logsim/internal/source"
)

// Cursor представляет собой позицию в файле.
// Off is a character offset in [0, File.Len()]; File.Len() is end of file.
type Cursor struct {
	File *source.File
	Off  int
}

// NewCursor creates a new cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.File.Len()
}

// Position resolves the cursor offset into line and column.
func (c *Cursor) Position() source.Position {
	return c.File.Position(c.Off)
}

// Move sets the cursor to an absolute offset. It panics outside [0, Len()].
func (c *Cursor) Move(off int) {
	if off < 0 || off > c.File.Len() {
		panic(fmt.Sprintf("scanner: cursor offset %d outside [0,%d]", off, c.File.Len()))
	}
	c.Off = off
}

// Read returns up to n characters at the cursor and moves past them.
// ok is false only when the cursor is already at end of file.
func (c *Cursor) Read(n int) (text string, ok bool) {
	return c.ReadAt(c.Off, n, false)
}

// Peek is Read without moving the cursor.
func (c *Cursor) Peek(n int) (text string, ok bool) {
	return c.ReadAt(c.Off, n, true)
}

// ReadAt reads up to n characters starting at start. With reset the cursor
// returns to where it was, otherwise it ends just past the returned text.
// A start past end of file or a negative n is a programmer error.
func (c *Cursor) ReadAt(start, n int, reset bool) (text string, ok bool) {
	if n < 0 {
		panic(fmt.Sprintf("scanner: negative read size %d", n))
	}
	old := c.Off
	c.Move(start)
	if c.EOF() {
		if reset {
			c.Off = old
		}
		return "", false
	}
	end := min(c.Off+n, c.File.Len())
	text = c.File.Slice(c.Off, end)
	if reset {
		c.Off = old
	} else {
		c.Off = end
	}
	return text, true
}

// NextChar returns the next character satisfying pred and moves past it.
func (c *Cursor) NextChar(pred func(rune) bool) (rune, bool) {
	for !c.EOF() {
		r := c.File.At(c.Off)
		c.Off++
		if pred(r) {
			return r, true
		}
	}
	return 0, false
}

// AdvanceToNextChar moves onto (not past) the next character satisfying pred,
// or to end of file.
func (c *Cursor) AdvanceToNextChar(pred func(rune) bool) {
	for !c.EOF() && !pred(c.File.At(c.Off)) {
		c.Off++
	}
}

// AdvancePastLiteral moves just past the next occurrence of target, or to
// end of file when there is none.
func (c *Cursor) AdvancePastLiteral(target string) {
	width := len([]rune(target))
	for {
		next, ok := c.Peek(width)
		if !ok {
			return
		}
		if next == target {
			c.Off += width
			return
		}
		c.Off++
	}
}

// NextChunk moves onto the next character satisfying start, then consumes
// characters until end holds. The terminating character is not consumed.
// The chunk has at least one character when a start character exists.
func (c *Cursor) NextChunk(start, end func(rune) bool) string {
	c.AdvanceToNextChar(start)
	if c.EOF() {
		return ""
	}
	from := c.Off
	c.Off++
	c.AdvanceToNextChar(end)
	return c.File.Slice(from, c.Off)
}

// NextNumber returns the next run of digits. Leading zeros are kept.
func (c *Cursor) NextNumber() string {
	return c.NextChunk(isDigit, func(r rune) bool { return !isDigit(r) })
}

// NextName returns the next [letter_][letter digit _]* run.
func (c *Cursor) NextName() string {
	return c.NextChunk(isNameStart, func(r rune) bool { return !isNameContinue(r) })
}
