package buffer

import (
	"strings"

	"github.com/notefall/editcore/engine/rope"
)

// LineEnding specifies the line ending style of a buffer.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the display name of the line ending.
func (le LineEnding) String() string {
	if le == LineEndingCRLF {
		return "CRLF"
	}
	return "LF"
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// DetectLineEnding returns CRLF if the text contains any CRLF sequence,
// LF otherwise.
func DetectLineEnding(text string) LineEnding {
	if strings.Contains(text, "\r\n") {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// Buffer is an editable sequence of text with line-indexed access.
// It owns its character data exclusively; a presentation layer reads
// through accessors rather than keeping a parallel copy.
//
// Buffer assumes a single caller at a time and holds no locks.
type Buffer struct {
	rope         rope.Rope
	lineEnding   LineEnding
	version      uint64
	modified     bool
	savedVersion uint64
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{rope: rope.New()}
}

// FromString creates a buffer with initial content.
// The line ending style is detected from the content and the text is
// normalized to LF internally.
func FromString(text string) *Buffer {
	return &Buffer{
		rope:       rope.FromString(normalize(text)),
		lineEnding: DetectLineEnding(text),
	}
}

// normalize converts CRLF sequences to LF.
func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Read operations

// Len returns the total character count.
func (b *Buffer) Len() int {
	return b.rope.Len()
}

// ByteLen returns the total byte count of the normalized text.
func (b *Buffer) ByteLen() int {
	return b.rope.ByteLen()
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return b.rope.LineCount()
}

// IsEmpty returns true if the buffer contains no text.
func (b *Buffer) IsEmpty() bool {
	return b.rope.IsEmpty()
}

// Line returns the text of a line without its trailing newline.
// Returns false if the line does not exist.
func (b *Buffer) Line(line int) (string, bool) {
	if line < 0 || line >= b.rope.LineCount() {
		return "", false
	}
	return b.rope.LineText(line), true
}

// LineLen returns the character length of a line, excluding the newline.
// Returns false if the line does not exist.
func (b *Buffer) LineLen(line int) (int, bool) {
	if line < 0 || line >= b.rope.LineCount() {
		return 0, false
	}
	return b.rope.LineEnd(line) - b.rope.LineStart(line), true
}

// Slice returns the text in the character range [start, end), clamped.
func (b *Buffer) Slice(start, end int) string {
	return b.rope.Slice(start, end)
}

// RuneAt returns the character at the given offset.
func (b *Buffer) RuneAt(offset int) (rune, bool) {
	return b.rope.RuneAt(offset)
}

// WordCount returns the number of whitespace-separated words.
func (b *Buffer) WordCount() int {
	return len(strings.Fields(b.rope.String()))
}

// Coordinate conversion

// LineColToChar converts a line/column position to a character offset.
// The column is clamped to the line length (excluding the newline for
// every line but the last). Returns false if the line does not exist.
func (b *Buffer) LineColToChar(line, col int) (int, bool) {
	if line < 0 || line >= b.rope.LineCount() {
		return 0, false
	}
	start := b.rope.LineStart(line)
	lineLen := b.rope.LineEnd(line) - start
	if col < 0 {
		col = 0
	}
	if col > lineLen {
		col = lineLen
	}
	return start + col, true
}

// CharToLineCol converts a character offset to a line/column position.
// The offset is clamped to the buffer length first, so the function is
// total.
func (b *Buffer) CharToLineCol(charIdx int) (line, col int) {
	p := b.rope.OffsetToPoint(charIdx)
	return p.Line, p.Column
}

// Write operations

// Insert inserts text at the given character offset.
// The offset is clamped into [0, Len()].
func (b *Buffer) Insert(charIdx int, text string) {
	if charIdx < 0 {
		charIdx = 0
	}
	if charIdx > b.rope.Len() {
		charIdx = b.rope.Len()
	}
	b.rope = b.rope.Insert(charIdx, normalize(text))
	b.touch()
}

// InsertRune inserts a single character at the given offset.
func (b *Buffer) InsertRune(charIdx int, r rune) {
	b.Insert(charIdx, string(r))
}

// InsertAt inserts text at a line/column position.
// Invalid positions insert at the end of the buffer.
func (b *Buffer) InsertAt(line, col int, text string) {
	idx, ok := b.LineColToChar(line, col)
	if !ok {
		idx = b.rope.Len()
	}
	b.Insert(idx, text)
}

// Delete removes the character range [start, end).
// Bounds are clamped; an empty range after clamping is a no-op.
func (b *Buffer) Delete(start, end int) {
	length := b.rope.Len()
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start >= end {
		return
	}
	b.rope = b.rope.Delete(start, end)
	b.touch()
}

// DeleteLineCol removes the range between two line/column positions.
func (b *Buffer) DeleteLineCol(startLine, startCol, endLine, endCol int) {
	start, ok := b.LineColToChar(startLine, startCol)
	if !ok {
		start = 0
	}
	end, ok := b.LineColToChar(endLine, endCol)
	if !ok {
		end = b.rope.Len()
	}
	b.Delete(start, end)
}

// Replace replaces the character range [start, end) with new text.
func (b *Buffer) Replace(start, end int, text string) {
	b.Delete(start, end)
	b.Insert(start, text)
}

// touch records a mutation.
func (b *Buffer) touch() {
	b.version++
	b.modified = true
}

// Serialization

// String returns the full content with the detected line ending restored.
func (b *Buffer) String() string {
	return b.StringWithEnding(b.lineEnding)
}

// StringWithEnding returns the full content using the given line ending.
func (b *Buffer) StringWithEnding(le LineEnding) string {
	content := b.rope.String()
	if le == LineEndingCRLF {
		return strings.ReplaceAll(content, "\n", "\r\n")
	}
	return content
}

// SetContent replaces the entire buffer content, re-detecting the line
// ending style.
func (b *Buffer) SetContent(text string) {
	b.lineEnding = DetectLineEnding(text)
	b.rope = rope.FromString(normalize(text))
	b.version++
	b.modified = true
}

// Buffer state

// Version returns the current version number. It increments on every
// mutation.
func (b *Buffer) Version() uint64 {
	return b.version
}

// IsModified returns true if the buffer has changed since the last save.
func (b *Buffer) IsModified() bool {
	return b.modified || b.version != b.savedVersion
}

// MarkSaved resets the modified baseline to the current version.
func (b *Buffer) MarkSaved() {
	b.modified = false
	b.savedVersion = b.version
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// SetLineEnding sets the line ending style used on output.
// This counts as a modification but does not change stored text.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.lineEnding = le
	b.version++
	b.modified = true
}
