package cursor

import (
	"unicode"

	"github.com/notefall/editcore/engine/buffer"
)

// lineLen returns the character length of a line, 0 for lines that do
// not exist.
func lineLen(buf *buffer.Buffer, line int) int {
	n, _ := buf.LineLen(line)
	return n
}

// Clamp forces the position into the buffer: line into
// [0, LineCount()-1] and column into [0, lineLength]. This is the
// canonical validity check applied whenever a position arrives from
// outside the engine.
func Clamp(buf *buffer.Buffer, pos Position) Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if max := buf.LineCount() - 1; pos.Line > max {
		pos.Line = max
	}
	if pos.Column < 0 {
		pos.Column = 0
	}
	if max := lineLen(buf, pos.Line); pos.Column > max {
		pos.Column = max
	}
	return pos
}

// Left moves one character left, wrapping to the end of the previous
// line. At the document start it is a no-op.
func Left(buf *buffer.Buffer, pos Position) Position {
	pos = Clamp(buf, pos)
	if pos.Column > 0 {
		pos.Column--
		return pos
	}
	if pos.Line > 0 {
		pos.Line--
		pos.Column = lineLen(buf, pos.Line)
	}
	return pos
}

// Right moves one character right, wrapping to the start of the next
// line. At the document end it is a no-op.
func Right(buf *buffer.Buffer, pos Position) Position {
	pos = Clamp(buf, pos)
	if pos.Column < lineLen(buf, pos.Line) {
		pos.Column++
		return pos
	}
	if pos.Line < buf.LineCount()-1 {
		pos.Line++
		pos.Column = 0
	}
	return pos
}

// vertical moves to targetLine applying the sticky-column rule: the
// target column is the preferred column when one is set, otherwise the
// current column. The displayed column is clamped to the target line's
// length, but the unclamped target is returned as the new preferred
// column so a later move onto a longer line restores it.
func vertical(buf *buffer.Buffer, pos Position, targetLine, preferred int, havePreferred bool) (Position, int) {
	target := pos.Column
	if havePreferred {
		target = preferred
	}

	if targetLine < 0 {
		targetLine = 0
	}
	if max := buf.LineCount() - 1; targetLine > max {
		targetLine = max
	}

	col := target
	if max := lineLen(buf, targetLine); col > max {
		col = max
	}
	return Position{Line: targetLine, Column: col}, target
}

// Up moves one line up. The returned int is the new preferred column.
func Up(buf *buffer.Buffer, pos Position, preferred int, havePreferred bool) (Position, int) {
	return vertical(buf, pos, pos.Line-1, preferred, havePreferred)
}

// Down moves one line down. The returned int is the new preferred column.
func Down(buf *buffer.Buffer, pos Position, preferred int, havePreferred bool) (Position, int) {
	return vertical(buf, pos, pos.Line+1, preferred, havePreferred)
}

// PageUp moves up by viewportLines, with the same sticky-column rule as
// Up.
func PageUp(buf *buffer.Buffer, pos Position, viewportLines, preferred int, havePreferred bool) (Position, int) {
	return vertical(buf, pos, pos.Line-viewportLines, preferred, havePreferred)
}

// PageDown moves down by viewportLines, with the same sticky-column
// rule as Down.
func PageDown(buf *buffer.Buffer, pos Position, viewportLines, preferred int, havePreferred bool) (Position, int) {
	return vertical(buf, pos, pos.Line+viewportLines, preferred, havePreferred)
}

// Home toggles between column 0 and the first non-whitespace column:
// from column 0 on a line with leading whitespace it jumps to the first
// non-whitespace character, otherwise it jumps to column 0.
func Home(buf *buffer.Buffer, pos Position) Position {
	pos = Clamp(buf, pos)
	first := firstNonWhitespace(buf, pos.Line)
	if pos.Column == 0 && first > 0 {
		pos.Column = first
	} else {
		pos.Column = 0
	}
	return pos
}

// firstNonWhitespace returns the column of the first non-whitespace
// character on the line, or the line length if the line is blank.
func firstNonWhitespace(buf *buffer.Buffer, line int) int {
	text, _ := buf.Line(line)
	for i, r := range []rune(text) {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return lineLen(buf, line)
}

// End moves to the line's logical end, excluding its newline.
func End(buf *buffer.Buffer, pos Position) Position {
	pos = Clamp(buf, pos)
	pos.Column = lineLen(buf, pos.Line)
	return pos
}

// WordLeft moves to the previous word boundary.
func WordLeft(buf *buffer.Buffer, pos Position) Position {
	idx := toChar(buf, pos)
	line, col := buf.CharToLineCol(buf.PrevWordBoundary(idx))
	return Position{Line: line, Column: col}
}

// WordRight moves to the next word boundary.
func WordRight(buf *buffer.Buffer, pos Position) Position {
	idx := toChar(buf, pos)
	line, col := buf.CharToLineCol(buf.NextWordBoundary(idx))
	return Position{Line: line, Column: col}
}

// toChar converts a position to a character offset, clamping first.
func toChar(buf *buffer.Buffer, pos Position) int {
	pos = Clamp(buf, pos)
	idx, _ := buf.LineColToChar(pos.Line, pos.Column)
	return idx
}

// DocumentStart returns the position of the first character.
func DocumentStart() Position {
	return Position{}
}

// DocumentEnd returns the position just past the last character.
func DocumentEnd(buf *buffer.Buffer) Position {
	line := buf.LineCount() - 1
	return Position{Line: line, Column: lineLen(buf, line)}
}

// GoToLine moves to the start of a 1-indexed line, clamping to the last
// line. The column always resets to 0.
func GoToLine(buf *buffer.Buffer, line int) Position {
	line--
	if line < 0 {
		line = 0
	}
	if max := buf.LineCount() - 1; line > max {
		line = max
	}
	return Position{Line: line}
}
