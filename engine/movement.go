package engine

import "github.com/notefall/editcore/engine/cursor"

// beginMove fixes the selection anchor before the cursor moves. When
// extending from a collapsed selection, the anchor is the pre-move
// cursor; an existing anchor is kept.
func (s *Session) beginMove(extend bool) {
	if extend && s.sel.IsCollapsed() {
		s.sel = cursor.Selection{Start: s.cur, End: s.cur}
	}
}

// endMove settles the selection after the cursor moved: extending
// drags the selection end with the cursor, otherwise the selection
// collapses to the new position.
func (s *Session) endMove(extend bool) {
	if extend {
		s.sel.End = s.cur
	} else {
		s.sel = cursor.Collapsed(s.cur)
	}
	s.updateScroll()
}

// MoveLeft moves one character left, wrapping at line starts.
func (s *Session) MoveLeft(extend bool) {
	s.beginMove(extend)
	s.cur = cursor.Left(s.buf, s.cur)
	s.clearPreferred()
	s.endMove(extend)
}

// MoveRight moves one character right, wrapping at line ends.
func (s *Session) MoveRight(extend bool) {
	s.beginMove(extend)
	s.cur = cursor.Right(s.buf, s.cur)
	s.clearPreferred()
	s.endMove(extend)
}

// MoveUp moves one line up, keeping the preferred column sticky.
func (s *Session) MoveUp(extend bool) {
	s.beginMove(extend)
	s.cur, s.preferredCol = cursor.Up(s.buf, s.cur, s.preferredCol, s.hasPreferred)
	s.hasPreferred = true
	s.endMove(extend)
}

// MoveDown moves one line down, keeping the preferred column sticky.
func (s *Session) MoveDown(extend bool) {
	s.beginMove(extend)
	s.cur, s.preferredCol = cursor.Down(s.buf, s.cur, s.preferredCol, s.hasPreferred)
	s.hasPreferred = true
	s.endMove(extend)
}

// PageUp moves up one viewport, keeping the preferred column sticky.
func (s *Session) PageUp(extend bool) {
	s.beginMove(extend)
	s.cur, s.preferredCol = cursor.PageUp(s.buf, s.cur, s.viewportLines, s.preferredCol, s.hasPreferred)
	s.hasPreferred = true
	s.endMove(extend)
}

// PageDown moves down one viewport, keeping the preferred column
// sticky.
func (s *Session) PageDown(extend bool) {
	s.beginMove(extend)
	s.cur, s.preferredCol = cursor.PageDown(s.buf, s.cur, s.viewportLines, s.preferredCol, s.hasPreferred)
	s.hasPreferred = true
	s.endMove(extend)
}

// MoveHome toggles between column 0 and the first non-whitespace
// column.
func (s *Session) MoveHome(extend bool) {
	s.beginMove(extend)
	s.cur = cursor.Home(s.buf, s.cur)
	s.clearPreferred()
	s.endMove(extend)
}

// MoveEnd moves to the end of the line.
func (s *Session) MoveEnd(extend bool) {
	s.beginMove(extend)
	s.cur = cursor.End(s.buf, s.cur)
	s.clearPreferred()
	s.endMove(extend)
}

// MoveWordLeft moves to the previous word boundary.
func (s *Session) MoveWordLeft(extend bool) {
	s.beginMove(extend)
	s.cur = cursor.WordLeft(s.buf, s.cur)
	s.clearPreferred()
	s.endMove(extend)
}

// MoveWordRight moves to the next word boundary.
func (s *Session) MoveWordRight(extend bool) {
	s.beginMove(extend)
	s.cur = cursor.WordRight(s.buf, s.cur)
	s.clearPreferred()
	s.endMove(extend)
}

// MoveDocumentStart moves to the first character of the document.
func (s *Session) MoveDocumentStart(extend bool) {
	s.beginMove(extend)
	s.cur = cursor.DocumentStart()
	s.clearPreferred()
	s.endMove(extend)
}

// MoveDocumentEnd moves past the last character of the document.
func (s *Session) MoveDocumentEnd(extend bool) {
	s.beginMove(extend)
	s.cur = cursor.DocumentEnd(s.buf)
	s.clearPreferred()
	s.endMove(extend)
}

// GoToLine jumps to the start of a 1-indexed line, clamping to the
// last line. The selection collapses.
func (s *Session) GoToLine(line int) {
	s.cur = cursor.GoToLine(s.buf, line)
	s.clearPreferred()
	s.endMove(false)
}
