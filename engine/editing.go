package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/notefall/editcore/engine/cursor"
	"github.com/notefall/editcore/engine/history"
)

// InsertRune inserts a single character at the cursor, replacing the
// selection first when one is active.
func (s *Session) InsertRune(r rune) {
	s.InsertText(string(r))
}

// InsertText inserts text at the cursor. An active selection is
// replaced by the text; the cursor lands immediately after the
// insertion. CRLF sequences in the text are normalized.
func (s *Session) InsertText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	before, selBefore := s.cur, s.sel

	if !s.sel.IsCollapsed() {
		start, end := s.selectionCharRange()
		old := s.buf.Slice(start, end)
		s.buf.Replace(start, end, text)
		line, col := s.buf.CharToLineCol(start)
		s.cur = s.advanceOver(cursor.Position{Line: line, Column: col}, text)
		s.finishEdit()
		s.history.Push(history.NewReplace(start, old, text, before, selBefore, s.cur, s.now()))
		return
	}

	idx := s.cursorChar()
	s.buf.Insert(idx, text)
	s.cur = s.advanceOver(s.cur, text)
	s.finishEdit()
	s.history.Push(history.NewInsert(idx, text, before, selBefore, s.cur, s.now()))
}

// advanceOver returns the cursor position after inserting text at pos:
// line advances by the embedded newline count and the column restarts
// after the last newline.
func (s *Session) advanceOver(pos cursor.Position, text string) cursor.Position {
	newlines := strings.Count(text, "\n")
	if newlines == 0 {
		pos.Column += utf8.RuneCountInString(text)
		return pos
	}
	last := strings.LastIndexByte(text, '\n')
	return cursor.Position{
		Line:   pos.Line + newlines,
		Column: utf8.RuneCountInString(text[last+1:]),
	}
}

// finishEdit collapses the selection onto the cursor and resets the
// transient movement state after any content change.
func (s *Session) finishEdit() {
	s.sel = cursor.Collapsed(s.cur)
	s.clearPreferred()
	s.updateScroll()
}

// deleteSelection removes the active selection, recording the
// operation. Reports whether anything was deleted.
func (s *Session) deleteSelection() bool {
	if s.sel.IsCollapsed() {
		return false
	}
	before, selBefore := s.cur, s.sel
	start, end := s.selectionCharRange()
	old := s.buf.Slice(start, end)

	s.buf.Delete(start, end)
	first, _ := selBefore.Normalized()
	s.cur = cursor.Clamp(s.buf, first)
	s.finishEdit()
	s.history.Push(history.NewDelete(start, old, before, selBefore, s.cur, s.now()))
	return true
}

// Backspace deletes one character before the cursor, or the selection
// when one is active. At the document start it is a no-op.
func (s *Session) Backspace() {
	if s.deleteSelection() {
		return
	}
	if s.cur.Line == 0 && s.cur.Column == 0 {
		return
	}

	before, selBefore := s.cur, s.sel
	idx := s.cursorChar()
	if idx == 0 {
		return
	}
	deleted := s.buf.Slice(idx-1, idx)
	s.buf.Delete(idx-1, idx)

	if deleted == "\n" {
		prev := s.cur.Line - 1
		n, _ := s.buf.LineLen(prev)
		s.cur = cursor.Position{Line: prev, Column: n}
	} else if s.cur.Column > 0 {
		s.cur.Column--
	}
	s.finishEdit()
	s.history.Push(history.NewDelete(idx-1, deleted, before, selBefore, s.cur, s.now()))
}

// Delete removes the character at the cursor, or the selection when
// one is active. At the document end it is a no-op; the cursor stays
// in place.
func (s *Session) Delete() {
	if s.deleteSelection() {
		return
	}

	idx := s.cursorChar()
	if idx >= s.buf.Len() {
		return
	}
	before, selBefore := s.cur, s.sel
	deleted := s.buf.Slice(idx, idx+1)
	s.buf.Delete(idx, idx+1)
	s.finishEdit()
	s.history.Push(history.NewDelete(idx, deleted, before, selBefore, s.cur, s.now()))
}

// DeleteWordLeft deletes from the previous word boundary to the
// cursor, or the selection when one is active.
func (s *Session) DeleteWordLeft() {
	if s.deleteSelection() {
		return
	}

	idx := s.cursorChar()
	if idx == 0 {
		return
	}
	before, selBefore := s.cur, s.sel
	start := s.buf.PrevWordBoundary(idx)
	deleted := s.buf.Slice(start, idx)
	s.buf.Delete(start, idx)

	line, col := s.buf.CharToLineCol(start)
	s.cur = cursor.Position{Line: line, Column: col}
	s.finishEdit()
	s.history.Push(history.NewDelete(start, deleted, before, selBefore, s.cur, s.now()))
}

// DeleteWordRight deletes from the cursor to the next word boundary,
// or the selection when one is active. The cursor stays in place.
func (s *Session) DeleteWordRight() {
	if s.deleteSelection() {
		return
	}

	idx := s.cursorChar()
	if idx >= s.buf.Len() {
		return
	}
	before, selBefore := s.cur, s.sel
	end := s.buf.NextWordBoundary(idx)
	if end <= idx {
		return
	}
	deleted := s.buf.Slice(idx, end)
	s.buf.Delete(idx, end)
	s.finishEdit()
	s.history.Push(history.NewDelete(idx, deleted, before, selBefore, s.cur, s.now()))
}

// ReplaceRange replaces the character range [start, end) with text and
// places the cursor after the replacement. This is the entry point a
// search component uses to apply replacements.
func (s *Session) ReplaceRange(start, end int, text string) {
	if start < 0 {
		start = 0
	}
	if end > s.buf.Len() {
		end = s.buf.Len()
	}
	if end < start {
		start, end = end, start
	}

	before, selBefore := s.cur, s.sel
	old := s.buf.Slice(start, end)
	s.buf.Replace(start, end, text)

	line, col := s.buf.CharToLineCol(start + utf8.RuneCountInString(text))
	s.cur = cursor.Position{Line: line, Column: col}
	s.finishEdit()
	s.history.Push(history.NewReplace(start, old, text, before, selBefore, s.cur, s.now()))
}

// Undo reverses the most recent edit, restoring the cursor and
// selection from before it. Reports false when there is nothing to
// undo.
func (s *Session) Undo() bool {
	op, ok := s.history.Undo()
	if !ok {
		return false
	}

	switch op.Kind {
	case history.KindInsert:
		s.buf.Delete(op.Position, op.Position+op.TextLen())
	case history.KindDelete:
		s.buf.Insert(op.Position, op.Text)
	case history.KindReplace:
		s.buf.Replace(op.Position, op.Position+op.TextLen(), op.OldText)
	}

	s.cur = cursor.Clamp(s.buf, op.CursorBefore)
	s.sel = op.SelectionBefore
	s.clearPreferred()
	s.updateScroll()
	return true
}

// Redo reapplies the most recently undone edit, restoring the cursor
// from after it. Reports false when there is nothing to redo.
func (s *Session) Redo() bool {
	op, ok := s.history.Redo()
	if !ok {
		return false
	}

	switch op.Kind {
	case history.KindInsert:
		s.buf.Insert(op.Position, op.Text)
	case history.KindDelete:
		s.buf.Delete(op.Position, op.Position+op.TextLen())
	case history.KindReplace:
		s.buf.Replace(op.Position, op.Position+utf8.RuneCountInString(op.OldText), op.Text)
	}

	s.cur = cursor.Clamp(s.buf, op.CursorAfter)
	s.sel = cursor.Collapsed(s.cur)
	s.clearPreferred()
	s.updateScroll()
	return true
}
