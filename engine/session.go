package engine

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/notefall/editcore/engine/buffer"
	"github.com/notefall/editcore/engine/cursor"
	"github.com/notefall/editcore/engine/history"
	"github.com/notefall/editcore/engine/search"
)

// Default viewport geometry for sessions created without explicit
// dimensions.
const (
	DefaultViewportLines = 40
	DefaultScrollMargin  = 3
)

// Session is the editing surface for one open document. It owns the
// buffer, cursor, selection, preferred-column hint, scroll bookkeeping,
// and undo history exclusively; nothing is shared between sessions.
type Session struct {
	buf     *buffer.Buffer
	history *history.Manager
	clk     clock.Clock

	cur          cursor.Position
	sel          cursor.Selection
	preferredCol int
	hasPreferred bool

	viewportLines int
	scrollLine    int
	scrollMargin  int

	findResults []search.Match
	currentFind int
	searcher    *search.Engine

	// construction-only
	initialContent string
	maxHistory     int
}

// NewSession creates a session, empty unless WithContent is given.
func NewSession(opts ...Option) *Session {
	s := &Session{
		viewportLines: DefaultViewportLines,
		scrollMargin:  DefaultScrollMargin,
		currentFind:   -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clk == nil {
		s.clk = clock.New()
	}
	s.buf = buffer.FromString(s.initialContent)
	s.history = history.NewManager(s.maxHistory)
	s.searcher = search.NewEngine()
	s.initialContent = ""
	return s
}

func (s *Session) now() time.Time {
	return s.clk.Now()
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() cursor.Position {
	return s.cur
}

// SetCursor places the cursor, clamping into the document. The
// selection collapses and the preferred column is forgotten.
func (s *Session) SetCursor(pos cursor.Position) {
	s.cur = cursor.Clamp(s.buf, pos)
	s.sel = cursor.Collapsed(s.cur)
	s.clearPreferred()
	s.updateScroll()
}

// Selection returns the current selection. It is collapsed when
// nothing is selected.
func (s *Session) Selection() cursor.Selection {
	return s.sel
}

// HasSelection reports whether a non-empty selection exists.
func (s *Session) HasSelection() bool {
	return !s.sel.IsCollapsed()
}

// SetSelection sets the selection directly, placing the cursor at its
// end.
func (s *Session) SetSelection(sel cursor.Selection) {
	sel.Start = cursor.Clamp(s.buf, sel.Start)
	sel.End = cursor.Clamp(s.buf, sel.End)
	s.sel = sel
	s.cur = sel.End
	s.clearPreferred()
	s.updateScroll()
}

// ClearSelection collapses the selection to the cursor.
func (s *Session) ClearSelection() {
	s.sel = cursor.Collapsed(s.cur)
}

// SelectAll selects the whole document, cursor at the end.
func (s *Session) SelectAll() {
	start := cursor.DocumentStart()
	end := cursor.DocumentEnd(s.buf)
	s.sel = cursor.Selection{Start: start, End: end}
	s.cur = end
	s.clearPreferred()
	s.updateScroll()
}

// SelectedText returns the selected text, or false when the selection
// is collapsed.
func (s *Session) SelectedText() (string, bool) {
	if s.sel.IsCollapsed() {
		return "", false
	}
	start, end := s.selectionCharRange()
	return s.buf.Slice(start, end), true
}

// selectionCharRange returns the normalized selection as character
// offsets.
func (s *Session) selectionCharRange() (int, int) {
	first, last := s.sel.Normalized()
	start, _ := s.buf.LineColToChar(first.Line, first.Column)
	end, ok := s.buf.LineColToChar(last.Line, last.Column)
	if !ok {
		end = s.buf.Len()
	}
	return start, end
}

// cursorChar returns the cursor as a character offset.
func (s *Session) cursorChar() int {
	idx, ok := s.buf.LineColToChar(s.cur.Line, s.cur.Column)
	if !ok {
		return s.buf.Len()
	}
	return idx
}

func (s *Session) clearPreferred() {
	s.preferredCol = 0
	s.hasPreferred = false
}

// Viewport and scrolling

// ScrollLine returns the top visible line.
func (s *Session) ScrollLine() int {
	return s.scrollLine
}

// SetViewportLines updates the viewport height and re-anchors the
// scroll position around the cursor.
func (s *Session) SetViewportLines(n int) {
	if n > 0 {
		s.viewportLines = n
		s.updateScroll()
	}
}

// SetScrollMargin updates the context margin kept around the cursor.
func (s *Session) SetScrollMargin(n int) {
	if n >= 0 {
		s.scrollMargin = n
		s.updateScroll()
	}
}

func (s *Session) updateScroll() {
	s.scrollLine = cursor.Scroll(s.cur.Line, s.scrollLine, s.viewportLines, s.scrollMargin)
}

// Rendering queries

// Line returns the text of a line without its newline.
func (s *Session) Line(i int) (string, bool) {
	return s.buf.Line(i)
}

// LineCount returns the number of lines in the document.
func (s *Session) LineCount() int {
	return s.buf.LineCount()
}

// CharCount returns the number of characters in the document.
func (s *Session) CharCount() int {
	return s.buf.Len()
}

// WordCount returns the number of words in the document.
func (s *Session) WordCount() int {
	return s.buf.WordCount()
}

// Persistence boundary

// Content returns the document with its line endings restored.
func (s *Session) Content() string {
	return s.buf.String()
}

// SetContent replaces the document, as on a file (re)load: the line
// ending is re-detected and cursor, selection, history, scroll, and
// find results all reset. The result counts as saved.
func (s *Session) SetContent(content string) {
	s.buf.SetContent(content)
	s.buf.MarkSaved()
	s.history.Clear()
	s.cur = cursor.Position{}
	s.sel = cursor.Selection{}
	s.scrollLine = 0
	s.clearPreferred()
	s.ClearFindResults()
}

// IsModified reports whether the document differs from the last saved
// state. Undoing back to the save point reports clean again.
func (s *Session) IsModified() bool {
	return !s.history.AtSavedState()
}

// MarkSaved records the current state as saved.
func (s *Session) MarkSaved() {
	s.buf.MarkSaved()
	s.history.MarkSaved()
}

// LineEnding returns the document's line ending style.
func (s *Session) LineEnding() buffer.LineEnding {
	return s.buf.LineEnding()
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}
