package engine

import (
	"unicode/utf8"

	"github.com/notefall/editcore/engine/buffer"
	"github.com/notefall/editcore/engine/cursor"
	"github.com/notefall/editcore/engine/search"
)

// Find runs a search over the document and installs the matches as the
// session's find results. Returns the number of matches.
//
// The search runs over the LF-normalized text so match offsets line up
// with the buffer's character offsets.
func (s *Session) Find(query string, opts search.Options) int {
	matches := s.searcher.FindAll(s.buf.StringWithEnding(buffer.LineEndingLF), query, opts)
	s.SetFindResults(matches)
	return len(matches)
}

// SetFindResults installs externally computed matches. Offsets are
// character offsets into the LF-normalized document.
func (s *Session) SetFindResults(matches []search.Match) {
	s.findResults = matches
	s.currentFind = -1
}

// ClearFindResults drops all find results.
func (s *Session) ClearFindResults() {
	s.findResults = nil
	s.currentFind = -1
}

// FindResults returns the installed matches.
func (s *Session) FindResults() []search.Match {
	return s.findResults
}

// FindResultCount returns the number of matches.
func (s *Session) FindResultCount() int {
	return len(s.findResults)
}

// CurrentFindNumber returns the 1-indexed number of the current match,
// 0 when none is selected.
func (s *Session) CurrentFindNumber() int {
	return s.currentFind + 1
}

// NextFindResult advances to the next match, wrapping at the end, and
// selects it. Reports false when there are no matches.
func (s *Session) NextFindResult() (search.Match, bool) {
	if len(s.findResults) == 0 {
		return search.Match{}, false
	}
	s.currentFind = (s.currentFind + 1) % len(s.findResults)
	return s.revealCurrentFind(), true
}

// PrevFindResult steps back to the previous match, wrapping at the
// start, and selects it. Reports false when there are no matches.
func (s *Session) PrevFindResult() (search.Match, bool) {
	if len(s.findResults) == 0 {
		return search.Match{}, false
	}
	if s.currentFind <= 0 {
		s.currentFind = len(s.findResults) - 1
	} else {
		s.currentFind--
	}
	return s.revealCurrentFind(), true
}

// revealCurrentFind selects the current match and scrolls it into
// view, cursor at the match end.
func (s *Session) revealCurrentFind() search.Match {
	m := s.findResults[s.currentFind]

	startLine, startCol := s.buf.CharToLineCol(m.Start)
	endLine, endCol := s.buf.CharToLineCol(m.End)
	s.sel = cursor.Selection{
		Start: cursor.Position{Line: startLine, Column: startCol},
		End:   cursor.Position{Line: endLine, Column: endCol},
	}
	s.cur = s.sel.End
	s.clearPreferred()
	s.updateScroll()
	return m
}

// ReplaceCurrentFind replaces the current match with text and drops it
// from the result list, shifting the remaining offsets. Reports false
// when no match is current.
func (s *Session) ReplaceCurrentFind(text string) bool {
	if s.currentFind < 0 || s.currentFind >= len(s.findResults) {
		return false
	}
	m := s.findResults[s.currentFind]
	s.ReplaceRange(m.Start, m.End, text)

	delta := utf8.RuneCountInString(text) - m.Len()
	rest := make([]search.Match, 0, len(s.findResults)-1)
	for i, r := range s.findResults {
		if i == s.currentFind {
			continue
		}
		if r.Start >= m.End {
			r.Start += delta
			r.End += delta
		}
		rest = append(rest, r)
	}
	s.findResults = rest

	// The match that followed the replaced one now sits at the old
	// index, so the next NextFindResult lands on it.
	s.currentFind--
	return true
}
