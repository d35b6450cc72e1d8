// Package search finds and replaces text in a document. It is the
// component that populates a session's find results: matches are
// reported as character-offset ranges the session navigates and
// replaces through its own editing operations.
package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Options control how a query matches.
type Options struct {
	CaseSensitive bool
	WholeWord     bool
	Regex         bool
	WrapAround    bool
}

// DefaultOptions matches case-insensitively and wraps at document
// boundaries.
func DefaultOptions() Options {
	return Options{WrapAround: true}
}

// Match is a single occurrence of the query. Start and End are
// character offsets, End exclusive. Line and Column locate the start,
// zero-indexed.
type Match struct {
	Start  int
	End    int
	Line   int
	Column int
	Text   string
}

// Len returns the match length in characters.
func (m Match) Len() int {
	return m.End - m.Start
}

// Engine compiles queries into patterns and caches the compilation
// across repeated searches with the same query and options.
type Engine struct {
	pattern     *regexp.Regexp
	lastQuery   string
	lastOptions Options
}

// NewEngine creates a search engine.
func NewEngine() *Engine {
	return &Engine{}
}

// compile builds the pattern for a query. Plain-text queries are
// escaped so they match literally; whole-word wraps the pattern in
// word boundaries; case-insensitive prepends the (?i) flag.
func (e *Engine) compile(query string, opts Options) *regexp.Regexp {
	if query == e.lastQuery && opts == e.lastOptions && e.pattern != nil {
		return e.pattern
	}

	pattern := query
	if !opts.Regex {
		pattern = regexp.QuoteMeta(query)
	}
	if opts.WholeWord {
		pattern = `\b` + pattern + `\b`
	}
	if !opts.CaseSensitive {
		pattern = `(?i)` + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		re = nil
	}
	e.pattern = re
	e.lastQuery = query
	e.lastOptions = opts
	return re
}

// FindAll returns every match of the query in the text, in document
// order. An empty or invalid query yields no matches.
func (e *Engine) FindAll(text, query string, opts Options) []Match {
	if query == "" {
		return nil
	}
	re := e.compile(query, opts)
	if re == nil {
		return nil
	}

	indexes := re.FindAllStringIndex(text, -1)
	if len(indexes) == 0 {
		return nil
	}

	// Byte indexes arrive sorted, so one forward pass converts them to
	// character offsets and line/column positions.
	matches := make([]Match, 0, len(indexes))
	chars, line, col := 0, 0, 0
	byteIdx := 0

	advance := func(to int) {
		for byteIdx < to {
			r, size := utf8.DecodeRuneInString(text[byteIdx:])
			byteIdx += size
			chars++
			if r == '\n' {
				line++
				col = 0
			} else {
				col++
			}
		}
	}

	for _, idx := range indexes {
		advance(idx[0])
		m := Match{Start: chars, Line: line, Column: col, Text: text[idx[0]:idx[1]]}
		advance(idx[1])
		m.End = chars
		matches = append(matches, m)
	}
	return matches
}

// FindNext returns the first match starting at or after fromChar,
// wrapping to the first match when enabled.
func (e *Engine) FindNext(text, query string, fromChar int, opts Options) (Match, bool) {
	matches := e.FindAll(text, query, opts)
	for _, m := range matches {
		if m.Start >= fromChar {
			return m, true
		}
	}
	if opts.WrapAround && len(matches) > 0 {
		return matches[0], true
	}
	return Match{}, false
}

// FindPrev returns the last match ending at or before fromChar,
// wrapping to the last match when enabled.
func (e *Engine) FindPrev(text, query string, fromChar int, opts Options) (Match, bool) {
	matches := e.FindAll(text, query, opts)
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].End <= fromChar {
			return matches[i], true
		}
	}
	if opts.WrapAround && len(matches) > 0 {
		return matches[len(matches)-1], true
	}
	return Match{}, false
}

// ReplaceAll replaces every match with the replacement text, returning
// the new text and the number of replacements.
func (e *Engine) ReplaceAll(text, query, replacement string, opts Options) (string, int) {
	if query == "" {
		return text, 0
	}
	re := e.compile(query, opts)
	if re == nil {
		return text, 0
	}

	indexes := re.FindAllStringIndex(text, -1)
	if len(indexes) == 0 {
		return text, 0
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, idx := range indexes {
		sb.WriteString(text[last:idx[0]])
		sb.WriteString(replacement)
		last = idx[1]
	}
	sb.WriteString(text[last:])
	return sb.String(), len(indexes)
}
