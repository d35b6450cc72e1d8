package engine

import "github.com/benbjohnson/clock"

// Option configures a Session.
type Option func(*Session)

// WithContent sets the initial document content. Line endings are
// detected from it.
func WithContent(content string) Option {
	return func(s *Session) {
		s.initialContent = content
	}
}

// WithMaxHistory bounds the undo stack.
func WithMaxHistory(n int) Option {
	return func(s *Session) {
		s.maxHistory = n
	}
}

// WithViewportLines sets the number of visible lines used for page
// movement and scroll recomputation.
func WithViewportLines(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.viewportLines = n
		}
	}
}

// WithScrollMargin sets the number of context lines kept above and
// below the cursor when scrolling.
func WithScrollMargin(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.scrollMargin = n
		}
	}
}

// WithClock injects the clock used to timestamp history operations.
// Tests pass a mock clock to drive the merge window deterministically.
func WithClock(c clock.Clock) Option {
	return func(s *Session) {
		s.clk = c
	}
}
