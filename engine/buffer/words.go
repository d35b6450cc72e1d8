package buffer

import "unicode"

// isWordRune reports whether r belongs to a word: letters, digits, and
// underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isSkipSpace reports whether r is whitespace a boundary scan should
// skip over. Newlines are hard boundaries and are never skipped.
func isSkipSpace(r rune) bool {
	return unicode.IsSpace(r) && r != '\n'
}

// WordAt returns the character range [start, end) of the word containing
// the given offset. Returns false if the character at the offset is not
// part of a word.
func (b *Buffer) WordAt(charIdx int) (start, end int, ok bool) {
	r, found := b.rope.RuneAt(charIdx)
	if !found || !isWordRune(r) {
		return 0, 0, false
	}

	start = charIdx
	for start > 0 {
		prev, _ := b.rope.RuneAt(start - 1)
		if !isWordRune(prev) {
			break
		}
		start--
	}

	end = charIdx + 1
	for end < b.rope.Len() {
		next, _ := b.rope.RuneAt(end)
		if !isWordRune(next) {
			break
		}
		end++
	}
	return start, end, true
}

// NextWordBoundary returns the offset of the next word boundary after
// the given position. From inside a word it scans past the word; runs
// of whitespace other than newlines are skipped as a unit. The result
// never exceeds the buffer length.
func (b *Buffer) NextWordBoundary(charIdx int) int {
	n := b.rope.Len()
	if charIdx < 0 {
		charIdx = 0
	}
	if charIdx >= n {
		return n
	}

	i := charIdx
	r, _ := b.rope.RuneAt(i)
	switch {
	case r == '\n':
		return i + 1
	case isWordRune(r):
		for i < n {
			r, _ = b.rope.RuneAt(i)
			if !isWordRune(r) {
				break
			}
			i++
		}
	default:
		for i < n {
			r, _ = b.rope.RuneAt(i)
			if isWordRune(r) || isSkipSpace(r) || r == '\n' {
				break
			}
			i++
		}
	}
	for i < n {
		r, _ = b.rope.RuneAt(i)
		if !isSkipSpace(r) {
			break
		}
		i++
	}
	return i
}

// PrevWordBoundary returns the offset of the previous word boundary
// before the given position. The result is never negative.
func (b *Buffer) PrevWordBoundary(charIdx int) int {
	if charIdx > b.rope.Len() {
		charIdx = b.rope.Len()
	}
	if charIdx <= 0 {
		return 0
	}

	i := charIdx
	r, _ := b.rope.RuneAt(i - 1)
	if r == '\n' {
		return i - 1
	}
	for i > 0 {
		r, _ = b.rope.RuneAt(i - 1)
		if !isSkipSpace(r) {
			break
		}
		i--
	}
	if i == 0 {
		return 0
	}
	r, _ = b.rope.RuneAt(i - 1)
	if r == '\n' {
		return i
	}
	if isWordRune(r) {
		for i > 0 {
			r, _ = b.rope.RuneAt(i - 1)
			if !isWordRune(r) {
				break
			}
			i--
		}
	} else {
		for i > 0 {
			r, _ = b.rope.RuneAt(i - 1)
			if isWordRune(r) || isSkipSpace(r) || r == '\n' {
				break
			}
			i--
		}
	}
	return i
}
