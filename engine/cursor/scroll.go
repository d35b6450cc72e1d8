package cursor

// Scroll recomputes the top visible line so the cursor stays within the
// viewport, keeping margin lines of context above and below when
// possible. The margin is clamped to at most half the viewport. The
// result never goes below zero.
func Scroll(cursorLine, scrollLine, viewportLines, margin int) int {
	if viewportLines <= 0 {
		return scrollLine
	}
	if margin > viewportLines/2 {
		margin = viewportLines / 2
	}
	if margin < 0 {
		margin = 0
	}

	switch {
	case cursorLine < scrollLine+margin:
		scrollLine = cursorLine - margin
	case cursorLine >= scrollLine+viewportLines-margin:
		scrollLine = cursorLine - viewportLines + margin + 1
	}
	if scrollLine < 0 {
		scrollLine = 0
	}
	return scrollLine
}
