package cursor

import "fmt"

// Position is a zero-indexed line/column location in a buffer.
// Columns count characters, not bytes.
type Position struct {
	Line   int
	Column int
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Compare returns -1 if p is before other in document order, 0 if
// equal, 1 if after.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other in document order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Selection is a range of text between two positions. Start is the
// anchor where the selection began; End moves with the cursor. Start
// and End are not ordered.
type Selection struct {
	Start Position
	End   Position
}

// Collapsed returns a selection with no extent at the given position.
func Collapsed(p Position) Selection {
	return Selection{Start: p, End: p}
}

// IsCollapsed returns true if the selection has no extent.
func (s Selection) IsCollapsed() bool {
	return s.Start == s.End
}

// Normalized returns the selection's bounds in document order.
func (s Selection) Normalized() (first, last Position) {
	if s.Start.After(s.End) {
		return s.End, s.Start
	}
	return s.Start, s.End
}

// Contains returns true if the position lies within the selection,
// including its start and excluding its end.
func (s Selection) Contains(p Position) bool {
	first, last := s.Normalized()
	return p.Compare(first) >= 0 && p.Compare(last) < 0
}
