package cursor

import (
	"testing"

	"github.com/notefall/editcore/engine/buffer"
)

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 3}, Position{0, 5}, -1},
		{Position{1, 0}, Position{0, 99}, 1},
		{Position{2, 4}, Position{2, 4}, 0},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSelectionNormalized(t *testing.T) {
	s := Selection{Start: Position{2, 3}, End: Position{1, 0}}
	first, last := s.Normalized()

	if first != (Position{1, 0}) || last != (Position{2, 3}) {
		t.Errorf("Normalized() = %v, %v", first, last)
	}
	if s.IsCollapsed() {
		t.Error("non-empty selection reported collapsed")
	}
	if !Collapsed(Position{1, 1}).IsCollapsed() {
		t.Error("collapsed selection not reported collapsed")
	}
}

func TestSelectionContains(t *testing.T) {
	s := Selection{Start: Position{0, 2}, End: Position{1, 3}}

	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{0, 2}, true},  // inclusive start
		{Position{0, 9}, true},
		{Position{1, 2}, true},
		{Position{1, 3}, false}, // exclusive end
		{Position{0, 1}, false},
	}

	for _, tt := range tests {
		if got := s.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestLeftRight(t *testing.T) {
	buf := buffer.FromString("ab\ncd")

	tests := []struct {
		name string
		move func(Position) Position
		from Position
		want Position
	}{
		{"right within line", func(p Position) Position { return Right(buf, p) }, Position{0, 0}, Position{0, 1}},
		{"right wraps", func(p Position) Position { return Right(buf, p) }, Position{0, 2}, Position{1, 0}},
		{"right at end no-op", func(p Position) Position { return Right(buf, p) }, Position{1, 2}, Position{1, 2}},
		{"left within line", func(p Position) Position { return Left(buf, p) }, Position{1, 1}, Position{1, 0}},
		{"left wraps", func(p Position) Position { return Left(buf, p) }, Position{1, 0}, Position{0, 2}},
		{"left at start no-op", func(p Position) Position { return Left(buf, p) }, Position{0, 0}, Position{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move(tt.from); got != tt.want {
				t.Errorf("from %v: got %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestStickyColumn(t *testing.T) {
	// Lines of length 14, 5, 18.
	buf := buffer.FromString("abcdefghijklmn\nabcde\nabcdefghijklmnopqr")

	pos := Position{Line: 0, Column: 12}

	pos, preferred := Down(buf, pos, 0, false)
	if pos != (Position{1, 5}) {
		t.Fatalf("after first down: %v", pos)
	}
	if preferred != 12 {
		t.Fatalf("preferred = %d, want 12", preferred)
	}

	pos, preferred = Down(buf, pos, preferred, true)
	if pos != (Position{2, 12}) {
		t.Fatalf("after second down: %v", pos)
	}
	if preferred != 12 {
		t.Fatalf("preferred = %d, want 12", preferred)
	}

	// Back up across the short line: the original column survives.
	pos, preferred = Up(buf, pos, preferred, true)
	if pos != (Position{1, 5}) {
		t.Fatalf("after up: %v", pos)
	}
	pos, _ = Up(buf, pos, preferred, true)
	if pos != (Position{0, 12}) {
		t.Fatalf("after second up: %v", pos)
	}
}

func TestVerticalClampsAtEdges(t *testing.T) {
	buf := buffer.FromString("one\ntwo")

	pos, _ := Up(buf, Position{0, 2}, 0, false)
	if pos.Line != 0 {
		t.Errorf("up at first line moved to line %d", pos.Line)
	}
	pos, _ = Down(buf, Position{1, 2}, 0, false)
	if pos.Line != 1 {
		t.Errorf("down at last line moved to line %d", pos.Line)
	}
}

func TestPageMovement(t *testing.T) {
	buf := buffer.FromString("a\nb\nc\nd\ne\nf\ng\nh")

	pos, preferred := PageDown(buf, Position{0, 1}, 3, 0, false)
	if pos != (Position{3, 1}) {
		t.Errorf("page down: %v", pos)
	}
	if preferred != 1 {
		t.Errorf("preferred = %d", preferred)
	}

	pos, _ = PageUp(buf, Position{2, 0}, 5, 0, false)
	if pos.Line != 0 {
		t.Errorf("page up past top: line %d", pos.Line)
	}
	pos, _ = PageDown(buf, Position{6, 0}, 5, 0, false)
	if pos.Line != 7 {
		t.Errorf("page down past bottom: line %d", pos.Line)
	}
}

func TestHomeToggle(t *testing.T) {
	buf := buffer.FromString("    indented\nplain")

	tests := []struct {
		name string
		from Position
		want Position
	}{
		{"mid-line jumps to zero", Position{0, 8}, Position{0, 0}},
		{"column zero jumps to first non-whitespace", Position{0, 0}, Position{0, 4}},
		{"at first non-whitespace jumps to zero", Position{0, 4}, Position{0, 0}},
		{"no indentation stays at zero", Position{1, 0}, Position{1, 0}},
		{"no indentation mid-line", Position{1, 3}, Position{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Home(buf, tt.from); got != tt.want {
				t.Errorf("Home(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestEnd(t *testing.T) {
	buf := buffer.FromString("hello\nhi")

	if got := End(buf, Position{0, 2}); got != (Position{0, 5}) {
		t.Errorf("End = %v", got)
	}
	if got := End(buf, Position{1, 0}); got != (Position{1, 2}) {
		t.Errorf("End = %v", got)
	}
}

func TestWordMovement(t *testing.T) {
	buf := buffer.FromString("foo bar\nbaz")

	if got := WordRight(buf, Position{0, 0}); got != (Position{0, 4}) {
		t.Errorf("WordRight = %v", got)
	}
	if got := WordRight(buf, Position{0, 4}); got != (Position{0, 7}) {
		t.Errorf("WordRight = %v", got)
	}
	if got := WordRight(buf, Position{0, 7}); got != (Position{1, 0}) {
		t.Errorf("WordRight across newline = %v", got)
	}
	if got := WordLeft(buf, Position{1, 2}); got != (Position{1, 0}) {
		t.Errorf("WordLeft = %v", got)
	}
	if got := WordLeft(buf, Position{0, 4}); got != (Position{0, 0}) {
		t.Errorf("WordLeft = %v", got)
	}
}

func TestDocumentBounds(t *testing.T) {
	buf := buffer.FromString("one\ntwo\nthree")

	if got := DocumentStart(); got != (Position{0, 0}) {
		t.Errorf("DocumentStart = %v", got)
	}
	if got := DocumentEnd(buf); got != (Position{2, 5}) {
		t.Errorf("DocumentEnd = %v", got)
	}
}

func TestGoToLine(t *testing.T) {
	buf := buffer.FromString("one\ntwo\nthree")

	tests := []struct {
		input int
		want  Position
	}{
		{1, Position{0, 0}},
		{3, Position{2, 0}},
		{99, Position{2, 0}}, // clamps to last line
		{0, Position{0, 0}},
		{-4, Position{0, 0}},
	}

	for _, tt := range tests {
		if got := GoToLine(buf, tt.input); got != tt.want {
			t.Errorf("GoToLine(%d) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	buf := buffer.FromString("abc\nde")

	tests := []struct {
		pos  Position
		want Position
	}{
		{Position{0, 0}, Position{0, 0}},
		{Position{0, 99}, Position{0, 3}},
		{Position{99, 99}, Position{1, 2}},
		{Position{-1, -1}, Position{0, 0}},
	}

	for _, tt := range tests {
		if got := Clamp(buf, tt.pos); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestScroll(t *testing.T) {
	tests := []struct {
		name                             string
		cursor, scroll, viewport, margin int
		want                             int
	}{
		{"cursor in view unchanged", 10, 5, 20, 2, 5},
		{"cursor above view", 3, 10, 20, 2, 1},
		{"cursor below view", 30, 5, 20, 2, 13},
		{"saturates at zero", 0, 5, 20, 2, 0},
		{"margin clamped to half viewport", 0, 0, 4, 10, 0},
		{"scroll down with clamped margin", 10, 0, 4, 10, 9},
		{"zero viewport unchanged", 10, 3, 0, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scroll(tt.cursor, tt.scroll, tt.viewport, tt.margin)
			if got != tt.want {
				t.Errorf("Scroll(%d, %d, %d, %d) = %d, want %d",
					tt.cursor, tt.scroll, tt.viewport, tt.margin, got, tt.want)
			}
		})
	}
}
