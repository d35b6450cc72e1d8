package rope

import (
	"strings"
	"testing"
)

func TestNewRope(t *testing.T) {
	r := New()

	if !r.IsEmpty() {
		t.Error("new rope should be empty")
	}
	if r.Len() != 0 {
		t.Errorf("expected length 0, got %d", r.Len())
	}
	if r.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", r.LineCount())
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		chars int
		lines int
	}{
		{"empty", "", 0, 1},
		{"single line", "hello", 5, 1},
		{"two lines", "hello\nworld", 11, 2},
		{"trailing newline", "hello\n", 6, 2},
		{"multibyte", "héllo wörld", 11, 1},
		{"large", strings.Repeat("0123456789\n", 500), 5500, 5001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.text)
			if r.String() != tt.text {
				t.Errorf("round-trip mismatch")
			}
			if r.Len() != tt.chars {
				t.Errorf("expected %d chars, got %d", tt.chars, r.Len())
			}
			if r.LineCount() != tt.lines {
				t.Errorf("expected %d lines, got %d", tt.lines, r.LineCount())
			}
		})
	}
}

func TestRopeInsert(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		offset int
		text   string
		want   string
	}{
		{"middle", "Hello World", 5, ",", "Hello, World"},
		{"start", "World", 0, "Hello ", "Hello World"},
		{"end", "Hello", 5, " World", "Hello World"},
		{"past end clamps", "Hello", 100, "!", "Hello!"},
		{"negative clamps", "World", -3, "Hello ", "Hello World"},
		{"empty text", "Hello", 2, "", "Hello"},
		{"into empty", "", 0, "Hello", "Hello"},
		{"multibyte", "naïve", 3, "ee", "naïeeve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.base).Insert(tt.offset, tt.text)
			if r.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, r.String())
			}
		})
	}
}

func TestRopeInsertImmutable(t *testing.T) {
	r := FromString("Hello")
	r2 := r.Insert(5, " World")

	if r.String() != "Hello" {
		t.Errorf("original modified: %q", r.String())
	}
	if r2.String() != "Hello World" {
		t.Errorf("expected 'Hello World', got %q", r2.String())
	}
}

func TestRopeDelete(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		start, end int
		want       string
	}{
		{"middle", "Hello, World", 5, 7, "HelloWorld"},
		{"start", "Hello World", 0, 6, "World"},
		{"end", "Hello World", 5, 11, "Hello"},
		{"all", "Hello", 0, 5, ""},
		{"empty range", "Hello", 3, 3, "Hello"},
		{"inverted range", "Hello", 3, 2, "Hello"},
		{"end past length", "Hello", 3, 100, "Hel"},
		{"multibyte", "héllo", 1, 2, "hllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.base).Delete(tt.start, tt.end)
			if r.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, r.String())
			}
		})
	}
}

func TestRopeReplace(t *testing.T) {
	r := FromString("Hello World").Replace(6, 11, "Go")
	if r.String() != "Hello Go" {
		t.Errorf("expected 'Hello Go', got %q", r.String())
	}
}

func TestRopeSlice(t *testing.T) {
	r := FromString("Hello, World")

	if got := r.Slice(7, 12); got != "World" {
		t.Errorf("expected 'World', got %q", got)
	}
	if got := r.Slice(0, 5); got != "Hello" {
		t.Errorf("expected 'Hello', got %q", got)
	}
	if got := r.Slice(5, 5); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := r.Slice(7, 100); got != "World" {
		t.Errorf("expected clamped 'World', got %q", got)
	}
}

func TestRopeRuneAt(t *testing.T) {
	r := FromString("a¢€\nb")

	tests := []struct {
		offset int
		want   rune
		ok     bool
	}{
		{0, 'a', true},
		{1, '¢', true},
		{2, '€', true},
		{3, '\n', true},
		{4, 'b', true},
		{5, 0, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		got, ok := r.RuneAt(tt.offset)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("RuneAt(%d) = %q, %v; want %q, %v", tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRopeLineQueries(t *testing.T) {
	r := FromString("Line 1\nLine 2\nLine 3")

	if r.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", r.LineCount())
	}

	starts := []int{0, 7, 14}
	ends := []int{6, 13, 20}
	texts := []string{"Line 1", "Line 2", "Line 3"}

	for i := 0; i < 3; i++ {
		if got := r.LineStart(i); got != starts[i] {
			t.Errorf("LineStart(%d) = %d, want %d", i, got, starts[i])
		}
		if got := r.LineEnd(i); got != ends[i] {
			t.Errorf("LineEnd(%d) = %d, want %d", i, got, ends[i])
		}
		if got := r.LineText(i); got != texts[i] {
			t.Errorf("LineText(%d) = %q, want %q", i, got, texts[i])
		}
	}

	if got := r.LineEnd(-1); got != 0 {
		t.Errorf("LineEnd(-1) = %d, want 0", got)
	}
	if got := r.LineStart(-1); got != 0 {
		t.Errorf("LineStart(-1) = %d, want 0", got)
	}
}

func TestRopeLineQueriesLarge(t *testing.T) {
	// Enough lines to force a multi-level tree.
	var sb strings.Builder
	for i := 0; i < 2000; i++ {
		sb.WriteString("abcdefghij\n")
	}
	r := FromString(sb.String())

	if r.LineCount() != 2001 {
		t.Fatalf("expected 2001 lines, got %d", r.LineCount())
	}
	if got := r.LineStart(1000); got != 11000 {
		t.Errorf("LineStart(1000) = %d, want 11000", got)
	}
	if got := r.LineText(1999); got != "abcdefghij" {
		t.Errorf("LineText(1999) = %q", got)
	}
	if r.Height() <= 1 {
		t.Errorf("expected multi-level tree, height %d", r.Height())
	}
}

func TestOffsetToPoint(t *testing.T) {
	r := FromString("line 1\nline 2")

	tests := []struct {
		offset int
		want   Point
	}{
		{0, Point{0, 0}},
		{4, Point{0, 4}},
		{6, Point{0, 6}}, // on the newline
		{7, Point{1, 0}},
		{11, Point{1, 4}},
		{13, Point{1, 6}},
		{100, Point{1, 6}}, // clamped
	}

	for _, tt := range tests {
		if got := r.OffsetToPoint(tt.offset); got != tt.want {
			t.Errorf("OffsetToPoint(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestPointToOffset(t *testing.T) {
	r := FromString("line 1\nline 2")

	tests := []struct {
		point Point
		want  int
	}{
		{Point{0, 0}, 0},
		{Point{1, 0}, 7},
		{Point{1, 4}, 11},
		{Point{0, 100}, 6},  // clamped to line end, before newline
		{Point{100, 0}, 13}, // clamped to rope end
	}

	for _, tt := range tests {
		if got := r.PointToOffset(tt.point); got != tt.want {
			t.Errorf("PointToOffset(%v) = %d, want %d", tt.point, got, tt.want)
		}
	}
}

func TestRopeSplitConcat(t *testing.T) {
	r := FromString("Hello World")
	left, right := r.Split(5)

	if left.String() != "Hello" {
		t.Errorf("left = %q", left.String())
	}
	if right.String() != " World" {
		t.Errorf("right = %q", right.String())
	}
	if joined := left.Concat(right); joined.String() != "Hello World" {
		t.Errorf("concat = %q", joined.String())
	}
}

func TestRopeEditsOnLargeText(t *testing.T) {
	base := strings.Repeat("the quick brown fox\n", 1000)
	r := FromString(base)

	r = r.Insert(10000, "JUMPED")
	if r.Len() != len(base)+6 {
		t.Fatalf("unexpected length %d", r.Len())
	}
	r = r.Delete(10000, 10006)
	if r.String() != base {
		t.Error("insert+delete did not restore original")
	}
}
