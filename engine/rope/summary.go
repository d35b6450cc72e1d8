package rope

import "unicode/utf8"

// Point is a line/column position. Both fields are 0-indexed and
// Column counts characters from the start of the line.
type Point struct {
	Line   int
	Column int
}

// Summary holds aggregated metrics for a span of text.
// Summaries form a monoid under Add; every node stores the summary of
// its subtree so seeks by character, byte, or line never touch text
// outside the target leaf.
type Summary struct {
	Chars    int // character (rune) count
	Bytes    int // UTF-8 byte count
	Newlines int // number of '\n' characters
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Chars:    s.Chars + other.Chars,
		Bytes:    s.Bytes + other.Bytes,
		Newlines: s.Newlines + other.Newlines,
	}
}

// IsZero returns true if the summary describes empty text.
func (s Summary) IsZero() bool {
	return s.Bytes == 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) Summary {
	sum := Summary{Bytes: len(s)}
	for _, r := range s {
		sum.Chars++
		if r == '\n' {
			sum.Newlines++
		}
	}
	return sum
}

// byteIndexOfChar returns the byte index of the nth character of s.
// n past the last character returns len(s).
func byteIndexOfChar(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

// charIndexOfByte returns the character index of the rune starting at
// byte index b.
func charIndexOfByte(s string, b int) int {
	return utf8.RuneCountInString(s[:b])
}
