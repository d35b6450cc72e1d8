package history

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/notefall/editcore/engine/cursor"
)

// MergeWindow is the maximum age of the previous operation for an
// incoming operation to merge into it.
const MergeWindow = 500 * time.Millisecond

// Kind identifies what an operation did to the buffer.
type Kind uint8

const (
	KindInsert Kind = iota
	KindDelete
	KindReplace
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Operation is a single reversible edit. Position is a character
// offset. For an insert, Text is what was added; for a delete, Text is
// what was removed; for a replace, OldText was removed and Text added
// at Position.
//
// Cursor and selection snapshots let the caller restore the view when
// the operation is undone or redone.
type Operation struct {
	Kind            Kind
	Position        int
	Text            string
	OldText         string
	CursorBefore    cursor.Position
	SelectionBefore cursor.Selection
	CursorAfter     cursor.Position
	Timestamp       time.Time
}

// NewInsert records an insertion of text at a character offset.
func NewInsert(position int, text string, before cursor.Position, sel cursor.Selection, after cursor.Position, at time.Time) Operation {
	return Operation{
		Kind:            KindInsert,
		Position:        position,
		Text:            text,
		CursorBefore:    before,
		SelectionBefore: sel,
		CursorAfter:     after,
		Timestamp:       at,
	}
}

// NewDelete records a removal of text from a character offset.
func NewDelete(position int, text string, before cursor.Position, sel cursor.Selection, after cursor.Position, at time.Time) Operation {
	return Operation{
		Kind:            KindDelete,
		Position:        position,
		Text:            text,
		CursorBefore:    before,
		SelectionBefore: sel,
		CursorAfter:     after,
		Timestamp:       at,
	}
}

// NewReplace records oldText being replaced by text at a character
// offset.
func NewReplace(position int, oldText, text string, before cursor.Position, sel cursor.Selection, after cursor.Position, at time.Time) Operation {
	return Operation{
		Kind:            KindReplace,
		Position:        position,
		Text:            text,
		OldText:         oldText,
		CursorBefore:    before,
		SelectionBefore: sel,
		CursorAfter:     after,
		Timestamp:       at,
	}
}

// TextLen returns the character length of the operation's text.
func (op *Operation) TextLen() int {
	return utf8.RuneCountInString(op.Text)
}

// CanMergeWith reports whether next can merge into op as one logical
// edit. Only consecutive typing merges:
//
//   - Insert + Insert: next is strictly adjacent (its position is the
//     end of op's text), arrives within the merge window, is not a lone
//     newline, and does not append a space to text already ending in a
//     space.
//   - Delete + Delete: next arrives within the merge window and matches
//     either the backspace pattern (next ends where op starts) or the
//     forward-delete pattern (same position); neither text contains a
//     newline.
//
// No other kind pairs merge.
func (op *Operation) CanMergeWith(next *Operation) bool {
	if next.Kind != op.Kind {
		return false
	}
	if next.Timestamp.Sub(op.Timestamp) > MergeWindow {
		return false
	}

	switch op.Kind {
	case KindInsert:
		if next.Position != op.Position+op.TextLen() {
			return false
		}
		if next.Text == "\n" {
			return false
		}
		if strings.HasPrefix(next.Text, " ") && strings.HasSuffix(op.Text, " ") {
			return false
		}
		return true

	case KindDelete:
		if strings.Contains(op.Text, "\n") || strings.Contains(next.Text, "\n") {
			return false
		}
		backspace := next.Position+next.TextLen() == op.Position
		forward := next.Position == op.Position
		return backspace || forward

	default:
		return false
	}
}

// merge folds next into op. The caller has already checked
// CanMergeWith.
func (op *Operation) merge(next *Operation) {
	switch op.Kind {
	case KindInsert:
		op.Text += next.Text
	case KindDelete:
		if next.Position == op.Position {
			// Forward delete: text accumulates rightward.
			op.Text += next.Text
		} else {
			// Backspace: text accumulates leftward.
			op.Position = next.Position
			op.Text = next.Text + op.Text
		}
	}
	op.CursorAfter = next.CursorAfter
	op.Timestamp = next.Timestamp
}
