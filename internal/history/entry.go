package history

import (
	"unicode/utf8"

	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/text"
)

// EditKind distinguishes the two primitive edit operations.
type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
)

// Edit is a single primitive change: an insertion or deletion of text
// at a char position. Delete stores the full removed text so its
// inverse is an Insert of the same text, and vice versa.
type Edit struct {
	Kind     EditKind
	Position text.CharOffset
	Text     string
}

func (e Edit) invert() Edit {
	kind := EditInsert
	if e.Kind == EditInsert {
		kind = EditDelete
	}
	return Edit{Kind: kind, Position: e.Position, Text: e.Text}
}

func (e Edit) charLen() text.CharOffset {
	return text.CharOffset(utf8.RuneCountInString(e.Text))
}

// Entry is one undo-able unit: a batch of edits applied together, plus
// the cursor snapshot captured just before the first edit in the
// group (nil for entries synthesized by undo itself).
type Entry struct {
	Edits         []Edit
	CursorsBefore *cursor.Set
}

func invertEntry(e Entry) Entry {
	n := len(e.Edits)
	inv := make([]Edit, n)
	for i, ed := range e.Edits {
		inv[n-1-i] = ed.invert()
	}
	return Entry{Edits: inv}
}

// Apply is the result of Undo: the edits to replay against the buffer
// (in order) and the cursor set to restore afterward, if one was
// captured.
type Apply struct {
	Edits          []Edit
	RestoreCursors *cursor.Set
}

func containsBoundaryChar(s string) bool {
	for _, r := range s {
		if text.IsBoundaryChar(r) {
			return true
		}
	}
	return false
}
