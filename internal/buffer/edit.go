package buffer

import (
	"strings"

	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/text"
)

// InsertString inserts s at every cursor's position. A newline in s
// brackets the edit with undo
// boundaries so the insertion starts and ends its own undo group.
// Every cursor advances past the inserted text and its mark is
// deactivated. A no-op on a read-only buffer.
func (b *Buffer) InsertString(cursors *cursor.Set, s string) {
	if s == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readOnly {
		return
	}

	hasNewline := strings.Contains(s, "\n")
	if hasNewline {
		b.history.Flush()
	}

	snapshot := cursors.Clone()
	positions := cursors.PositionsDescending()
	length := text.CharOffset(charCount(s))

	b.history.BeginBatch(nil)
	maxChars := b.rope.LenChars()
	for _, pos := range positions {
		p := pos
		if p > maxChars {
			p = maxChars
		}
		b.history.RecordInsert(p, s)
		b.rope = b.rope.Insert(p, s)
		cursors.AdjustAfterInsert(p, length)
		b.marks.AdjustAfterInsert(p, length)
		maxChars += length
	}
	b.history.EndBatch()
	b.history.SetCursorsBefore(snapshot)

	for i := 0; i < cursors.Len(); i++ {
		c := cursors.At(i)
		c.Position += length
		c.MarkActive = false
	}
	cursors.SortAndMerge()

	if hasNewline {
		b.history.Flush()
	}
	b.modified = true
}

// InsertAtCursors inserts a distinct string per cursor id, the yank
// path. Cursors with no entry, or an
// empty entry, are left untouched. All insertions commit as one undo
// batch.
func (b *Buffer) InsertAtCursors(cursors *cursor.Set, texts map[cursor.ID]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readOnly {
		return
	}

	type op struct {
		id   cursor.ID
		pos  text.CharOffset
		text string
	}
	var ops []op
	for _, id := range cursors.IDsDescendingByPosition() {
		c := cursors.ByID(id)
		if c == nil {
			continue
		}
		s, ok := texts[id]
		if !ok || s == "" {
			continue
		}
		ops = append(ops, op{id: id, pos: c.Position, text: s})
	}
	if len(ops) == 0 {
		return
	}

	snapshot := cursors.Clone()
	b.history.BeginBatch(nil)
	for _, o := range ops {
		length := text.CharOffset(charCount(o.text))
		b.history.RecordInsert(o.pos, o.text)
		b.rope = b.rope.Insert(o.pos, o.text)

		insertedAt := o.pos
		for i := 0; i < cursors.Len(); i++ {
			c := cursors.At(i)
			if c.ID == o.id {
				c.Position += length
				continue
			}
			if c.Position > insertedAt {
				c.Position += length
			}
			if c.Mark != nil && *c.Mark > insertedAt {
				*c.Mark += length
			}
		}
		b.marks.AdjustAfterInsert(insertedAt, length)
	}
	b.history.EndBatch()
	b.history.SetCursorsBefore(snapshot)
	cursors.SortAndMerge()
	b.modified = true
}

// DeleteCharForward deletes the char at (or after) every cursor
// (delete-char). A no-op on a read-only buffer.
func (b *Buffer) DeleteCharForward(cursors *cursor.Set) {
	b.deleteAdjacent(cursors, true)
}

// DeleteCharBackward deletes the char before every cursor
// (delete-backward-char). A no-op on a read-only buffer.
func (b *Buffer) DeleteCharBackward(cursors *cursor.Set) {
	b.deleteAdjacent(cursors, false)
}

func (b *Buffer) deleteAdjacent(cursors *cursor.Set, forward bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readOnly {
		return
	}

	snapshot := cursors.Clone()
	b.history.BeginBatch(nil)
	any := false
	for _, pos := range cursors.PositionsDescending() {
		var at text.CharOffset
		if forward {
			if pos >= b.rope.LenChars() {
				continue
			}
			at = pos
		} else {
			if pos <= 0 {
				continue
			}
			at = pos - 1
		}
		ch, ok := b.rope.CharAt(at)
		if !ok {
			continue
		}
		removed := string(ch)
		b.history.RecordDelete(at, removed)
		b.rope = b.rope.Remove(at, at+1)
		cursors.AdjustAfterDelete(at, at+1)
		b.marks.AdjustAfterDelete(at, at+1)
		any = true
	}
	b.history.EndBatch()
	b.history.SetCursorsBefore(snapshot)
	cursors.SortAndMerge()
	if any {
		b.modified = true
	}
}

// DeleteRegion deletes a single [start, end) char range, the
// single-cursor region-delete used by kill-region and friends.
// Coalescing is broken on both sides so the
// deletion is always its own undo step. Returns the deleted text;
// empty or inverted regions return "" without mutating anything.
func (b *Buffer) DeleteRegion(cursors *cursor.Set, start, end text.CharOffset) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readOnly {
		return ""
	}
	maxChars := b.rope.LenChars()
	if start < 0 {
		start = 0
	}
	if end > maxChars {
		end = maxChars
	}
	if start >= end {
		return ""
	}

	b.history.Flush()
	snapshot := cursors.Clone()
	removed := b.rope.Slice(start, end)
	b.history.RecordDelete(start, removed)
	b.rope = b.rope.Remove(start, end)
	cursors.AdjustAfterDelete(start, end)
	b.marks.AdjustAfterDelete(start, end)
	b.history.SetCursorsBefore(snapshot)
	b.history.Flush()
	b.modified = true
	return removed
}

// DeletedRegion pairs a cursor id with the text removed at its region,
// returned by DeleteRegions.
type DeletedRegion struct {
	ID   cursor.ID
	Text string
}

// RegionSpan identifies one cursor's region to delete, input to
// DeleteRegions.
type RegionSpan struct {
	ID         cursor.ID
	Start, End text.CharOffset
}

// DeleteRegions deletes multiple cursors' regions as a single undo
// batch, processing spans in descending
// start order so earlier deletes never invalidate later offsets.
func (b *Buffer) DeleteRegions(cursors *cursor.Set, spans []RegionSpan) []DeletedRegion {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readOnly || len(spans) == 0 {
		return nil
	}

	ordered := append([]RegionSpan(nil), spans...)
	sortSpansDescending(ordered)

	b.history.Flush()
	snapshot := cursors.Clone()
	b.history.BeginBatch(nil)
	var out []DeletedRegion
	maxChars := b.rope.LenChars()
	for _, sp := range ordered {
		start, end := sp.Start, sp.End
		if start < 0 {
			start = 0
		}
		if end > maxChars {
			end = maxChars
		}
		if start >= end {
			continue
		}
		removed := b.rope.Slice(start, end)
		b.history.RecordDelete(start, removed)
		b.rope = b.rope.Remove(start, end)
		cursors.AdjustAfterDelete(start, end)
		b.marks.AdjustAfterDelete(start, end)
		maxChars -= end - start
		out = append(out, DeletedRegion{ID: sp.ID, Text: removed})
	}
	b.history.EndBatch()
	b.history.SetCursorsBefore(snapshot)
	b.history.Flush()
	cursors.SortAndMerge()
	if len(out) > 0 {
		b.modified = true
	}
	return out
}

func sortSpansDescending(spans []RegionSpan) {
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j-1].Start < spans[j].Start; j-- {
			spans[j-1], spans[j] = spans[j], spans[j-1]
		}
	}
}
