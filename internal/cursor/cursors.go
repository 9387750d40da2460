package cursor

import (
	"sort"

	"github.com/ar-go/nucleus/internal/text"
)

// Set is a nonempty collection of cursors, always kept sorted by
// position with the cursor at index 0 acting as primary. At most one
// cursor occupies any given position and every id is unique, though
// the cursor holding the primary role may change identity across a
// merge.
type Set struct {
	cursors []Cursor
}

// NewSet returns a Set with a single cursor at pos.
func NewSet(pos text.CharOffset) *Set {
	return &Set{cursors: []Cursor{New(pos)}}
}

// NewSetFrom returns a Set built from an existing slice of cursors,
// sorted and merged immediately.
func NewSetFrom(cursors []Cursor) *Set {
	if len(cursors) == 0 {
		return NewSet(0)
	}
	s := &Set{cursors: append([]Cursor(nil), cursors...)}
	s.SortAndMerge()
	return s
}

// Primary returns a pointer to the primary cursor for in-place
// mutation.
func (s *Set) Primary() *Cursor {
	return &s.cursors[0]
}

// Secondaries returns the secondary cursors in ascending position
// order.
func (s *Set) Secondaries() []Cursor {
	if len(s.cursors) <= 1 {
		return nil
	}
	return s.cursors[1:]
}

// All returns every cursor, primary first, in ascending position
// order.
func (s *Set) All() []Cursor {
	return s.cursors
}

// Len returns the number of cursors.
func (s *Set) Len() int {
	return len(s.cursors)
}

// At returns a pointer to the cursor at index i for in-place mutation.
func (s *Set) At(i int) *Cursor {
	return &s.cursors[i]
}

// ByID returns a pointer to the cursor with the given id, or nil.
func (s *Set) ByID(cid ID) *Cursor {
	for i := range s.cursors {
		if s.cursors[i].ID == cid {
			return &s.cursors[i]
		}
	}
	return nil
}

// AddCursor adds a cursor at pos. No-op if a cursor already holds pos.
func (s *Set) AddCursor(pos text.CharOffset) {
	for _, c := range s.cursors {
		if c.Position == pos {
			return
		}
	}
	s.cursors = append(s.cursors, New(pos))
	s.SortAndMerge()
}

// RemoveSecondaries collapses the set to just the primary cursor,
// used by keyboard-quit.
func (s *Set) RemoveSecondaries() {
	if len(s.cursors) > 1 {
		s.cursors = s.cursors[:1]
	}
}

// PositionsDescending returns a snapshot of every cursor's position,
// sorted high to low, so edits applied in that order never invalidate
// an offset not yet processed.
func (s *Set) PositionsDescending() []text.CharOffset {
	out := make([]text.CharOffset, len(s.cursors))
	for i, c := range s.cursors {
		out[i] = c.Position
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// IDsDescendingByPosition returns every cursor id ordered by current
// position, high to low, used by InsertAtCursors to process per-cursor
// edits without invalidating earlier offsets.
func (s *Set) IDsDescendingByPosition() []ID {
	type pair struct {
		id  ID
		pos text.CharOffset
	}
	pairs := make([]pair, len(s.cursors))
	for i, c := range s.cursors {
		pairs[i] = pair{c.ID, c.Position}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].pos > pairs[j].pos })
	out := make([]ID, len(pairs))
	for i, p := range pairs {
		out[i] = p.id
	}
	return out
}

// AdjustAfterInsert shifts every cursor position and mark strictly
// greater than at by len. Positions equal to at are left alone; the
// inserting cursor itself is advanced separately by the caller.
func (s *Set) AdjustAfterInsert(at text.CharOffset, length text.CharOffset) {
	for i := range s.cursors {
		c := &s.cursors[i]
		if c.Position > at {
			c.Position += length
		}
		if c.Mark != nil && *c.Mark > at {
			*c.Mark += length
		}
	}
}

// AdjustAfterDelete updates every cursor position and mark for the
// removal of [start, end): positions at or past end shift left by the
// deleted length; positions strictly inside the deleted range collapse
// to start; positions before start are unaffected.
func (s *Set) AdjustAfterDelete(start, end text.CharOffset) {
	shift := end - start
	adjust := func(p text.CharOffset) text.CharOffset {
		switch {
		case p >= end:
			return p - shift
		case p > start:
			return start
		default:
			return p
		}
	}
	for i := range s.cursors {
		c := &s.cursors[i]
		c.Position = adjust(c.Position)
		if c.Mark != nil {
			*c.Mark = adjust(*c.Mark)
		}
	}
}

// DeactivateAllMarks clears mark_active on every cursor. Marks remain
// valid positions for exchange-point-and-mark.
func (s *Set) DeactivateAllMarks() {
	for i := range s.cursors {
		s.cursors[i].MarkActive = false
	}
}

// ExchangePointAndMark swaps point and mark on the primary cursor.
func (s *Set) ExchangePointAndMark() {
	s.Primary().ExchangePointAndMark()
}

// Clamp clamps every position and mark to [0, maxChars].
func (s *Set) Clamp(maxChars text.CharOffset) {
	clamp := func(p text.CharOffset) text.CharOffset {
		if p < 0 {
			return 0
		}
		if p > maxChars {
			return maxChars
		}
		return p
	}
	for i := range s.cursors {
		c := &s.cursors[i]
		c.Position = clamp(c.Position)
		if c.Mark != nil {
			*c.Mark = clamp(*c.Mark)
		}
	}
	s.SortAndMerge()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	clone := &Set{cursors: make([]Cursor, len(s.cursors))}
	for i, c := range s.cursors {
		clone.cursors[i] = c.Clone()
	}
	return clone
}

// SortAndMerge sorts cursors by ascending position and merges
// duplicates at the same position, keeping the first-encountered
// cursor at each position. The cursor surviving at index 0, the
// minimum position, becomes primary even if it was not primary before
// the merge.
func (s *Set) SortAndMerge() {
	sort.SliceStable(s.cursors, func(i, j int) bool {
		return s.cursors[i].Position < s.cursors[j].Position
	})

	out := s.cursors[:0]
	for i, c := range s.cursors {
		if i > 0 && c.Position == out[len(out)-1].Position {
			continue
		}
		out = append(out, c)
	}
	s.cursors = out
}
