// Package markring implements the mark ring: a bounded history of
// prior point positions, pushed by commands like set-mark-command so
// a user can return to earlier locations in a buffer.
package markring

import "github.com/ar-go/nucleus/internal/text"

// DefaultCapacity is the ring's default entry capacity.
const DefaultCapacity = 16

// Ring is a bounded ring of prior char-offset positions, newest first.
type Ring struct {
	positions []text.CharOffset
	capacity  int
}

// New returns an empty Ring with the given capacity.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{capacity: capacity}
}

// Push adds pos to the front of the ring. A duplicate at the head is
// suppressed; on overflow the oldest entry is dropped.
func (r *Ring) Push(pos text.CharOffset) {
	if len(r.positions) > 0 && r.positions[0] == pos {
		return
	}
	if len(r.positions) >= r.capacity {
		r.positions = r.positions[:len(r.positions)-1]
	}
	r.positions = append([]text.CharOffset{pos}, r.positions...)
}

// Len returns the number of positions currently held.
func (r *Ring) Len() int {
	return len(r.positions)
}

// Positions returns a copy of the ring, newest first.
func (r *Ring) Positions() []text.CharOffset {
	out := make([]text.CharOffset, len(r.positions))
	copy(out, r.positions)
	return out
}

// AdjustAfterInsert shifts every position strictly greater than at by
// length, mirroring cursor.Set.AdjustAfterInsert.
func (r *Ring) AdjustAfterInsert(at text.CharOffset, length text.CharOffset) {
	for i, p := range r.positions {
		if p > at {
			r.positions[i] = p + length
		}
	}
}

// AdjustAfterDelete updates every position for the removal of
// [start, end), mirroring cursor.Set.AdjustAfterDelete.
func (r *Ring) AdjustAfterDelete(start, end text.CharOffset) {
	shift := end - start
	for i, p := range r.positions {
		switch {
		case p >= end:
			r.positions[i] = p - shift
		case p > start:
			r.positions[i] = start
		}
	}
}
