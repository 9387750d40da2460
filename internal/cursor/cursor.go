// Package cursor implements the multi-cursor state machine: stable
// cursor identities, marks (selection anchors), goal columns for
// vertical motion, and the adjustment arithmetic that keeps every
// cursor and mark consistent across buffer edits.
package cursor

import (
	"github.com/ar-go/nucleus/internal/id"
	"github.com/ar-go/nucleus/internal/text"
)

// ID identifies a cursor uniquely within its CursorSet, and remains
// stable across sort/merge as long as the cursor itself survives.
type ID = id.ID

// Cursor is an insertion point plus optional selection state.
type Cursor struct {
	ID ID

	// Position is the point: the char offset this cursor sits at.
	Position text.CharOffset

	// GoalColumn is the remembered desired visual column for vertical
	// motion across lines shorter than the column last visited. Nil
	// means no goal column is currently tracked.
	GoalColumn *uint32

	// Mark is the selection anchor, if one has been set with
	// set-mark-command. MarkActive determines whether the region
	// between Mark and Position is a live selection.
	Mark       *text.CharOffset
	MarkActive bool
}

// New creates a cursor at pos with a fresh stable id and no mark.
func New(pos text.CharOffset) Cursor {
	return Cursor{ID: id.Next(), Position: pos}
}

// HasMark reports whether a mark has ever been set on this cursor.
func (c Cursor) HasMark() bool {
	return c.Mark != nil
}

// Region returns the live selection as an inclusive-exclusive char
// range, ok=false if no mark is active.
func (c Cursor) Region() (start, end text.CharOffset, ok bool) {
	if !c.MarkActive || c.Mark == nil {
		return 0, 0, false
	}
	m := *c.Mark
	if m < c.Position {
		return m, c.Position, true
	}
	return c.Position, m, true
}

// SetMark sets the mark to the cursor's current position and
// activates the region.
func (c *Cursor) SetMark() {
	pos := c.Position
	c.Mark = &pos
	c.MarkActive = true
}

// ExchangePointAndMark swaps Position and Mark, if a mark exists.
func (c *Cursor) ExchangePointAndMark() {
	if c.Mark == nil {
		return
	}
	point := c.Position
	c.Position = *c.Mark
	*c.Mark = point
}

// SetGoalColumn remembers col as the desired visual column.
func (c *Cursor) SetGoalColumn(col uint32) {
	v := col
	c.GoalColumn = &v
}

// ClearGoalColumn forgets any remembered visual column; motions other
// than vertical line movement should call this.
func (c *Cursor) ClearGoalColumn() {
	c.GoalColumn = nil
}

// Clone returns a deep copy (the Mark/GoalColumn pointers are not
// shared with the original).
func (c Cursor) Clone() Cursor {
	clone := c
	if c.Mark != nil {
		m := *c.Mark
		clone.Mark = &m
	}
	if c.GoalColumn != nil {
		g := *c.GoalColumn
		clone.GoalColumn = &g
	}
	return clone
}
