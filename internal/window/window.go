// Package window implements the editor's window layout: rectangular
// placements over a shared terminal/canvas area, each holding its own
// cursor set over a buffer referenced by id. Windows hold a buffer id,
// never a pointer, so buffer and window lifetimes stay decoupled.
package window

import (
	"github.com/ar-go/nucleus/internal/buffer"
	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/id"
)

// ID identifies a Window, issued from the process-wide monotonic
// counter and never reused.
type ID = id.ID

// Window is a rectangular view onto one buffer, with its own cursor
// set and scroll offsets.
type Window struct {
	ID       ID
	BufferID buffer.ID
	Cursors  *cursor.Set

	X, Y          uint16
	Width, Height uint16

	ScrollLine uint32
	// ScrollColumn exists for forward compatibility; no motion command
	// currently writes to it.
	ScrollColumn uint32
}

// New returns a window over bufID at the origin with the default
// 80x24 placement.
func New(bufID buffer.ID) *Window {
	return NewWithDimensions(bufID, 0, 0, 80, 24)
}

// NewWithDimensions returns a window over bufID with an explicit
// placement.
func NewWithDimensions(bufID buffer.ID, x, y, width, height uint16) *Window {
	return &Window{
		ID:       id.Next(),
		BufferID: bufID,
		Cursors:  cursor.NewSet(0),
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
	}
}

// EnsureVisible scrolls so the primary cursor's line stays within
// [ScrollLine, ScrollLine+Height). The post-command hook calls this
// with the cursor's current line.
func (w *Window) EnsureVisible(primaryLine uint32) {
	if w.Height == 0 {
		return
	}
	bottom := w.ScrollLine + uint32(w.Height) - 1
	switch {
	case primaryLine < w.ScrollLine:
		w.ScrollLine = primaryLine
	case primaryLine > bottom:
		w.ScrollLine = primaryLine - uint32(w.Height) + 1
	}
}

// Clone returns a deep copy with a fresh id and its own cursor set.
func (w *Window) Clone() *Window {
	c := *w
	c.ID = id.Next()
	c.Cursors = w.Cursors.Clone()
	return &c
}
