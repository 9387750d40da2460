package window

import (
	"github.com/ar-go/nucleus/internal/buffer"
	"github.com/ar-go/nucleus/internal/cursor"
)

// Manager owns the set of windows tiled over a fixed total area,
// cycling a "current" index. Add, SplitBelow, the deletes and resize
// relay out every window, stacking them vertically; SplitRight places
// the new window beside the current one without a relayout.
type Manager struct {
	windows     []*Window
	current     int
	totalWidth  uint16
	totalHeight uint16
}

// NewManager returns a Manager over the given total area.
func NewManager(width, height uint16) *Manager {
	return &Manager{totalWidth: width, totalHeight: height}
}

// SetDimensions updates the total area and relays out every window.
func (m *Manager) SetDimensions(width, height uint16) {
	m.totalWidth = width
	m.totalHeight = height
	m.relayout()
}

// Add creates a new window over bufID sized to the full usable area
// and makes it current.
func (m *Manager) Add(bufID buffer.ID) ID {
	w := NewWithDimensions(bufID, 0, 0, m.totalWidth, reserveStatusLine(m.totalHeight))
	m.windows = append(m.windows, w)
	m.current = len(m.windows) - 1
	m.relayout()
	return w.ID
}

// Current returns the current window, or nil if none exist.
func (m *Manager) Current() *Window {
	if m.current < 0 || m.current >= len(m.windows) {
		return nil
	}
	return m.windows[m.current]
}

// CurrentBufferID returns the current window's buffer id, or 0.
func (m *Manager) CurrentBufferID() buffer.ID {
	if w := m.Current(); w != nil {
		return w.BufferID
	}
	return 0
}

// SetCurrentBuffer retargets the current window onto a different
// buffer, resetting scroll and cursors (switch-to-buffer).
func (m *Manager) SetCurrentBuffer(bufID buffer.ID) {
	if w := m.Current(); w != nil {
		w.BufferID = bufID
		w.Cursors = cursor.NewSet(0)
		w.ScrollLine = 0
		w.ScrollColumn = 0
	}
}

// ByID returns the window with the given id, or nil.
func (m *Manager) ByID(wid ID) *Window {
	for _, w := range m.windows {
		if w.ID == wid {
			return w
		}
	}
	return nil
}

// All returns every window in layout order.
func (m *Manager) All() []*Window {
	return m.windows
}

// Count returns the number of open windows.
func (m *Manager) Count() int {
	return len(m.windows)
}

// CycleNext makes the next window (wrapping) current (other-window).
func (m *Manager) CycleNext() {
	if len(m.windows) == 0 {
		return
	}
	m.current = (m.current + 1) % len(m.windows)
}

// CyclePrev makes the previous window (wrapping) current.
func (m *Manager) CyclePrev() {
	if len(m.windows) == 0 {
		return
	}
	if m.current == 0 {
		m.current = len(m.windows) - 1
	} else {
		m.current--
	}
}

// SplitBelow splits the current window horizontally, top and bottom,
// both viewing the same buffer (split-window-below).
func (m *Manager) SplitBelow() {
	cur := m.Current()
	if cur == nil {
		return
	}
	half := cur.Height / 2
	next := NewWithDimensions(cur.BufferID, cur.X, cur.Y+half, cur.Width, cur.Height-half)
	cur.Height = half
	m.insertAfterCurrent(next)
	m.relayout()
}

// SplitRight splits the current window vertically, left and right,
// both viewing the same buffer (split-window-right).
func (m *Manager) SplitRight() {
	cur := m.Current()
	if cur == nil {
		return
	}
	half := cur.Width / 2
	next := NewWithDimensions(cur.BufferID, cur.X+half, cur.Y, cur.Width-half, cur.Height)
	cur.Width = half
	m.insertAfterCurrent(next)
}

func (m *Manager) insertAfterCurrent(w *Window) {
	idx := m.current + 1
	m.windows = append(m.windows, nil)
	copy(m.windows[idx+1:], m.windows[idx:])
	m.windows[idx] = w
	m.current = idx
}

// DeleteCurrent closes the current window (delete-window), a no-op if
// it is the last window.
func (m *Manager) DeleteCurrent() {
	if len(m.windows) <= 1 {
		return
	}
	m.windows = append(m.windows[:m.current], m.windows[m.current+1:]...)
	if m.current >= len(m.windows) {
		m.current = len(m.windows) - 1
	}
	m.relayout()
}

// DeleteOthers closes every window but the current one
// (delete-other-windows).
func (m *Manager) DeleteOthers() {
	cur := m.Current()
	if cur == nil {
		return
	}
	m.windows = []*Window{cur}
	m.current = 0
	m.relayout()
}

func reserveStatusLine(height uint16) uint16 {
	if height == 0 {
		return 0
	}
	return height - 1
}

// relayout tiles every window vertically across the usable area
// (total height minus one reserved status/minibuffer line), splitting
// any remainder across the first windows so rows are never lost.
func (m *Manager) relayout() {
	if len(m.windows) == 0 {
		return
	}
	usable := reserveStatusLine(m.totalHeight)
	n := uint16(len(m.windows))
	base := usable / n
	remainder := usable % n

	var y uint16
	for i, w := range m.windows {
		extra := uint16(0)
		if uint16(i) < remainder {
			extra = 1
		}
		w.X = 0
		w.Y = y
		w.Width = m.totalWidth
		w.Height = base + extra
		y += w.Height
	}
}
