// Package bufmgr owns the editor's set of open buffers: creation, MRU
// ordering, name lookup, and lifecycle.
package bufmgr

import "github.com/ar-go/nucleus/internal/buffer"

// ScratchName is the always-available, unassociated-with-a-file
// buffer the editor falls back to when no other buffer is open.
const ScratchName = "*scratch*"

// Manager owns every open Buffer, keyed by id, plus a most-recently-
// used order and a current-buffer pointer.
type Manager struct {
	buffers map[buffer.ID]*buffer.Buffer
	order   []buffer.ID // MRU, most recent first
	current buffer.ID
	nextID  buffer.ID
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{buffers: make(map[buffer.ID]*buffer.Buffer)}
}

// NewBuffer allocates a fresh buffer id, constructs an empty buffer
// with the given name, adds it, and returns its id.
func (m *Manager) NewBuffer(name string, opts ...buffer.Option) buffer.ID {
	m.nextID++
	b := buffer.New(m.nextID, append([]buffer.Option{buffer.WithName(name)}, opts...)...)
	return m.Add(b)
}

// NewBufferFromString is like NewBuffer but seeds the buffer with
// content (used by find-file).
func (m *Manager) NewBufferFromString(name, content string, opts ...buffer.Option) buffer.ID {
	m.nextID++
	b := buffer.NewFromString(m.nextID, content, append([]buffer.Option{buffer.WithName(name)}, opts...)...)
	return m.Add(b)
}

// NextID allocates a fresh buffer id for buffers constructed outside
// the manager (e.g. loaded from disk with buffer.Load) and later
// registered with Add.
func (m *Manager) NextID() buffer.ID {
	m.nextID++
	return m.nextID
}

// FindByFilePath returns the id of the buffer visiting path, ok=false
// if no open buffer is associated with it.
func (m *Manager) FindByFilePath(path string) (buffer.ID, bool) {
	for _, id := range m.order {
		if b, ok := m.buffers[id]; ok && b.FilePath() == path {
			return id, true
		}
	}
	return 0, false
}

// Add registers an already-constructed buffer, making it current if
// this is the manager's first buffer.
func (m *Manager) Add(b *buffer.Buffer) buffer.ID {
	id := b.ID()
	m.buffers[id] = b
	m.order = append([]buffer.ID{id}, m.order...)
	if m.current == 0 {
		m.current = id
	}
	if id > m.nextID {
		m.nextID = id
	}
	return id
}

// Get returns the buffer with the given id, or nil.
func (m *Manager) Get(id buffer.ID) *buffer.Buffer {
	return m.buffers[id]
}

// CurrentID returns the current buffer's id, or 0 if none is open.
func (m *Manager) CurrentID() buffer.ID {
	return m.current
}

// Current returns the current buffer, or nil if none is open.
func (m *Manager) Current() *buffer.Buffer {
	return m.buffers[m.current]
}

// SetCurrent makes id the current buffer and promotes it to the front
// of the MRU order. Reports false if id is not a known buffer.
func (m *Manager) SetCurrent(id buffer.ID) bool {
	if _, ok := m.buffers[id]; !ok {
		return false
	}
	m.current = id
	m.promote(id)
	return true
}

func (m *Manager) promote(id buffer.ID) {
	for i, bid := range m.order {
		if bid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.order = append([]buffer.ID{id}, m.order...)
}

// FindByName returns the id of the first buffer with the given name,
// ok=false if none matches.
func (m *Manager) FindByName(name string) (buffer.ID, bool) {
	for _, id := range m.order {
		if b, ok := m.buffers[id]; ok && b.Name() == name {
			return id, true
		}
	}
	return 0, false
}

// SwitchToName makes the named buffer current, ok=false if no buffer
// has that name.
func (m *Manager) SwitchToName(name string) bool {
	id, ok := m.FindByName(name)
	if !ok {
		return false
	}
	return m.SetCurrent(id)
}

// Kill removes the buffer from the manager, promoting the next
// most-recently-used buffer to current if the killed buffer was
// current. Returns the removed buffer, or nil if id was unknown.
func (m *Manager) Kill(id buffer.ID) *buffer.Buffer {
	b, ok := m.buffers[id]
	if !ok {
		return nil
	}
	delete(m.buffers, id)
	for i, bid := range m.order {
		if bid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.current == id {
		if len(m.order) > 0 {
			m.current = m.order[0]
		} else {
			m.current = 0
		}
	}
	return b
}

// KillCurrent kills the current buffer, if any.
func (m *Manager) KillCurrent() *buffer.Buffer {
	if m.current == 0 {
		return nil
	}
	return m.Kill(m.current)
}

// All returns every buffer in MRU order, most recent first.
func (m *Manager) All() []*buffer.Buffer {
	out := make([]*buffer.Buffer, 0, len(m.order))
	for _, id := range m.order {
		if b, ok := m.buffers[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

// Count returns the number of open buffers.
func (m *Manager) Count() int {
	return len(m.buffers)
}

// IsEmpty reports whether no buffers are open.
func (m *Manager) IsEmpty() bool {
	return len(m.buffers) == 0
}

// ModifiedCount returns how many open buffers have unsaved changes,
// used by exit's single global modified-buffers prompt.
func (m *Manager) ModifiedCount() int {
	n := 0
	for _, b := range m.buffers {
		if b.Modified() {
			n++
		}
	}
	return n
}

// EnsureScratch returns the id of the "*scratch*" buffer, creating it
// if it doesn't already exist.
func (m *Manager) EnsureScratch() buffer.ID {
	if id, ok := m.FindByName(ScratchName); ok {
		return id
	}
	return m.NewBuffer(ScratchName)
}
