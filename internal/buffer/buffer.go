// Package buffer implements the editor's mutable text store: a rope,
// a mark ring, and an undo history behind a char-addressed mutation
// surface. A Buffer does not own cursors; every mutation takes the
// caller's *cursor.Set explicitly, since multiple windows may view one
// buffer with independent cursor sets.
package buffer

import (
	"sync"

	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/history"
	"github.com/ar-go/nucleus/internal/markring"
	"github.com/ar-go/nucleus/internal/text"
)

// ID identifies a Buffer, assigned from the process-wide monotonic
// counter and never reused.
type ID = uint64

// Buffer owns a rope, a mark ring, and an undo history. Mutation
// methods are synchronous and run-to-completion; the mutex
// exists only to make a Buffer safe to share across windows that read
// concurrently with a render, not to support concurrent edits.
type Buffer struct {
	mu sync.RWMutex

	id       ID
	name     string
	filePath string
	mode     string
	readOnly bool
	modified bool

	rope    text.Rope
	marks   *markring.Ring
	history *history.History
}

// Option configures a new Buffer.
type Option func(*Buffer)

// WithName sets the buffer's display name.
func WithName(name string) Option {
	return func(b *Buffer) { b.name = name }
}

// WithFilePath associates the buffer with a file on disk.
func WithFilePath(path string) Option {
	return func(b *Buffer) { b.filePath = path }
}

// WithReadOnly marks the buffer read-only from creation.
func WithReadOnly(ro bool) Option {
	return func(b *Buffer) { b.readOnly = ro }
}

// WithMode sets the buffer's mode tag (e.g. "fundamental", "text").
func WithMode(mode string) Option {
	return func(b *Buffer) { b.mode = mode }
}

// WithMarkRingCapacity overrides the mark ring's default capacity.
func WithMarkRingCapacity(capacity int) Option {
	return func(b *Buffer) { b.marks = markring.New(capacity) }
}

// WithUndoMaxEntries overrides the undo history's default entry ceiling.
func WithUndoMaxEntries(max int) Option {
	return func(b *Buffer) { b.history = history.New(max) }
}

// New returns an empty buffer with the given id.
func New(id ID, opts ...Option) *Buffer {
	return newBuffer(id, text.NewRope(), opts...)
}

// NewFromString returns a buffer seeded with existing content.
func NewFromString(id ID, content string, opts ...Option) *Buffer {
	return newBuffer(id, text.RopeFromString(content), opts...)
}

func newBuffer(id ID, r text.Rope, opts ...Option) *Buffer {
	b := &Buffer{
		id:      id,
		mode:    "fundamental",
		rope:    r,
		marks:   markring.New(markring.DefaultCapacity),
		history: history.New(history.DefaultMaxEntries),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the buffer's identity.
func (b *Buffer) ID() ID { return b.id }

// Name returns the buffer's display name.
func (b *Buffer) Name() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.name
}

// SetName renames the buffer.
func (b *Buffer) SetName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = name
}

// FilePath returns the associated file path, if any.
func (b *Buffer) FilePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.filePath
}

// SetFilePath associates the buffer with a file path.
func (b *Buffer) SetFilePath(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filePath = path
}

// Mode returns the buffer's mode tag.
func (b *Buffer) Mode() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.mode
}

// ReadOnly reports whether the buffer rejects mutation.
func (b *Buffer) ReadOnly() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.readOnly
}

// SetReadOnly toggles the read-only flag.
func (b *Buffer) SetReadOnly(ro bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readOnly = ro
}

// Modified reports whether the buffer has unsaved changes.
func (b *Buffer) Modified() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.modified
}

// SetModified sets the modified flag directly. Save and the file
// loaders clear the flag themselves without calling it.
func (b *Buffer) SetModified(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modified = v
}

// Rope returns a snapshot of the buffer's text view. Ropes are
// immutable-sharing, so this is cheap and safe to retain.
func (b *Buffer) Rope() text.Rope {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope
}

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return b.Rope().String()
}

// LenChars returns the buffer's length in Unicode scalars.
func (b *Buffer) LenChars() text.CharOffset {
	return b.Rope().LenChars()
}

// History returns the buffer's undo log.
func (b *Buffer) History() *history.History {
	return b.history
}

// MarkRing returns the buffer's mark ring.
func (b *Buffer) MarkRing() *markring.Ring {
	return b.marks
}

// AddUndoBoundary commits the pending undo group, starting a fresh
// coalescing window for the next edit.
func (b *Buffer) AddUndoBoundary() {
	b.history.Flush()
}

// Undo reverses the most recent undo-able group, mutating the rope and
// returning the cursor set that was active beforehand (nil if none was
// captured). ok is false if there is nothing to undo.
func (b *Buffer) Undo(cursors *cursor.Set) (restored *cursor.Set, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readOnly {
		return nil, false
	}
	apply, ok := b.history.Undo()
	if !ok {
		return nil, false
	}
	b.applyEdits(apply.Edits, cursors)
	b.modified = true
	return apply.RestoreCursors, true
}

// Redo is "undo the undo": it walks the inverses Undo appended at the
// end of the linear log, replaying the original edits.
func (b *Buffer) Redo(cursors *cursor.Set) (restored *cursor.Set, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readOnly {
		return nil, false
	}
	apply, ok := b.history.Redo()
	if !ok {
		return nil, false
	}
	b.applyEdits(apply.Edits, cursors)
	b.modified = true
	return apply.RestoreCursors, true
}

// applyEdits replays undo/redo edits directly against the rope without
// re-recording them into history, adjusting cursors as it goes. Must
// be called with b.mu held.
func (b *Buffer) applyEdits(edits []history.Edit, cursors *cursor.Set) {
	for _, e := range edits {
		switch e.Kind {
		case history.EditInsert:
			length := text.CharOffset(charCount(e.Text))
			pos := e.Position
			if max := b.rope.LenChars(); pos > max {
				pos = max
			}
			b.rope = b.rope.Insert(pos, e.Text)
			if cursors != nil {
				cursors.AdjustAfterInsert(pos, length)
				cursors.Primary().Position = pos + length
			}
			b.marks.AdjustAfterInsert(pos, length)
		case history.EditDelete:
			end := e.Position + text.CharOffset(charCount(e.Text))
			if max := b.rope.LenChars(); end > max {
				end = max
			}
			if e.Position >= end {
				continue
			}
			b.rope = b.rope.Remove(e.Position, end)
			if cursors != nil {
				cursors.AdjustAfterDelete(e.Position, end)
				cursors.Primary().Position = e.Position
			}
			b.marks.AdjustAfterDelete(e.Position, end)
		}
	}
	if cursors != nil {
		cursors.Clamp(b.rope.LenChars())
	}
}

func charCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
