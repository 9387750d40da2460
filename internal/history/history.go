// Package history implements the buffer's undo log: an Emacs-style
// linear sequence of entries where undo appends the inverse of the
// entry it undoes rather than maintaining a separate redo stack.
// Consecutive undos keep walking back through the log. Redo restarts
// the walk from the end of the log, where the appended inverses sit,
// so undoing an inverse replays the original edit.
//
// Coalescing merges adjacent small edits (single-char self-insert,
// single-char backspace/forward-delete, or a matching multi-cursor
// batch) into the still-open pending group so a burst of typing
// undoes as one step. A boundary (Flush) commits the pending group.
package history

import (
	"sync"
	"unicode/utf8"

	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/text"
)

// DefaultMaxEntries is the default entry-count ceiling before the
// oldest committed entries are garbage-collected.
const DefaultMaxEntries = 10000

// History is a single buffer's undo log.
type History struct {
	mu sync.Mutex

	entries    []Entry
	hasIndex   bool
	index      int
	maxEntries int

	pending     Entry
	pendingOpen bool

	inBatch            bool
	batchEdits         []Edit
	batchCursorsBefore *cursor.Set

	// redoing is true while a run of consecutive Redo calls is walking
	// back from the end of the log through previously appended inverses.
	redoing bool
}

// New returns an empty History with the given entry ceiling (0 uses
// DefaultMaxEntries).
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// BeginBatch opens a multi-edit group; every RecordInsert/RecordDelete
// call until the matching EndBatch accumulates into this one group
// instead of being coalesced individually. cursorsBefore is the
// cursor snapshot to attach if this group ends up starting a fresh
// pending entry (ignored if it merges into an already-open one, which
// keeps its original snapshot).
func (h *History) BeginBatch(cursorsBefore *cursor.Set) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inBatch = true
	h.batchEdits = nil
	h.batchCursorsBefore = cursorsBefore
}

// RecordInsert records a single char-level insertion.
func (h *History) RecordInsert(pos text.CharOffset, s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(Edit{Kind: EditInsert, Position: pos, Text: s})
}

// RecordDelete records a single char-level deletion; s is the text
// that was removed.
func (h *History) RecordDelete(pos text.CharOffset, s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(Edit{Kind: EditDelete, Position: pos, Text: s})
}

func (h *History) record(e Edit) {
	if h.inBatch {
		h.batchEdits = append(h.batchEdits, e)
		return
	}
	h.mergeOrStartGroup([]Edit{e}, nil)
}

// EndBatch closes a batch opened with BeginBatch, merging its
// accumulated edits into the undo log.
func (h *History) EndBatch() {
	h.mu.Lock()
	defer h.mu.Unlock()
	edits := h.batchEdits
	cursorsBefore := h.batchCursorsBefore
	h.batchEdits = nil
	h.batchCursorsBefore = nil
	h.inBatch = false
	if len(edits) == 0 {
		return
	}
	h.mergeOrStartGroup(edits, cursorsBefore)
}

// SetCursorsBefore attaches cursorsBefore to the pending group if it
// doesn't already carry a snapshot: the "idempotent, first call per
// group wins" rule for insert_string's pre-mutation snapshot.
func (h *History) SetCursorsBefore(cursorsBefore *cursor.Set) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pendingOpen && h.pending.CursorsBefore == nil {
		h.pending.CursorsBefore = cursorsBefore
	}
}

func (h *History) mergeOrStartGroup(edits []Edit, cursorsBefore *cursor.Set) {
	if h.pendingOpen && canCoalesceGroup(h.pending.Edits, edits) {
		h.pending.Edits = mergeGroups(h.pending.Edits, edits)
	} else {
		h.flushPendingLocked()
		h.pending = Entry{Edits: append([]Edit(nil), edits...), CursorsBefore: cursorsBefore}
		h.pendingOpen = true
	}
	h.hasIndex = false
	h.redoing = false
}

// Flush commits the pending group as a new entry (the "add an undo
// boundary" operation), clearing coalescing so the next edit starts a
// fresh group.
func (h *History) Flush() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.flushPendingLocked()
}

func (h *History) flushPendingLocked() {
	if !h.pendingOpen {
		return
	}
	entry := h.pending
	h.pending = Entry{}
	h.pendingOpen = false
	h.entries = append(h.entries, entry)
	h.gcLocked()
}

func (h *History) gcLocked() {
	if len(h.entries) <= h.maxEntries {
		return
	}
	drop := len(h.entries) - h.maxEntries
	h.entries = append([]Entry(nil), h.entries[drop:]...)
	if h.hasIndex {
		h.index -= drop
		if h.index < 0 {
			h.index = 0
		}
	}
}

// Undo flushes any pending group, then inverts the entry at the
// current effective index and appends the inverse as a new entry,
// moving the index one further back. It returns ok=false if there is
// nothing left to undo. A further Undo continues back from the new
// index; the appended inverse is reached through Redo, or through Undo
// once a fresh edit has cleared the index.
func (h *History) Undo() (Apply, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.redoing = false
	return h.undoLocked()
}

// Redo restarts the backward walk from the end of the log, where Undo
// appended its inverses; undoing an inverse replays the original
// edit. Consecutive Redo calls continue the same walk; past the point
// of full restoration they cycle back into undoing, matching the
// Emacs linear model.
func (h *History) Redo() (Apply, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.redoing {
		h.hasIndex = false
	}
	apply, ok := h.undoLocked()
	if ok {
		h.redoing = true
	}
	return apply, ok
}

func (h *History) undoLocked() (Apply, bool) {
	h.flushPendingLocked()

	eff := len(h.entries)
	if h.hasIndex {
		eff = h.index
	}
	if eff == 0 {
		return Apply{}, false
	}

	entry := h.entries[eff-1]
	inv := invertEntry(entry)
	h.entries = append(h.entries, inv)
	h.index = eff - 1
	h.hasIndex = true
	h.gcLocked()

	return Apply{Edits: inv.Edits, RestoreCursors: entry.CursorsBefore}, true
}

// CanUndo reports whether a call to Undo would have any effect.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pendingOpen {
		return true
	}
	if h.hasIndex {
		return h.index > 0
	}
	return len(h.entries) > 0
}

// Len returns the number of committed entries (excluding any pending,
// uncommitted group).
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Clear discards all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	h.pending = Entry{}
	h.pendingOpen = false
	h.hasIndex = false
	h.redoing = false
	h.inBatch = false
	h.batchEdits = nil
	h.batchCursorsBefore = nil
}

// canCoalesceGroup reports whether incoming can merge onto the tail
// of existing: matching cardinality, a
// uniform edit kind, no boundary-breaking characters, and per-edit
// adjacency (end-of-text for inserts, backspace/forward-delete
// adjacency for deletes). Single-edit groups additionally require the
// incoming text be exactly one char, per the literal single-char
// coalescing rule.
func canCoalesceGroup(existing, incoming []Edit) bool {
	if len(existing) == 0 || len(existing) != len(incoming) {
		return false
	}

	allInsert, allDelete := true, true
	for _, e := range existing {
		if e.Kind != EditInsert {
			allInsert = false
		}
		if e.Kind != EditDelete {
			allDelete = false
		}
	}
	for _, e := range incoming {
		if e.Kind != EditInsert {
			allInsert = false
		}
		if e.Kind != EditDelete {
			allDelete = false
		}
	}
	if !allInsert && !allDelete {
		return false
	}

	singleEdit := len(existing) == 1

	for i := range existing {
		if containsBoundaryChar(existing[i].Text) || containsBoundaryChar(incoming[i].Text) {
			return false
		}
		if singleEdit && utf8.RuneCountInString(incoming[i].Text) != 1 {
			return false
		}
		// The incoming batch's positions are live-document positions, so
		// adjacency must account for what the existing batch's other
		// edits did to the left of this one.
		shift := leftShiftOf(existing, i)
		if allInsert {
			if incoming[i].Position != existing[i].Position+existing[i].charLen()+shift {
				return false
			}
		} else {
			backspace := incoming[i].Position+incoming[i].charLen()+shift == existing[i].Position
			forward := incoming[i].Position+shift == existing[i].Position
			if !backspace && !forward {
				return false
			}
		}
	}
	return true
}

// leftShiftOf returns the total char length of the batch's edits at
// positions strictly left of edit i, the amount by which those edits
// moved everything at or past edit i's position.
func leftShiftOf(edits []Edit, i int) text.CharOffset {
	var shift text.CharOffset
	for j := range edits {
		if j != i && edits[j].Position < edits[i].Position {
			shift += edits[j].charLen()
		}
	}
	return shift
}

func mergeGroups(existing, incoming []Edit) []Edit {
	merged := make([]Edit, len(existing))
	for i := range existing {
		merged[i] = mergeEdit(existing[i], incoming[i], leftShiftOf(existing, i))
	}
	return merged
}

func mergeEdit(existing, incoming Edit, shift text.CharOffset) Edit {
	if existing.Kind == EditInsert {
		return Edit{Kind: EditInsert, Position: existing.Position, Text: existing.Text + incoming.Text}
	}
	if incoming.Position+incoming.charLen()+shift == existing.Position {
		// Backspace: the incoming deletion sits just before the existing
		// one in the group-start document.
		return Edit{Kind: EditDelete, Position: existing.Position - incoming.charLen(), Text: incoming.Text + existing.Text}
	}
	return Edit{Kind: EditDelete, Position: existing.Position, Text: existing.Text + incoming.Text}
}
