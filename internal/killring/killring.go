// Package killring implements the Emacs-style kill ring: a bounded,
// rotating history of killed (cut) text, with append/prepend
// coalescing for consecutive kill commands and a yank pointer for
// cycling through prior entries.
package killring

// DefaultCapacity is the ring's default entry capacity.
const DefaultCapacity = 60

// Ring is a bounded ring of killed text. The newest entry is always at
// index 0.
type Ring struct {
	entries     []string
	capacity    int
	yankPointer int
	lastWasKill bool
}

// New returns an empty Ring with the given capacity.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{capacity: capacity}
}

// Push adds text to the ring. If append is true and the previous
// command was also a kill, text is concatenated onto the front entry
// instead of starting a new one. Empty text is a no-op.
func (r *Ring) Push(text string, appendToLast bool) {
	if text == "" {
		return
	}
	if appendToLast && r.lastWasKill && len(r.entries) > 0 {
		r.entries[0] += text
	} else {
		if len(r.entries) >= r.capacity {
			r.entries = r.entries[:len(r.entries)-1]
		}
		r.entries = append([]string{text}, r.entries...)
	}
	r.yankPointer = 0
	r.lastWasKill = true
}

// PushPrepend is like Push with appendToLast, but concatenates text
// before the existing front entry, used by backward-kill-word so
// consecutive backward kills read in text order.
func (r *Ring) PushPrepend(text string) {
	if text == "" {
		return
	}
	if r.lastWasKill && len(r.entries) > 0 {
		r.entries[0] = text + r.entries[0]
	} else {
		if len(r.entries) >= r.capacity {
			r.entries = r.entries[:len(r.entries)-1]
		}
		r.entries = append([]string{text}, r.entries...)
	}
	r.yankPointer = 0
	r.lastWasKill = true
}

// Yank returns the entry at the front of the ring (index 0).
func (r *Ring) Yank() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	return r.entries[0], true
}

// Current returns the entry at the yank pointer: the text the most
// recent yank or yank-pop inserted.
func (r *Ring) Current() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	return r.entries[r.yankPointer], true
}

// YankPop advances the yank pointer and returns the entry it now
// points to. Callers must check the yank-pop guard (last_command ∈
// {yank, yank-pop}) before calling this.
func (r *Ring) YankPop() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	r.yankPointer = (r.yankPointer + 1) % len(r.entries)
	return r.entries[r.yankPointer], true
}

// ResetYankPointer returns the pointer to the front entry. Called
// after every successful Yank, since yank-pop is only valid
// immediately after a yank.
func (r *Ring) ResetYankPointer() {
	r.yankPointer = 0
}

// SetLastWasKill records whether the just-executed command was a kill
// command, breaking append coalescing across non-kill commands.
func (r *Ring) SetLastWasKill(v bool) {
	r.lastWasKill = v
}

// LastWasKill reports the current coalescing flag.
func (r *Ring) LastWasKill() bool {
	return r.lastWasKill
}

// Len returns the number of entries currently in the ring.
func (r *Ring) Len() int {
	return len(r.entries)
}

// IsEmpty reports whether the ring holds no entries.
func (r *Ring) IsEmpty() bool {
	return len(r.entries) == 0
}

// Entries returns a copy of the ring's entries, newest first.
func (r *Ring) Entries() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}
