package keymap

import (
	"strings"

	"github.com/ar-go/nucleus/internal/key"
)

// ResolutionKind discriminates the four possible outcomes of a
// resolve step.
type ResolutionKind int

const (
	// ResComplete means the pending sequence resolved to a bound
	// command; Command names it.
	ResComplete ResolutionKind = iota
	// ResPrefix means the pending sequence is a valid, still-incomplete
	// prefix; Display holds the "k1 k2 … -" string to show the user.
	ResPrefix
	// ResUnbound means the pending sequence has no binding; Keys holds
	// the full sequence that failed to resolve.
	ResUnbound
	// ResSelfInsert means a single unbound printable char should be
	// inserted as text; Rune holds the character.
	ResSelfInsert
)

// Resolution is the outcome of one Resolver.Resolve call.
type Resolution struct {
	Kind    ResolutionKind
	Command string
	Display string
	Keys    []key.Event
	Rune    rune
}

// Resolver drives one trie walk across a sequence of key events,
// tracking whichever prefix is still pending between calls.
type Resolver struct {
	pending []key.Event
}

// NewResolver returns a Resolver with no pending keys.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Pending returns the currently pending key sequence (for display).
func (r *Resolver) Pending() []key.Event {
	return r.pending
}

// Reset clears any pending prefix state.
func (r *Resolver) Reset() {
	r.pending = nil
}

// Resolve appends ev to the pending sequence and walks km from the
// root through every pending key.
func (r *Resolver) Resolve(ev key.Event, km *Keymap) Resolution {
	ev = ev.Normalize()
	r.pending = append(r.pending, ev)

	n := km.root
	for i, e := range r.pending {
		child, ok := n.children[e]
		if !ok {
			return r.failAt(i)
		}
		n = child
		last := i == len(r.pending)-1
		if !last {
			continue
		}
		switch {
		case n.isBound():
			cmd := n.command
			r.pending = nil
			return Resolution{Kind: ResComplete, Command: cmd}
		case n.isPrefix():
			display := displayString(r.pending)
			return Resolution{Kind: ResPrefix, Display: display}
		default:
			return r.failAt(i)
		}
	}
	// Unreachable: the loop above always returns on its last iteration.
	return r.failAt(len(r.pending) - 1)
}

// failAt handles the Unbound/missing branch: a first printable key
// with no modifier besides Shift self-inserts; anything else reports
// Unbound with the full pending sequence.
func (r *Resolver) failAt(i int) Resolution {
	keys := r.pending
	r.pending = nil
	if i == 0 && keys[0].IsPrintable() {
		return Resolution{Kind: ResSelfInsert, Rune: keys[0].Rune}
	}
	return Resolution{Kind: ResUnbound, Keys: keys}
}

// displayString renders a pending key sequence as "k1 k2-", the
// resolver's in-progress prefix indicator (a single pending C-x shows
// as "C-x-").
func displayString(keys []key.Event) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ") + "-"
}
