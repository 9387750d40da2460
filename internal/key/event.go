package key

import "unicode"

// Event is one keystroke: a named key or a rune, plus modifiers.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRune returns an Event for a plain character key.
func NewRune(r rune, mods Modifier) Event {
	return Event{Key: Rune, Rune: r, Modifiers: mods}
}

// New returns an Event for a named key.
func New(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsPrintable reports whether this event is a plain character with no
// modifiers besides Shift, the condition under which an unbound key
// self-inserts.
func (e Event) IsPrintable() bool {
	if e.Key != Rune {
		return false
	}
	if e.Modifiers.Without(ModShift) != ModNone {
		return false
	}
	return unicode.IsPrint(e.Rune)
}

// Normalize applies the frontend-to-core canonicalization rule: a
// control- or meta-modified uppercase ASCII letter is rewritten
// to the lowercase letter with an added Shift bit (so "C-S-f" collides
// correctly regardless of terminal quirks), and a shifted symbol that
// originated as Shift+digit has the Shift bit stripped (the symbol
// itself already carries the intent).
func (e Event) Normalize() Event {
	if e.Key != Rune {
		return e
	}
	r := e.Rune
	if (e.Modifiers.Has(ModCtrl) || e.Modifiers.Has(ModMeta)) && r >= 'A' && r <= 'Z' {
		e.Rune = unicode.ToLower(r)
		e.Modifiers = e.Modifiers.With(ModShift)
		return e
	}
	if e.Modifiers.Has(ModShift) && isShiftedSymbol(r) {
		e.Modifiers = e.Modifiers.Without(ModShift)
		return e
	}
	return e
}

// isShiftedSymbol reports whether r is a US-layout symbol normally
// produced by Shift+digit (e.g. '!' from Shift+1), whose own glyph
// already carries the shift intent.
func isShiftedSymbol(r rune) bool {
	switch r {
	case '!', '@', '#', '$', '%', '^', '&', '*', '(', ')':
		return true
	default:
		return false
	}
}

// String returns the canonical dash-joined display form, e.g. "C-x"
// or "M-S-f", matching the resolver's pending-key display string.
func (e Event) String() string {
	mod := e.Modifiers.String()
	var keyPart string
	if e.Key == Rune {
		keyPart = string(e.Rune)
	} else {
		keyPart = e.Key.String()
	}
	if mod == "" {
		return keyPart
	}
	return mod + "-" + keyPart
}
