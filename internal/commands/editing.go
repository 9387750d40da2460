package commands

import (
	"github.com/ar-go/nucleus/internal/command"
	"github.com/ar-go/nucleus/internal/text"
)

// SelfInsert inserts a single printable character at every cursor. It
// is invoked directly by the editor's key pipeline for unbound
// printable keys, not dispatched through the registry, since the
// character isn't known at bind time.
func SelfInsert(state command.State, ch rune) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	buf.InsertString(state.CurrentCursors(), string(ch))
	return nil
}

func deleteChar(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	for n := 0; n < ctx.RepeatCount(); n++ {
		buf.DeleteCharForward(state.CurrentCursors())
	}
	return nil
}

func deleteBackwardChar(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	for n := 0; n < ctx.RepeatCount(); n++ {
		buf.DeleteCharBackward(state.CurrentCursors())
	}
	return nil
}

func newline(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	for n := 0; n < ctx.RepeatCount(); n++ {
		buf.InsertString(state.CurrentCursors(), "\n")
	}
	return nil
}

// openLine inserts count newlines after point without advancing any
// cursor, leaving every cursor on the now-blank line it opened.
func openLine(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	cursors := state.CurrentCursors()
	count := text.CharOffset(ctx.RepeatCount())
	for n := text.CharOffset(0); n < count; n++ {
		buf.InsertString(cursors, "\n")
	}
	// InsertString advanced every cursor past the newlines it inserted;
	// stepping each one back by that count lands it at the start of its
	// own insertion, whatever shifting the other cursors caused.
	for i := 0; i < cursors.Len(); i++ {
		c := cursors.At(i)
		if c.Position >= count {
			c.Position -= count
		} else {
			c.Position = 0
		}
	}
	cursors.SortAndMerge()
	return nil
}

// transposeChars swaps the two characters around the primary cursor
// (Emacs's transpose-chars): at the start of the buffer it swaps the
// first two characters; at the end, the last two.
func transposeChars(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	cursors := state.CurrentCursors()
	pos := cursors.Primary().Position
	length := buf.LenChars()
	if length < 2 {
		return nil
	}

	var first text.CharOffset
	switch {
	case pos == 0:
		first = 0
	case pos >= length:
		first = length - 2
	default:
		first = pos - 1
	}
	second := first + 1

	rope := buf.Rope()
	c1, _ := rope.CharAt(first)
	c2, _ := rope.CharAt(second)

	if buf.DeleteRegion(cursors, first, second+1) == "" {
		return nil
	}
	buf.InsertString(cursors, string(c2)+string(c1))

	end := second + 1
	if max := buf.LenChars(); end > max {
		end = max
	}
	cursors.Primary().Position = end
	return nil
}

func registerEditing(r *command.Registry) {
	r.Register(command.New("delete-char", deleteChar))
	r.Register(command.New("delete-backward-char", deleteBackwardChar))
	r.Register(command.New("newline", newline))
	r.Register(command.New("open-line", openLine))
	r.Register(command.New("transpose-chars", transposeChars))
}
