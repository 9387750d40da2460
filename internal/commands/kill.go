package commands

import (
	"errors"
	"strings"

	"github.com/ar-go/nucleus/internal/buffer"
	"github.com/ar-go/nucleus/internal/command"
	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/text"
)

var errNotAYank = errors.New("Previous command was not a yank")

// killLine kills from point to end of line at every cursor; at the end
// of a line it kills the newline instead, so repeated C-k eats the
// buffer line by line.
func killLine(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	cursors := state.CurrentCursors()
	rope := buf.Rope()
	length := rope.LenChars()

	var spans []buffer.RegionSpan
	for i := 0; i < cursors.Len(); i++ {
		c := cursors.At(i)
		line := rope.CharToLine(c.Position)
		end := rope.LineEndChar(line)
		if end == c.Position && end < length {
			end++
		}
		if end > c.Position {
			spans = append(spans, buffer.RegionSpan{ID: c.ID, Start: c.Position, End: end})
		}
	}
	pushKilled(state, buf.DeleteRegions(cursors, spans), false)
	return nil
}

func killWord(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	cursors := state.CurrentCursors()
	for n := 0; n < ctx.RepeatCount(); n++ {
		rope := buf.Rope()
		var spans []buffer.RegionSpan
		for i := 0; i < cursors.Len(); i++ {
			c := cursors.At(i)
			end := rope.ForwardWordBoundary(c.Position)
			if end > c.Position {
				spans = append(spans, buffer.RegionSpan{ID: c.ID, Start: c.Position, End: end})
			}
		}
		pushKilled(state, buf.DeleteRegions(cursors, spans), false)
	}
	return nil
}

func backwardKillWord(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	cursors := state.CurrentCursors()
	for n := 0; n < ctx.RepeatCount(); n++ {
		rope := buf.Rope()
		var spans []buffer.RegionSpan
		for i := 0; i < cursors.Len(); i++ {
			c := cursors.At(i)
			start := rope.BackwardWordBoundary(c.Position)
			if start < c.Position {
				spans = append(spans, buffer.RegionSpan{ID: c.ID, Start: start, End: c.Position})
			}
		}
		pushKilled(state, buf.DeleteRegions(cursors, spans), true)
	}
	return nil
}

func killRegion(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	cursors := state.CurrentCursors()
	spans, err := regionSpans(cursors)
	if err != nil {
		return err
	}
	pushKilled(state, buf.DeleteRegions(cursors, spans), false)
	cursors.DeactivateAllMarks()
	return nil
}

// copyRegionAsKill stores the region's text in the kill ring without
// deleting it.
func copyRegionAsKill(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	cursors := state.CurrentCursors()
	spans, err := regionSpans(cursors)
	if err != nil {
		return err
	}
	rope := buf.Rope()
	parts := make([]string, 0, len(spans))
	for i := len(spans) - 1; i >= 0; i-- {
		parts = append(parts, rope.Slice(spans[i].Start, spans[i].End))
	}
	state.KillRing().Push(strings.Join(parts, ""), true)
	return nil
}

// regionSpans collects every cursor's active region, high to low, or
// ErrNoMark if the primary cursor has no live region.
func regionSpans(cursors *cursor.Set) ([]buffer.RegionSpan, error) {
	if _, _, ok := cursors.Primary().Region(); !ok {
		return nil, command.ErrNoMark
	}
	var spans []buffer.RegionSpan
	for i := cursors.Len() - 1; i >= 0; i-- {
		c := cursors.At(i)
		if start, end, ok := c.Region(); ok && start < end {
			spans = append(spans, buffer.RegionSpan{ID: c.ID, Start: start, End: end})
		}
	}
	return spans, nil
}

// pushKilled concatenates per-cursor deletions in text order and pushes
// them as one kill-ring entry, appending (or prepending, for backward
// kills) onto a still-live kill run.
func pushKilled(state command.State, deleted []buffer.DeletedRegion, prepend bool) {
	if len(deleted) == 0 {
		return
	}
	parts := make([]string, 0, len(deleted))
	for i := len(deleted) - 1; i >= 0; i-- {
		parts = append(parts, deleted[i].Text)
	}
	combined := strings.Join(parts, "")
	if prepend {
		state.KillRing().PushPrepend(combined)
	} else {
		state.KillRing().Push(combined, true)
	}
}

// yank inserts the front kill-ring entry at every cursor, the same text
// for each.
func yank(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	ring := state.KillRing()
	entry, ok := ring.Yank()
	if !ok {
		state.SetMessage("Kill ring is empty")
		return nil
	}
	ring.ResetYankPointer()
	cursors := state.CurrentCursors()
	texts := make(map[cursor.ID]string, cursors.Len())
	for i := 0; i < cursors.Len(); i++ {
		texts[cursors.At(i).ID] = entry
	}
	buf.InsertAtCursors(cursors, texts)
	return nil
}

// yankPop replaces the text inserted by an immediately preceding yank
// (or yank-pop) with the next older kill-ring entry, rotating through
// the ring.
func yankPop(state command.State, ctx *command.Context) error {
	if ctx.LastCommand != "yank" && ctx.LastCommand != "yank-pop" {
		return errNotAYank
	}
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.ReadOnly() {
		return command.ErrReadOnly
	}
	ring := state.KillRing()
	previous, ok := ring.Current()
	if !ok {
		return nil
	}
	next, ok := ring.YankPop()
	if !ok {
		return nil
	}

	cursors := state.CurrentCursors()
	prevLen := text.CharOffset(len([]rune(previous)))
	var spans []buffer.RegionSpan
	for i := cursors.Len() - 1; i >= 0; i-- {
		c := cursors.At(i)
		start := c.Position - prevLen
		if start < 0 {
			start = 0
		}
		spans = append(spans, buffer.RegionSpan{ID: c.ID, Start: start, End: c.Position})
	}
	buf.DeleteRegions(cursors, spans)

	texts := make(map[cursor.ID]string, cursors.Len())
	for i := 0; i < cursors.Len(); i++ {
		texts[cursors.At(i).ID] = next
	}
	buf.InsertAtCursors(cursors, texts)
	return nil
}

func registerKill(r *command.Registry) {
	r.Register(command.Kill("kill-line", killLine))
	r.Register(command.Kill("kill-word", killWord))
	r.Register(command.Kill("backward-kill-word", backwardKillWord))
	r.Register(command.Kill("kill-region", killRegion))
	r.Register(command.Kill("copy-region-as-kill", copyRegionAsKill))
	r.Register(command.New("yank", yank))
	r.Register(command.New("yank-pop", yankPop))
}
