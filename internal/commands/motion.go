// Package commands implements the baseline named commands a default
// keymap binds: point motion, editing, mark/region, kill/yank, undo,
// buffer, file, and window operations. Every function here has the
// command.Fn signature and is wired into a command.Registry by
// Register.
package commands

import (
	"github.com/ar-go/nucleus/internal/command"
	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/text"
)

func forEachCursor(cursors *cursor.Set, fn func(*cursor.Cursor)) {
	for i := 0; i < cursors.Len(); i++ {
		fn(cursors.At(i))
	}
}

func clampOffset(off, max text.CharOffset) text.CharOffset {
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}

func forwardChar(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	count := text.CharOffset(ctx.RepeatCount())
	maxChars := buf.LenChars()
	forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
		c.Position = clampOffset(c.Position+count, maxChars)
		c.ClearGoalColumn()
	})
	state.CurrentCursors().SortAndMerge()
	return nil
}

func backwardChar(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	count := text.CharOffset(ctx.RepeatCount())
	maxChars := buf.LenChars()
	forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
		c.Position = clampOffset(c.Position-count, maxChars)
		c.ClearGoalColumn()
	})
	state.CurrentCursors().SortAndMerge()
	return nil
}

// moveVertical moves c delta lines up (negative) or down (positive),
// tracking and restoring the cursor's goal column so
// repeated vertical motion across shorter lines returns to the
// visually correct column once a line is long enough again.
func moveVertical(rope text.Rope, c *cursor.Cursor, delta int) {
	pos := rope.CharToPosition(c.Position)
	lineStart := rope.LineStartChar(pos.Line)

	var column uint32
	if c.GoalColumn != nil {
		column = *c.GoalColumn
	} else {
		lineEnd := rope.LineEndChar(pos.Line)
		column = cursor.CharOffsetToColumn(rope.Slice(lineStart, lineEnd), c.Position-lineStart)
		c.SetGoalColumn(column)
	}

	totalLines := int(rope.LenLines())
	target := int(pos.Line) + delta
	if target < 0 {
		target = 0
	}
	if target >= totalLines {
		target = totalLines - 1
	}

	targetStart := rope.LineStartChar(uint32(target))
	targetEnd := rope.LineEndChar(uint32(target))
	offset := cursor.ColumnToCharOffset(rope.Slice(targetStart, targetEnd), column)
	c.Position = targetStart + offset
}

func nextLine(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	rope := buf.Rope()
	for n := 0; n < ctx.RepeatCount(); n++ {
		forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
			moveVertical(rope, c, 1)
		})
	}
	state.CurrentCursors().SortAndMerge()
	return nil
}

func previousLine(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	rope := buf.Rope()
	for n := 0; n < ctx.RepeatCount(); n++ {
		forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
			moveVertical(rope, c, -1)
		})
	}
	state.CurrentCursors().SortAndMerge()
	return nil
}

func moveBeginningOfLine(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	rope := buf.Rope()
	forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
		line := rope.CharToLine(c.Position)
		c.Position = rope.LineStartChar(line)
		c.ClearGoalColumn()
	})
	return nil
}

func moveEndOfLine(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	rope := buf.Rope()
	forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
		line := rope.CharToLine(c.Position)
		c.Position = rope.LineEndChar(line)
		c.ClearGoalColumn()
	})
	return nil
}

func beginningOfBuffer(state command.State, _ *command.Context) error {
	if state.CurrentBuffer() == nil {
		return nil
	}
	forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
		c.Position = 0
		c.ClearGoalColumn()
	})
	state.CurrentCursors().SortAndMerge()
	return nil
}

func endOfBuffer(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	end := buf.LenChars()
	forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
		c.Position = end
		c.ClearGoalColumn()
	})
	state.CurrentCursors().SortAndMerge()
	return nil
}

func forwardWord(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	rope := buf.Rope()
	for n := 0; n < ctx.RepeatCount(); n++ {
		forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
			c.Position = rope.ForwardWordBoundary(c.Position)
			c.ClearGoalColumn()
		})
	}
	state.CurrentCursors().SortAndMerge()
	return nil
}

func backwardWord(state command.State, ctx *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	rope := buf.Rope()
	for n := 0; n < ctx.RepeatCount(); n++ {
		forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
			c.Position = rope.BackwardWordBoundary(c.Position)
			c.ClearGoalColumn()
		})
	}
	state.CurrentCursors().SortAndMerge()
	return nil
}

// gotoLine jumps to the 1-based line number given by the prefix
// argument, or prompts for one in the minibuffer when no prefix was
// supplied.
func gotoLine(state command.State, ctx *command.Context) error {
	if !ctx.Prefix.IsSet() {
		state.Minibuffer().StartPrompt("Goto line: ", CallbackGotoLine)
		return nil
	}
	return GotoLineNumber(state, ctx.Count())
}

// GotoLineNumber moves every cursor to the start of the 1-based line n,
// clamped to the buffer. It is also the minibuffer dispatch target for
// the goto-line prompt.
func GotoLineNumber(state command.State, n int) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	rope := buf.Rope()
	line := n - 1
	if line < 0 {
		line = 0
	}
	maxLine := int(rope.LenLines()) - 1
	if line > maxLine {
		line = maxLine
	}
	target := rope.LineStartChar(uint32(line))
	forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
		c.Position = target
		c.ClearGoalColumn()
	})
	state.CurrentCursors().SortAndMerge()
	return nil
}

// ensureMarkForShiftSelect activates a mark at every cursor's current
// position if one isn't already active, so shift-modified motion keys
// extend a selection from where point started.
func ensureMarkForShiftSelect(state command.State) {
	forEachCursor(state.CurrentCursors(), func(c *cursor.Cursor) {
		if !c.MarkActive {
			c.SetMark()
		}
	})
}

func shiftVariant(fn command.Fn) command.Fn {
	return func(state command.State, ctx *command.Context) error {
		ensureMarkForShiftSelect(state)
		return fn(state, ctx)
	}
}

func registerMotion(r *command.Registry) {
	r.Register(command.Motion("forward-char", forwardChar))
	r.Register(command.Motion("backward-char", backwardChar))
	r.Register(command.Motion("next-line", nextLine))
	r.Register(command.Motion("previous-line", previousLine))
	r.Register(command.Motion("move-beginning-of-line", moveBeginningOfLine))
	r.Register(command.Motion("move-end-of-line", moveEndOfLine))
	r.Register(command.Motion("beginning-of-buffer", beginningOfBuffer))
	r.Register(command.Motion("end-of-buffer", endOfBuffer))
	r.Register(command.Motion("forward-word", forwardWord))
	r.Register(command.Motion("backward-word", backwardWord))
	r.Register(command.Motion("goto-line", gotoLine))

	r.Register(command.Mark("forward-char-shift", shiftVariant(forwardChar)))
	r.Register(command.Mark("backward-char-shift", shiftVariant(backwardChar)))
	r.Register(command.Mark("next-line-shift", shiftVariant(nextLine)))
	r.Register(command.Mark("previous-line-shift", shiftVariant(previousLine)))
	r.Register(command.Mark("move-beginning-of-line-shift", shiftVariant(moveBeginningOfLine)))
	r.Register(command.Mark("move-end-of-line-shift", shiftVariant(moveEndOfLine)))
	r.Register(command.Mark("beginning-of-buffer-shift", shiftVariant(beginningOfBuffer)))
	r.Register(command.Mark("end-of-buffer-shift", shiftVariant(endOfBuffer)))
	r.Register(command.Mark("forward-word-shift", shiftVariant(forwardWord)))
	r.Register(command.Mark("backward-word-shift", shiftVariant(backwardWord)))
}
