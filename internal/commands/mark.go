package commands

import "github.com/ar-go/nucleus/internal/command"

func setMarkCommand(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	cursors := state.CurrentCursors()
	for i := 0; i < cursors.Len(); i++ {
		cursors.At(i).SetMark()
	}
	buf.MarkRing().Push(cursors.Primary().Position)
	state.SetMessage("Mark set")
	return nil
}

func exchangePointAndMark(state command.State, _ *command.Context) error {
	cursors := state.CurrentCursors()
	for i := 0; i < cursors.Len(); i++ {
		cursors.At(i).ExchangePointAndMark()
	}
	return nil
}

// markWholeBuffer activates a region spanning the entire buffer, mark
// at the start and point at the end.
func markWholeBuffer(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	cursors := state.CurrentCursors()
	primary := cursors.Primary()
	buf.MarkRing().Push(primary.Position)
	primary.Position = 0
	primary.SetMark()
	primary.Position = buf.LenChars()
	return nil
}

func registerMark(r *command.Registry) {
	r.Register(command.Mark("set-mark-command", setMarkCommand))
	r.Register(command.Mark("exchange-point-and-mark", exchangePointAndMark))
	r.Register(command.Mark("mark-whole-buffer", markWholeBuffer))
}
