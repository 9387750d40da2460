package commands

import "github.com/ar-go/nucleus/internal/command"

func undoCommand(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	cursors := state.CurrentCursors()
	if restored, ok := buf.Undo(cursors); ok {
		if restored != nil {
			// The snapshot is the live copy stored inside the history
			// entry; clone it so later in-place cursor edits cannot
			// corrupt what the log will replay.
			*cursors = *restored.Clone()
		}
		state.SetMessage("Undo!")
	} else {
		state.SetMessage("No further undo information")
	}
	return nil
}

func redoCommand(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	cursors := state.CurrentCursors()
	if restored, ok := buf.Redo(cursors); ok {
		if restored != nil {
			*cursors = *restored.Clone()
		}
		state.SetMessage("Redo!")
	} else {
		state.SetMessage("No further redo information")
	}
	return nil
}

// keyboardQuit clears secondary cursors and any active mark, resets
// the minibuffer, and returns ErrCancelled. The dispatcher does not
// copy that error to the message line, so "Quit" stays there; the
// post-command hook still runs as it does for any other command.
func keyboardQuit(state command.State, _ *command.Context) error {
	cursors := state.CurrentCursors()
	cursors.DeactivateAllMarks()
	cursors.RemoveSecondaries()
	state.Minibuffer().Clear()
	state.SetMessage("Quit")
	return command.ErrCancelled
}

func registerHistory(r *command.Registry) {
	r.Register(command.New("undo", undoCommand))
	r.Register(command.New("redo", redoCommand))
	r.Register(command.New("keyboard-quit", keyboardQuit))
}
