package commands

import (
	"fmt"

	"github.com/ar-go/nucleus/internal/command"
)

// Minibuffer callback names: the closed set of follow-up actions the
// editor dispatches when a prompt submits.
const (
	CallbackFindFile    = "find-file"
	CallbackWriteFile   = "write-file"
	CallbackSwitchBuf   = "switch-to-buffer"
	CallbackKillBuf     = "kill-buffer"
	CallbackExtendedCmd = "execute-extended-command"
	CallbackGotoLine    = "goto-line"
)

func findFile(state command.State, _ *command.Context) error {
	state.Minibuffer().StartPrompt("Find file: ", CallbackFindFile)
	return nil
}

func saveBuffer(state command.State, _ *command.Context) error {
	buf := state.CurrentBuffer()
	if buf == nil {
		return nil
	}
	if buf.FilePath() == "" {
		state.Minibuffer().StartPrompt("Write file: ", CallbackWriteFile)
		return nil
	}
	if !buf.Modified() {
		state.SetMessage("(No changes need to be saved)")
		return nil
	}
	if err := buf.Save(); err != nil {
		return err
	}
	state.SetMessage(fmt.Sprintf("Wrote %s", buf.FilePath()))
	return nil
}

func writeFile(state command.State, _ *command.Context) error {
	state.Minibuffer().StartPrompt("Write file: ", CallbackWriteFile)
	return nil
}

func switchToBuffer(state command.State, _ *command.Context) error {
	state.Minibuffer().StartPrompt("Switch to buffer: ", CallbackSwitchBuf)
	return nil
}

func killBuffer(state command.State, _ *command.Context) error {
	state.Minibuffer().StartPrompt("Kill buffer: ", CallbackKillBuf)
	return nil
}

func executeExtendedCommand(state command.State, _ *command.Context) error {
	state.Minibuffer().StartPrompt("M-x ", CallbackExtendedCmd)
	return nil
}

// exit requests quit, or arms a single global yes/no confirmation when
// unsaved changes exist anywhere: one prompt regardless of how many
// buffers are modified.
func exit(state command.State, _ *command.Context) error {
	modified := state.Buffers().ModifiedCount()
	if modified == 0 {
		state.RequestQuit()
		return nil
	}
	noun := "buffer"
	if modified > 1 {
		noun = "buffers"
	}
	state.RequestExitConfirm(fmt.Sprintf("%d modified %s exist; exit anyway? (y or n)", modified, noun))
	return nil
}

func registerFile(r *command.Registry) {
	r.Register(command.New("find-file", findFile))
	r.Register(command.New("save-buffer", saveBuffer))
	r.Register(command.New("write-file", writeFile))
	r.Register(command.New("switch-to-buffer", switchToBuffer))
	r.Register(command.New("kill-buffer", killBuffer))
	r.Register(command.New("execute-extended-command", executeExtendedCommand))
	r.Register(command.New("exit", exit))
}
