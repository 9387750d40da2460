package commands

import "github.com/ar-go/nucleus/internal/command"

func splitWindowBelow(state command.State, _ *command.Context) error {
	state.Windows().SplitBelow()
	return nil
}

func splitWindowRight(state command.State, _ *command.Context) error {
	state.Windows().SplitRight()
	return nil
}

func deleteWindow(state command.State, _ *command.Context) error {
	wm := state.Windows()
	if wm.Count() <= 1 {
		state.SetMessage("Attempt to delete sole window")
		return nil
	}
	wm.DeleteCurrent()
	return nil
}

func deleteOtherWindows(state command.State, _ *command.Context) error {
	state.Windows().DeleteOthers()
	return nil
}

func otherWindow(state command.State, ctx *command.Context) error {
	wm := state.Windows()
	if ctx.Count() < 0 {
		for n := 0; n < ctx.RepeatCount(); n++ {
			wm.CyclePrev()
		}
		return nil
	}
	for n := 0; n < ctx.RepeatCount(); n++ {
		wm.CycleNext()
	}
	return nil
}

func registerWindow(r *command.Registry) {
	r.Register(command.New("split-window-below", splitWindowBelow))
	r.Register(command.New("split-window-right", splitWindowRight))
	r.Register(command.New("delete-window", deleteWindow))
	r.Register(command.New("delete-other-windows", deleteOtherWindows))
	r.Register(command.New("other-window", otherWindow))
}
