package commands

import "github.com/ar-go/nucleus/internal/command"

// universalArgument begins or extends a prefix argument: the first C-u
// yields 4, each further C-u multiplies by 4.
func universalArgument(state command.State, _ *command.Context) error {
	arg := state.PrefixArg()
	if arg.IsSet() {
		state.SetPrefixArg(command.UniversalPrefix(arg.Count() * 4))
	} else {
		state.SetPrefixArg(command.UniversalPrefix(4))
	}
	state.SetMessage("C-u-")
	return nil
}

// negativeArgument flips the pending prefix negative, or starts a bare
// negative argument (count -1).
func negativeArgument(state command.State, _ *command.Context) error {
	arg := state.PrefixArg()
	if arg.IsSet() {
		state.SetPrefixArg(command.RawPrefix(-arg.Count()))
	} else {
		state.SetPrefixArg(command.NegativePrefix())
	}
	state.SetMessage("C-u -")
	return nil
}

// AccumulateDigit folds one typed digit into the pending prefix
// argument. Called by the editor's key pipeline while a prefix is
// being entered; there is no keymap binding because the digit itself is
// the input.
func AccumulateDigit(state command.State, digit int) {
	arg := state.PrefixArg()
	switch {
	case !arg.IsSet():
		state.SetPrefixArg(command.RawPrefix(digit))
	case !arg.IsRaw():
		// A universal 4/16/... came from C-u presses, not typed digits;
		// the first real digit replaces it, keeping only the sign.
		if arg.Count() < 0 {
			state.SetPrefixArg(command.RawPrefix(-digit))
		} else {
			state.SetPrefixArg(command.RawPrefix(digit))
		}
	case arg.Count() < 0:
		state.SetPrefixArg(command.RawPrefix(arg.Count()*10 - digit))
	default:
		state.SetPrefixArg(command.RawPrefix(arg.Count()*10 + digit))
	}
}

func registerPrefix(r *command.Registry) {
	r.Register(command.Mark("universal-argument", universalArgument))
	r.Register(command.Mark("negative-argument", negativeArgument))
}
