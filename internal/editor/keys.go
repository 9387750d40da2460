package editor

import (
	"errors"
	"strings"
	"unicode"

	"github.com/ar-go/nucleus/internal/command"
	"github.com/ar-go/nucleus/internal/commands"
	"github.com/ar-go/nucleus/internal/key"
	"github.com/ar-go/nucleus/internal/keymap"
)

// HandleKey runs one key event through the dispatch pipeline: exit
// confirmation, minibuffer routing, prefix-digit accumulation, then
// keymap resolution into a command, a self-insert, a pending prefix,
// or an unbound report.
func (s *State) HandleKey(ev key.Event) {
	ev = ev.Normalize()

	if s.pendingExit {
		s.handleExitConfirm(ev)
		return
	}
	if s.mini.IsActive() {
		s.handleMinibufferKey(ev)
		return
	}

	s.message = ""

	if s.prefixLive && s.accumulatePrefixDigit(ev) {
		return
	}

	res := s.resolver.Resolve(ev, s.keymap)
	switch res.Kind {
	case keymap.ResComplete:
		s.ExecuteCommand(res.Command)
	case keymap.ResSelfInsert:
		s.selfInsert(res.Rune)
	case keymap.ResPrefix:
		s.message = res.Display
	case keymap.ResUnbound:
		// C-g always quits, even mid-prefix, where the trie walk would
		// otherwise report the whole dead sequence as unbound.
		if isKeyboardQuit(ev) {
			s.ExecuteCommand("keyboard-quit")
			return
		}
		s.message = displayKeys(res.Keys) + " is undefined"
	}
}

// ExecuteCommand looks name up in the registry and runs it with a
// Context carrying the drained prefix argument and the previous
// command's name, then runs the post-command hook. Errors other than
// Cancelled surface on the message line; the editor stays usable.
func (s *State) ExecuteCommand(name string) {
	ctx := &command.Context{Prefix: command.NoPrefix, LastCommand: s.lastCommand}
	if !isPrefixBuilder(name) {
		ctx.Prefix = s.prefixArg
		s.prefixArg = command.NoPrefix
		s.prefixLive = false
	}

	cmd, ok := s.registry.Get(name)
	if !ok {
		s.message = command.NotFoundError(name).Error()
		return
	}

	if err := cmd.Execute(s, ctx); err != nil && !errors.Is(err, command.ErrCancelled) {
		s.message = err.Error()
	}
	s.postCommand(name, cmd.IsKill, cmd.PreservesMark, cmd.BreaksUndoCoalesce)
}

// selfInsertCommand is the descriptor for the pseudo-command the raw
// insertion path reports to the post-command hook. It carries the
// editing-flag combination (no coalesce break, mark cleared) but is
// never registered: its character argument exists only at resolve
// time, so it cannot be dispatched by name.
var selfInsertCommand = command.Editing("self-insert-command", nil)

// selfInsert is the raw insertion path for unbound printable keys. It
// bypasses the registry so consecutive characters coalesce in the undo
// history, then runs the post-command hook with selfInsertCommand's
// flags.
func (s *State) selfInsert(ch rune) {
	if err := commands.SelfInsert(s, ch); err != nil {
		s.message = err.Error()
	}
	cmd := selfInsertCommand
	s.postCommand(cmd.Name, cmd.IsKill, cmd.PreservesMark, cmd.BreaksUndoCoalesce)
}

// postCommand is the hook every dispatch ends with: break the
// kill-append chain unless the command was a kill, deactivate marks
// unless it preserves them, record the command name, add an undo
// boundary unless the command coalesces, and keep the primary cursor
// visible.
func (s *State) postCommand(name string, isKill, preservesMark, breaksCoalesce bool) {
	if !isKill {
		s.kill.SetLastWasKill(false)
	}
	if !preservesMark {
		if c := s.CurrentCursors(); c != nil {
			c.DeactivateAllMarks()
		}
	}
	s.lastCommand = name
	if breaksCoalesce {
		if b := s.CurrentBuffer(); b != nil {
			b.AddUndoBoundary()
		}
	}
	s.ensureCursorVisible()
}

func (s *State) ensureCursorVisible() {
	w := s.windows.Current()
	if w == nil {
		return
	}
	b := s.buffers.Get(w.BufferID)
	if b == nil {
		return
	}
	line := b.Rope().CharToLine(w.Cursors.Primary().Position)
	w.EnsureVisible(line)
}

// accumulatePrefixDigit folds a plain typed digit into the live prefix
// argument, reporting whether the event was consumed.
func (s *State) accumulatePrefixDigit(ev key.Event) bool {
	if ev.Key != key.Rune || ev.Modifiers != key.ModNone || !unicode.IsDigit(ev.Rune) {
		return false
	}
	commands.AccumulateDigit(s, int(ev.Rune-'0'))
	s.lastCommand = "digit-argument"
	return true
}

// handleExitConfirm answers the armed exit prompt: y quits, n cancels,
// anything else re-asks.
func (s *State) handleExitConfirm(ev key.Event) {
	if ev.Key != key.Rune {
		return
	}
	switch ev.Rune {
	case 'y', 'Y':
		s.pendingExit = false
		s.shouldQuit = true
	case 'n', 'N':
		s.pendingExit = false
		s.message = ""
	}
}

// isPrefixBuilder reports whether name builds the prefix argument for
// the NEXT command; such commands read and extend the live prefix
// instead of draining it.
func isPrefixBuilder(name string) bool {
	return name == "universal-argument" || name == "negative-argument"
}

func isKeyboardQuit(ev key.Event) bool {
	return ev.Key == key.Rune && ev.Rune == 'g' && ev.Modifiers == key.ModCtrl
}

func displayKeys(keys []key.Event) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}
