// Package command defines the named, dispatchable editing operations
// that keybindings resolve to: the Command descriptor, the registry
// that looks commands up by name, and the Context/PrefixArg state an
// Execute function reads. It depends only on the leaf state packages
// (buffer, cursor, window, bufmgr, killring, markring, minibuffer) so
// that the editor package, which owns the concrete state these
// commands act on, can import command without a cycle.
package command

import (
	"github.com/ar-go/nucleus/internal/buffer"
	"github.com/ar-go/nucleus/internal/bufmgr"
	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/keymap"
	"github.com/ar-go/nucleus/internal/killring"
	"github.com/ar-go/nucleus/internal/minibuffer"
	"github.com/ar-go/nucleus/internal/window"
)

// State is the minimal surface a command's Execute function needs
// from the editor. The concrete *editor.State satisfies it
// structurally; command never imports the editor package. The mark
// ring lives on the buffer itself (marks are buffer positions), so it
// is reached via CurrentBuffer().MarkRing(), not a separate accessor
// here.
type State interface {
	CurrentBuffer() *buffer.Buffer
	CurrentWindow() *window.Window
	CurrentCursors() *cursor.Set
	Windows() *window.Manager
	Buffers() *bufmgr.Manager
	KillRing() *killring.Ring
	Minibuffer() *minibuffer.Minibuffer
	Keymap() *keymap.Keymap

	// SetMessage posts text to the echo area, replacing whatever is
	// there.
	SetMessage(msg string)
	// RequestQuit marks the editor's should_quit flag, checked by the
	// frontend's run loop after each command returns.
	RequestQuit()
	// RequestExitConfirm arms the pending_exit yes/no confirmation with
	// the given prompt; the next keystroke answers it.
	RequestExitConfirm(prompt string)

	// PrefixArg returns the prefix argument currently being accumulated
	// for the next command; SetPrefixArg replaces it. Used by
	// universal-argument and friends, which build the argument the
	// following command's Context will carry.
	PrefixArg() PrefixArg
	SetPrefixArg(arg PrefixArg)
}

// Fn is the signature every registered command implements.
type Fn func(state State, ctx *Context) error

// Command is one named, dispatchable operation plus the flags the
// editor's post-command hook reads to decide whether to break undo
// coalescing or clear the mark.
type Command struct {
	Name    string
	Execute Fn

	// IsKill marks a command that should append/prepend into the live
	// kill-ring run instead of starting a new kill (kill-line,
	// kill-word, kill-region, copy-region-as-kill).
	IsKill bool
	// PreservesMark is true for commands that must not clear an active
	// mark as a side effect (motion and mark-setting commands).
	PreservesMark bool
	// BreaksUndoCoalesce is true when running this command should close
	// any in-progress undo coalescing group; the post-command hook adds
	// the undo boundary after the command has run.
	BreaksUndoCoalesce bool
}

// New returns a plain command: breaks undo coalescing, does not
// preserve the mark, is not a kill command. Most buffer/window/file
// commands use this.
func New(name string, fn Fn) Command {
	return Command{Name: name, Execute: fn, BreaksUndoCoalesce: true}
}

// Kill returns a kill-ring command: participates in kill-run
// coalescing and breaks undo coalescing.
func Kill(name string, fn Fn) Command {
	return Command{Name: name, Execute: fn, IsKill: true, BreaksUndoCoalesce: true}
}

// Motion returns a cursor-movement command: preserves the mark and
// breaks undo coalescing (motion between edits always starts a new
// undo group).
func Motion(name string, fn Fn) Command {
	return Command{Name: name, Execute: fn, PreservesMark: true, BreaksUndoCoalesce: true}
}

// Mark returns a mark-manipulation command (set-mark-command,
// exchange-point-and-mark): preserves the mark it just set or swapped,
// and does not break undo coalescing.
func Mark(name string, fn Fn) Command {
	return Command{Name: name, Execute: fn, PreservesMark: true}
}

// Editing returns a text-editing command that is neither a kill nor a
// motion: clears the mark, does not force a new undo group (relies on
// the buffer's own coalescing rules instead).
func Editing(name string, fn Fn) Command {
	return Command{Name: name, Execute: fn}
}

// Registry maps command names to their Command descriptor.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd, overwriting any existing command of the same
// name.
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name] = cmd
}

// Get looks up a command by name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Execute looks up name and runs it against state, returning
// NotFoundError(name) if nothing is registered under that name.
func (r *Registry) Execute(name string, state State, ctx *Context) error {
	cmd, ok := r.commands[name]
	if !ok {
		return NotFoundError(name)
	}
	return cmd.Execute(state, ctx)
}

// Names returns every registered command name, in no particular order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
