// Package editor composes the editing substrate into one EditorState:
// buffers, windows, minibuffer, kill ring, keymap, resolver, and
// command registry, driven by the key-to-command pipeline.
// The core is single-threaded and run-to-completion: HandleKey is the
// only entry point, and every command it dispatches finishes before the
// next key is examined.
package editor

import (
	"github.com/ar-go/nucleus/internal/buffer"
	"github.com/ar-go/nucleus/internal/bufmgr"
	"github.com/ar-go/nucleus/internal/command"
	"github.com/ar-go/nucleus/internal/commands"
	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/keymap"
	"github.com/ar-go/nucleus/internal/killring"
	"github.com/ar-go/nucleus/internal/minibuffer"
	"github.com/ar-go/nucleus/internal/window"
)

// State is the root editor object.
type State struct {
	buffers  *bufmgr.Manager
	windows  *window.Manager
	mini     *minibuffer.Minibuffer
	kill     *killring.Ring
	keymap   *keymap.Keymap
	resolver *keymap.Resolver
	registry *command.Registry

	// Per-buffer tunables applied to every buffer this editor creates.
	bufferOpts []buffer.Option

	message     string
	lastCommand string
	prefixArg   command.PrefixArg
	prefixLive  bool
	pendingExit bool
	shouldQuit  bool
}

// Option configures a new State.
type Option func(*State)

// WithKillRingCapacity overrides the kill ring's default capacity.
func WithKillRingCapacity(capacity int) Option {
	return func(s *State) { s.kill = killring.New(capacity) }
}

// WithKeymap replaces the default keymap.
func WithKeymap(km *keymap.Keymap) Option {
	return func(s *State) { s.keymap = km }
}

// WithBufferOptions sets buffer options (mark-ring capacity, undo
// ceiling, mode) applied to every buffer the editor creates.
func WithBufferOptions(opts ...buffer.Option) Option {
	return func(s *State) { s.bufferOpts = opts }
}

// New returns a State with the default keymap, the full baseline
// command kernel registered, a scratch buffer, and a single window
// sized 80x24 until the frontend calls SetDimensions.
func New(opts ...Option) *State {
	s := &State{
		buffers:  bufmgr.New(),
		windows:  window.NewManager(80, 24),
		mini:     minibuffer.New(),
		kill:     killring.New(killring.DefaultCapacity),
		keymap:   keymap.Default(),
		resolver: keymap.NewResolver(),
		registry: command.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	commands.Register(s.registry)

	scratch := s.buffers.NewBuffer(bufmgr.ScratchName, s.bufferOpts...)
	s.windows.Add(scratch)
	return s
}

// Buffers returns the buffer manager.
func (s *State) Buffers() *bufmgr.Manager { return s.buffers }

// Windows returns the window manager.
func (s *State) Windows() *window.Manager { return s.windows }

// Minibuffer returns the minibuffer.
func (s *State) Minibuffer() *minibuffer.Minibuffer { return s.mini }

// KillRing returns the kill ring.
func (s *State) KillRing() *killring.Ring { return s.kill }

// Keymap returns the active global keymap.
func (s *State) Keymap() *keymap.Keymap { return s.keymap }

// Resolver returns the key resolver, exposed for frontends that
// display the pending prefix.
func (s *State) Resolver() *keymap.Resolver { return s.resolver }

// Registry returns the command registry, exposed so callers can add
// commands beyond the baseline kernel.
func (s *State) Registry() *command.Registry { return s.registry }

// CurrentWindow returns the focused window, or nil.
func (s *State) CurrentWindow() *window.Window { return s.windows.Current() }

// CurrentBuffer returns the buffer viewed by the focused window,
// falling back to the buffer manager's current buffer when no window
// exists.
func (s *State) CurrentBuffer() *buffer.Buffer {
	if w := s.windows.Current(); w != nil {
		if b := s.buffers.Get(w.BufferID); b != nil {
			return b
		}
	}
	return s.buffers.Current()
}

// CurrentCursors returns the focused window's cursor set, or nil when
// no window exists.
func (s *State) CurrentCursors() *cursor.Set {
	if w := s.windows.Current(); w != nil {
		return w.Cursors
	}
	return nil
}

// Message returns the one-shot status line text.
func (s *State) Message() string { return s.message }

// SetMessage posts text to the echo area, replacing whatever is there.
func (s *State) SetMessage(msg string) { s.message = msg }

// LastCommand returns the name of the most recently completed command.
func (s *State) LastCommand() string { return s.lastCommand }

// ShouldQuit reports whether a command has requested exit; the
// frontend's run loop checks it after every HandleKey.
func (s *State) ShouldQuit() bool { return s.shouldQuit }

// RequestQuit marks the editor for exit.
func (s *State) RequestQuit() { s.shouldQuit = true }

// PendingExit reports whether the exit yes/no confirmation is armed.
func (s *State) PendingExit() bool { return s.pendingExit }

// RequestExitConfirm arms the exit confirmation: the next keystroke is
// interpreted as a yes/no answer rather than resolved against the
// keymap.
func (s *State) RequestExitConfirm(prompt string) {
	s.pendingExit = true
	s.message = prompt
}

// PrefixArg returns the prefix argument being accumulated for the next
// command.
func (s *State) PrefixArg() command.PrefixArg { return s.prefixArg }

// SetPrefixArg replaces the pending prefix argument and keeps it live
// so subsequent typed digits extend it.
func (s *State) SetPrefixArg(arg command.PrefixArg) {
	s.prefixArg = arg
	s.prefixLive = arg.IsSet()
}

// SetDimensions resizes the window layout to the frontend's drawing
// area. rows is the full height: the window manager keeps the last
// row for the echo area and tiles the windows over the rest.
func (s *State) SetDimensions(cols, rows uint16) {
	s.windows.SetDimensions(cols, rows)
}
