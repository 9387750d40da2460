package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ar-go/nucleus/internal/buffer"
	"github.com/ar-go/nucleus/internal/commands"
	"github.com/ar-go/nucleus/internal/cursor"
	"github.com/ar-go/nucleus/internal/key"
)

// handleMinibufferKey edits the active minibuffer read.
// Enter submits, C-g/Escape cancels, the usual Emacs motion and
// deletion keys edit in place, and M-p/M-n walk the history.
func (s *State) handleMinibufferKey(ev key.Event) {
	m := s.mini
	plain := ev.Modifiers == key.ModNone
	ctrl := func(r rune) bool {
		return ev.Key == key.Rune && ev.Rune == r && ev.Modifiers == key.ModCtrl
	}
	meta := func(r rune) bool {
		return ev.Key == key.Rune && ev.Rune == r && ev.Modifiers == key.ModMeta
	}

	switch {
	case ev.Key == key.Enter && plain:
		if content, callback, ok := m.Submit(); ok {
			s.dispatchMinibuffer(content, callback)
		}
	case ctrl('g') || (ev.Key == key.Escape && plain):
		m.Clear()
		s.message = "Quit"
	case ev.Key == key.Backspace && plain:
		m.DeleteBackward()
	case (ev.Key == key.Delete && plain) || ctrl('d'):
		m.DeleteForward()
	case (ev.Key == key.Right && plain) || ctrl('f'):
		m.MoveForward()
	case (ev.Key == key.Left && plain) || ctrl('b'):
		m.MoveBackward()
	case (ev.Key == key.Home && plain) || ctrl('a'):
		m.MoveToStart()
	case (ev.Key == key.End && plain) || ctrl('e'):
		m.MoveToEnd()
	case (ev.Key == key.Up && plain) || meta('p'):
		m.HistoryPrev()
	case (ev.Key == key.Down && plain) || meta('n'):
		m.HistoryNext()
	case ev.IsPrintable():
		m.InsertChar(ev.Rune)
	}
}

// dispatchMinibuffer performs the follow-up action for a submitted
// prompt. Callback names are a closed set; anything
// else is a programming error surfaced on the message line.
func (s *State) dispatchMinibuffer(content, callback string) {
	switch callback {
	case commands.CallbackFindFile:
		s.openFile(content)
	case commands.CallbackWriteFile:
		s.writeFileTo(content)
	case commands.CallbackSwitchBuf:
		s.switchToBufferNamed(content)
	case commands.CallbackKillBuf:
		s.killBufferNamed(content)
	case commands.CallbackExtendedCmd:
		if content != "" {
			s.ExecuteCommand(content)
		}
	case commands.CallbackGotoLine:
		n, err := strconv.Atoi(strings.TrimSpace(content))
		if err != nil {
			s.message = "Invalid line number"
			return
		}
		_ = commands.GotoLineNumber(s, n)
		s.ensureCursorVisible()
	default:
		s.message = fmt.Sprintf("unknown minibuffer callback %q", callback)
	}
}

// openFile visits path: reuses an existing buffer visiting it, loads it
// from disk, or creates a fresh empty buffer when the file does not
// exist yet.
func (s *State) openFile(path string) {
	if path == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if id, ok := s.buffers.FindByFilePath(abs); ok {
		s.switchTo(id)
		return
	}

	b, err := buffer.Load(s.buffers.NextID(), path, s.bufferOpts...)
	switch {
	case err == nil:
		s.buffers.Add(b)
		s.switchTo(b.ID())
	case errors.Is(err, os.ErrNotExist):
		id := s.buffers.NewBuffer(filepath.Base(path),
			append([]buffer.Option{buffer.WithFilePath(abs)}, s.bufferOpts...)...)
		s.switchTo(id)
		s.message = "(New file)"
	default:
		s.message = err.Error()
	}
}

func (s *State) writeFileTo(path string) {
	if path == "" {
		return
	}
	b := s.CurrentBuffer()
	if b == nil {
		return
	}
	if err := b.SaveAs(path); err != nil {
		s.message = err.Error()
		return
	}
	s.message = fmt.Sprintf("Wrote %s", b.FilePath())
}

func (s *State) switchToBufferNamed(name string) {
	if name == "" {
		return
	}
	if id, ok := s.buffers.FindByName(name); ok {
		s.switchTo(id)
		return
	}
	id := s.buffers.NewBuffer(name, s.bufferOpts...)
	s.switchTo(id)
	s.message = "(New buffer)"
}

// killBufferNamed removes a buffer (the current one when name is
// empty), refusing when it has unsaved changes. Windows viewing the
// killed buffer retarget to whichever buffer becomes current.
func (s *State) killBufferNamed(name string) {
	var id buffer.ID
	if name == "" {
		id = s.buffers.CurrentID()
	} else {
		found, ok := s.buffers.FindByName(name)
		if !ok {
			s.message = fmt.Sprintf("No buffer named %s", name)
			return
		}
		id = found
	}
	b := s.buffers.Get(id)
	if b == nil {
		return
	}
	if b.Modified() {
		s.message = fmt.Sprintf("Buffer %s is modified; save it first", b.Name())
		return
	}
	s.buffers.Kill(id)
	replacement := s.buffers.CurrentID()
	if replacement == 0 {
		replacement = s.buffers.EnsureScratch()
	}
	for _, w := range s.windows.All() {
		if w.BufferID == id {
			w.BufferID = replacement
			w.Cursors = freshCursors()
			w.ScrollLine = 0
			w.ScrollColumn = 0
		}
	}
}

func (s *State) switchTo(id buffer.ID) {
	s.buffers.SetCurrent(id)
	s.windows.SetCurrentBuffer(id)
}

func freshCursors() *cursor.Set {
	return cursor.NewSet(0)
}
