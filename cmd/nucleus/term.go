package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/ar-go/nucleus/internal/editor"
	"github.com/ar-go/nucleus/internal/key"
	"github.com/ar-go/nucleus/internal/text"
	"github.com/ar-go/nucleus/internal/watch"
)

// terminal drives a tcell screen: it owns the poll loop, translates
// tcell events into normalized key events, and renders the editor's
// read-only view (buffer text, cursors, scroll, modeline, echo area).
type terminal struct {
	screen   tcell.Screen
	tabWidth int
}

func newTerminal(tabWidth int) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &terminal{screen: screen, tabWidth: tabWidth}, nil
}

func (t *terminal) shutdown() {
	t.screen.Fini()
}

// interrupt wakes the poll loop from another goroutine.
func (t *terminal) interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// loop is the serial key pipeline: poll, translate, hand to the core,
// redraw. External file changes arrive as interrupts posted by the
// watcher forwarding goroutine.
func (t *terminal) loop(ed *editor.State, watcher *watch.Watcher, logger *slog.Logger) {
	if watcher != nil {
		go func() {
			for range watcher.Changes() {
				t.interrupt()
			}
		}()
	}

	cols, rows := t.screen.Size()
	ed.SetDimensions(uint16(cols), uint16(rows))

	for !ed.ShouldQuit() {
		t.watchOpenFiles(ed, watcher, logger)
		t.render(ed)

		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			ed.SetDimensions(uint16(w), uint16(h))
			t.screen.Sync()
		case *tcell.EventKey:
			if kev, ok := translateKey(ev); ok {
				ed.HandleKey(kev)
			}
		case *tcell.EventInterrupt:
			t.drainChanges(ed, watcher)
		case nil:
			return
		}
	}
}

func (t *terminal) watchOpenFiles(ed *editor.State, watcher *watch.Watcher, logger *slog.Logger) {
	if watcher == nil {
		return
	}
	for _, b := range ed.Buffers().All() {
		if p := b.FilePath(); p != "" {
			if err := watcher.Add(p); err != nil {
				logger.Debug("watch failed", "path", p, "error", err)
			}
		}
	}
}

func (t *terminal) drainChanges(ed *editor.State, watcher *watch.Watcher) {
	if watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-watcher.Changes():
			if !ok {
				return
			}
			if change.Removed {
				ed.SetMessage(fmt.Sprintf("%s was removed on disk", change.Path))
			} else {
				ed.SetMessage(fmt.Sprintf("%s changed on disk", change.Path))
			}
		default:
			return
		}
	}
}

// translateKey converts a tcell key event to the core's normalized
// form. tcell reports C-a..C-z as control codes; those are rewritten
// back to letter runes with the Ctrl modifier, and Alt maps to Meta.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := key.ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModMeta)
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods = mods.With(key.ModSuper)
	}

	// Named keys first: tcell aliases Enter/Tab/Backspace/Escape onto
	// the C-m/C-i/C-h/C-[ control codes, so the ctrl-letter rewrite
	// below must not see them.
	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return key.NewRune(ev.Rune(), mods).Normalize(), true
	case tcell.KeyEnter:
		return key.New(key.Enter, mods), true
	case tcell.KeyTab:
		return key.New(key.Tab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.New(key.Backspace, mods), true
	case tcell.KeyDelete:
		return key.New(key.Delete, mods), true
	case tcell.KeyEscape:
		return key.New(key.Escape, mods), true
	case tcell.KeyHome:
		return key.New(key.Home, mods), true
	case tcell.KeyEnd:
		return key.New(key.End, mods), true
	case tcell.KeyPgUp:
		return key.New(key.PageUp, mods), true
	case tcell.KeyPgDn:
		return key.New(key.PageDown, mods), true
	case tcell.KeyUp:
		return key.New(key.Up, mods), true
	case tcell.KeyDown:
		return key.New(key.Down, mods), true
	case tcell.KeyLeft:
		return key.New(key.Left, mods), true
	case tcell.KeyRight:
		return key.New(key.Right, mods), true
	case tcell.KeyCtrlSpace:
		return key.NewRune(' ', mods.With(key.ModCtrl)), true
	case tcell.KeyCtrlUnderscore:
		// Most terminals deliver C-/ as C-_; the default keymap binds
		// undo to both.
		return key.NewRune('_', mods.With(key.ModCtrl)), true
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := rune('a' + (k - tcell.KeyCtrlA))
			return key.NewRune(r, mods.With(key.ModCtrl)).Normalize(), true
		}
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			return key.New(key.F1+key.Key(k-tcell.KeyF1), mods), true
		}
	}
	return key.Event{}, false
}

var (
	styleDefault  = tcell.StyleDefault
	styleModeline = tcell.StyleDefault.Reverse(true)
)

// render draws every window's visible slice of its buffer, the focused
// window's primary cursor, and the bottom echo line (minibuffer >
// message > modeline).
func (t *terminal) render(ed *editor.State) {
	t.screen.Clear()

	for _, w := range ed.Windows().All() {
		b := ed.Buffers().Get(w.BufferID)
		if b == nil {
			continue
		}
		rope := b.Rope()
		lineCount := rope.LenLines()
		for row := uint16(0); row < w.Height; row++ {
			line := w.ScrollLine + uint32(row)
			if line >= lineCount {
				break
			}
			start := rope.LineStartChar(line)
			end := rope.LineEndChar(line)
			t.drawText(int(w.X), int(w.Y)+int(row), int(w.Width), rope.Slice(start, end))
		}
	}

	t.renderEcho(ed)
	t.placeCursor(ed)
	t.screen.Show()
}

func (t *terminal) renderEcho(ed *editor.State) {
	cols, rows := t.screen.Size()
	if rows == 0 {
		return
	}
	y := rows - 1
	switch {
	case ed.Minibuffer().IsActive():
		t.drawText(0, y, cols, ed.Minibuffer().Display())
	case ed.Message() != "":
		t.drawText(0, y, cols, ed.Message())
	default:
		t.drawModeline(ed, y, cols)
	}
}

func (t *terminal) drawModeline(ed *editor.State, y, cols int) {
	b := ed.CurrentBuffer()
	w := ed.CurrentWindow()
	if b == nil || w == nil {
		return
	}
	flag := "--"
	if b.Modified() {
		flag = "**"
	}
	line := b.Rope().CharToLine(w.Cursors.Primary().Position) + 1
	text := fmt.Sprintf(" %s %s  (%s)  L%d", flag, b.Name(), b.Mode(), line)
	for x := 0; x < cols; x++ {
		t.screen.SetContent(x, y, ' ', nil, styleModeline)
	}
	t.drawStyledText(0, y, cols, text, styleModeline)
}

func (t *terminal) placeCursor(ed *editor.State) {
	w := ed.CurrentWindow()
	b := ed.CurrentBuffer()
	if w == nil || b == nil {
		t.screen.HideCursor()
		return
	}
	if ed.Minibuffer().IsActive() {
		_, rows := t.screen.Size()
		x := displayWidth(ed.Minibuffer().Prompt) +
			displayWidth(string(ed.Minibuffer().Content[:ed.Minibuffer().CursorAt]))
		t.screen.ShowCursor(x, rows-1)
		return
	}
	rope := b.Rope()
	pos := rope.CharToPosition(w.Cursors.Primary().Position)
	if pos.Line < w.ScrollLine {
		t.screen.HideCursor()
		return
	}
	row := pos.Line - w.ScrollLine
	if row >= uint32(w.Height) {
		t.screen.HideCursor()
		return
	}
	start := rope.LineStartChar(pos.Line)
	prefix := rope.Slice(start, start+text.CharOffset(pos.Column))
	t.screen.ShowCursor(int(w.X)+displayWidth(prefix), int(w.Y)+int(row))
}

func (t *terminal) drawText(x, y, maxWidth int, s string) {
	t.drawStyledText(x, y, maxWidth, s, styleDefault)
}

func (t *terminal) drawStyledText(x, y, maxWidth int, s string, style tcell.Style) {
	col := 0
	state := -1
	for len(s) > 0 && col < maxWidth {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		runes := []rune(cluster)
		if len(runes) == 0 {
			break
		}
		if runes[0] == '\t' {
			col += t.tabWidth - col%t.tabWidth
			continue
		}
		t.screen.SetContent(x+col, y, runes[0], runes[1:], style)
		col += width
	}
}

func displayWidth(s string) int {
	return uniseg.StringWidth(s)
}
