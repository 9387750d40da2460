package keymap

import "github.com/ar-go/nucleus/internal/key"

func seq(evs ...key.Event) []key.Event { return evs }

func r(ch rune, mods key.Modifier) key.Event { return key.NewRune(ch, mods) }

func k(named key.Key, mods key.Modifier) key.Event { return key.New(named, mods) }

// Default returns the editor's baseline keymap: editing, motion (and
// shift-selecting variants), kill/yank, mark, undo, file, buffer, and
// window commands, plus the prefix-argument entry points.
// self-insert-command is never bound directly: unbound printable keys
// self-insert via the resolver's fallback, not through a keymap entry.
func Default() *Keymap {
	km := New()

	bind := func(command string, seqs ...[]key.Event) {
		for _, s := range seqs {
			km.Bind(s, command)
		}
	}

	bind("delete-char", seq(r('d', key.ModCtrl)), seq(k(key.Delete, key.ModNone)))
	bind("delete-backward-char", seq(k(key.Backspace, key.ModNone)))
	bind("newline", seq(k(key.Enter, key.ModNone)))
	bind("open-line", seq(r('o', key.ModCtrl)))
	bind("transpose-chars", seq(r('t', key.ModCtrl)))

	bind("forward-char", seq(r('f', key.ModCtrl)), seq(k(key.Right, key.ModNone)))
	bind("backward-char", seq(r('b', key.ModCtrl)), seq(k(key.Left, key.ModNone)))
	bind("next-line", seq(r('n', key.ModCtrl)), seq(k(key.Down, key.ModNone)))
	bind("previous-line", seq(r('p', key.ModCtrl)), seq(k(key.Up, key.ModNone)))
	bind("move-beginning-of-line", seq(r('a', key.ModCtrl)), seq(k(key.Home, key.ModNone)))
	bind("move-end-of-line", seq(r('e', key.ModCtrl)), seq(k(key.End, key.ModNone)))
	bind("beginning-of-buffer", seq(r('<', key.ModMeta)))
	bind("end-of-buffer", seq(r('>', key.ModMeta)))
	bind("forward-word", seq(r('f', key.ModMeta)))
	bind("backward-word", seq(r('b', key.ModMeta)))

	bind("forward-char-shift", seq(k(key.Right, key.ModShift)))
	bind("backward-char-shift", seq(k(key.Left, key.ModShift)))
	bind("next-line-shift", seq(k(key.Down, key.ModShift)))
	bind("previous-line-shift", seq(k(key.Up, key.ModShift)))
	bind("move-beginning-of-line-shift", seq(k(key.Home, key.ModShift)))
	bind("move-end-of-line-shift", seq(k(key.End, key.ModShift)))
	bind("beginning-of-buffer-shift", seq(k(key.Home, key.ModShift.With(key.ModCtrl))))
	bind("end-of-buffer-shift", seq(k(key.End, key.ModShift.With(key.ModCtrl))))
	bind("forward-word-shift", seq(r('f', key.ModMeta.With(key.ModShift))))
	bind("backward-word-shift", seq(r('b', key.ModMeta.With(key.ModShift))))

	bind("kill-line", seq(r('k', key.ModCtrl)))
	bind("kill-word", seq(r('d', key.ModMeta)))
	bind("backward-kill-word", seq(k(key.Backspace, key.ModMeta)))
	bind("kill-region", seq(r('w', key.ModCtrl)))
	bind("copy-region-as-kill", seq(r('w', key.ModMeta)))
	bind("yank", seq(r('y', key.ModCtrl)))
	bind("yank-pop", seq(r('y', key.ModMeta)))

	bind("set-mark-command", seq(r(' ', key.ModCtrl)))
	bind("exchange-point-and-mark", seq(r('x', key.ModCtrl), r('x', key.ModCtrl)))
	bind("mark-whole-buffer", seq(r('x', key.ModCtrl), r('h', key.ModNone)))

	bind("undo", seq(r('/', key.ModCtrl)), seq(r('_', key.ModCtrl)))
	bind("redo", seq(r('/', key.ModMeta)))

	bind("keyboard-quit", seq(r('g', key.ModCtrl)))

	bind("find-file", seq(r('x', key.ModCtrl), r('f', key.ModCtrl)))
	bind("save-buffer", seq(r('x', key.ModCtrl), r('s', key.ModCtrl)))
	bind("write-file", seq(r('x', key.ModCtrl), r('w', key.ModCtrl)))
	bind("switch-to-buffer", seq(r('x', key.ModCtrl), r('b', key.ModNone)))
	bind("kill-buffer", seq(r('x', key.ModCtrl), r('k', key.ModNone)))
	bind("exit", seq(r('x', key.ModCtrl), r('c', key.ModCtrl)))

	bind("split-window-below", seq(r('x', key.ModCtrl), r('2', key.ModNone)))
	bind("split-window-right", seq(r('x', key.ModCtrl), r('3', key.ModNone)))
	bind("delete-window", seq(r('x', key.ModCtrl), r('0', key.ModNone)))
	bind("delete-other-windows", seq(r('x', key.ModCtrl), r('1', key.ModNone)))
	bind("other-window", seq(r('x', key.ModCtrl), r('o', key.ModNone)))

	bind("execute-extended-command", seq(r('x', key.ModMeta)))
	bind("goto-line", seq(r('g', key.ModMeta), r('g', key.ModMeta)))
	bind("describe-bindings", seq(r('h', key.ModCtrl), r('b', key.ModNone)))

	bind("universal-argument", seq(r('u', key.ModCtrl)))
	bind("negative-argument", seq(r('-', key.ModMeta)))

	return km
}
