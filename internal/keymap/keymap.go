// Package keymap implements the keybinding trie and the resolver that
// walks it, tracking a pending multi-key prefix sequence.
package keymap

import (
	"sort"
	"strings"

	"github.com/ar-go/nucleus/internal/key"
)

// node is one trie node: either a leaf bound to a command name, an
// internal node carrying a sub-keymap, or empty (children holds
// nothing for this key).
type node struct {
	command  string
	children map[key.Event]*node
}

func newNode() *node {
	return &node{children: make(map[key.Event]*node)}
}

// Keymap is a trie of key sequences to command names, supporting
// multi-key prefixes (e.g. "C-x C-s").
type Keymap struct {
	root *node
}

// New returns an empty Keymap.
func New() *Keymap {
	return &Keymap{root: newNode()}
}

// Bind associates a sequence of key events with a command name,
// creating intermediate prefix nodes as needed. Binding a shorter
// sequence that is a prefix of an existing binding overwrites the
// existing leaf at that point (the old continuation becomes
// unreachable, matching Emacs's own rebind semantics).
func (k *Keymap) Bind(seq []key.Event, command string) {
	n := k.root
	for _, ev := range seq {
		ev = ev.Normalize()
		child, ok := n.children[ev]
		if !ok {
			child = newNode()
			n.children[ev] = child
		}
		n = child
	}
	n.command = command
}

// Unbind removes whatever binding exists at the exact sequence, if
// any. It does not prune now-empty intermediate prefix nodes.
func (k *Keymap) Unbind(seq []key.Event) {
	n := k.root
	for _, ev := range seq {
		child, ok := n.children[ev.Normalize()]
		if !ok {
			return
		}
		n = child
	}
	n.command = ""
}

// lookup reports the trie node reached by following seq from the
// root, and whether the walk bottomed out before consuming it.
func (k *Keymap) lookup(seq []key.Event) (n *node, complete bool) {
	n = k.root
	for _, ev := range seq {
		child, ok := n.children[ev.Normalize()]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

func (n *node) isPrefix() bool {
	return len(n.children) > 0
}

func (n *node) isBound() bool {
	return n.command != ""
}

// Binding is one resolved key sequence and the command it runs, as
// reported by Bindings.
type Binding struct {
	Keys    string
	Command string
}

// Bindings enumerates every bound sequence in the trie, sorted by
// command name then key sequence, for describe-bindings.
func (k *Keymap) Bindings() []Binding {
	var out []Binding
	var walk func(n *node, prefix []string)
	walk = func(n *node, prefix []string) {
		if n.isBound() {
			out = append(out, Binding{Keys: strings.Join(prefix, " "), Command: n.command})
		}
		for ev, child := range n.children {
			walk(child, append(prefix, ev.String()))
		}
	}
	walk(k.root, nil)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Command != out[j].Command {
			return out[i].Command < out[j].Command
		}
		return out[i].Keys < out[j].Keys
	})
	return out
}
