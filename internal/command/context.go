package command

// PrefixArg is the universal-argument state a command reads to decide
// its repeat count.
type PrefixArg struct {
	kind prefixKind
	n    int
}

type prefixKind int

const (
	prefixNone prefixKind = iota
	prefixUniversal
	prefixNegative
	prefixRaw
)

// NoPrefix is the default, unset PrefixArg.
var NoPrefix = PrefixArg{}

// UniversalPrefix returns the PrefixArg produced by n consecutive C-u
// presses (classic Emacs semantics: n is 4^(number of presses)).
func UniversalPrefix(n int) PrefixArg {
	return PrefixArg{kind: prefixUniversal, n: n}
}

// NegativePrefix returns the PrefixArg produced by M--  with no digits
// following it.
func NegativePrefix() PrefixArg {
	return PrefixArg{kind: prefixNegative}
}

// RawPrefix returns the PrefixArg produced by an explicit numeric
// argument (C-u 42, or M-4 M-2).
func RawPrefix(n int) PrefixArg {
	return PrefixArg{kind: prefixRaw, n: n}
}

// Count returns the signed numeric argument: 1 when no prefix is set,
// -1 for a bare negative-argument, and n for Universal/Raw.
func (p PrefixArg) Count() int {
	switch p.kind {
	case prefixUniversal, prefixRaw:
		return p.n
	case prefixNegative:
		return -1
	default:
		return 1
	}
}

// IsSet reports whether any prefix argument was supplied at all.
func (p PrefixArg) IsSet() bool {
	return p.kind != prefixNone
}

// IsRaw reports whether the argument was built from typed digits
// rather than C-u presses or a bare minus.
func (p PrefixArg) IsRaw() bool {
	return p.kind == prefixRaw
}

// Context carries the per-invocation state a Command's Execute
// function reads: the prefix argument in effect and the name of the
// previously executed command (used by yank-pop, which changes
// behavior on repeat).
type Context struct {
	Prefix      PrefixArg
	LastCommand string
}

// NewContext returns a Context with no prefix argument set.
func NewContext() *Context {
	return &Context{Prefix: NoPrefix}
}

// WithPrefix returns a Context carrying the given prefix argument.
func WithPrefix(prefix PrefixArg) *Context {
	return &Context{Prefix: prefix}
}

// Count returns ctx.Prefix.Count().
func (c *Context) Count() int {
	return c.Prefix.Count()
}

// RepeatCount returns the unsigned repeat count a motion or editing
// command should perform: abs(Count()).
func (c *Context) RepeatCount() int {
	n := c.Count()
	if n < 0 {
		return -n
	}
	return n
}
