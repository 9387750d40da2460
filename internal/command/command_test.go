package command

import "testing"

func TestPrefixArgCount(t *testing.T) {
	cases := []struct {
		name string
		p    PrefixArg
		want int
	}{
		{"none", NoPrefix, 1},
		{"universal", UniversalPrefix(16), 16},
		{"negative", NegativePrefix(), -1},
		{"raw", RawPrefix(42), 42},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.Count(); got != c.want {
				t.Fatalf("Count() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestPrefixArgIsSet(t *testing.T) {
	if NoPrefix.IsSet() {
		t.Fatal("NoPrefix.IsSet() = true, want false")
	}
	if !UniversalPrefix(4).IsSet() {
		t.Fatal("UniversalPrefix(4).IsSet() = false, want true")
	}
	if !NegativePrefix().IsSet() {
		t.Fatal("NegativePrefix().IsSet() = false, want true")
	}
}

func TestContextRepeatCount(t *testing.T) {
	ctx := WithPrefix(NegativePrefix())
	if got := ctx.RepeatCount(); got != 1 {
		t.Fatalf("RepeatCount() = %d, want 1", got)
	}
	ctx = WithPrefix(RawPrefix(-7))
	if got := ctx.RepeatCount(); got != 7 {
		t.Fatalf("RepeatCount() = %d, want 7", got)
	}
}

func TestRegistryExecuteNotFound(t *testing.T) {
	r := NewRegistry()
	err := r.Execute("no-such-command", nil, NewContext())
	if err == nil {
		t.Fatal("want error for unregistered command")
	}
}

func TestRegistryRegisterAndExecute(t *testing.T) {
	r := NewRegistry()
	called := false
	r.Register(New("noop", func(State, *Context) error {
		called = true
		return nil
	}))
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if err := r.Execute("noop", nil, NewContext()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !called {
		t.Fatal("registered command was not invoked")
	}
}

func TestCommandConstructorFlags(t *testing.T) {
	fn := func(State, *Context) error { return nil }

	if c := Kill("kill-line", fn); !c.IsKill || !c.BreaksUndoCoalesce {
		t.Fatalf("Kill() flags = %+v, want IsKill && BreaksUndoCoalesce", c)
	}
	if c := Motion("forward-char", fn); !c.PreservesMark || !c.BreaksUndoCoalesce {
		t.Fatalf("Motion() flags = %+v, want PreservesMark && BreaksUndoCoalesce", c)
	}
	if c := Mark("set-mark-command", fn); !c.PreservesMark || c.BreaksUndoCoalesce {
		t.Fatalf("Mark() flags = %+v, want PreservesMark && !BreaksUndoCoalesce", c)
	}
	if c := Editing("newline", fn); c.PreservesMark || c.BreaksUndoCoalesce || c.IsKill {
		t.Fatalf("Editing() flags = %+v, want all false", c)
	}
}
