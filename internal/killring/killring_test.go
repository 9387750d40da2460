package killring

import "testing"

func TestBasicCycle(t *testing.T) {
	r := New(3)
	r.Push("first", false)
	r.SetLastWasKill(false)
	r.Push("second", false)
	r.SetLastWasKill(false)
	r.Push("third", false)

	if v, _ := r.Yank(); v != "third" {
		t.Fatalf("yank = %q, want third", v)
	}
	if v, _ := r.YankPop(); v != "second" {
		t.Fatalf("yank-pop = %q, want second", v)
	}
	if v, _ := r.YankPop(); v != "first" {
		t.Fatalf("yank-pop = %q, want first", v)
	}
	if v, _ := r.YankPop(); v != "third" {
		t.Fatalf("yank-pop = %q, want third (wrapped)", v)
	}
}

func TestAppendCoalesce(t *testing.T) {
	r := New(10)
	r.Push("hello", false)
	r.Push(" world", true)

	if v, _ := r.Yank(); v != "hello world" {
		t.Fatalf("yank = %q, want %q", v, "hello world")
	}
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
}

func TestPushPrepend(t *testing.T) {
	r := New(10)
	r.Push("world", false)
	r.PushPrepend("hello ")

	if v, _ := r.Yank(); v != "hello world" {
		t.Fatalf("yank = %q, want %q", v, "hello world")
	}
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
}

func TestCapacityEviction(t *testing.T) {
	r := New(2)
	r.Push("first", false)
	r.SetLastWasKill(false)
	r.Push("second", false)
	r.SetLastWasKill(false)
	r.Push("third", false)

	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	entries := r.Entries()
	if entries[0] != "third" || entries[1] != "second" {
		t.Fatalf("entries = %v, want [third second]", entries)
	}
}

func TestEmptyPushIsNoop(t *testing.T) {
	r := New(5)
	r.Push("", false)
	if r.Len() != 0 {
		t.Fatalf("len = %d, want 0", r.Len())
	}
}
