package text

import "testing"

func TestCharToPosition(t *testing.T) {
	r := RopeFromString("hello\nworld\n")
	cases := []struct {
		offset CharOffset
		want   Position
	}{
		{0, Position{0, 0}},
		{5, Position{0, 5}},
		{6, Position{1, 0}},
		{11, Position{1, 5}},
	}
	for _, c := range cases {
		if got := r.CharToPosition(c.offset); got != c.want {
			t.Errorf("CharToPosition(%d) = %v, want %v", c.offset, got, c.want)
		}
	}
}

func TestPositionToChar(t *testing.T) {
	r := RopeFromString("hello\nworld\n")
	cases := []struct {
		pos  Position
		want CharOffset
	}{
		{Position{0, 0}, 0},
		{Position{0, 5}, 5},
		{Position{1, 0}, 6},
		{Position{1, 5}, 11},
	}
	for _, c := range cases {
		if got := r.PositionToChar(c.pos); got != c.want {
			t.Errorf("PositionToChar(%v) = %d, want %d", c.pos, got, c.want)
		}
	}
}

func TestForwardWordBoundary(t *testing.T) {
	r := RopeFromString("hello world foo")
	cases := []struct {
		start CharOffset
		want  CharOffset
	}{
		{0, 5},
		{5, 11},
		{6, 11},
	}
	for _, c := range cases {
		if got := r.ForwardWordBoundary(c.start); got != c.want {
			t.Errorf("ForwardWordBoundary(%d) = %d, want %d", c.start, got, c.want)
		}
	}
}

func TestBackwardWordBoundary(t *testing.T) {
	r := RopeFromString("hello world foo")
	cases := []struct {
		start CharOffset
		want  CharOffset
	}{
		{15, 12},
		{11, 6},
		{5, 0},
	}
	for _, c := range cases {
		if got := r.BackwardWordBoundary(c.start); got != c.want {
			t.Errorf("BackwardWordBoundary(%d) = %d, want %d", c.start, got, c.want)
		}
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	r := NewRope()
	r = r.Insert(0, "hello")
	if r.String() != "hello" {
		t.Fatalf("got %q", r.String())
	}
	r = r.Insert(5, " world")
	if r.String() != "hello world" {
		t.Fatalf("got %q", r.String())
	}
	r = r.Remove(5, 11)
	if r.String() != "hello" {
		t.Fatalf("got %q", r.String())
	}
}

func TestUnicodeCharOffsets(t *testing.T) {
	r := RopeFromString("café\n日本語")
	if r.LenChars() != CharOffset(len([]rune("café\n日本語"))) {
		t.Fatalf("LenChars mismatch: %d", r.LenChars())
	}
	c, ok := r.CharAt(3)
	if !ok || c != 'é' {
		t.Fatalf("CharAt(3) = %q, %v", c, ok)
	}
}
