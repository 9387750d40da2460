package cursor

import (
	"testing"

	"github.com/ar-go/nucleus/internal/text"
)

func TestSortAndMergeDedup(t *testing.T) {
	s := NewSet(5)
	s.AddCursor(2)
	s.AddCursor(8)
	s.AddCursor(2) // duplicate, no-op

	if s.Len() != 3 {
		t.Fatalf("expected 3 cursors, got %d", s.Len())
	}
	positions := make([]text.CharOffset, s.Len())
	for i, c := range s.All() {
		positions[i] = c.Position
	}
	want := []text.CharOffset{2, 5, 8}
	for i, p := range want {
		if positions[i] != p {
			t.Errorf("position[%d] = %d, want %d", i, positions[i], p)
		}
	}
	if s.Primary().Position != 2 {
		t.Errorf("primary position = %d, want 2", s.Primary().Position)
	}
}

func TestAdjustAfterInsert(t *testing.T) {
	s := NewSetFrom([]Cursor{New(0), New(3), New(6)})
	s.AdjustAfterInsert(3, 4)
	got := []text.CharOffset{s.At(0).Position, s.At(1).Position, s.At(2).Position}
	want := []text.CharOffset{0, 3, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAdjustAfterDelete(t *testing.T) {
	s := NewSetFrom([]Cursor{New(0), New(5), New(10)})
	// delete [3, 8)
	s.AdjustAfterDelete(3, 8)
	got := []text.CharOffset{s.At(0).Position, s.At(1).Position, s.At(2).Position}
	want := []text.CharOffset{0, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDeactivateAllMarksKeepsPosition(t *testing.T) {
	s := NewSet(4)
	s.Primary().SetMark()
	if !s.Primary().MarkActive {
		t.Fatal("expected mark active")
	}
	s.DeactivateAllMarks()
	if s.Primary().MarkActive {
		t.Fatal("expected mark inactive")
	}
	if s.Primary().Mark == nil || *s.Primary().Mark != 4 {
		t.Fatal("mark position should survive deactivation")
	}
}

func TestExchangePointAndMark(t *testing.T) {
	s := NewSet(10)
	s.Primary().SetMark()
	s.Primary().Position = 20
	s.ExchangePointAndMark()
	if s.Primary().Position != 10 {
		t.Errorf("position = %d, want 10", s.Primary().Position)
	}
	if *s.Primary().Mark != 20 {
		t.Errorf("mark = %d, want 20", *s.Primary().Mark)
	}
}

func TestPositionsDescending(t *testing.T) {
	s := NewSetFrom([]Cursor{New(1), New(7), New(4)})
	got := s.PositionsDescending()
	want := []text.CharOffset{7, 4, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
