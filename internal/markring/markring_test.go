package markring

import "testing"

func TestPushDedupAtHead(t *testing.T) {
	r := New(16)
	r.Push(5)
	r.Push(5)
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
	r.Push(10)
	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	if r.Positions()[0] != 10 {
		t.Fatalf("head = %d, want 10", r.Positions()[0])
	}
}

func TestCapacityEviction(t *testing.T) {
	r := New(2)
	r.Push(1)
	r.Push(2)
	r.Push(3)
	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	positions := r.Positions()
	if positions[0] != 3 || positions[1] != 2 {
		t.Fatalf("positions = %v, want [3 2]", positions)
	}
}

func TestAdjustAfterInsertAndDelete(t *testing.T) {
	r := New(16)
	r.Push(10)
	r.Push(2)
	r.AdjustAfterInsert(5, 3)
	positions := r.Positions()
	if positions[0] != 2 || positions[1] != 13 {
		t.Fatalf("after insert: %v, want [2 13]", positions)
	}
	r.AdjustAfterDelete(0, 4)
	positions = r.Positions()
	if positions[0] != 0 || positions[1] != 9 {
		t.Fatalf("after delete: %v, want [0 9]", positions)
	}
}
