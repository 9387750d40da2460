package bufmgr

import "testing"

func TestNewBufferBecomesCurrent(t *testing.T) {
	m := New()
	id := m.NewBuffer("a")
	if m.CurrentID() != id {
		t.Fatalf("CurrentID() = %d, want %d", m.CurrentID(), id)
	}
}

func TestMRUOrderTracksSetCurrent(t *testing.T) {
	m := New()
	a := m.NewBuffer("a")
	b := m.NewBuffer("b")
	c := m.NewBuffer("c")

	m.SetCurrent(a)
	all := m.All()
	if all[0].ID() != a {
		t.Fatalf("MRU front = %d, want %d", all[0].ID(), a)
	}
	_ = b
	_ = c
}

func TestKillCurrentPromotesNextMRU(t *testing.T) {
	m := New()
	a := m.NewBuffer("a")
	b := m.NewBuffer("b")
	m.SetCurrent(b)

	killed := m.Kill(b)
	if killed == nil || killed.ID() != b {
		t.Fatalf("Kill returned %v", killed)
	}
	if m.CurrentID() != a {
		t.Fatalf("CurrentID() = %d, want %d after kill", m.CurrentID(), a)
	}
}

func TestFindByNameAndSwitch(t *testing.T) {
	m := New()
	m.NewBuffer("alpha")
	beta := m.NewBuffer("beta")

	id, ok := m.FindByName("beta")
	if !ok || id != beta {
		t.Fatalf("FindByName(beta) = %d, %v", id, ok)
	}
	if !m.SwitchToName("alpha") {
		t.Fatal("SwitchToName(alpha) failed")
	}
	if m.Current().Name() != "alpha" {
		t.Fatalf("current = %q", m.Current().Name())
	}
}

func TestEnsureScratchIdempotent(t *testing.T) {
	m := New()
	a := m.EnsureScratch()
	b := m.EnsureScratch()
	if a != b {
		t.Fatalf("EnsureScratch created duplicates: %d vs %d", a, b)
	}
	if m.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", m.Count())
	}
}
