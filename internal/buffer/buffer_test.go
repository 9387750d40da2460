package buffer

import (
	"testing"

	"github.com/ar-go/nucleus/internal/cursor"
)

func TestInsertStringCoalescesWordThenUndoesInOneStep(t *testing.T) {
	b := New(1)
	cs := cursor.NewSet(0)

	for _, ch := range "hello" {
		b.InsertString(cs, string(ch))
	}

	if got := b.Text(); got != "hello" {
		t.Fatalf("text = %q, want %q", got, "hello")
	}
	if got := cs.Primary().Position; got != 5 {
		t.Fatalf("primary position = %d, want 5", got)
	}

	restored, ok := b.Undo(cs)
	if !ok {
		t.Fatal("Undo() ok = false, want true")
	}
	if got := b.Text(); got != "" {
		t.Fatalf("after undo text = %q, want empty", got)
	}
	if restored == nil || restored.Primary().Position != 0 {
		t.Fatalf("restored cursor position = %+v, want 0", restored)
	}
}

func TestInsertStringSpaceBreaksCoalesce(t *testing.T) {
	b := New(1)
	cs := cursor.NewSet(0)

	for _, ch := range "hi yo" {
		b.InsertString(cs, string(ch))
	}
	if got := b.Text(); got != "hi yo" {
		t.Fatalf("text = %q, want %q", got, "hi yo")
	}

	steps := []string{"hi ", "hi", ""}
	for _, want := range steps {
		if _, ok := b.Undo(cs); !ok {
			t.Fatalf("Undo() ok = false before reaching %q", want)
		}
		if got := b.Text(); got != want {
			t.Fatalf("text = %q, want %q", got, want)
		}
	}
}

func TestInsertStringMultiCursorUndoesAsOneStep(t *testing.T) {
	b := NewFromString(1, "aa bb cc")
	cs := cursor.NewSetFrom([]cursor.Cursor{
		cursor.New(0),
		cursor.New(3),
		cursor.New(6),
	})

	b.InsertString(cs, "X")

	if got := b.Text(); got != "Xaa Xbb Xcc" {
		t.Fatalf("text = %q, want %q", got, "Xaa Xbb Xcc")
	}

	if _, ok := b.Undo(cs); !ok {
		t.Fatal("Undo() ok = false")
	}
	if got := b.Text(); got != "aa bb cc" {
		t.Fatalf("after undo text = %q, want %q", got, "aa bb cc")
	}
}

func TestDeleteRegionReturnsRemovedText(t *testing.T) {
	b := NewFromString(1, "hello world")
	cs := cursor.NewSet(0)

	removed := b.DeleteRegion(cs, 0, 5)
	if removed != "hello" {
		t.Fatalf("removed = %q, want %q", removed, "hello")
	}
	if got := b.Text(); got != " world" {
		t.Fatalf("text = %q, want %q", got, " world")
	}
}

func TestDeleteRegionEmptyOrInvertedIsNoop(t *testing.T) {
	b := NewFromString(1, "hello")
	cs := cursor.NewSet(0)

	if removed := b.DeleteRegion(cs, 3, 3); removed != "" {
		t.Fatalf("empty region removed = %q, want empty", removed)
	}
	if removed := b.DeleteRegion(cs, 4, 1); removed != "" {
		t.Fatalf("inverted region removed = %q, want empty", removed)
	}
	if got := b.Text(); got != "hello" {
		t.Fatalf("text mutated: %q", got)
	}
}

func TestReadOnlyBufferRejectsMutation(t *testing.T) {
	b := NewFromString(1, "hello", WithReadOnly(true))
	cs := cursor.NewSet(0)

	b.InsertString(cs, "X")
	if got := b.Text(); got != "hello" {
		t.Fatalf("text mutated on read-only buffer: %q", got)
	}
	if b.Modified() {
		t.Fatal("Modified() = true on read-only buffer")
	}
}

func TestUndoRedoBranchLinearTraversal(t *testing.T) {
	b := New(1)
	cs := cursor.NewSet(0)

	b.InsertString(cs, "foo\n")
	b.AddUndoBoundary()
	b.InsertString(cs, "bar\n")
	b.AddUndoBoundary()
	b.InsertString(cs, "baz\n")
	b.AddUndoBoundary()
	b.InsertString(cs, "faz")
	b.AddUndoBoundary()

	b.Undo(cs)
	b.Undo(cs)
	if got := b.Text(); got != "foo\nbar\n" {
		t.Fatalf("after two undos text = %q, want %q", got, "foo\nbar\n")
	}

	b.InsertString(cs, "hello\n")
	b.AddUndoBoundary()
	b.InsertString(cs, "world")
	b.AddUndoBoundary()

	// Linear traversal: the two branch insertions come off first, then
	// the inverses recorded by the earlier undos replay in reverse,
	// restoring "baz\n" and "faz", before the original insertions
	// unwind.
	wantSteps := []string{
		"foo\nbar\nhello\n",
		"foo\nbar\n",
		"foo\nbar\nbaz\n",
		"foo\nbar\nbaz\nfaz",
		"foo\nbar\nbaz\n",
		"foo\nbar\n",
		"foo\n",
	}
	for _, want := range wantSteps {
		if _, ok := b.Undo(cs); !ok {
			t.Fatalf("Undo() ok = false before reaching %q", want)
		}
		if got := b.Text(); got != want {
			t.Fatalf("text = %q, want %q", got, want)
		}
	}
}

func TestDeleteCharForwardAndBackward(t *testing.T) {
	b := NewFromString(1, "hello")
	cs := cursor.NewSet(5)

	b.DeleteCharBackward(cs)
	if got := b.Text(); got != "hell" {
		t.Fatalf("text = %q, want %q", got, "hell")
	}

	cs.Primary().Position = 0
	b.DeleteCharForward(cs)
	if got := b.Text(); got != "ell" {
		t.Fatalf("text = %q, want %q", got, "ell")
	}
}

func TestDeleteRegionsMultiCursor(t *testing.T) {
	b := NewFromString(1, "aXbXcX")
	cs := cursor.NewSetFrom([]cursor.Cursor{cursor.New(0), cursor.New(2), cursor.New(4)})

	out := b.DeleteRegions(cs, []RegionSpan{
		{ID: cs.At(0).ID, Start: 1, End: 2},
		{ID: cs.At(1).ID, Start: 3, End: 4},
		{ID: cs.At(2).ID, Start: 5, End: 6},
	})
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	if got := b.Text(); got != "abc" {
		t.Fatalf("text = %q, want %q", got, "abc")
	}

	if _, ok := b.Undo(cs); !ok {
		t.Fatal("Undo() ok = false")
	}
	if got := b.Text(); got != "aXbXcX" {
		t.Fatalf("after undo text = %q, want %q", got, "aXbXcX")
	}
}

func TestInsertAtCursorsYank(t *testing.T) {
	b := NewFromString(1, "ab")
	cs := cursor.NewSetFrom([]cursor.Cursor{cursor.New(0), cursor.New(1)})

	texts := map[cursor.ID]string{
		cs.At(0).ID: "X",
		cs.At(1).ID: "YY",
	}
	b.InsertAtCursors(cs, texts)

	if got := b.Text(); got != "XaYYb" {
		t.Fatalf("text = %q, want %q", got, "XaYYb")
	}
}

func TestBufferModifiedFlag(t *testing.T) {
	b := New(1)
	cs := cursor.NewSet(0)
	if b.Modified() {
		t.Fatal("new buffer is modified")
	}
	b.InsertString(cs, "x")
	if !b.Modified() {
		t.Fatal("Modified() = false after insert")
	}
	b.SetModified(false)
	if b.Modified() {
		t.Fatal("Modified() = true after SetModified(false)")
	}
}
