package key

import "testing"

func TestNormalizeControlUppercaseRewritesToLowerPlusShift(t *testing.T) {
	e := NewRune('F', ModCtrl).Normalize()
	if e.Rune != 'f' {
		t.Fatalf("Rune = %q, want 'f'", e.Rune)
	}
	if !e.Modifiers.Has(ModCtrl) || !e.Modifiers.Has(ModShift) {
		t.Fatalf("Modifiers = %v, want Ctrl+Shift", e.Modifiers)
	}
}

func TestNormalizeMetaUppercaseRewritesToLowerPlusShift(t *testing.T) {
	e := NewRune('Q', ModMeta).Normalize()
	if e.Rune != 'q' {
		t.Fatalf("Rune = %q, want 'q'", e.Rune)
	}
	if !e.Modifiers.Has(ModShift) {
		t.Fatalf("Modifiers = %v, want Shift set", e.Modifiers)
	}
}

func TestNormalizeShiftedDigitSymbolStripsShift(t *testing.T) {
	e := NewRune('!', ModShift).Normalize()
	if e.Modifiers.Has(ModShift) {
		t.Fatalf("Modifiers = %v, want Shift cleared", e.Modifiers)
	}
}

func TestNormalizePlainLowercaseUnaffected(t *testing.T) {
	e := NewRune('f', ModCtrl).Normalize()
	if e.Rune != 'f' || e.Modifiers != ModCtrl {
		t.Fatalf("got %+v, want unchanged ctrl-f", e)
	}
}

func TestIsPrintablePlainCharOnly(t *testing.T) {
	if !NewRune('a', ModNone).IsPrintable() {
		t.Fatal("plain 'a' should be printable")
	}
	if !NewRune('a', ModShift).IsPrintable() {
		t.Fatal("shift-'a' should be printable")
	}
	if NewRune('a', ModCtrl).IsPrintable() {
		t.Fatal("ctrl-'a' should not be printable")
	}
	if New(Enter, ModNone).IsPrintable() {
		t.Fatal("Enter should not be printable")
	}
}

func TestEventString(t *testing.T) {
	if got := New(Enter, ModNone).String(); got != "Enter" {
		t.Fatalf("String() = %q, want %q", got, "Enter")
	}
	if got := NewRune('x', ModCtrl).String(); got != "C-x" {
		t.Fatalf("String() = %q, want %q", got, "C-x")
	}
}
