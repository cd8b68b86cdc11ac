package model

import (
	"math"
	"testing"
)

func checkConservation(t *testing.T, b *Bar) {
	t.Helper()
	total := b.UsedLength() + float64(b.KerfCount())*b.Kerf + 2*b.Trim + b.Leftover
	if math.Abs(total-b.Length) > 1e-6 {
		t.Errorf("length not conserved: used=%.3f kerfs=%d trim=%.1f leftover=%.3f raw=%.1f",
			b.UsedLength(), b.KerfCount(), b.Trim, b.Leftover, b.Length)
	}
}

func TestNewBarStartsTrimmed(t *testing.T) {
	b := NewBar(BarNew, 2400, 10, 3)
	if b.Leftover != 2380 {
		t.Errorf("expected leftover 2380, got %.1f", b.Leftover)
	}
	if !b.Empty() || b.Efficiency != 0 {
		t.Error("new bar should be empty with zero efficiency")
	}
	checkConservation(t, b)
}

func TestBarAddChargesKerfBetweenCuts(t *testing.T) {
	b := NewBar(BarNew, 2400, 0, 3)
	b.Add(Item{ID: "a", Length: 1000})
	if b.Leftover != 1400 {
		t.Errorf("first piece should not be charged a kerf, leftover=%.1f", b.Leftover)
	}
	b.Add(Item{ID: "b", Length: 1000})
	if b.Leftover != 397 {
		t.Errorf("expected leftover 397, got %.1f", b.Leftover)
	}
	checkConservation(t, b)

	if len(b.Cuts) != 2 || b.Cuts[0] != 1000 || b.Cuts[1] != 2003 {
		t.Errorf("unexpected cut positions %v", b.Cuts)
	}
	wantEff := (2400.0 - 397.0) / 2400.0
	if math.Abs(b.Efficiency-wantEff) > 1e-9 {
		t.Errorf("expected efficiency %.4f, got %.4f", wantEff, b.Efficiency)
	}
}

func TestBarCutsIncludeTrimOffset(t *testing.T) {
	b := NewBar(BarLeftover, 1000, 5, 2)
	b.Add(Item{ID: "a", Length: 100})
	b.Add(Item{ID: "b", Length: 200})
	if b.Cuts[0] != 105 || b.Cuts[1] != 307 {
		t.Errorf("unexpected cut positions %v", b.Cuts)
	}
	checkConservation(t, b)
}

func TestBarFits(t *testing.T) {
	b := NewBar(BarNew, 1000, 0, 5)
	if !b.Fits(1000) {
		t.Error("a single piece of the full length should fit an empty bar")
	}
	b.Add(Item{ID: "a", Length: 600})
	if !b.Fits(395) {
		t.Error("395 + kerf 5 should fit the remaining 400")
	}
	if b.Fits(396) {
		t.Error("396 + kerf 5 should not fit the remaining 400")
	}
}

func TestBarKindText(t *testing.T) {
	for _, k := range []BarKind{BarNew, BarLeftover, BarUnfit} {
		text, _ := k.MarshalText()
		var got BarKind
		if err := got.UnmarshalText(text); err != nil || got != k {
			t.Errorf("kind %v did not survive text encoding, got %v", k, got)
		}
	}
}
