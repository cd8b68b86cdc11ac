package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestErrorCodeUsable(t *testing.T) {
	usable := map[ErrorCode]bool{
		ErrNone:         true,
		ErrSubopt:       true,
		ErrNoBox:        false,
		ErrNoBin:        false,
		ErrParameters:   false,
		ErrTimeExceeded: false,
		ErrBadError:     false,
	}
	for code, want := range usable {
		if code.Usable() != want {
			t.Errorf("%s.Usable() = %v, want %v", code, code.Usable(), want)
		}
	}
}

func TestErrorCodeJSON(t *testing.T) {
	data, err := json.Marshal(PackResult{Error: ErrTimeExceeded})
	if err != nil {
		t.Fatal(err)
	}
	var back PackResult
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Error != ErrTimeExceeded {
		t.Errorf("expected time_exceeded, got %s", back.Error)
	}

	var code ErrorCode
	if err := code.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown code")
	}
}

func TestPackResultStats(t *testing.T) {
	b1 := NewBar(BarNew, 2000, 0, 0)
	b1.Add(Item{ID: "a", Length: 1500})
	b2 := NewBar(BarLeftover, 1000, 0, 0)
	b2.Add(Item{ID: "b", Length: 1000})

	r := PackResult{Bars: []Bar{*b1, *b2}, Unused: []float64{800}}

	if r.PlacedCount() != 2 {
		t.Errorf("expected 2 placed, got %d", r.PlacedCount())
	}
	if r.CountKind(BarLeftover) != 1 || r.CountKind(BarNew) != 1 {
		t.Error("expected one bar of each kind")
	}
	if math.Abs(r.TotalEfficiency()-(2500.0/3000.0*100)) > 1e-9 {
		t.Errorf("unexpected efficiency %.3f", r.TotalEfficiency())
	}
	if r.RetainedLeftover() != 800 {
		t.Errorf("expected retained leftover 800 from unused stock, got %.1f", r.RetainedLeftover())
	}
	if r.TotalWaste() != 500 {
		t.Errorf("expected total waste 500, got %.1f", r.TotalWaste())
	}
}

func TestTotalEfficiencyEmpty(t *testing.T) {
	if (PackResult{}).TotalEfficiency() != 0 {
		t.Error("expected zero efficiency for empty result")
	}
}
