package model

import "testing"

func TestInventoryCopyIsIndependent(t *testing.T) {
	inv := NewInventory(1200, 800)
	cp := inv.Copy()
	cp.Leftovers[0] = 1

	if inv.Leftovers[0] != 1200 {
		t.Error("modifying the copy must not touch the original")
	}
}

func TestInventoryLongestAndTotal(t *testing.T) {
	inv := NewInventory(500, 1800, 900)
	if inv.Longest() != 1800 {
		t.Errorf("expected longest 1800, got %.0f", inv.Longest())
	}
	if inv.TotalLength() != 3200 {
		t.Errorf("expected total 3200, got %.0f", inv.TotalLength())
	}
	if (Inventory{}).Longest() != 0 || !(Inventory{}).Empty() {
		t.Error("empty inventory should report zero longest and Empty")
	}
}

func TestInventoryAddKeepsLongestFirst(t *testing.T) {
	var inv Inventory
	inv.Add(300, 1200)
	inv.Add(700)
	want := []float64{1200, 700, 300}
	for i, l := range want {
		if inv.Leftovers[i] != l {
			t.Fatalf("expected %v, got %v", want, inv.Leftovers)
		}
	}
}

func TestInventoryRemove(t *testing.T) {
	inv := NewInventory(1200, 700, 1200)
	if !inv.Remove(1200) {
		t.Fatal("expected 1200 to be removed")
	}
	if len(inv.Leftovers) != 2 || inv.Leftovers[0] != 700 {
		t.Errorf("unexpected leftovers after remove: %v", inv.Leftovers)
	}
	if inv.Remove(5) {
		t.Error("removing a missing length should report false")
	}
}
