package model

import "sort"

// Inventory is the finite supply of reusable leftover bars. The standard
// length supply is unbounded and lives in Options.
type Inventory struct {
	Leftovers []float64 `json:"leftovers" yaml:"leftovers"` // Raw lengths in mm
}

// NewInventory builds an inventory from leftover lengths.
func NewInventory(lengths ...float64) Inventory {
	inv := Inventory{Leftovers: make([]float64, len(lengths))}
	copy(inv.Leftovers, lengths)
	return inv
}

// Copy returns an inventory that shares no storage with inv. A packing
// attempt consumes leftovers destructively, so each attempt needs its own copy.
func (inv Inventory) Copy() Inventory {
	return NewInventory(inv.Leftovers...)
}

// Empty reports whether there are no leftovers at all.
func (inv Inventory) Empty() bool {
	return len(inv.Leftovers) == 0
}

// Longest returns the longest leftover, or 0 for an empty inventory.
func (inv Inventory) Longest() float64 {
	var best float64
	for _, l := range inv.Leftovers {
		if l > best {
			best = l
		}
	}
	return best
}

// TotalLength returns the summed length of all leftovers.
func (inv Inventory) TotalLength() float64 {
	var total float64
	for _, l := range inv.Leftovers {
		total += l
	}
	return total
}

// Add appends leftovers and keeps the inventory sorted longest first.
func (inv *Inventory) Add(lengths ...float64) {
	inv.Leftovers = append(inv.Leftovers, lengths...)
	sort.Sort(sort.Reverse(sort.Float64Slice(inv.Leftovers)))
}

// Remove drops the first leftover equal to length (within Tolerance).
// It returns false when no such leftover exists.
func (inv *Inventory) Remove(length float64) bool {
	for i, l := range inv.Leftovers {
		if l >= length-Tolerance && l <= length+Tolerance {
			inv.Leftovers = append(inv.Leftovers[:i], inv.Leftovers[i+1:]...)
			return true
		}
	}
	return false
}
