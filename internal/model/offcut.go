package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut is a usable remnant left on a bar after cutting.
type Offcut struct {
	ID       string  `json:"id"`
	BarIndex int     `json:"bar_index"` // Index of the source bar in the result
	Offset   float64 `json:"offset"`    // Start of the remnant, mm from the raw bar start
	Length   float64 `json:"length"`    // Usable length (mm)
}

// MinOffcutLength is the minimum length (in mm) for a remnant to be kept as
// a reusable leftover. Anything shorter is scrap.
const MinOffcutLength = 300.0

// DetectOffcut returns the reusable remnant at the end of a bar, if any.
// The remnant starts after the last cut plus one kerf and excludes the end trim.
func DetectOffcut(b Bar, barIndex int, minLength float64) (Offcut, bool) {
	start := b.Trim
	if len(b.Cuts) > 0 {
		start = b.Cuts[len(b.Cuts)-1] + b.Kerf
	}
	length := b.Length - b.Trim - start
	if b.Empty() {
		// An uncut bar keeps its full raw length.
		start, length = 0, b.Length
	}
	if length < minLength || length <= 0 {
		return Offcut{}, false
	}
	return Offcut{
		ID:       uuid.New().String()[:8],
		BarIndex: barIndex,
		Offset:   start,
		Length:   length,
	}, true
}

// CollectOffcuts finds reusable remnants across all bars of a result,
// longest first.
func CollectOffcuts(result PackResult, minLength float64) []Offcut {
	var all []Offcut
	for i, b := range result.Bars {
		if o, ok := DetectOffcut(b, i, minLength); ok {
			all = append(all, o)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Length > all[j].Length
	})
	return all
}

// ToLeftover converts an offcut into an inventory entry. The remnant is
// trimmed again when it is reused, so its full length is kept.
func (o Offcut) ToLeftover() float64 {
	return o.Length
}

// NextInventory builds the inventory for a follow-up run: the leftovers the
// run did not touch plus every reusable offcut it produced.
func NextInventory(result PackResult, minLength float64) Inventory {
	var inv Inventory
	lengths := append([]float64{}, result.Unused...)
	for _, o := range CollectOffcuts(result, minLength) {
		lengths = append(lengths, o.ToLeftover())
	}
	inv.Add(lengths...)
	return inv
}

// TotalOffcutLength returns the summed length of all offcuts in mm.
func TotalOffcutLength(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Length
	}
	return total
}
