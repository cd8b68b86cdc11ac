package model

import "math"

// PurchaseEstimate holds the results of a bar purchasing calculation.
type PurchaseEstimate struct {
	TotalPartLength float64 `json:"total_part_length"` // Total length of all parts incl. kerf (mm)
	TotalMeters     float64 `json:"total_meters"`      // Same in meters
	UsableLength    float64 `json:"usable_length"`     // Usable length of one bar after trim (mm)
	BarsNeededExact float64 `json:"bars_needed_exact"` // Exact fractional number of bars
	BarsNeededMin   int     `json:"bars_needed_min"`   // Minimum bars (ceiling of exact)
	BarsWithWaste   int     `json:"bars_with_waste"`   // Recommended bars including waste factor
	WastePercent    float64 `json:"waste_percent"`     // Waste factor applied (e.g., 15 for 15%)
	EstimatedCost   float64 `json:"estimated_cost"`    // Total cost if pricing available
	PricePerBar     float64 `json:"price_per_bar"`     // Price used for estimation
	SawKerf         float64 `json:"saw_kerf"`          // Kerf used in calculation
}

// CalculatePurchaseEstimate computes how many standard bars to buy for a cut list.
// It charges one kerf per piece and applies an additional waste percentage factor.
func CalculatePurchaseEstimate(parts []Part, stdLength, trim, kerf, wastePercent, pricePerBar float64) PurchaseEstimate {
	var totalLength float64
	for _, p := range parts {
		totalLength += (p.Length + kerf) * float64(p.Quantity)
	}

	usable := stdLength - 2*trim + kerf
	if stdLength <= 0 || usable <= 0 {
		return PurchaseEstimate{
			TotalPartLength: totalLength,
			TotalMeters:     totalLength / 1000.0,
			WastePercent:    wastePercent,
		}
	}

	exactBars := totalLength / usable
	minBars := int(math.Ceil(exactBars - Tolerance))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	barsWithWaste := int(math.Ceil(exactBars*wasteFactor - Tolerance))
	if barsWithWaste < minBars {
		barsWithWaste = minBars
	}

	return PurchaseEstimate{
		TotalPartLength: totalLength,
		TotalMeters:     totalLength / 1000.0,
		UsableLength:    stdLength - 2*trim,
		BarsNeededExact: exactBars,
		BarsNeededMin:   minBars,
		BarsWithWaste:   barsWithWaste,
		WastePercent:    wastePercent,
		EstimatedCost:   float64(barsWithWaste) * pricePerBar,
		PricePerBar:     pricePerBar,
		SawKerf:         kerf,
	}
}
