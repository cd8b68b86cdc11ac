package engine

import (
	"context"
	"fmt"

	"github.com/piwi3910/BarCut/internal/model"
)

// ComparisonScenario defines a named set of options to compare.
type ComparisonScenario struct {
	Name    string
	Options model.Options
}

// ComparisonResult holds the packing result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.PackResult
	BarsUsed      int
	LeftoversUsed int
	TotalCuts     int
	WastePercent  float64
	UnplacedCount int
}

// CompareScenarios runs a packing for each scenario and returns the results
// in scenario order. Every scenario gets its own copy of the inventory.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario, items []model.Item, inv model.Inventory) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result := New(scenario.Options).Run(ctx, items, inv.Copy())

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			BarsUsed:      len(result.Bars),
			LeftoversUsed: result.CountKind(model.BarLeftover),
			TotalCuts:     result.PlacedCount(),
			WastePercent:  100.0 - result.TotalEfficiency(),
			UnplacedCount: len(result.Unplaced),
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current options, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(base model.Options) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:    "Current Options",
			Options: base,
		},
	}

	// Scenario: Try the other end of the tuning range
	alt := base
	if model.ClampTuningLevel(base.TuningLevel) < 2 {
		alt.TuningLevel = 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:    "Thorough Tuning",
			Options: alt,
		})
	} else {
		alt.TuningLevel = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:    "Fast Tuning",
			Options: alt,
		})
	}

	// Scenario: Thinner blade
	if base.SawKerf > 1.0 {
		thin := base
		thin.SawKerf = base.SawKerf * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:    fmt.Sprintf("Kerf %.1fmm (half)", thin.SawKerf),
			Options: thin,
		})
	}

	// Scenario: No end trim
	if base.TrimSize > 0 {
		noTrim := base
		noTrim.TrimSize = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:    "No End Trim",
			Options: noTrim,
		})
	}

	return scenarios
}
