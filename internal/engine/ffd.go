package engine

import "github.com/piwi3910/BarCut/internal/model"

// FirstFitDecreasing is the fast greedy heuristic. Items are placed in input
// order, not sorted by length: each goes onto the first bar in the pool with
// room for it, and a standard bar is opened only when none has.
type FirstFitDecreasing struct{}

func (FirstFitDecreasing) Name() string { return "ffd" }

func (h FirstFitDecreasing) Pack(p *Problem) model.PackResult {
	opts := p.Options
	fit, unfit := p.partitionUnfit()

	result := model.PackResult{
		Heuristic:  h.Name(),
		Bars:       []model.Bar{},
		Unplaced:   unfit,
		LowerBound: LowerBound(fit, opts, p.longestBar()),
	}

	// Leftovers come first so they are reused before any new bar is opened
	pool := make([]*model.Bar, 0, len(p.Leftovers))
	for _, l := range p.Leftovers {
		pool = append(pool, model.NewBar(model.BarLeftover, l, opts.TrimSize, opts.SawKerf))
	}

	stdCapacity := opts.Capacity(opts.StdLength)
	for _, item := range fit {
		var target *model.Bar
		for _, b := range pool {
			if b.Fits(item.Length) {
				target = b
				break
			}
		}
		if target == nil && opts.StdLength > 0 && item.Length <= stdCapacity+model.Tolerance {
			target = model.NewBar(model.BarNew, opts.StdLength, opts.TrimSize, opts.SawKerf)
			pool = append(pool, target)
		}
		if target == nil {
			result.Unplaced = append(result.Unplaced, item)
			continue
		}
		target.Add(item)
	}

	collectBars(&result, pool)
	if result.Unplaced == nil {
		result.Unplaced = []model.Item{}
	}
	grade(&result)
	return result
}
