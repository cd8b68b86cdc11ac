package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/BarCut/internal/model"
)

// Heuristic packs one validated problem into bars. Implementations may
// consume the problem's slices but must not keep them after Pack returns.
type Heuristic interface {
	Name() string
	Pack(p *Problem) model.PackResult
}

// Problem is the private input of one heuristic run. Every heuristic gets its
// own copy of the items and leftovers so they never share mutable state.
type Problem struct {
	Items     []model.Item
	Leftovers []float64
	Options   model.Options
	Deadline  *Deadline
}

func newProblem(items []model.Item, leftovers []float64, opts model.Options, deadline *Deadline) *Problem {
	p := &Problem{
		Items:     make([]model.Item, len(items)),
		Leftovers: make([]float64, len(leftovers)),
		Options:   opts,
		Deadline:  deadline,
	}
	copy(p.Items, items)
	copy(p.Leftovers, leftovers)
	return p
}

// longestBar returns the longest raw bar available to the problem.
func (p *Problem) longestBar() float64 {
	longest := p.Options.StdLength
	for _, l := range p.Leftovers {
		if l > longest {
			longest = l
		}
	}
	return longest
}

// classify tells which stock can take an item of the given length on an
// empty bar: BarNew when a standard bar can, BarLeftover when only some
// leftover can, BarUnfit when nothing can.
func (p *Problem) classify(length float64) model.BarKind {
	opts := p.Options
	if opts.StdLength > 0 && length <= opts.Capacity(opts.StdLength)+model.Tolerance {
		return model.BarNew
	}
	for _, l := range p.Leftovers {
		if length <= opts.Capacity(l)+model.Tolerance {
			return model.BarLeftover
		}
	}
	return model.BarUnfit
}

// partitionUnfit splits the items into those some bar can hold and those no
// bar can hold, keeping input order in both.
func (p *Problem) partitionUnfit() (fit, unfit []model.Item) {
	for _, it := range p.Items {
		if p.classify(it.Length) == model.BarUnfit {
			unfit = append(unfit, it)
		} else {
			fit = append(fit, it)
		}
	}
	return fit, unfit
}

// LowerBound estimates the minimum number of bars of the given raw length
// needed for items: the larger of the total-length bound and the number of
// items longer than half a bar, since no two of those can share one.
func LowerBound(items []model.Item, opts model.Options, longest float64) int {
	usable := longest - 2*opts.TrimSize
	if usable <= 0 || len(items) == 0 {
		return 0
	}
	var total float64
	large := 0
	for _, it := range items {
		total += it.Length + opts.SawKerf
		if it.Length > usable/2+model.Tolerance {
			large++
		}
	}
	byLength := int(math.Ceil(total/(usable+opts.SawKerf) - model.Tolerance))
	return max(byLength, large)
}

// collectBars moves non-empty bars into the result and returns empty
// leftover bars to the unused pool.
func collectBars(result *model.PackResult, bars []*model.Bar) {
	for _, b := range bars {
		if b.Empty() {
			if b.Kind == model.BarLeftover {
				result.Unused = append(result.Unused, b.Length)
			}
			continue
		}
		result.Bars = append(result.Bars, *b)
	}
}

// grade sets the code of a finished result against its lower bound.
func grade(result *model.PackResult) {
	if len(result.Bars) > result.LowerBound {
		result.Error = model.ErrSubopt
	} else {
		result.Error = model.ErrNone
	}
}

// sortByLength orders items longest first, breaking ties by ID so runs are reproducible.
func sortByLength(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Length != items[j].Length {
			return items[i].Length > items[j].Length
		}
		return items[i].ID < items[j].ID
	})
}

// timedOut builds the result of a heuristic that ran out of time before it
// had anything feasible. Every item is reported unplaced.
func timedOut(name string, items []model.Item, bound int) model.PackResult {
	unplaced := make([]model.Item, len(items))
	copy(unplaced, items)
	return model.PackResult{
		Error:      model.ErrTimeExceeded,
		Heuristic:  name,
		Bars:       []model.Bar{},
		Unplaced:   unplaced,
		LowerBound: bound,
	}
}
