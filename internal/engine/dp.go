package engine

import (
	"sort"

	"github.com/piwi3910/BarCut/internal/model"
)

// MaxParts bounds how many items one subset-sum chunk works on.
const MaxParts = 205

// epsilonFactors scale the smallest item length into "good enough" margins
// for the tuning sweep.
var epsilonFactors = []float64{0.1, 0.2, 0.5, 0, 2, 5, 10}

// sweepFactors returns the epsilon factors tried at a tuning level.
func sweepFactors(level int) []float64 {
	switch level {
	case 0:
		return []float64{0}
	case 2:
		return epsilonFactors
	default:
		return []float64{0.5, 0, 2}
	}
}

// SubsetSumDP fills one bar at a time with the subset of remaining items
// that leaves the least waste, leftovers first (longest first), then
// standard bars. The whole packing is repeated for every epsilon of the
// tuning sweep and the best outcome is kept.
type SubsetSumDP struct {
	// MaxParts overrides the chunk size; zero means the package default.
	MaxParts int
}

func (SubsetSumDP) Name() string { return "dp" }

func (h SubsetSumDP) chunkSize() int {
	if h.MaxParts > 0 {
		return h.MaxParts
	}
	return MaxParts
}

func (h SubsetSumDP) Pack(p *Problem) model.PackResult {
	fit, unfit := p.partitionUnfit()
	bound := LowerBound(fit, p.Options, p.longestBar())

	sorted := make([]model.Item, len(fit))
	copy(sorted, fit)
	sortByLength(sorted)

	var smallest float64
	if len(sorted) > 0 {
		smallest = sorted[len(sorted)-1].Length
	}

	var best *model.PackResult
	for _, factor := range sweepFactors(p.Options.TuningLevel) {
		if p.Deadline.Check() {
			break
		}
		r, ok := h.pass(p, sorted, smallest*factor)
		if !ok {
			break
		}
		r.Unplaced = append(append([]model.Item{}, unfit...), r.Unplaced...)
		r.LowerBound = bound
		if best == nil || sweepBetter(r, *best) {
			best = &r
		}
		if len(best.Bars) <= bound && len(best.Unplaced) == len(unfit) {
			break
		}
	}

	if best == nil {
		return timedOut(h.Name(), p.Items, bound)
	}
	grade(best)
	return *best
}

// sweepBetter reports whether a beats b across sweep passes: fewer unplaced
// items, then fewer bars, then the longer retained leftover.
func sweepBetter(a, b model.PackResult) bool {
	if len(a.Unplaced) != len(b.Unplaced) {
		return len(a.Unplaced) < len(b.Unplaced)
	}
	if len(a.Bars) != len(b.Bars) {
		return len(a.Bars) < len(b.Bars)
	}
	return a.RetainedLeftover() > b.RetainedLeftover()+model.Tolerance
}

// pass packs all items once with a fixed epsilon. Items are processed in
// chunks of at most chunkSize; the last bar of a chunk is dissolved and its
// items join the next chunk so chunk borders do not leave near-empty bars.
func (h SubsetSumDP) pass(p *Problem, items []model.Item, epsilon float64) (model.PackResult, bool) {
	leftovers := make([]float64, len(p.Leftovers))
	copy(leftovers, p.Leftovers)
	sortDescending(leftovers)

	result := model.PackResult{Heuristic: h.Name(), Bars: []model.Bar{}, Unplaced: []model.Item{}}
	var carry []model.Item
	size := h.chunkSize()

	for start := 0; start < len(items); {
		end := min(start+size, len(items))
		work := make([]model.Item, 0, len(carry)+end-start)
		work = append(work, carry...)
		work = append(work, items[start:end]...)
		sortByLength(work)
		start = end

		bars, rest, ok := h.packChunk(p, work, &leftovers, epsilon)
		if !ok {
			return model.PackResult{}, false
		}

		carry = nil
		if start < len(items) && len(bars) > 0 {
			tail := bars[len(bars)-1]
			bars = bars[:len(bars)-1]
			carry = append(carry, tail.Items...)
			if tail.Kind == model.BarLeftover {
				leftovers = append(leftovers, tail.Length)
				sortDescending(leftovers)
			}
		}
		for _, b := range bars {
			result.Bars = append(result.Bars, *b)
		}
		result.Unplaced = append(result.Unplaced, rest...)
	}

	result.Unused = append(result.Unused, leftovers...)
	return result, true
}

// packChunk fills leftover bars and then as many standard bars as needed.
// Leftovers that receive nothing stay in the pool. Items that no remaining
// stock can take are returned as rest.
func (h SubsetSumDP) packChunk(p *Problem, items []model.Item, leftovers *[]float64, epsilon float64) ([]*model.Bar, []model.Item, bool) {
	opts := p.Options
	remaining := items
	var bars []*model.Bar

	var unused []float64
	for _, l := range *leftovers {
		if len(remaining) == 0 {
			unused = append(unused, l)
			continue
		}
		bar := model.NewBar(model.BarLeftover, l, opts.TrimSize, opts.SawKerf)
		var ok bool
		remaining, ok = fillBar(bar, remaining, epsilon, p.Deadline)
		if !ok {
			return nil, nil, false
		}
		if bar.Empty() {
			unused = append(unused, l)
			continue
		}
		bars = append(bars, bar)
	}
	*leftovers = unused

	if opts.StdLength <= 0 {
		return bars, remaining, true
	}

	capacity := opts.Capacity(opts.StdLength)
	var rest, fits []model.Item
	for _, it := range remaining {
		if it.Length <= capacity+model.Tolerance {
			fits = append(fits, it)
		} else {
			rest = append(rest, it)
		}
	}

	remaining = fits
	for len(remaining) > 0 {
		bar := model.NewBar(model.BarNew, opts.StdLength, opts.TrimSize, opts.SawKerf)
		var ok bool
		remaining, ok = fillBar(bar, remaining, epsilon, p.Deadline)
		if !ok {
			return nil, nil, false
		}
		if bar.Empty() {
			rest = append(rest, remaining...)
			break
		}
		bars = append(bars, bar)
	}
	return bars, rest, true
}

// fillBar places the best subset of items on an empty bar and returns the
// items that were not placed, in their original order.
func fillBar(bar *model.Bar, items []model.Item, epsilon float64, deadline *Deadline) ([]model.Item, bool) {
	lengths := make([]float64, len(items))
	for i, it := range items {
		lengths[i] = it.Length
	}

	// The first piece is not charged a kerf, so an empty bar holds one
	// kerf more than its leftover when every piece costs length + kerf.
	capacity := bar.Leftover + bar.Kerf
	picked, _, ok := allSubsetSums(lengths, capacity, bar.Kerf, epsilon, deadline)
	if !ok {
		return items, false
	}

	taken := make([]bool, len(items))
	for _, i := range picked {
		taken[i] = true
		bar.Add(items[i])
	}
	rest := make([]model.Item, 0, len(items)-len(picked))
	for i, it := range items {
		if !taken[i] {
			rest = append(rest, it)
		}
	}
	return rest, true
}

func sortDescending(lengths []float64) {
	sort.Sort(sort.Reverse(sort.Float64Slice(lengths)))
}
