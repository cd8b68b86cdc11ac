package engine

import "github.com/piwi3910/BarCut/internal/model"

// Achieved sums are bucketed onto a dense table of at most tableSlots slots.
// The resolution never drops below minResolution mm.
const (
	tableSlots    = 1 << 13
	minResolution = 1e-3
)

// sumNode is one reachable subset, stored as a parent chain in an
// append-only arena so overwriting a table slot never breaks older chains.
type sumNode struct {
	sum    float64 // Σ(length + kerf) of the subset
	parent int32   // -1 for the empty subset
	item   int32
	count  int32
}

// betterNode orders subsets: larger sum first, then fewer items. An equal
// candidate loses, so the subset found first (smallest indices) is kept.
func betterNode(a, b sumNode) bool {
	if a.sum > b.sum+model.Tolerance {
		return true
	}
	if a.sum < b.sum-model.Tolerance {
		return false
	}
	return a.count < b.count
}

// allSubsetSums searches for the subset of lengths with the largest total
// cost not above capacity, where every chosen length costs length + kerf.
// The search stops early once a subset gets within epsilon of capacity.
// It returns the chosen indices in ascending order and their total cost, or
// ok == false when the deadline expired before the search finished.
func allSubsetSums(lengths []float64, capacity, kerf, epsilon float64, deadline *Deadline) (picked []int, cost float64, ok bool) {
	if capacity <= 0 || len(lengths) == 0 {
		return nil, 0, true
	}

	resolution := max(capacity/tableSlots, minResolution)
	slots := int(capacity/resolution) + 1
	table := make([]int32, slots)
	for i := range table {
		table[i] = -1
	}

	nodes := []sumNode{{parent: -1, item: -1}}
	table[0] = 0
	reach := []int32{0} // occupied slots, strictly descending
	best := int32(0)
	goal := capacity - epsilon

search:
	for i, l := range lengths {
		c := l + kerf
		if c > capacity+model.Tolerance {
			continue
		}

		// Walking the occupied slots from high to low means every write lands
		// on a slot that was already visited this round, so no length is used twice.
		var added []int32
		for _, s := range reach {
			if deadline.Tick() {
				return nil, 0, false
			}
			from := table[s]
			n := nodes[from]
			next := n.sum + c
			if next > capacity+model.Tolerance {
				continue
			}
			k := int(next / resolution)
			if k >= slots {
				k = slots - 1
			}
			cand := sumNode{sum: next, parent: from, item: int32(i), count: n.count + 1}
			cur := table[k]
			if cur >= 0 && !betterNode(cand, nodes[cur]) {
				continue
			}
			nodes = append(nodes, cand)
			idx := int32(len(nodes) - 1)
			table[k] = idx
			if cur < 0 {
				added = append(added, int32(k))
			}
			if betterNode(cand, nodes[best]) {
				best = idx
				if cand.sum >= goal-model.Tolerance {
					break search
				}
			}
		}
		reach = mergeDescending(reach, added)
	}

	for n := best; n > 0; n = nodes[n].parent {
		picked = append(picked, int(nodes[n].item))
	}
	for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked, nodes[best].sum, true
}

// mergeDescending merges two strictly descending slot lists with no common element.
func mergeDescending(a, b []int32) []int32 {
	if len(b) == 0 {
		return a
	}
	out := make([]int32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] > b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
