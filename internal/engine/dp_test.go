package engine

import (
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsetSumDP_PairsLongAndShort(t *testing.T) {
	opts := model.Options{StdLength: 1000, TuningLevel: 1}
	items := makeItems(300, 300, 300, 700, 700, 700)

	result := SubsetSumDP{}.Pack(testProblem(items, nil, opts))

	require.Equal(t, model.ErrNone, result.Error)
	require.Len(t, result.Bars, 3)
	for _, b := range result.Bars {
		assert.Len(t, b.Items, 2)
		assert.InDelta(t, 0.0, b.Leftover, 1e-9)
	}
	assertValidPacking(t, items, result)
}

func TestSubsetSumDP_LongestLeftoverFirst(t *testing.T) {
	opts := model.Options{StdLength: 6000, TuningLevel: 1}
	items := makeItems(500, 1200)

	result := SubsetSumDP{}.Pack(testProblem(items, []float64{500, 1200}, opts))

	require.Len(t, result.Bars, 2)
	assert.Equal(t, 1200.0, result.Bars[0].Length)
	assert.Equal(t, "i002", result.Bars[0].Items[0].ID)
	assert.Equal(t, 500.0, result.Bars[1].Length)
	assert.Equal(t, 0, result.CountKind(model.BarNew))
	assert.Empty(t, result.Unused)
}

func TestSubsetSumDP_UntouchedLeftoverReturned(t *testing.T) {
	opts := model.Options{StdLength: 1000, TuningLevel: 0}
	result := SubsetSumDP{}.Pack(testProblem(makeItems(500), []float64{100}, opts))

	require.Len(t, result.Bars, 1)
	assert.Equal(t, model.BarNew, result.Bars[0].Kind)
	assert.Equal(t, []float64{100}, result.Unused)
}

func TestSubsetSumDP_LeftoversOnly(t *testing.T) {
	opts := model.Options{StdLength: 0, TuningLevel: 0}
	items := makeItems(600, 600)

	result := SubsetSumDP{}.Pack(testProblem(items, []float64{1000}, opts))

	assert.Len(t, result.Bars, 1)
	assert.Len(t, result.Unplaced, 1)
	assertValidPacking(t, items, result)
}

func TestSubsetSumDP_Chunking(t *testing.T) {
	opts := model.Options{StdLength: 1000, TuningLevel: 1}
	items := makeItems(250, 250, 250, 250, 250, 250, 250, 250, 250, 250)

	result := SubsetSumDP{MaxParts: 4}.Pack(testProblem(items, nil, opts))

	require.Len(t, result.Bars, 3)
	assert.Empty(t, result.Unplaced)
	assert.Equal(t, 10, result.PlacedCount())
	assertValidPacking(t, items, result)
}

func TestSubsetSumDP_ChunkCarryReturnsLeftover(t *testing.T) {
	opts := model.Options{StdLength: 1000, TuningLevel: 0}
	items := makeItems(400, 400, 400, 400)

	// The only leftover is filled in the first chunk, dissolved and reused by the second
	result := SubsetSumDP{MaxParts: 2}.Pack(testProblem(items, []float64{800}, opts))

	assert.Empty(t, result.Unplaced)
	assert.Equal(t, 1, result.CountKind(model.BarLeftover))
	assert.Empty(t, result.Unused)
	assertValidPacking(t, items, result)
}

func TestSubsetSumDP_ExpiredDeadline(t *testing.T) {
	opts := model.Options{StdLength: 1000, TuningLevel: 2}
	p := newProblem(makeItems(500, 500), nil, opts, &Deadline{expired: true})

	result := SubsetSumDP{}.Pack(p)

	assert.Equal(t, model.ErrTimeExceeded, result.Error)
	assert.Empty(t, result.Bars)
	assert.Len(t, result.Unplaced, 2)
}

func TestSweepFactors(t *testing.T) {
	assert.Equal(t, []float64{0}, sweepFactors(0))
	assert.Len(t, sweepFactors(1), 3)
	assert.Len(t, sweepFactors(2), 7)
	assert.Contains(t, sweepFactors(2), 0.0)
}

func TestSweepBetter(t *testing.T) {
	bar := model.NewBar(model.BarNew, 1000, 0, 0)
	bar.Add(model.Item{ID: "a", Length: 400})

	a := model.PackResult{Bars: []model.Bar{*bar}, Unused: []float64{900}}
	b := model.PackResult{Bars: []model.Bar{*bar}, Unused: []float64{300}}
	assert.True(t, sweepBetter(a, b), "longer retained leftover wins")
	assert.False(t, sweepBetter(b, a))
}

func TestLowerBound(t *testing.T) {
	opts := model.Options{SawKerf: 3}
	assert.Equal(t, 2, LowerBound(makeItems(1000, 1000, 1000, 1000), opts, 2400))
	assert.Equal(t, 3, LowerBound(makeItems(1300, 1300, 1300), opts, 2400))
	assert.Equal(t, 0, LowerBound(nil, opts, 2400))

	opts.TrimSize = 1200
	assert.Equal(t, 0, LowerBound(makeItems(10), opts, 2400))
}
