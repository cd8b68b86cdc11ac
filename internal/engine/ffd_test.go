package engine

import (
	"context"
	"testing"
	"time"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProblem(items []model.Item, leftovers []float64, opts model.Options) *Problem {
	return newProblem(items, leftovers, opts, NewDeadline(context.Background(), 2*time.Second))
}

func TestFirstFit_KeepsInputOrder(t *testing.T) {
	opts := model.Options{StdLength: 1000, TuningLevel: 1}
	items := makeItems(300, 300, 300, 700, 700, 700)

	result := FirstFitDecreasing{}.Pack(testProblem(items, nil, opts))

	require.Len(t, result.Bars, 4)
	assert.Len(t, result.Bars[0].Items, 3, "the short items share the first bar")
	assert.Equal(t, model.ErrSubopt, result.Error)
	assert.Equal(t, 3, result.LowerBound)
	assertValidPacking(t, items, result)
}

func TestFirstFit_LeftoversBeforeNewBars(t *testing.T) {
	opts := model.Options{StdLength: 2400}
	items := makeItems(400, 400)

	result := FirstFitDecreasing{}.Pack(testProblem(items, []float64{1000}, opts))

	require.Len(t, result.Bars, 1)
	assert.Equal(t, model.BarLeftover, result.Bars[0].Kind)
	assert.InDelta(t, 200.0, result.Bars[0].Leftover, 1e-9)
}

func TestFirstFit_UntouchedLeftoverReturned(t *testing.T) {
	opts := model.Options{StdLength: 2400}
	result := FirstFitDecreasing{}.Pack(testProblem(makeItems(500), []float64{100, 1000}, opts))

	require.Len(t, result.Bars, 1)
	assert.Equal(t, 1000.0, result.Bars[0].Length)
	assert.Equal(t, []float64{100}, result.Unused)
}

func TestFirstFit_NoStandardLength(t *testing.T) {
	opts := model.Options{StdLength: 0}
	items := makeItems(600, 600)
	result := FirstFitDecreasing{}.Pack(testProblem(items, []float64{1000}, opts))

	assert.Len(t, result.Bars, 1)
	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, "i002", result.Unplaced[0].ID)
	assertValidPacking(t, items, result)
}

func TestFirstFit_UnfitItemsUnplaced(t *testing.T) {
	opts := model.Options{StdLength: 2400, SawKerf: 3}
	items := makeItems(2500, 100)
	result := FirstFitDecreasing{}.Pack(testProblem(items, nil, opts))

	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, 2500.0, result.Unplaced[0].Length)
	assert.Len(t, result.Bars, 1)
}

func TestFirstFit_CutPositions(t *testing.T) {
	opts := model.Options{StdLength: 2400, TrimSize: 10, SawKerf: 3}
	result := FirstFitDecreasing{}.Pack(testProblem(makeItems(1000, 500), nil, opts))

	require.Len(t, result.Bars, 1)
	b := result.Bars[0]
	assert.Equal(t, []float64{1010, 1513}, b.Cuts)
	assert.InDelta(t, 2400.0-20-1500-3, b.Leftover, 1e-9)
}
