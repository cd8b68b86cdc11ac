package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *engine.Engine {
	return engine.New(model.Options{StdLength: 2400, SawKerf: 3, MaxTime: 2 * time.Second, TuningLevel: 1})
}

func testRequest(lengths ...float64) Request {
	items := make([]model.Item, len(lengths))
	for i, l := range lengths {
		items[i] = model.Item{ID: fmt.Sprintf("p%d", i+1), Length: l}
	}
	return Request{Items: items}
}

// spinHeuristic runs until its deadline expires.
type spinHeuristic struct{}

func (spinHeuristic) Name() string { return "spin" }

func (spinHeuristic) Pack(p *engine.Problem) model.PackResult {
	for !p.Deadline.Check() {
		time.Sleep(time.Millisecond)
	}
	return model.PackResult{
		Error:     model.ErrTimeExceeded,
		Heuristic: "spin",
		Bars:      []model.Bar{},
		Unplaced:  p.Items,
	}
}

func spinEngine() *engine.Engine {
	e := engine.New(model.Options{StdLength: 2400, MaxTime: 10 * time.Second})
	e.Heuristics = []engine.Heuristic{spinHeuristic{}}
	return e
}

func TestStart_FirstAttempt(t *testing.T) {
	job := Start(context.Background(), testEngine(), testRequest(1000, 1000, 1000, 1000))
	defer job.Cancel()

	job.Wait()

	assert.Equal(t, 1, job.Attempts())
	assert.False(t, job.Running())
	best, ok := job.Best()
	require.True(t, ok)
	assert.Len(t, best.Bars, 2)
	assert.True(t, job.Complete())

	select {
	case a := <-job.Results():
		assert.Equal(t, 1, a.Seq)
		assert.Equal(t, model.ErrNone, a.Result.Error)
	case <-time.After(time.Second):
		t.Fatal("no attempt delivered")
	}
}

func TestAdvance_RunsAgain(t *testing.T) {
	job := Start(context.Background(), testEngine(), testRequest(1200, 800, 400))
	defer job.Cancel()

	job.Wait()
	require.NoError(t, job.Advance())
	job.Wait()

	assert.Equal(t, 2, job.Attempts())
	first := <-job.Results()
	second := <-job.Results()
	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
	assert.Equal(t, len(first.Result.Bars), len(second.Result.Bars))
}

func TestAdvance_Busy(t *testing.T) {
	job := Start(context.Background(), spinEngine(), testRequest(500))
	defer job.Cancel()

	assert.True(t, job.Running())
	assert.ErrorIs(t, job.Advance(), ErrBusy)
}

func TestCancel_StopsInFlightAttempt(t *testing.T) {
	job := Start(context.Background(), spinEngine(), testRequest(500, 600))

	start := time.Now()
	job.Cancel()
	assert.Less(t, time.Since(start), 5*time.Second)

	best, ok := job.Best()
	require.True(t, ok)
	assert.Equal(t, model.ErrTimeExceeded, best.Error)
	assert.False(t, job.Complete())

	assert.ErrorIs(t, job.Advance(), ErrClosed)

	// Results is drained and then closed
	n := 0
	for range job.Results() {
		n++
	}
	assert.Equal(t, 1, n)

	// Second cancel is a no-op
	job.Cancel()
}

func TestStart_ParentContextCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	job := Start(ctx, spinEngine(), testRequest(500))
	defer job.Cancel()

	cancel()
	job.Wait()

	best, ok := job.Best()
	require.True(t, ok)
	assert.Equal(t, model.ErrTimeExceeded, best.Error)
}

func TestComplete_UnfitItem(t *testing.T) {
	job := Start(context.Background(), testEngine(), testRequest(2500, 500))
	defer job.Cancel()
	job.Wait()

	best, ok := job.Best()
	require.True(t, ok)
	assert.True(t, best.Error.Usable())
	assert.Len(t, best.Unplaced, 1)
	assert.False(t, job.Complete())
}

func TestStart_CopiesRequest(t *testing.T) {
	req := testRequest(1000, 700)
	req.Inventory = model.NewInventory(1800)
	job := Start(context.Background(), testEngine(), req)
	req.Items[0].Length = 5000
	req.Inventory.Leftovers[0] = 1
	job.Wait()
	defer job.Cancel()

	best, _ := job.Best()
	assert.Empty(t, best.Unplaced)
	assert.Equal(t, 1, best.CountKind(model.BarLeftover))
}
