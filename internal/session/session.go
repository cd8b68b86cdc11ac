// Package session runs packing attempts in the background and lets a caller
// ask for more attempts or cancel them.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/piwi3910/BarCut/internal/model"
)

// resultBuffer is how many finished attempts Results can hold before new
// ones are dropped. Best always sees every attempt.
const resultBuffer = 16

var (
	ErrClosed = errors.New("session: job is closed")
	ErrBusy   = errors.New("session: an attempt is already running")
)

// Request is the input every attempt of a job packs.
type Request struct {
	Items     []model.Item
	Inventory model.Inventory
}

// Attempt is one finished engine run.
type Attempt struct {
	Seq     int
	Result  model.PackResult
	Elapsed time.Duration
}

// Job owns the attempts of one packing request. At most one attempt runs at
// a time.
type Job struct {
	ID string

	engine *engine.Engine
	req    Request
	log    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	running  bool
	closed   bool
	attempts int
	best     *model.PackResult

	results   chan Attempt
	closeOnce sync.Once
}

// Start creates a job and launches its first attempt. Cancelling ctx
// cancels the job's attempts but does not close it; call Cancel for that.
func Start(ctx context.Context, eng *engine.Engine, req Request) *Job {
	if ctx == nil {
		ctx = context.Background()
	}
	log := eng.Logger
	if log == nil {
		log = slog.Default()
	}

	items := make([]model.Item, len(req.Items))
	copy(items, req.Items)
	req.Items = items
	req.Inventory = req.Inventory.Copy()

	j := &Job{
		ID:      uuid.New().String()[:8],
		engine:  eng,
		req:     req,
		results: make(chan Attempt, resultBuffer),
	}
	j.log = log.With("job", j.ID)
	j.ctx, j.cancel = context.WithCancel(ctx)

	j.mu.Lock()
	j.launch()
	j.mu.Unlock()

	j.log.Info("session: job started", "items", len(req.Items), "leftovers", len(req.Inventory.Leftovers))
	return j
}

// Advance runs another attempt with the same request.
func (j *Job) Advance() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrClosed
	}
	if j.running {
		return ErrBusy
	}
	j.launch()
	return nil
}

// launch starts an attempt. The caller holds mu.
func (j *Job) launch() {
	j.attempts++
	j.running = true
	j.wg.Add(1)
	go j.run(j.attempts)
}

func (j *Job) run(seq int) {
	defer j.wg.Done()

	start := time.Now()
	result := j.engine.Run(j.ctx, j.req.Items, j.req.Inventory.Copy())
	elapsed := time.Since(start)

	j.mu.Lock()
	if j.best == nil || (result.Error.Usable() && (!j.best.Error.Usable() || engine.Better(result, *j.best))) {
		r := result
		j.best = &r
	}
	j.running = false
	j.mu.Unlock()

	j.log.Debug("session: attempt finished",
		"seq", seq,
		"code", result.Error.String(),
		"bars", len(result.Bars),
		"unplaced", len(result.Unplaced),
		"elapsed", elapsed)

	select {
	case j.results <- Attempt{Seq: seq, Result: result, Elapsed: elapsed}:
	default:
		j.log.Debug("session: dropping attempt, results channel full", "seq", seq)
	}
}

// Results delivers finished attempts. It is closed by Cancel.
func (j *Job) Results() <-chan Attempt {
	return j.results
}

// Best returns the best attempt so far, chosen like the engine chooses
// between heuristics. ok is false before the first attempt finishes.
func (j *Job) Best() (result model.PackResult, ok bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.best == nil {
		return model.PackResult{}, false
	}
	return *j.best, true
}

// Complete reports whether the best attempt so far placed every item.
func (j *Job) Complete() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.best != nil && j.best.Error.Usable() && len(j.best.Unplaced) == 0
}

// Running reports whether an attempt is in flight.
func (j *Job) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

// Attempts returns how many attempts have been started.
func (j *Job) Attempts() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.attempts
}

// Wait blocks until the in-flight attempt, if any, has finished.
func (j *Job) Wait() {
	j.wg.Wait()
}

// Cancel stops the in-flight attempt, waits for it and closes the job.
// It is safe to call more than once.
func (j *Job) Cancel() {
	j.mu.Lock()
	wasClosed := j.closed
	j.closed = true
	j.mu.Unlock()

	j.cancel()
	j.wg.Wait()
	j.closeOnce.Do(func() { close(j.results) })

	if !wasClosed {
		j.log.Info("session: job cancelled", "attempts", j.Attempts())
	}
}
