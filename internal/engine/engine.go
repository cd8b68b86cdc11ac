package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/piwi3910/BarCut/internal/model"
)

// Oversizing that only earns a warning, as a share of the longest bar.
const (
	trimWarnRatio = 0.2
	kerfWarnRatio = 0.05
)

// Engine validates a packing request, runs every heuristic on its own copy
// of the input and returns the best usable result. An Engine holds no state
// between runs and may be reused.
type Engine struct {
	Options    model.Options
	Heuristics []Heuristic // The first one supplies the error code when none succeeds
	Logger     *slog.Logger
}

func New(opts model.Options) *Engine {
	return &Engine{
		Options:    opts,
		Heuristics: []Heuristic{FirstFitDecreasing{}, SubsetSumDP{}},
		Logger:     slog.Default(),
	}
}

// Run packs items with a fresh engine. See Engine.Run.
func Run(ctx context.Context, items []model.Item, inv model.Inventory, opts model.Options) model.PackResult {
	return New(opts).Run(ctx, items, inv)
}

// Run packs items into standard bars and the inventory's leftovers. The
// inventory is never modified. The computation is bounded by the options'
// time budget (at most model.MaxTimeLimit) and by ctx.
func (e *Engine) Run(ctx context.Context, items []model.Item, inv model.Inventory) model.PackResult {
	log := e.Logger
	if log == nil {
		log = slog.Default()
	}
	opts := e.Options.Normalized()

	var warnings []model.Warning
	valid := make([]model.Item, 0, len(items))
	for _, it := range items {
		if it.Length <= 0 {
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnIllegalSizedItem,
				Message: fmt.Sprintf("item %q has length %g and was dropped", it.ID, it.Length),
			})
			continue
		}
		valid = append(valid, it)
	}
	if len(valid) == 0 {
		return failed(model.ErrNoBox, warnings, nil)
	}

	leftovers := make([]float64, 0, len(inv.Leftovers))
	for i, l := range inv.Leftovers {
		if l <= 0 {
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnIllegalSizedBin,
				Message: fmt.Sprintf("leftover #%d has length %g and was dropped", i+1, l),
			})
			continue
		}
		leftovers = append(leftovers, l)
	}
	if opts.StdLength == 0 && len(leftovers) == 0 {
		return failed(model.ErrNoBin, warnings, valid)
	}

	longest := opts.StdLength
	for _, l := range leftovers {
		longest = max(longest, l)
	}
	if 2*opts.TrimSize >= longest || opts.SawKerf >= longest {
		log.Warn("engine: trim or kerf too large for stock",
			"trim", opts.TrimSize, "kerf", opts.SawKerf, "longest", longest)
		return failed(model.ErrParameters, warnings, valid)
	}
	if 2*opts.TrimSize > trimWarnRatio*longest {
		warnings = append(warnings, model.Warning{
			Kind:    model.WarnOversizedTrim,
			Message: fmt.Sprintf("trim %g at both ends takes more than %.0f%% of a %g bar", opts.TrimSize, trimWarnRatio*100, longest),
		})
	}
	if opts.SawKerf > kerfWarnRatio*longest {
		warnings = append(warnings, model.Warning{
			Kind:    model.WarnOversizedKerf,
			Message: fmt.Sprintf("kerf %g is more than %.0f%% of a %g bar", opts.SawKerf, kerfWarnRatio*100, longest),
		})
	}

	deadline := NewDeadline(ctx, opts.MaxTime)
	results := make([]model.PackResult, 0, len(e.Heuristics))
	for _, h := range e.Heuristics {
		start := time.Now()
		r := runSafe(h, newProblem(valid, leftovers, opts, deadline), log)
		log.Debug("engine: heuristic finished",
			"heuristic", h.Name(),
			"code", r.Error.String(),
			"bars", len(r.Bars),
			"unplaced", len(r.Unplaced),
			"elapsed", time.Since(start))
		results = append(results, r)
	}
	if len(results) == 0 {
		return failed(model.ErrBadError, warnings, valid)
	}

	chosen := -1
	for i, r := range results {
		if !r.Error.Usable() {
			continue
		}
		if chosen < 0 || Better(r, results[chosen]) {
			chosen = i
		}
	}
	final := results[0]
	if chosen >= 0 {
		final = results[chosen]
	}
	final.Warnings = append(warnings, final.Warnings...)
	log.Info("engine: run finished",
		"heuristic", final.Heuristic,
		"code", final.Error.String(),
		"bars", len(final.Bars),
		"unplaced", len(final.Unplaced),
		"lower_bound", final.LowerBound)
	return final
}

// Better reports whether a is a better packing than b: fewer unplaced
// items, fewer bars, higher overall efficiency, then the longer retained leftover.
func Better(a, b model.PackResult) bool {
	if len(a.Unplaced) != len(b.Unplaced) {
		return len(a.Unplaced) < len(b.Unplaced)
	}
	if len(a.Bars) != len(b.Bars) {
		return len(a.Bars) < len(b.Bars)
	}
	ea, eb := a.TotalEfficiency(), b.TotalEfficiency()
	if ea > eb+1e-9 {
		return true
	}
	if ea < eb-1e-9 {
		return false
	}
	return a.RetainedLeftover() > b.RetainedLeftover()+model.Tolerance
}

// runSafe runs one heuristic and turns a panic into ErrBadError so the
// other heuristics still get their turn.
func runSafe(h Heuristic, p *Problem, log *slog.Logger) (result model.PackResult) {
	items := make([]model.Item, len(p.Items))
	copy(items, p.Items)
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("engine: heuristic failed", "heuristic", h.Name(), "panic", fmt.Sprint(rec))
			result = model.PackResult{
				Error:     model.ErrBadError,
				Heuristic: h.Name(),
				Bars:      []model.Bar{},
				Unplaced:  items,
			}
		}
	}()
	return h.Pack(p)
}

// failed builds a result for a run rejected before any heuristic ran.
func failed(code model.ErrorCode, warnings []model.Warning, unplaced []model.Item) model.PackResult {
	if unplaced == nil {
		unplaced = []model.Item{}
	}
	return model.PackResult{
		Error:    code,
		Warnings: warnings,
		Bars:     []model.Bar{},
		Unplaced: unplaced,
	}
}
