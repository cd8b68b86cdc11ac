package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tolerance is the slack used when comparing lengths in mm.
const Tolerance = 1e-6

// MaxTimeLimit is the hard ceiling on the computation budget of one run.
const MaxTimeLimit = 10 * time.Second

// DefaultTuningLevel is used when a requested tuning level is out of range.
const DefaultTuningLevel = 1

// Item is a single requested piece. Items are values and never change once created.
type Item struct {
	ID     string  `json:"id" yaml:"id"`
	Label  string  `json:"label,omitempty" yaml:"label,omitempty"`
	Length float64 `json:"length" yaml:"length"` // mm
}

func NewItem(label string, length float64) Item {
	return Item{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Length: length,
	}
}

// Part is a cut-list row: one length needed Quantity times.
type Part struct {
	ID       string  `json:"id" yaml:"id"`
	Label    string  `json:"label" yaml:"label"`
	Length   float64 `json:"length" yaml:"length"` // mm
	Quantity int     `json:"quantity" yaml:"quantity"`
}

func NewPart(label string, length float64, qty int) Part {
	return Part{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Length:   length,
		Quantity: qty,
	}
}

// ExpandParts turns a cut list into individual items. Copy n of part p gets
// the ID "<p.ID>#<n>" so placements can be traced back to their row.
func ExpandParts(parts []Part) []Item {
	var items []Item
	for _, p := range parts {
		for i := 0; i < p.Quantity; i++ {
			items = append(items, Item{
				ID:     fmt.Sprintf("%s#%d", p.ID, i+1),
				Label:  p.Label,
				Length: p.Length,
			})
		}
	}
	return items
}

// Options configures a packing run. Lengths are in mm.
type Options struct {
	StdLength   float64       `json:"std_length" yaml:"std_length"`     // Standard bar length, 0 = leftovers only
	TrimSize    float64       `json:"trim_size" yaml:"trim_size"`       // Removed from each bar end
	SawKerf     float64       `json:"saw_kerf" yaml:"saw_kerf"`         // Blade width between cuts
	MaxTime     time.Duration `json:"max_time" yaml:"max_time"`         // Computation budget
	TuningLevel int           `json:"tuning_level" yaml:"tuning_level"` // 0 fast, 1 normal, 2 thorough
}

func DefaultOptions() Options {
	return Options{
		StdLength:   6000,
		TrimSize:    0,
		SawKerf:     3.0,
		MaxTime:     3 * time.Second,
		TuningLevel: DefaultTuningLevel,
	}
}

// ClampMaxTime maps any duration outside [0, MaxTimeLimit] to MaxTimeLimit.
func ClampMaxTime(d time.Duration) time.Duration {
	if d < 0 || d > MaxTimeLimit {
		return MaxTimeLimit
	}
	return d
}

// ClampTuningLevel maps any level outside {0,1,2} to DefaultTuningLevel.
func ClampTuningLevel(level int) int {
	if level < 0 || level > 2 {
		return DefaultTuningLevel
	}
	return level
}

// Normalized returns a copy with the time budget and tuning level clamped and
// negative lengths raised to zero.
func (o Options) Normalized() Options {
	n := o
	n.MaxTime = ClampMaxTime(o.MaxTime)
	n.TuningLevel = ClampTuningLevel(o.TuningLevel)
	if n.StdLength < 0 {
		n.StdLength = 0
	}
	if n.TrimSize < 0 {
		n.TrimSize = 0
	}
	if n.SawKerf < 0 {
		n.SawKerf = 0
	}
	return n
}

// Capacity returns how long a single piece cut from a bar of the given raw
// length may be: the raw length minus both trims and one kerf.
func (o Options) Capacity(length float64) float64 {
	return length - 2*o.TrimSize - o.SawKerf
}
