package model

import "fmt"

// ErrorCode is the single result-level status of a packing run.
type ErrorCode int

const (
	ErrNone         ErrorCode = iota // Usable result
	ErrSubopt                        // Usable, but above the estimated lower bound
	ErrNoBox                         // No items supplied
	ErrNoBin                         // No standard length and no leftovers
	ErrParameters                    // Trim/kerf incompatible with the stock
	ErrTimeExceeded                  // Deadline hit before any feasible result
	ErrBadError                      // Internal failure inside a heuristic
)

func (c ErrorCode) String() string {
	switch c {
	case ErrNone:
		return "none"
	case ErrSubopt:
		return "suboptimal"
	case ErrNoBox:
		return "no_box"
	case ErrNoBin:
		return "no_bin"
	case ErrParameters:
		return "parameters"
	case ErrTimeExceeded:
		return "time_exceeded"
	case ErrBadError:
		return "bad_error"
	default:
		return fmt.Sprintf("error(%d)", int(c))
	}
}

// Usable reports whether a result carrying this code has a valid packing.
func (c ErrorCode) Usable() bool {
	return c == ErrNone || c == ErrSubopt
}

func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ErrorCode) UnmarshalText(text []byte) error {
	for code := ErrNone; code <= ErrBadError; code++ {
		if code.String() == string(text) {
			*c = code
			return nil
		}
	}
	return fmt.Errorf("unknown error code %q", text)
}

// WarningKind classifies a non-fatal input problem.
type WarningKind string

const (
	WarnIllegalSizedItem WarningKind = "illegal_sized_item"
	WarnIllegalSizedBin  WarningKind = "illegal_sized_bin"
	WarnOversizedTrim    WarningKind = "oversized_trim"
	WarnOversizedKerf    WarningKind = "oversized_kerf"
)

// Warning is attached to a result without affecting it.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return string(w.Kind) + ": " + w.Message
}

// PackResult is the outcome of one packing run.
type PackResult struct {
	Error      ErrorCode `json:"error"`
	Warnings   []Warning `json:"warnings,omitempty"`
	Bars       []Bar     `json:"bars"`
	Unplaced   []Item    `json:"unplaced"`
	Unused     []float64 `json:"unused_leftovers,omitempty"` // Leftover stock left untouched
	Heuristic  string    `json:"heuristic,omitempty"`
	LowerBound int       `json:"lower_bound"`
}

// TotalEfficiency returns the used share of all consumed stock, in percent.
func (r PackResult) TotalEfficiency() float64 {
	var used, total float64
	for _, b := range r.Bars {
		used += b.Length - b.Leftover
		total += b.Length
	}
	if total == 0 {
		return 0
	}
	return (used / total) * 100.0
}

// RetainedLeftover returns the longest remnant that survives the run: the
// largest bar leftover or untouched leftover stock.
func (r PackResult) RetainedLeftover() float64 {
	var best float64
	for _, b := range r.Bars {
		if b.Leftover > best {
			best = b.Leftover
		}
	}
	for _, l := range r.Unused {
		if l > best {
			best = l
		}
	}
	return best
}

// CountKind returns how many produced bars have the given kind.
func (r PackResult) CountKind(kind BarKind) int {
	n := 0
	for _, b := range r.Bars {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// PlacedCount returns the number of items cut from bars.
func (r PackResult) PlacedCount() int {
	n := 0
	for _, b := range r.Bars {
		n += len(b.Items)
	}
	return n
}

// TotalWaste returns the summed leftover length of all produced bars.
func (r PackResult) TotalWaste() float64 {
	var total float64
	for _, b := range r.Bars {
		total += b.Leftover
	}
	return total
}
