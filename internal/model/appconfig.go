package model

import "time"

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new packing requests
	DefaultStdLength   float64 `json:"default_std_length"`
	DefaultTrimSize    float64 `json:"default_trim_size"`
	DefaultSawKerf     float64 `json:"default_saw_kerf"`
	DefaultMaxTimeMs   int64   `json:"default_max_time_ms"`
	DefaultTuningLevel int     `json:"default_tuning_level"`

	// Remnants shorter than this are scrap rather than reusable leftovers
	MinOffcutLength float64 `json:"min_offcut_length"`

	// Application preferences
	InventoryPath string   `json:"inventory_path,omitempty"` // empty = ~/.barcut/inventory.json
	RecentJobs    []string `json:"recent_jobs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultOptions().
func DefaultAppConfig() AppConfig {
	defaults := DefaultOptions()
	return AppConfig{
		DefaultStdLength:   defaults.StdLength,
		DefaultTrimSize:    defaults.TrimSize,
		DefaultSawKerf:     defaults.SawKerf,
		DefaultMaxTimeMs:   defaults.MaxTime.Milliseconds(),
		DefaultTuningLevel: defaults.TuningLevel,
		MinOffcutLength:    MinOffcutLength,
		RecentJobs:         []string{},
	}
}

// ApplyToOptions copies the default values from AppConfig into an Options struct.
// This is used when building a request so it inherits the user's saved defaults.
func (c AppConfig) ApplyToOptions(o *Options) {
	o.StdLength = c.DefaultStdLength
	o.TrimSize = c.DefaultTrimSize
	o.SawKerf = c.DefaultSawKerf
	o.MaxTime = time.Duration(c.DefaultMaxTimeMs) * time.Millisecond
	o.TuningLevel = c.DefaultTuningLevel
}

// AddRecentJob moves path to the front of the recent list, keeping at most max entries.
func (c *AppConfig) AddRecentJob(path string, max int) {
	jobs := []string{path}
	for _, j := range c.RecentJobs {
		if j != path {
			jobs = append(jobs, j)
		}
	}
	if max > 0 && len(jobs) > max {
		jobs = jobs[:max]
	}
	c.RecentJobs = jobs
}
