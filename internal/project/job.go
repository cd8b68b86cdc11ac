package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piwi3910/BarCut/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrEmptyJob is returned for a job file that lists no parts.
var ErrEmptyJob = errors.New("job has no parts")

// Job is a cut list on disk: the parts to cut, the leftovers available and
// option overrides. Unset options keep the values from the app config.
type Job struct {
	Version   string       `yaml:"version,omitempty" json:"version,omitempty"`
	Name      string       `yaml:"name,omitempty" json:"name,omitempty"`
	Profile   string       `yaml:"profile,omitempty" json:"profile,omitempty"`
	Options   JobOptions   `yaml:"options,omitempty" json:"options,omitempty"`
	Parts     []model.Part `yaml:"parts" json:"parts"`
	Leftovers []float64    `yaml:"leftovers,omitempty" json:"leftovers,omitempty"`
}

// JobOptions holds the option overrides of a job. Nil fields are not set.
type JobOptions struct {
	StdLength   *float64 `yaml:"std_length,omitempty" json:"std_length,omitempty"`
	TrimSize    *float64 `yaml:"trim_size,omitempty" json:"trim_size,omitempty"`
	SawKerf     *float64 `yaml:"saw_kerf,omitempty" json:"saw_kerf,omitempty"`
	MaxTimeMs   *int64   `yaml:"max_time_ms,omitempty" json:"max_time_ms,omitempty"`
	TuningLevel *int     `yaml:"tuning_level,omitempty" json:"tuning_level,omitempty"`
}

// Apply writes the set overrides into o.
func (j JobOptions) Apply(o *model.Options) {
	if j.StdLength != nil {
		o.StdLength = *j.StdLength
	}
	if j.TrimSize != nil {
		o.TrimSize = *j.TrimSize
	}
	if j.SawKerf != nil {
		o.SawKerf = *j.SawKerf
	}
	if j.MaxTimeMs != nil {
		o.MaxTime = time.Duration(*j.MaxTimeMs) * time.Millisecond
	}
	if j.TuningLevel != nil {
		o.TuningLevel = *j.TuningLevel
	}
}

// Items expands the job's parts into individual pieces.
func (j Job) Items() []model.Item {
	return model.ExpandParts(j.Parts)
}

// Inventory returns the job's leftovers.
func (j Job) Inventory() model.Inventory {
	return model.NewInventory(j.Leftovers...)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadJob reads a job from a YAML (.yaml, .yml) or JSON file. Parts without
// an ID get one, and parts without a quantity count once.
func LoadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("failed to read job file: %w", err)
	}

	var job Job
	if isYAML(path) {
		err = yaml.Unmarshal(data, &job)
	} else {
		err = json.Unmarshal(data, &job)
	}
	if err != nil {
		return Job{}, fmt.Errorf("failed to parse job file: %w", err)
	}

	if len(job.Parts) == 0 {
		return Job{}, ErrEmptyJob
	}
	for i := range job.Parts {
		p := &job.Parts[i]
		if strings.TrimSpace(p.ID) == "" {
			p.ID = uuid.New().String()[:8]
		}
		if p.Quantity == 0 {
			p.Quantity = 1
		}
		if p.Length <= 0 || p.Quantity < 0 {
			return Job{}, fmt.Errorf("invalid part %d (%s): length %g, quantity %d", i+1, p.Label, p.Length, p.Quantity)
		}
	}
	return job, nil
}

// SaveJob writes a job as YAML or JSON depending on the file extension.
func SaveJob(path string, job Job) error {
	if len(job.Parts) == 0 {
		return ErrEmptyJob
	}
	if job.Version == "" {
		job.Version = reportVersion
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(job)
	} else {
		data, err = json.MarshalIndent(job, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create job directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	return nil
}
