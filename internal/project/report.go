package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/BarCut/internal/model"
)

const reportVersion = "1.0.0"

// Report is the on-disk record of one packing run.
type Report struct {
	Version   string           `json:"version"`
	CreatedAt string           `json:"created_at"`
	Job       string           `json:"job,omitempty"`
	Options   model.Options    `json:"options"`
	Result    model.PackResult `json:"result"`
}

// WriteReport saves a packing result together with the options that
// produced it.
func WriteReport(path, job string, opts model.Options, result model.PackResult) error {
	report := Report{
		Version:   reportVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Job:       job,
		Options:   opts,
		Result:    result,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report file: %w", err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("failed to parse report file: %w", err)
	}
	if report.Version == "" {
		return Report{}, fmt.Errorf("invalid report file: missing version field")
	}
	if report.Result.Bars == nil {
		report.Result.Bars = []model.Bar{}
	}
	if report.Result.Unplaced == nil {
		report.Result.Unplaced = []model.Item{}
	}
	return report, nil
}
