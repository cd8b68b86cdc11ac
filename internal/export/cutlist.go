// Package export writes packing results to spreadsheet and CSV cut lists.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/piwi3910/BarCut/internal/model"
)

// ErrNoBars is returned when a result has no bars to export.
var ErrNoBars = errors.New("no bars to export")

// CutRow is one cut on the saw: which bar, which piece, and where the
// piece ends measured from the raw bar start.
type CutRow struct {
	BarIndex  int     `json:"bar"`
	BarKind   string  `json:"bar_kind"`
	BarLength float64 `json:"bar_length_mm"`
	Seq       int     `json:"seq"`
	ItemID    string  `json:"item_id"`
	Label     string  `json:"label"`
	Length    float64 `json:"length_mm"`
	CutAt     float64 `json:"cut_at_mm"`
}

// CollectCutRows flattens a result into cut rows, bar by bar in cutting order.
func CollectCutRows(result model.PackResult) []CutRow {
	var rows []CutRow
	for barIdx, b := range result.Bars {
		for i, it := range b.Items {
			rows = append(rows, CutRow{
				BarIndex:  barIdx + 1,
				BarKind:   b.Kind.String(),
				BarLength: b.Length,
				Seq:       i + 1,
				ItemID:    it.ID,
				Label:     it.Label,
				Length:    it.Length,
				CutAt:     b.Cuts[i],
			})
		}
	}
	return rows
}

var cutHeader = []string{"Bar", "Stock", "Bar Length", "Seq", "ID", "Label", "Length", "Cut At"}

func (r CutRow) record() []string {
	return []string{
		strconv.Itoa(r.BarIndex),
		r.BarKind,
		formatMM(r.BarLength),
		strconv.Itoa(r.Seq),
		r.ItemID,
		r.Label,
		formatMM(r.Length),
		formatMM(r.CutAt),
	}
}

func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCutListCSV writes the cut rows of a result with a header line.
func WriteCutListCSV(w io.Writer, result model.PackResult) error {
	if len(result.Bars) == 0 {
		return ErrNoBars
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(cutHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range CollectCutRows(result) {
		if err := cw.Write(row.record()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the cut list of a result to a CSV file.
func ExportCSV(path string, result model.PackResult) error {
	if len(result.Bars) == 0 {
		return ErrNoBars
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create cut list: %w", err)
	}
	if err := WriteCutListCSV(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
