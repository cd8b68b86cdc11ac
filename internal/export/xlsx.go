package export

import (
	"fmt"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetBars     = "Bars"
	sheetCuts     = "Cuts"
	sheetUnplaced = "Unplaced"
)

// ExportXLSX writes a workbook with a summary, one row per bar, one row per
// cut and the unplaced items.
func ExportXLSX(path string, result model.PackResult, opts model.Options) error {
	if len(result.Bars) == 0 {
		return ErrNoBars
	}

	f, err := buildWorkbook(result, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func buildWorkbook(result model.PackResult, opts model.Options) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	for _, name := range []string{sheetBars, sheetCuts, sheetUnplaced} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	w := &sheetWriter{f: f, bold: bold}
	w.summary(result, opts)
	w.bars(result)
	w.cuts(result)
	w.unplaced(result)
	if w.err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", w.err)
	}
	return f, nil
}

// sheetWriter keeps the first error so the sheet builders stay linear.
type sheetWriter struct {
	f    *excelize.File
	bold int
	err  error
}

func (w *sheetWriter) row(sheet string, rowNum int, values ...interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) header(sheet string, titles ...string) {
	values := make([]interface{}, len(titles))
	for i, t := range titles {
		values[i] = t
	}
	w.row(sheet, 1, values...)
	if w.err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheet, "A1", last, w.bold)
	if w.err == nil {
		w.err = w.f.SetColWidth(sheet, "A", "H", 14)
	}
}

func (w *sheetWriter) summary(result model.PackResult, opts model.Options) {
	items := []struct {
		label string
		value interface{}
	}{
		{"Result", result.Error.String()},
		{"Heuristic", result.Heuristic},
		{"Bars Used", len(result.Bars)},
		{"New Bars", result.CountKind(model.BarNew)},
		{"Leftovers Used", result.CountKind(model.BarLeftover)},
		{"Lower Bound", result.LowerBound},
		{"Overall Efficiency %", round1(result.TotalEfficiency())},
		{"Pieces Placed", result.PlacedCount()},
		{"Unplaced Pieces", len(result.Unplaced)},
		{"Total Waste mm", result.TotalWaste()},
		{"Standard Length mm", opts.StdLength},
		{"Trim mm", opts.TrimSize},
		{"Kerf mm", opts.SawKerf},
	}
	w.header(sheetSummary, "Item", "Value")
	for i, it := range items {
		w.row(sheetSummary, i+2, it.label, it.value)
	}
	for i, warn := range result.Warnings {
		w.row(sheetSummary, len(items)+3+i, "Warning", warn.String())
	}
}

func (w *sheetWriter) bars(result model.PackResult) {
	w.header(sheetBars, "Bar", "Stock", "Length", "Pieces", "Used", "Leftover", "Efficiency %")
	for i, b := range result.Bars {
		w.row(sheetBars, i+2,
			i+1,
			b.Kind.String(),
			b.Length,
			len(b.Items),
			b.UsedLength(),
			b.Leftover,
			round1(b.Efficiency*100))
	}
}

func (w *sheetWriter) cuts(result model.PackResult) {
	w.header(sheetCuts, cutHeader...)
	for i, r := range CollectCutRows(result) {
		w.row(sheetCuts, i+2, r.BarIndex, r.BarKind, r.BarLength, r.Seq, r.ItemID, r.Label, r.Length, r.CutAt)
	}
}

func (w *sheetWriter) unplaced(result model.PackResult) {
	w.header(sheetUnplaced, "ID", "Label", "Length")
	for i, it := range result.Unplaced {
		w.row(sheetUnplaced, i+2, it.ID, it.Label, it.Length)
	}
}

func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}
