package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/piwi3910/BarCut/internal/export"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
	"github.com/piwi3910/BarCut/internal/session"
	"github.com/spf13/cobra"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Optimize a cut list",
	Long: `Pack every piece of a cut list into leftover and standard bars.

Each attempt runs both heuristics within the time budget. With --attempts
greater than one, further attempts run until every piece is placed.`,
	RunE: runPack,
}

var (
	packReq         requestFlags
	packAttempts    int
	packXLSX        string
	packCSV         string
	packReport      string
	packJSON        bool
	packUpdateStock bool
)

func init() {
	packReq.register(packCmd)
	packCmd.Flags().IntVar(&packAttempts, "attempts", 1, "Maximum number of attempts")
	packCmd.Flags().StringVar(&packXLSX, "xlsx", "", "Write the cut list to an Excel workbook")
	packCmd.Flags().StringVar(&packCSV, "csv", "", "Write the cut list to a CSV file")
	packCmd.Flags().StringVar(&packReport, "report", "", "Write a JSON report")
	packCmd.Flags().BoolVar(&packJSON, "json", false, "Print the result as JSON")
	packCmd.Flags().BoolVar(&packUpdateStock, "update-inventory", false, "Store reusable offcuts in the saved inventory")
}

func runPack(cmd *cobra.Command, args []string) error {
	req, err := packReq.build(cmd)
	if err != nil {
		return err
	}
	for _, w := range req.Warnings {
		slog.Warn("import: " + w)
	}

	eng := engine.New(req.Options)
	job := session.Start(cmd.Context(), eng, session.Request{
		Items:     req.Items(),
		Inventory: req.Inventory,
	})
	defer job.Cancel()

	for attempt := range job.Results() {
		slog.Debug("pack: attempt finished",
			"seq", attempt.Seq,
			"code", attempt.Result.Error,
			"bars", len(attempt.Result.Bars),
			"elapsed", attempt.Elapsed)
		if job.Complete() || job.Attempts() >= packAttempts || cmd.Context().Err() != nil {
			break
		}
		if err := job.Advance(); err != nil {
			return err
		}
	}

	job.Cancel()
	result, ok := job.Best()
	if !ok {
		return fmt.Errorf("no attempt finished")
	}

	if packJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), renderResult(req.Name, req.Options, result))
	}

	if err := writeOutputs(req, result); err != nil {
		return err
	}
	if !result.Error.Usable() {
		return fmt.Errorf("packing failed: %s", result.Error)
	}
	return nil
}

func writeOutputs(req request, result model.PackResult) error {
	if packXLSX != "" {
		if err := export.ExportXLSX(packXLSX, result, req.Options); err != nil {
			return fmt.Errorf("failed to export %s: %w", packXLSX, err)
		}
		slog.Info("pack: workbook written", "path", packXLSX)
	}
	if packCSV != "" {
		if err := export.ExportCSV(packCSV, result); err != nil {
			return fmt.Errorf("failed to export %s: %w", packCSV, err)
		}
		slog.Info("pack: cut list written", "path", packCSV)
	}
	if packReport != "" {
		if err := project.WriteReport(packReport, req.Name, req.Options, result); err != nil {
			return err
		}
		slog.Info("pack: report written", "path", packReport)
	}
	if packUpdateStock && result.Error.Usable() {
		path := project.InventoryPath(req.Config)
		inv, err := project.LoadInventory(path)
		if err != nil {
			return err
		}
		inv = project.MergeLeftovers(inv, result, req.Config.MinOffcutLength)
		if err := project.SaveInventory(path, inv); err != nil {
			return fmt.Errorf("failed to save inventory: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Inventory updated: %d leftovers in %s\n", len(inv.Leftovers), path)
	}
	return nil
}
