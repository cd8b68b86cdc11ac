package main

import (
	"fmt"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate how many bars to buy",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := estimateReq.build(cmd)
		if err != nil {
			return err
		}
		opts := req.Options
		if opts.StdLength <= 0 {
			return fmt.Errorf("estimate needs a standard bar length")
		}

		est := model.CalculatePurchaseEstimate(req.Parts, opts.StdLength, opts.TrimSize, opts.SawKerf, estimateWaste, estimatePrice)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Purchase estimate"))
		fmt.Fprintln(out, field("Cut length", fmt.Sprintf("%.2f m incl. kerf", est.TotalMeters)))
		fmt.Fprintln(out, field("Usable/bar", formatMM(est.UsableLength)+" mm"))
		fmt.Fprintln(out, field("Minimum", fmt.Sprintf("%d bars (%.2f exact)", est.BarsNeededMin, est.BarsNeededExact)))
		fmt.Fprintln(out, field("Recommended", fmt.Sprintf("%d bars (+%.0f%% waste)", est.BarsWithWaste, est.WastePercent)))
		if est.PricePerBar > 0 {
			fmt.Fprintln(out, field("Cost", fmt.Sprintf("%.2f", est.EstimatedCost)))
		}
		return nil
	},
}

var (
	estimateReq   requestFlags
	estimateWaste float64
	estimatePrice float64
)

func init() {
	estimateReq.register(estimateCmd)
	estimateCmd.Flags().Float64Var(&estimateWaste, "waste", 15, "Extra waste allowance in percent")
	estimateCmd.Flags().Float64Var(&estimatePrice, "price", 0, "Price per standard bar")
}
