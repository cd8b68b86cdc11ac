package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare what-if scenarios",
	Long:  `Pack the cut list under the current options and a few alternatives (other tuning level, half kerf, no end trim) and print them side by side.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := compareReq.build(cmd)
		if err != nil {
			return err
		}

		scenarios := engine.BuildDefaultScenarios(req.Options)
		results := engine.CompareScenarios(cmd.Context(), scenarios, req.Items(), req.Inventory)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SCENARIO\tSTATUS\tBARS\tLEFTOVERS\tCUTS\tWASTE\tUNPLACED")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.1f%%\t%d\n",
				r.Scenario.Name,
				r.Result.Error,
				r.BarsUsed,
				r.LeftoversUsed,
				r.TotalCuts,
				r.WastePercent,
				r.UnplacedCount)
		}
		return w.Flush()
	},
}

var compareReq requestFlags

func init() {
	compareReq.register(compareCmd)
}
