// BarCut - 1-D cut list optimizer for bar, tube and timber stock
//
// Packs the pieces of a cut list into standard-length bars and reusable
// leftovers, accounting for saw kerf and end trim.
//
// Build:
//   go build -o barcut ./cmd/barcut
//
// Examples:
//   barcut pack --job pergola.yaml --xlsx pergola.xlsx
//   barcut pack --piece Post:2400x4 --piece 600x8 --leftover 1200 --kerf 3
//   barcut compare --parts cutlist.csv --profile alu-6m
//   barcut estimate --parts cutlist.xlsx --price 42.50

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "barcut",
	Short: "BarCut - 1-D cut list optimizer",
	Long:  `BarCut packs a cut list into standard bars and leftover stock, minimising the number of bars while respecting saw kerf and end trim.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.barcut/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine progress to stderr")

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(profilesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
