package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/piwi3910/BarCut/internal/project"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List stock profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := project.AllProfiles(project.DefaultProfilesPath())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tLENGTH\tTRIM\tKERF\tSOURCE")
		for _, p := range profiles {
			source := "custom"
			if p.IsBuiltIn {
				source = "built-in"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Name, formatMM(p.StdLength), formatMM(p.TrimSize), formatMM(p.SawKerf), source)
		}
		return w.Flush()
	},
}
