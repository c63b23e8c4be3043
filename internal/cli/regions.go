package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/ghgcalc/internal/app/emissions"
)

func newRegionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "regions",
		Aliases: []string{"ls"},
		Short:   "List regions in the active dataset",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, "regions", opts.snapshots)
			}

			w := newTable(out)
			fmt.Fprintln(w, "NAME\tTERRAIN\tYEAR\tPOPULATION\tGHG RATE\tAREA (KM²)")
			for _, s := range opts.snapshots {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
					s.Region.Name,
					s.Region.Terrain,
					s.Year,
					formatCount(s.Population),
					formatFloat(s.GHGRate, 2),
					formatFloat(emissions.Area(s.Region.Rect), 2),
				)
			}
			return w.Flush()
		},
	}
}
