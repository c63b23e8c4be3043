package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/ghgcalc/internal/app/emissions"
)

func newDensestCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "densest",
		Short: "Name the region with the highest population density",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if all {
				ranked := emissions.RankByDensity(opts.snapshots)
				if opts.jsonOut {
					return writeJSON(out, "densest", ranked)
				}
				w := newTable(out)
				fmt.Fprintln(w, "RANK\tNAME\tPOPULATION\tDENSITY (PER KM²)")
				for i, e := range ranked {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
						i+1,
						e.Snapshot.Region.Name,
						formatCount(e.Snapshot.Population),
						formatFloat(e.Density, 2),
					)
				}
				return w.Flush()
			}

			name := emissions.Densest(opts.snapshots)
			if opts.jsonOut {
				return writeJSON(out, "densest", map[string]string{"name": name})
			}
			if name == "" {
				fmt.Fprintln(out, "No region has a positive population density.")
				return nil
			}
			fmt.Fprintln(out, name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every region ranked by density")
	return cmd
}
