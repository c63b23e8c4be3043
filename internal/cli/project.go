package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/ghgcalc/internal/app/emissions"
	"github.com/tutu-network/ghgcalc/internal/domain"
)

// projectionRow pairs a starting snapshot with its projection.
type projectionRow struct {
	From domain.RegionSnapshot `json:"from"`
	To   domain.RegionSnapshot `json:"to"`
}

func newProjectCmd(opts *options) *cobra.Command {
	var (
		years  int
		series bool
	)

	cmd := &cobra.Command{
		Use:   "project [NAME]",
		Short: "Project population and emissions forward",
		Long: `Project every region (or the named one) forward by --years years.
Population compounds yearly at the terrain's growth rate; the emission
rate receives one per-capita adjustment at the end of the projection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("years") {
				years = opts.cfg.Projection.Years
			}
			snaps, err := opts.selected(args)
			if err != nil {
				return err
			}

			var rows []projectionRow
			for _, s := range snaps {
				var targets []domain.RegionSnapshot
				if series {
					targets, err = emissions.ProjectSeries(s, years)
				} else {
					var next domain.RegionSnapshot
					next, err = emissions.ProjectCondition(s, years)
					targets = []domain.RegionSnapshot{next}
				}
				if err != nil {
					return err
				}
				for _, t := range targets {
					rows = append(rows, projectionRow{From: s, To: t})
				}
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, "project", rows)
			}

			w := newTable(out)
			fmt.Fprintln(w, "NAME\tTERRAIN\tYEAR\tPOPULATION\tGHG RATE\tΔ POPULATION")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%d → %d\t%s\t%s\t%+d\n",
					r.From.Region.Name,
					r.From.Region.Terrain,
					r.From.Year, r.To.Year,
					formatCount(r.To.Population),
					formatFloat(r.To.GHGRate, 3),
					r.To.Population-r.From.Population,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&years, "years", "y", 10, "years to project (default from config)")
	cmd.Flags().BoolVar(&series, "series", false, "print every intermediate year")
	return cmd
}
