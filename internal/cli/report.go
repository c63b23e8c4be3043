package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/ghgcalc/internal/app/emissions"
	"github.com/tutu-network/ghgcalc/internal/domain"
)

// emissionsRow is one region's derived emission metrics.
type emissionsRow struct {
	Name         string   `json:"name"`
	Year         int      `json:"year"`
	AreaKm2      float64  `json:"area_km2"`
	PerCapita    *float64 `json:"per_capita"` // nil when population is zero
	PerSquareKm  float64  `json:"per_km2"`
	DensityPerKm float64  `json:"density_per_km2"`
}

func newReportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "report [NAME]",
		Short: "Show per-capita and per-km² emissions for each region",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps, err := opts.selected(args)
			if err != nil {
				return err
			}
			rows := emissionsRows(snaps)

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, "report", rows)
			}

			w := newTable(out)
			fmt.Fprintln(w, "NAME\tYEAR\tAREA (KM²)\tPER CAPITA\tPER KM²\tDENSITY")
			for _, r := range rows {
				perCapita := "undefined"
				if r.PerCapita != nil {
					perCapita = formatFloat(*r.PerCapita, 4)
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
					r.Name,
					r.Year,
					formatFloat(r.AreaKm2, 2),
					perCapita,
					formatFloat(r.PerSquareKm, 2),
					formatFloat(r.DensityPerKm, 2),
				)
			}
			return w.Flush()
		},
	}
}

func emissionsRows(snaps []domain.RegionSnapshot) []emissionsRow {
	rows := make([]emissionsRow, 0, len(snaps))
	for _, s := range snaps {
		row := emissionsRow{
			Name:         s.Region.Name,
			Year:         s.Year,
			AreaKm2:      emissions.Area(s.Region.Rect),
			PerSquareKm:  emissions.EmissionsPerSquareKm(s),
			DensityPerKm: emissions.Density(s),
		}
		if v, ok := emissions.EmissionsPerCapita(s); ok {
			row.PerCapita = &v
		}
		rows = append(rows, row)
	}
	return rows
}
