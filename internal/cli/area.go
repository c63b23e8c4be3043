package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tutu-network/ghgcalc/internal/app/emissions"
	"github.com/tutu-network/ghgcalc/internal/domain"
)

func newAreaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "area LO_LAT HI_LAT WEST_LONG EAST_LONG",
		Short: "Compute the surface area of a latitude/longitude rectangle",
		Long: `Compute the area in km² of the spherical zone between two latitudes,
scaled by the longitude width. Bounds are not validated.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [4]float64
			for i, a := range args {
				f, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("parse coordinate %q: %w", a, err)
				}
				v[i] = f
			}
			rect := domain.GeoRect{LoLat: v[0], HiLat: v[1], WestLong: v[2], EastLong: v[3]}
			area := emissions.Area(rect)

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				return writeJSON(out, "area", map[string]any{
					"rect":     rect,
					"area_km2": area,
				})
			}
			fmt.Fprintf(out, "Rect: %s\n", rect)
			fmt.Fprintf(out, "Area: %s km²\n", formatFloat(area, 3))
			return nil
		},
	}
}
