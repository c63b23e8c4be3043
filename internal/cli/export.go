package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/ghgcalc/internal/dataset"
)

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export PATH",
		Short: "Write the active dataset to a TOML dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dataset.Save(args[0], opts.snapshots); err != nil {
				return fmt.Errorf("export dataset: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d regions to %s\n", len(opts.snapshots), args[0])
			return nil
		},
	}
}
