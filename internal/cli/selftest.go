package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/ghgcalc/internal/app/selftest"
)

func newSelftestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the reference fixture checks against the built-in samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := selftest.Run(selftest.Fixtures())

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				if err := writeJSON(out, "selftest", rep); err != nil {
					return err
				}
			} else {
				for _, r := range rep.Results {
					if r.Passed {
						fmt.Fprintf(out, "PASS  %s\n", r.Name)
					} else {
						fmt.Fprintf(out, "FAIL  %s: %s\n", r.Name, r.Detail)
					}
				}
				fmt.Fprintf(out, "\n%d checks, %d failed\n", len(rep.Results), rep.Failed)
			}

			if !rep.OK() {
				return fmt.Errorf("selftest: %d of %d checks failed", rep.Failed, len(rep.Results))
			}
			return nil
		},
	}
}
