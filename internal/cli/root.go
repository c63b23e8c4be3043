// Package cli implements the ghgcalc command-line interface using Cobra.
// Each subcommand maps to one engine operation (area, report, densest,
// project) over the active region dataset.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tutu-network/ghgcalc/internal/config"
	"github.com/tutu-network/ghgcalc/internal/dataset"
	"github.com/tutu-network/ghgcalc/internal/domain"
	"github.com/tutu-network/ghgcalc/internal/infra/metrics"
)

// options carries global flags and the state resolved from them before
// a subcommand runs.
type options struct {
	configPath  string
	datasetPath string
	metricsOut  string
	jsonOut     bool

	cfg       config.Config
	snapshots []domain.RegionSnapshot
	logCloser io.Closer
}

// newRootCmd builds the full command tree. The returned options must be
// torn down once the command finishes, whatever its outcome.
func newRootCmd(version string) (*cobra.Command, *options) {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ghgcalc",
		Short: "ghgcalc — Greenhouse-gas emissions calculator for regions",
		Long: `ghgcalc estimates per-capita and per-area greenhouse-gas emissions
for latitude/longitude regions, ranks them by population density, and
projects population and emissions forward under terrain growth models.

Without --dataset it works on the built-in four-region sample table.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $GHG_HOME/config.toml)")
	pf.StringVar(&opts.datasetPath, "dataset", "", "region dataset file (.toml, .yaml)")
	pf.StringVar(&opts.metricsOut, "metrics-out", "", "write Prometheus metrics textfile after the run")
	pf.BoolVar(&opts.jsonOut, "json", false, "print machine-readable JSON")

	root.AddCommand(
		newRegionsCmd(opts),
		newAreaCmd(opts),
		newReportCmd(opts),
		newDensestCmd(opts),
		newProjectCmd(opts),
		newSelftestCmd(opts),
		newExportCmd(opts),
		newConfigCmd(opts),
	)
	return root, opts
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	if err := run(newRootCmd(version)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config, applies logging and resolves the dataset. Flags
// override config file values.
func (o *options) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.datasetPath != "" {
		cfg.Dataset.Path = o.datasetPath
	}
	if o.metricsOut != "" {
		cfg.Metrics.Textfile = o.metricsOut
	}
	o.cfg = cfg

	closer, err := config.ApplyLogging(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.logCloser = closer

	snapshots, err := dataset.Resolve(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	o.snapshots = snapshots
	return nil
}

// run executes root and then tears opts down, so metrics are flushed and
// the log file released on failures too. The command error wins over a
// teardown error.
func run(root *cobra.Command, opts *options) error {
	err := root.Execute()
	if terr := opts.teardown(); err == nil {
		err = terr
	}
	return err
}

// teardown flushes the metrics textfile and releases the log file. It
// tolerates a setup that failed or never ran.
func (o *options) teardown() error {
	if o.logCloser != nil {
		o.logCloser.Close()
		o.logCloser = nil
		log.SetOutput(os.Stderr)
	}

	path := o.cfg.Metrics.Textfile
	if path == "" {
		path = o.metricsOut
	}
	if path == "" {
		return nil
	}
	return metrics.WriteTextfile(path)
}

// selected returns every snapshot, or only the one named by args.
func (o *options) selected(args []string) ([]domain.RegionSnapshot, error) {
	if len(args) == 0 {
		return o.snapshots, nil
	}
	s, err := dataset.Find(o.snapshots, args[0])
	if err != nil {
		return nil, err
	}
	return []domain.RegionSnapshot{s}, nil
}
