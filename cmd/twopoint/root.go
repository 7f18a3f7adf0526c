package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qcdlab/twopoint/correlator"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "twopoint",
		Short:         "inspect and analyse lattice two-point correlator archives",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log fit diagnostics to stderr")

	root.AddCommand(
		newInfoCmd(),
		newEnergyCmd(&verbose),
		newEffMassCmd(&verbose),
	)

	return root
}

// newLogger builds the edge logger. Quiet runs still surface warnings,
// which is where non-converged fits are reported.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	return cfg.Build()
}

// descriptorFlags mirrors a correlator key on the command line. Unset
// flags stay wildcards, exactly like store queries.
type descriptorFlags struct {
	label    string
	masses   []float64
	momentum []int
	source   string
	sink     string
}

func (d *descriptorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.label, "label", "", "correlator label (e.g. pion, g5_g5)")
	cmd.Flags().Float64SliceVar(&d.masses, "mass", nil, "bare quark masses, repeatable")
	cmd.Flags().IntSliceVar(&d.momentum, "momentum", nil, "lattice momentum px,py,pz")
	cmd.Flags().StringVar(&d.source, "source", "", "source smearing (point|shell|wall)")
	cmd.Flags().StringVar(&d.sink, "sink", "", "sink smearing (point|shell|wall)")
}

func (d *descriptorFlags) query() correlator.Query {
	return correlator.Query{
		Label:    d.label,
		Masses:   d.masses,
		Momentum: d.momentum,
		Source:   correlator.ParseSmearing(d.source),
		Sink:     correlator.ParseSmearing(d.sink),
	}
}

// loadSeries opens the archive and resolves the descriptor to exactly
// one stored correlator.
func loadSeries(path string, d *descriptorFlags) (correlator.Series, int, error) {
	store, err := correlator.Load(path)
	if err != nil {
		return correlator.Series{}, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	series, err := store.Get(d.query())
	if err != nil {
		return correlator.Series{}, 0, fmt.Errorf("selecting correlator: %w", err)
	}

	return series, store.T(), nil
}
