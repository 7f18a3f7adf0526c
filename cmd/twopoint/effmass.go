package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qcdlab/twopoint/fit"
)

func newEffMassCmd(verbose *bool) *cobra.Command {
	var (
		desc  descriptorFlags
		guess float64
	)

	cmd := &cobra.Command{
		Use:   "effmass <archive>",
		Short: "print the per-timeslice effective mass of one stored correlator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			series, _, err := loadSeries(args[0], &desc)
			if err != nil {
				return err
			}

			curve, err := fit.EffectiveMass(series.Data, guess, logger)
			if err != nil {
				return fmt.Errorf("effective mass: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "method %s\n", curve.Method)
			for t, m := range curve.Values {
				fmt.Fprintf(out, "%3d  %.8g\n", t, m)
			}

			return nil
		},
	}

	desc.register(cmd)
	cmd.Flags().Float64Var(&guess, "guess", 1, "seed for the per-timeslice mass solve")

	return cmd
}
