package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qcdlab/twopoint/fit"
)

func newEnergyCmd(verbose *bool) *cobra.Command {
	var (
		desc      descriptorFlags
		begin     int
		end       int
		amplitude float64
		energy    float64
		maxIter   int
	)

	cmd := &cobra.Command{
		Use:   "energy <archive>",
		Short: "fit the ground-state energy of one stored correlator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			series, tExtent, err := loadSeries(args[0], &desc)
			if err != nil {
				return err
			}
			if end == 0 {
				end = tExtent / 2
			}

			opts := fit.DefaultOptions()
			opts.MaxIter = maxIter
			opts.Logger = logger
			e, res, err := fit.Energy(series.Data,
				fit.Window{Begin: begin, End: end},
				[]float64{amplitude, energy}, opts)
			if err != nil {
				return fmt.Errorf("fitting: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "energy      %.8g\n", e)
			fmt.Fprintf(out, "amplitude   %.8g\n", res.Params[0])
			fmt.Fprintf(out, "chi-squared %.4g\n", res.ChiSquared)
			if !res.Converged {
				fmt.Fprintf(out, "warning: not converged after %d iterations\n", res.Iterations)
			}

			return nil
		},
	}

	desc.register(cmd)
	cmd.Flags().IntVar(&begin, "begin", 1, "first timeslice of the fit window")
	cmd.Flags().IntVar(&end, "end", 0, "one past the last timeslice (default T/2)")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1, "amplitude seed")
	cmd.Flags().Float64Var(&energy, "energy", 1, "energy seed")
	cmd.Flags().IntVar(&maxIter, "max-iter", 200, "minimizer iteration cap")

	return cmd
}
