package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qcdlab/twopoint/correlator"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <archive>",
		Short: "print lattice extents and the stored correlator keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := correlator.Load(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), store)

			return nil
		},
	}
}
