// Command twopoint inspects and analyses saved correlator archives.
//
// Subcommands:
//
//	twopoint info <archive>      — extents and stored keys
//	twopoint energy <archive>    — ground-state energy fit
//	twopoint effmass <archive>   — per-timeslice effective mass
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
