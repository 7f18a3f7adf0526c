package contract

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/qcdlab/twopoint/correlator"
)

// BatchOptions configures the full 16×16 operator sweep.
//
// Fields:
//   - Momenta, AverageEquivalent, Fold — as in Options, applied per pair.
//   - Workers — worker-pool size; 0 selects runtime.NumCPU(). The result
//     is identical for any pool size: every pair writes to a distinct key.
//   - Logger — optional structured logger; nil disables logging.
type BatchOptions struct {
	Momenta           [][3]int
	AverageEquivalent bool
	Fold              bool
	Workers           int
	Logger            *zap.Logger
}

// DefaultBatchOptions sweeps at zero momentum with shell averaging, one
// worker per CPU, no logging.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Momenta:           [][3]int{{0, 0, 0}},
		AverageEquivalent: true,
		Workers:           runtime.NumCPU(),
	}
}

// pairResult carries one operator pair's projected correlators back from
// the pool. Each worker fills exactly one slot of a pre-sized slice, so
// the merge needs no locking.
type pairResult struct {
	label  string
	series map[[3]int][]float64
}

// ComputeAll contracts every ordered pair of the 16 canonical
// interpolators (256 combinations) and merges the projected correlators
// into a single store, keyed by the synthesized label "source_sink" and
// the momentum. Pairs are computed across a bounded worker pool; inputs
// are immutable and results are key-disjoint, so completion order cannot
// affect the merged store.
//
// Errors: ErrNilPropagator, ErrExtentMismatch, ErrBadWorkers, plus any
// projection failure from a worker (first one wins).
func ComputeAll(p1, p2 *Propagator, opts BatchOptions) (*correlator.Store, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilPropagator
	}
	if p1.t != p2.t || p1.l != p2.l {
		return nil, fmt.Errorf("(T,L)=(%d,%d) vs (%d,%d): %w",
			p1.t, p1.l, p2.t, p2.l, ErrExtentMismatch)
	}
	if opts.Workers < 0 {
		return nil, fmt.Errorf("workers=%d: %w", opts.Workers, ErrBadWorkers)
	}
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	names := Interpolators()
	type pair struct{ source, sink string }
	pairs := make([]pair, 0, len(names)*len(names))
	for _, src := range names {
		for _, snk := range names {
			pairs = append(pairs, pair{source: src, sink: snk})
		}
	}

	// Folding is deferred to the merge so the store records provenance.
	pairOpts := Options{
		Momenta:           opts.Momenta,
		AverageEquivalent: opts.AverageEquivalent,
	}

	start := time.Now()
	results := make([]pairResult, len(pairs))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, pr := range pairs {
		i, pr := i, pr
		g.Go(func() error {
			series, err := Compute(p1, p2, Named(pr.source), Named(pr.sink), pairOpts)
			if err != nil {
				return fmt.Errorf("pair %s_%s: %w", pr.source, pr.sink, err)
			}
			results[i] = pairResult{
				label:  fmt.Sprintf("%s_%s", pr.source, pr.sink),
				series: series,
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	store, err := correlator.NewStore(p1.l, p1.t)
	if err != nil {
		return nil, err
	}
	addOpts := correlator.AddOptions{Projected: true, Fold: opts.Fold}
	for _, r := range results {
		for p, series := range r.series {
			key := correlator.NewKey(r.label, nil, p, correlator.Unset, correlator.Unset)
			if err := store.AddCorrelator(series, key, addOpts); err != nil {
				return nil, fmt.Errorf("merging %s at %v: %w", r.label, p, err)
			}
		}
	}

	logger.Info("batch contraction finished",
		zap.Int("pairs", len(pairs)),
		zap.Int("workers", workers),
		zap.Int("correlators", store.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return store, nil
}
