package solver

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/hamsim/code"
	"github.com/arloliu/hamsim/internal/options"
	"github.com/arloliu/hamsim/internal/stats"
	"github.com/arloliu/hamsim/rng"
)

// DefaultErrorRateJitter is the default multiplicative jitter applied to the
// error rate of each batch run.
const DefaultErrorRateJitter = 0.05

// BatchStatistics aggregates the outcomes of a batch of independent solves.
type BatchStatistics struct {
	// Runs is the number of solves reduced into this value.
	Runs int

	// Successes is the number of converged solves.
	Successes int

	// SuccessRate is Successes / Runs.
	SuccessRate float64

	// Iterations describes the distribution of per-solve iteration counts.
	Iterations stats.Summary

	// MeanConvergenceRate is the mean per-solve convergence rate over the
	// solves that produced one (see SolveResult.ConvergenceRate).
	MeanConvergenceRate float64
}

// Accumulator reduces SolveResults into BatchStatistics.
//
// It is caller-owned state: create one per batch, feed it results, read the
// statistics. Nothing is shared between accumulators or retained by the
// solver, so results from separately driven solves can be reduced the same
// way RunBatch does internally.
//
// Accumulator never mutates the results it is fed. It is not safe for
// concurrent use; reduce from a single goroutine.
type Accumulator struct {
	iterations []float64
	rates      []float64
	successes  int
	runs       int
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add folds one solve outcome into the accumulator. Nil results are ignored.
func (a *Accumulator) Add(result *SolveResult) {
	if result == nil {
		return
	}

	a.runs++
	if result.Converged {
		a.successes++
	}
	a.iterations = append(a.iterations, float64(result.Iterations))
	if result.ConvergenceRate != 0 {
		a.rates = append(a.rates, result.ConvergenceRate)
	}
}

// Stats reduces the accumulated outcomes into BatchStatistics.
func (a *Accumulator) Stats() BatchStatistics {
	result := BatchStatistics{
		Runs:                a.runs,
		Successes:           a.successes,
		Iterations:          stats.Summarize(a.iterations),
		MeanConvergenceRate: stats.Mean(a.rates),
	}
	if a.runs > 0 {
		result.SuccessRate = float64(a.successes) / float64(a.runs)
	}

	return result
}

// batchConfig holds the batch-level knobs on top of the base solve Config.
type batchConfig struct {
	workers int
	jitter  float64
	seed    uint64
	seeded  bool
	solve   []Option
}

// BatchOption represents a functional option for configuring a batch run.
type BatchOption = options.Option[*batchConfig]

// WithWorkers bounds the number of solves run concurrently. Defaults to
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) BatchOption {
	return options.New(func(c *batchConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: workers %d, must be > 0", ErrInvalidParameter, n)
		}
		c.workers = n

		return nil
	})
}

// WithErrorRateJitter sets the multiplicative jitter fraction applied to the
// error rate of each run: every solve uses rate·(1 + u) with u uniform in
// [-jitter, +jitter], clamped to [0, 1]. A zero base rate stays exactly
// zero. Defaults to DefaultErrorRateJitter.
func WithErrorRateJitter(jitter float64) BatchOption {
	return options.New(func(c *batchConfig) error {
		if !(jitter >= 0 && jitter <= 1) {
			return fmt.Errorf("%w: jitter %v outside [0, 1]", ErrInvalidParameter, jitter)
		}
		c.jitter = jitter

		return nil
	})
}

// WithBatchSeed fixes the base seed of the batch. Every run derives its own
// independent random stream from the base seed and its run index, so a fixed
// seed makes the whole batch reproducible regardless of worker count.
func WithBatchSeed(seed uint64) BatchOption {
	return options.NoError(func(c *batchConfig) {
		c.seed = seed
		c.seeded = true
	})
}

// WithSolveOptions sets the base solve configuration shared by all runs of
// the batch. WithSource is ignored here: batch runs always own derived
// per-run sources.
func WithSolveOptions(opts ...Option) BatchOption {
	return options.NoError(func(c *batchConfig) {
		c.solve = append(c.solve, opts...)
	})
}

// RunBatch performs count independent solve invocations and reduces their
// outcomes into BatchStatistics.
//
// Each run draws its own random initial data word and perturbs the base
// error rate by a small multiplicative jitter (robustness sampling), then
// solves with a random stream derived from the batch seed and the run
// index. Runs are independent, so they execute across a bounded worker
// pool; per-run sources make the one shared-randomness hazard impossible.
//
// Invalid batch parameters and invalid base solve configuration fail with
// ErrInvalidParameter before any run starts.
func RunBatch(count int, opts ...BatchOption) (BatchStatistics, error) {
	if count <= 0 {
		return BatchStatistics{}, fmt.Errorf("%w: batch count %d, must be > 0", ErrInvalidParameter, count)
	}

	bcfg := batchConfig{
		workers: runtime.GOMAXPROCS(0),
		jitter:  DefaultErrorRateJitter,
	}
	if err := options.Apply(&bcfg, opts...); err != nil {
		return BatchStatistics{}, err
	}
	if !bcfg.seeded {
		bcfg.seed = rng.New().Uint64()
	}

	// Validate the shared base configuration once, before any run starts.
	base := defaultConfig()
	if err := options.Apply(&base, bcfg.solve...); err != nil {
		return BatchStatistics{}, err
	}
	if err := base.validate(); err != nil {
		return BatchStatistics{}, err
	}

	results := make([]*SolveResult, count)

	var group errgroup.Group
	group.SetLimit(bcfg.workers)
	for i := range count {
		group.Go(func() error {
			src := rng.Derive(bcfg.seed, uint64(i))

			cfg := base
			cfg.Source = src
			cfg.ErrorRate = jitterRate(base.ErrorRate, bcfg.jitter, src)

			initial := randomDataWord(src)
			result, err := run(initial, cfg)
			if err != nil {
				return err
			}
			results[i] = result

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return BatchStatistics{}, err
	}

	acc := NewAccumulator()
	for _, result := range results {
		acc.Add(result)
	}

	return acc.Stats(), nil
}

// jitterRate perturbs rate multiplicatively by a uniform draw in
// [-jitter, +jitter] and clamps the result back into [0, 1]. Multiplicative
// jitter keeps a zero base rate exactly zero.
func jitterRate(rate, jitter float64, src rng.Source) float64 {
	if jitter == 0 || rate == 0 {
		return rate
	}

	perturbed := rate * (1 + (2*src.Float64()-1)*jitter)
	if perturbed < 0 {
		return 0
	}
	if perturbed > 1 {
		return 1
	}

	return perturbed
}

// randomDataWord draws a uniformly random 4-bit data word.
func randomDataWord(src rng.Source) code.DataWord {
	v := src.Uint64()

	return code.DataWord{
		byte(v >> 3 & 1),
		byte(v >> 2 & 1),
		byte(v >> 1 & 1),
		byte(v & 1),
	}
}
