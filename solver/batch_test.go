package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hamsim/rng"
)

func TestAccumulator(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(&SolveResult{Converged: true, Iterations: 1, ConvergenceRate: 0.5})
	acc.Add(&SolveResult{Converged: true, Iterations: 3, ConvergenceRate: 1.5})
	acc.Add(&SolveResult{Converged: false, Iterations: 8})
	acc.Add(nil)

	batch := acc.Stats()

	require.Equal(t, 3, batch.Runs)
	require.Equal(t, 2, batch.Successes)
	require.InDelta(t, 2.0/3.0, batch.SuccessRate, 1e-12)
	require.InDelta(t, 4.0, batch.Iterations.Mean, 1e-12)
	require.Equal(t, 1.0, batch.Iterations.Min)
	require.Equal(t, 8.0, batch.Iterations.Max)
	require.Equal(t, 3.0, batch.Iterations.Median)
	// Zero rates (no contraction samples) stay out of the mean.
	require.InDelta(t, 1.0, batch.MeanConvergenceRate, 1e-12)
}

func TestAccumulator_Empty(t *testing.T) {
	batch := NewAccumulator().Stats()

	require.Equal(t, 0, batch.Runs)
	require.Equal(t, 0.0, batch.SuccessRate)
	require.Equal(t, 0.0, batch.MeanConvergenceRate)
}

func TestRunBatch_NoiselessAlwaysSucceeds(t *testing.T) {
	batch, err := RunBatch(100,
		WithSolveOptions(WithErrorRate(0.0), WithMaxIterations(10)),
		WithBatchSeed(7),
	)

	require.NoError(t, err)
	require.Equal(t, 100, batch.Runs)
	require.Equal(t, 100, batch.Successes)
	require.Equal(t, 1.0, batch.SuccessRate)
	require.LessOrEqual(t, batch.Iterations.Max, 3.0)
}

func TestRunBatch_DeterministicUnderFixedSeed(t *testing.T) {
	runOnce := func(workers int) BatchStatistics {
		batch, err := RunBatch(64,
			WithSolveOptions(WithErrorRate(0.2), WithMaxIterations(50)),
			WithBatchSeed(99),
			WithWorkers(workers),
		)
		require.NoError(t, err)

		return batch
	}

	serial := runOnce(1)
	parallel := runOnce(8)

	// Per-run derived sources make the outcome independent of scheduling.
	require.Equal(t, serial, parallel)
	require.Equal(t, serial, runOnce(4))
}

func TestRunBatch_NoisyBatchReportsDistribution(t *testing.T) {
	batch, err := RunBatch(200,
		WithSolveOptions(WithErrorRate(0.15), WithMaxIterations(100)),
		WithBatchSeed(3),
	)

	require.NoError(t, err)
	require.Equal(t, 200, batch.Runs)
	require.Positive(t, batch.SuccessRate)
	require.GreaterOrEqual(t, batch.Iterations.Max, batch.Iterations.Median)
	require.GreaterOrEqual(t, batch.Iterations.Median, batch.Iterations.Min)
}

func TestRunBatch_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		count int
		opts  []BatchOption
	}{
		{"zero count", 0, nil},
		{"negative count", -5, nil},
		{"zero workers", 10, []BatchOption{WithWorkers(0)}},
		{"negative jitter", 10, []BatchOption{WithErrorRateJitter(-0.1)}},
		{"jitter above one", 10, []BatchOption{WithErrorRateJitter(1.5)}},
		{"invalid base config", 10, []BatchOption{WithSolveOptions(WithMaxIterations(-1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunBatch(tt.count, tt.opts...)

			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestJitterRate(t *testing.T) {
	src := rng.NewSeeded(1)

	// Zero base rate is never perturbed.
	for i := 0; i < 100; i++ {
		require.Equal(t, 0.0, jitterRate(0.0, 0.5, src))
	}

	// Zero jitter passes the rate through untouched.
	require.Equal(t, 0.3, jitterRate(0.3, 0.0, src))

	// Perturbed rates stay within the jitter band and inside [0, 1].
	for i := 0; i < 1000; i++ {
		rate := jitterRate(0.5, 0.1, src)

		require.GreaterOrEqual(t, rate, 0.45)
		require.LessOrEqual(t, rate, 0.55)
	}
}

func TestRandomDataWord_BitsAreBinary(t *testing.T) {
	src := rng.NewSeeded(8)
	seen := map[string]bool{}

	for i := 0; i < 1000; i++ {
		word := randomDataWord(src)
		for _, b := range word {
			require.LessOrEqual(t, b, byte(1))
		}
		seen[word.String()] = true
	}

	// Uniform draws over 16 words cover the space quickly.
	require.Len(t, seen, 16)
}
