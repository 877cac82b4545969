package solver

import (
	"github.com/arloliu/hamsim/code"
	"github.com/arloliu/hamsim/internal/options"
	"github.com/arloliu/hamsim/rng"
)

// Solve searches for a data word stable under one encode → corrupt → decode
// cycle, starting from initial.
//
// Each iteration encodes the current word, injects noise at the configured
// error rate, decodes with single-error correction, and measures the
// fractional Hamming distance between the decoded candidate and the current
// word. The first iteration measures against the initial input. When the
// distance is within tolerance the solve converges on the candidate;
// otherwise the candidate (optionally damped) becomes the next iterate.
//
// A solve that exhausts MaxIterations returns a SolveResult with
// Converged=false and a nil error; errors are reserved for invalid
// configuration (ErrInvalidParameter) and malformed input words
// (ErrInvalidInput), both rejected before the first iteration.
//
// A zero error rate collapses the loop immediately: uncorrupted codewords
// decode exactly, so the first iteration already meets any tolerance. An
// error rate high enough to flip two or more bits of a single codeword can
// make an iteration decode to the wrong word (the distance-3 limit of the
// code); the solver does not distinguish that from ordinary
// non-convergence.
func Solve(initial code.DataWord, opts ...Option) (*SolveResult, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if _, err := code.NewDataWord(initial[:]); err != nil {
		return nil, err
	}
	if cfg.Source == nil {
		cfg.Source = rng.New()
	}

	return run(initial, cfg)
}

// run drives the iteration loop. The configuration is validated by the
// caller.
func run(initial code.DataWord, cfg Config) (*SolveResult, error) {
	result := &SolveResult{
		Final:   initial,
		History: make([]IterationRecord, 0, cfg.MaxIterations),
	}

	current := initial
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		encoded, err := code.Encode(current)
		if err != nil {
			return nil, err
		}

		noisy, err := code.InjectErrors(encoded, cfg.ErrorRate, cfg.Source)
		if err != nil {
			return nil, err
		}

		candidate, corr, err := code.Decode(noisy)
		if err != nil {
			return nil, err
		}

		convErr := float64(candidate.Distance(current)) / code.MessageLength
		result.History = append(result.History, IterationRecord{
			Index:            iter,
			Input:            current,
			Encoded:          encoded,
			Noisy:            noisy,
			Output:           candidate,
			Detected:         corr.Detected,
			Position:         corr.Position,
			ConvergenceError: convErr,
		})

		result.Iterations = iter
		result.FinalError = convErr

		if convErr <= cfg.Tolerance {
			result.Final = candidate
			result.Converged = true

			break
		}

		if cfg.AdaptiveStep {
			candidate = damp(current, candidate, cfg.DampingFactor, cfg.Source)
		}
		current = candidate
		result.Final = current
	}

	result.ConvergenceRate, _ = convergenceRate(result.History)
	result.CorrectionEfficiency = correctionEfficiency(result.History)

	return result, nil
}

// damp reverts each changed bit of next back to its previous value with
// probability factor, independently per bit. Partial rejection of the
// proposed transition reduces oscillation between states that keep mapping
// onto each other.
func damp(prev, next code.DataWord, factor float64, src rng.Source) code.DataWord {
	for i := range next {
		if next[i] != prev[i] && src.Float64() < factor {
			next[i] = prev[i]
		}
	}

	return next
}
