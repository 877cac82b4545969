package solver

import (
	"math"

	"github.com/arloliu/hamsim/code"
)

// IterationRecord is the snapshot of one encode-corrupt-decode step.
//
// Records are appended to the history of exactly one solve invocation and
// never mutated afterwards.
type IterationRecord struct {
	// Index is the 1-based iteration number.
	Index int

	// Input is the data word the iteration started from.
	Input code.DataWord

	// Encoded is the clean codeword produced from Input.
	Encoded code.Codeword

	// Noisy is the codeword after error injection.
	Noisy code.Codeword

	// Output is the data word recovered by the decoder.
	Output code.DataWord

	// Detected is true when the decoder corrected a bit.
	Detected bool

	// Position is the 1-indexed corrected bit position, 0 if none.
	Position int

	// ConvergenceError is the fractional Hamming distance between Output
	// and Input (changed bits / 4).
	ConvergenceError float64
}

// SolveResult is the outcome of one solve invocation. It is owned by the
// caller; no state is shared with later invocations.
type SolveResult struct {
	// Final is the last data word the solve produced.
	Final code.DataWord

	// Converged is true when the convergence error met the tolerance
	// within the iteration budget. False is a normal outcome, not an error.
	Converged bool

	// Iterations is the number of iterations performed.
	Iterations int

	// FinalError is the convergence error of the last iteration.
	FinalError float64

	// History is the full, append-only iteration record of the solve.
	History []IterationRecord

	// ConvergenceRate is the mean of -ln(err_i / err_(i-1)) over pairs of
	// consecutive non-zero convergence errors at iterations 3 and later.
	// Higher is faster decay; 0 when no such pair exists.
	ConvergenceRate float64

	// CorrectionEfficiency is the fraction of iterations in which the
	// decoder detected and corrected a corrupted bit.
	CorrectionEfficiency float64
}

// convergenceRate computes the mean negative log-ratio of consecutive
// non-zero convergence errors, skipping the first two iterations. The skip
// avoids divide-by-zero on instant convergence and the early transient
// before the iterate settles into its contraction regime.
func convergenceRate(history []IterationRecord) (rate float64, samples int) {
	sum := 0.0
	for i := range history {
		if history[i].Index < 3 {
			continue
		}

		prev := history[i-1].ConvergenceError
		cur := history[i].ConvergenceError
		if prev <= 0 || cur <= 0 {
			continue
		}

		sum += -math.Log(cur / prev)
		samples++
	}

	if samples == 0 {
		return 0, 0
	}

	return sum / float64(samples), samples
}

// correctionEfficiency computes the share of iterations in which the decoder
// applied a correction.
func correctionEfficiency(history []IterationRecord) float64 {
	if len(history) == 0 {
		return 0
	}

	detected := 0
	for i := range history {
		if history[i].Detected {
			detected++
		}
	}

	return float64(detected) / float64(len(history))
}
