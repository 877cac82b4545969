// Package hamsim provides a small, self-contained simulation engine
// combining a Hamming(7,4) block code with an iterative consistency solver:
// a discrete fixed-point search over repeated encode → corrupt → decode
// cycles of a 4-bit state.
//
// # Core Features
//
//   - Hamming(7,4) encoding with syndrome-based single-error correction
//   - Reproducible bit-flip noise injection through injectable random sources
//   - Fixed-point solver with tolerance, damping, and full iteration history
//   - Concurrent batch runner with aggregate outcome statistics
//   - Compact binary trace format for iteration histories (None/Zstd/S2/LZ4)
//
// # Basic Usage
//
// Encoding and decoding a 4-bit word:
//
//	import "github.com/arloliu/hamsim"
//
//	codeword, _ := hamsim.Encode([]byte{1, 0, 1, 1})
//	data, corr, _ := hamsim.Decode(codeword)
//
// Solving for a stable word under noise:
//
//	result, _ := hamsim.Solve([]byte{1, 0, 1, 1},
//	    solver.WithErrorRate(0.1),
//	    solver.WithSource(rng.NewSeeded(42)),
//	)
//	fmt.Println(result.Converged, result.Iterations, result.Final)
//
// Sampling outcome distributions over many runs:
//
//	batch, _ := hamsim.RunBatch(1000,
//	    solver.WithSolveOptions(solver.WithErrorRate(0.1)),
//	)
//	fmt.Println(batch.SuccessRate, batch.Iterations.Mean)
//
// # Package Structure
//
// This package provides convenient slice-based wrappers around the domain
// packages, simplifying the most common use cases. For fine-grained control
// use the code, solver, and trace packages directly.
package hamsim

import (
	"github.com/arloliu/hamsim/code"
	"github.com/arloliu/hamsim/solver"
)

// Encode maps 4 data bits to their 7-bit Hamming(7,4) codeword.
//
// Returns code.ErrInvalidInput unless bits holds exactly 4 values of 0 or 1.
func Encode(bitvals []byte) ([]byte, error) {
	data, err := code.NewDataWord(bitvals)
	if err != nil {
		return nil, err
	}

	cw, err := code.Encode(data)
	if err != nil {
		return nil, err
	}

	return cw.Bits(), nil
}

// Decode recovers 4 data bits from a 7-bit codeword, correcting at most one
// flipped bit, and reports the applied correction.
//
// Returns code.ErrInvalidInput unless bits holds exactly 7 values of 0 or 1.
func Decode(bitvals []byte) ([]byte, code.Correction, error) {
	cw, err := code.NewCodeword(bitvals)
	if err != nil {
		return nil, code.Correction{}, err
	}

	data, corr, err := code.Decode(cw)
	if err != nil {
		return nil, code.Correction{}, err
	}

	return data.Bits(), corr, nil
}

// Solve searches for a 4-bit word stable under one encode → corrupt →
// decode cycle, starting from the given bits. See solver.Solve for the
// configuration options and termination semantics.
func Solve(bitvals []byte, opts ...solver.Option) (*solver.SolveResult, error) {
	initial, err := code.NewDataWord(bitvals)
	if err != nil {
		return nil, err
	}

	return solver.Solve(initial, opts...)
}

// RunBatch performs count independent solves with randomized initial words
// and reduces their outcomes into aggregate statistics. See solver.RunBatch.
func RunBatch(count int, opts ...solver.BatchOption) (solver.BatchStatistics, error) {
	return solver.RunBatch(count, opts...)
}
