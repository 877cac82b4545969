// Package solver searches for data words that are stable under one full
// encode → corrupt → decode cycle of the Hamming(7,4) engine, a discrete
// fixed-point search over 4-bit states.
//
// # Single Solve
//
// Solve drives the cycle from an initial data word until the fractional
// Hamming distance between successive iterates drops to the configured
// tolerance or the iteration budget runs out:
//
//	result, err := solver.Solve(code.DataWord{1, 0, 1, 1},
//	    solver.WithErrorRate(0.1),
//	    solver.WithMaxIterations(50),
//	    solver.WithSource(rng.NewSeeded(42)),
//	)
//
// Exhausting the budget is a normal outcome, reported through
// SolveResult.Converged, never as an error. Errors are reserved for
// malformed inputs and out-of-range configuration, both rejected before the
// first iteration.
//
// Every solve owns its iteration history exclusively; nothing is shared
// across invocations. With AdaptiveStep enabled, proposed bit changes are
// probabilistically reverted (damping) to break oscillation; the damping
// draws come from the same injected Source as the noise, so a fixed seed
// fixes the complete outcome.
//
// # Batches
//
// RunBatch repeats independent solves with randomized initial words and a
// jittered error rate, then reduces the outcomes into aggregate
// distributions:
//
//	batchStats, err := solver.RunBatch(1000,
//	    solver.WithSolveOptions(solver.WithErrorRate(0.1)),
//	    solver.WithWorkers(8),
//	    solver.WithBatchSeed(7),
//	)
//
// The reduction itself is the caller-owned Accumulator, which can also be
// fed by hand when solves are driven externally.
package solver
