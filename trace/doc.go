// Package trace provides a compact binary codec for solver iteration
// histories.
//
// A solve emits one IterationRecord per step; visualizers and analysis
// harnesses often want to retain or ship thousands of them per batch. The
// trace format packs each record into 28 bits (input word, clean and noisy
// codewords, decoded output, correction position, quantized convergence
// error) and optionally compresses the payload, which shrinks long
// near-converged histories dramatically.
//
// # Format
//
// An encoded trace is a fixed 8-byte header followed by the payload:
//
//	bytes 0-1  magic "HT"
//	byte  2    format version
//	byte  3    flag: bits 0-2 compression type, bit 3 big-endian header ints
//	bytes 4-7  record count (uint32, per the flag's byte order)
//	bytes 8..  payload: bit-packed records, compressed per the flag
//
// Record indices are not stored; histories are contiguous from iteration 1,
// so they are reconstructed from record order. The convergence error of a
// 4-bit state is always a quarter fraction and round-trips exactly through
// its 3-bit numerator.
//
// # Usage
//
//	data, err := trace.Encode(result.History,
//	    trace.WithCompression(format.CompressionZstd),
//	)
//	...
//	history, err := trace.Decode(data)
//
// The emitted bytes are the caller's to store or transmit; this package
// performs no I/O.
package trace
