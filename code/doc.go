// Package code implements the Hamming(7,4) systematic block code used by the
// consistency solver: deterministic encoding of 4-bit data words into 7-bit
// codewords, syndrome-based single-error correction, and randomized
// bit-flip noise injection.
//
// # Codeword Layout
//
// Codewords are laid out with parity bits interleaved at power-of-two
// positions (1-indexed):
//
//	position: 1  2  3  4  5  6  7
//	bit:      p1 p2 d1 p3 d2 d3 d4
//
// where p1 = d1⊕d2⊕d4, p2 = d1⊕d3⊕d4, p3 = d2⊕d3⊕d4. The decoder computes
// a 3-bit syndrome from the parity-check sets {1,3,5,7}, {2,3,6,7} and
// {4,5,6,7}; a non-zero syndrome value is exactly the 1-indexed position of
// a single flipped bit.
//
// # Guarantees and Limits
//
// The code has minimum distance 3: any single-bit error is corrected
// exactly, and the flipped position is reported. Two or more simultaneous
// bit errors exceed the code's correction radius; Decode still returns a
// valid data word, but which word is undefined. Callers that need
// multi-error resilience need a stronger code, not this package.
//
// # Randomness
//
// InjectErrors never touches global random state; callers supply an
// rng.Source, which is what makes noisy simulations reproducible under a
// fixed seed.
package code
