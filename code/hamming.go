package code

import "fmt"

// Syndrome is the 3-bit parity-check result of a codeword. Value 0 means
// no detectable single error; values 1..7 are the 1-indexed position of a
// single flipped bit.
type Syndrome uint8

// Position returns the 1-indexed bit position the syndrome points at, or 0
// when the syndrome is clean.
func (s Syndrome) Position() int {
	return int(s)
}

// Correction reports what Decode did to recover a data word.
type Correction struct {
	// Detected is true when the syndrome was non-zero and a bit was flipped
	// back before extraction.
	Detected bool

	// Position is the 1-indexed position of the corrected bit, or 0 when no
	// correction was applied.
	Position int
}

// Encode maps a 4-bit data word to its 7-bit codeword.
//
// Parity bits are XOR-sums over fixed subsets of the data bits:
//
//	p1 = d1⊕d2⊕d4, p2 = d1⊕d3⊕d4, p3 = d2⊕d3⊕d4
//
// arranged as [p1, p2, d1, p3, d2, d3, d4]. Encoding is deterministic and
// has no side effects.
//
// Returns ErrInvalidInput if any bit value is not 0 or 1.
func Encode(data DataWord) (Codeword, error) {
	if !validBits(data[:]) {
		return Codeword{}, fmt.Errorf("%w: data word %v holds non-binary values", ErrInvalidInput, data[:])
	}

	d1, d2, d3, d4 := data[0], data[1], data[2], data[3]

	return Codeword{
		d1 ^ d2 ^ d4, // p1
		d1 ^ d3 ^ d4, // p2
		d1,
		d2 ^ d3 ^ d4, // p3
		d2,
		d3,
		d4,
	}, nil
}

// ComputeSyndrome evaluates the three parity checks of a codeword.
//
// s1 covers positions {1,3,5,7}, s2 covers {2,3,6,7}, s3 covers {4,5,6,7}
// (1-indexed); the syndrome value is s1 + 2·s2 + 4·s3.
//
// Returns ErrInvalidInput if any bit value is not 0 or 1.
func ComputeSyndrome(cw Codeword) (Syndrome, error) {
	if !validBits(cw[:]) {
		return 0, fmt.Errorf("%w: codeword %v holds non-binary values", ErrInvalidInput, cw[:])
	}

	s1 := cw[0] ^ cw[2] ^ cw[4] ^ cw[6]
	s2 := cw[1] ^ cw[2] ^ cw[5] ^ cw[6]
	s3 := cw[3] ^ cw[4] ^ cw[5] ^ cw[6]

	return Syndrome(s1 | s2<<1 | s3<<2), nil
}

// Decode recovers the data word from a codeword, correcting at most one
// flipped bit.
//
// A non-zero syndrome flips the indicated bit before the data bits are
// extracted from positions {3,5,6,7}, and the applied correction is
// reported. For a codeword with exactly one flipped bit this recovery is
// exact. With two or more flipped bits the syndrome points at the wrong
// position and the returned data word is undefined; that is the distance-3
// limit of the code, not a detectable condition.
//
// Returns ErrInvalidInput if any bit value is not 0 or 1.
func Decode(cw Codeword) (DataWord, Correction, error) {
	syndrome, err := ComputeSyndrome(cw)
	if err != nil {
		return DataWord{}, Correction{}, err
	}

	var corr Correction
	if pos := syndrome.Position(); pos != 0 {
		cw[pos-1] ^= 1
		corr = Correction{Detected: true, Position: pos}
	}

	return DataWord{cw[2], cw[4], cw[5], cw[6]}, corr, nil
}
