package code

import (
	"fmt"
	"math/bits"
)

// Code parameters of Hamming(7,4). These are structural constants of the
// code, not tunables.
const (
	// BlockLength is the number of bits in a codeword.
	BlockLength = 7

	// MessageLength is the number of information bits in a data word.
	MessageLength = 4

	// MinDistance is the minimum Hamming distance between any two distinct
	// valid codewords. Distance 3 corrects one error and detects two.
	MinDistance = 3

	// CodewordCount is the number of valid codewords (2^MessageLength).
	CodewordCount = 16
)

// Rate returns the code rate (information bits per transmitted bit).
func Rate() float64 {
	return float64(MessageLength) / float64(BlockLength)
}

// DataWord is an ordered sequence of exactly 4 bits. The fixed-size array
// makes length errors impossible past the constructor; bit values are
// validated at the encode boundary.
//
// DataWords are values: compared with ==, never shared mutably.
type DataWord [MessageLength]byte

// Codeword is an ordered sequence of exactly 7 bits in the layout
// [p1, p2, d1, p3, d2, d3, d4] (see the package documentation).
type Codeword [BlockLength]byte

// NewDataWord constructs a DataWord from a bit slice.
//
// Returns ErrInvalidInput if the slice does not hold exactly 4 bits or any
// value is not 0 or 1.
func NewDataWord(bitvals []byte) (DataWord, error) {
	var d DataWord
	if len(bitvals) != MessageLength {
		return d, fmt.Errorf("%w: data word needs %d bits, got %d", ErrInvalidInput, MessageLength, len(bitvals))
	}
	for i, b := range bitvals {
		if b > 1 {
			return d, fmt.Errorf("%w: data bit %d is %d, want 0 or 1", ErrInvalidInput, i+1, b)
		}
		d[i] = b
	}

	return d, nil
}

// NewCodeword constructs a Codeword from a bit slice.
//
// Returns ErrInvalidInput if the slice does not hold exactly 7 bits or any
// value is not 0 or 1.
func NewCodeword(bitvals []byte) (Codeword, error) {
	var c Codeword
	if len(bitvals) != BlockLength {
		return c, fmt.Errorf("%w: codeword needs %d bits, got %d", ErrInvalidInput, BlockLength, len(bitvals))
	}
	for i, b := range bitvals {
		if b > 1 {
			return c, fmt.Errorf("%w: code bit %d is %d, want 0 or 1", ErrInvalidInput, i+1, b)
		}
		c[i] = b
	}

	return c, nil
}

// Bits returns the bits as a freshly allocated slice.
func (d DataWord) Bits() []byte {
	out := make([]byte, MessageLength)
	copy(out, d[:])

	return out
}

// Bits returns the bits as a freshly allocated slice.
func (c Codeword) Bits() []byte {
	out := make([]byte, BlockLength)
	copy(out, c[:])

	return out
}

// Distance returns the Hamming distance to another data word.
func (d DataWord) Distance(other DataWord) int {
	return bits.OnesCount8(packWord(d[:]) ^ packWord(other[:]))
}

// Distance returns the Hamming distance to another codeword.
func (c Codeword) Distance(other Codeword) int {
	return bits.OnesCount8(packWord(c[:]) ^ packWord(other[:]))
}

// String renders the bits most-significant-first, e.g. "1011".
func (d DataWord) String() string {
	return bitString(d[:])
}

// String renders the bits most-significant-first, e.g. "0110011".
func (c Codeword) String() string {
	return bitString(c[:])
}

// validBits reports whether every bit value is 0 or 1.
func validBits(bitvals []byte) bool {
	for _, b := range bitvals {
		if b > 1 {
			return false
		}
	}

	return true
}

// packWord packs up to 8 bits into a byte, first bit in the MSB position.
// Bit values must already be validated.
func packWord(bitvals []byte) uint8 {
	var v uint8
	for _, b := range bitvals {
		v = v<<1 | b
	}

	return v
}

func bitString(bitvals []byte) string {
	out := make([]byte, len(bitvals))
	for i, b := range bitvals {
		out[i] = '0' + b
	}

	return string(out)
}
