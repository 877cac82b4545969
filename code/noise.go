package code

import (
	"fmt"
	"math"

	"github.com/arloliu/hamsim/rng"
)

// InjectErrors flips each of the 7 codeword bits independently with
// probability rate, drawing from the supplied source.
//
// The boundary rates are exact, not probabilistic: rate 0 returns the input
// unchanged and rate 1 returns its bitwise complement. The only side effect
// is the entropy consumed from src (one draw per bit position, at every
// rate, so call sequences stay aligned across runs with the same seed).
//
// Returns ErrInvalidInput for non-binary codeword bits and
// ErrInvalidParameter for a rate outside [0, 1] or a nil source.
func InjectErrors(cw Codeword, rate float64, src rng.Source) (Codeword, error) {
	if !validBits(cw[:]) {
		return Codeword{}, fmt.Errorf("%w: codeword %v holds non-binary values", ErrInvalidInput, cw[:])
	}
	if rate < 0 || rate > 1 || math.IsNaN(rate) {
		return Codeword{}, fmt.Errorf("%w: error rate %v outside [0, 1]", ErrInvalidParameter, rate)
	}
	if src == nil {
		return Codeword{}, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}

	for i := range cw {
		// Float64 is in [0, 1), so rate 1 always flips and rate 0 never does.
		if src.Float64() < rate {
			cw[i] ^= 1
		}
	}

	return cw, nil
}
