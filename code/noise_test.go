package code

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hamsim/rng"
)

func TestInjectErrors_RateZeroIsIdentity(t *testing.T) {
	src := rng.NewSeeded(1)

	for _, data := range allDataWords() {
		cw, err := Encode(data)
		require.NoError(t, err)

		noisy, err := InjectErrors(cw, 0.0, src)

		require.NoError(t, err)
		require.Equal(t, cw, noisy)
	}
}

func TestInjectErrors_RateOneIsComplement(t *testing.T) {
	src := rng.NewSeeded(1)

	for _, data := range allDataWords() {
		cw, err := Encode(data)
		require.NoError(t, err)

		noisy, err := InjectErrors(cw, 1.0, src)
		require.NoError(t, err)

		for i := range cw {
			require.Equal(t, cw[i]^1, noisy[i])
		}
	}
}

func TestInjectErrors_Deterministic(t *testing.T) {
	cw, err := Encode(DataWord{1, 0, 1, 1})
	require.NoError(t, err)

	a, err := InjectErrors(cw, 0.5, rng.NewSeeded(99))
	require.NoError(t, err)
	b, err := InjectErrors(cw, 0.5, rng.NewSeeded(99))
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestInjectErrors_FlipFrequency(t *testing.T) {
	// At rate 0.3 over many trials the observed flip frequency per position
	// concentrates around 0.3.
	const (
		rate   = 0.3
		trials = 20000
	)

	src := rng.NewSeeded(7)
	cw, err := Encode(DataWord{0, 1, 1, 0})
	require.NoError(t, err)

	flips := make([]int, BlockLength)
	for range trials {
		noisy, err := InjectErrors(cw, rate, src)
		require.NoError(t, err)

		for i := range cw {
			if noisy[i] != cw[i] {
				flips[i]++
			}
		}
	}

	for pos, count := range flips {
		freq := float64(count) / trials
		require.InDeltaf(t, rate, freq, 0.02, "position %d", pos+1)
	}
}

func TestInjectErrors_InvalidRate(t *testing.T) {
	cw, err := Encode(DataWord{0, 0, 0, 0})
	require.NoError(t, err)

	for _, rate := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := InjectErrors(cw, rate, rng.NewSeeded(1))

		require.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestInjectErrors_NilSource(t *testing.T) {
	cw, err := Encode(DataWord{0, 0, 0, 0})
	require.NoError(t, err)

	_, err = InjectErrors(cw, 0.5, nil)

	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestInjectErrors_NonBinaryCodeword(t *testing.T) {
	_, err := InjectErrors(Codeword{0, 1, 2, 0, 0, 1, 1}, 0.5, rng.NewSeeded(1))

	require.ErrorIs(t, err, ErrInvalidInput)
}
