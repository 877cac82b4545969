// Package stats provides the descriptive statistics used by the batch
// runner to reduce per-solve outcomes into aggregate distributions.
package stats

import (
	"math"
	"sort"
)

// Summary describes the distribution of a sample.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// Summarize computes the summary statistics of the given sample.
//
// StdDev is the population standard deviation. The median of an even-sized
// sample is the mean of its two middle values. An empty sample yields a
// zero Summary.
func Summarize(sample []float64) Summary {
	if len(sample) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	variance := 0.0
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(sorted))

	return Summary{
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: median(sorted),
	}
}

// Mean computes the arithmetic mean of the sample, or 0 for an empty sample.
func Mean(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range sample {
		sum += v
	}

	return sum / float64(len(sample))
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}
