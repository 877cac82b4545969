package trace

import (
	"testing"

	"github.com/arloliu/hamsim/code"
	"github.com/arloliu/hamsim/format"
	"github.com/arloliu/hamsim/rng"
	"github.com/arloliu/hamsim/solver"
)

func benchHistory(b *testing.B) []solver.IterationRecord {
	b.Helper()

	result, err := solver.Solve(code.DataWord{1, 0, 1, 1},
		solver.WithErrorRate(1.0),
		solver.WithMaxIterations(100),
		solver.WithSource(rng.NewSeeded(1)),
	)
	if err != nil {
		b.Fatal(err)
	}

	return result.History
}

func BenchmarkEncode_Raw(b *testing.B) {
	history := benchHistory(b)
	b.ResetTimer()
	for b.Loop() {
		_, _ = Encode(history)
	}
}

func BenchmarkEncode_Zstd(b *testing.B) {
	history := benchHistory(b)
	b.ResetTimer()
	for b.Loop() {
		_, _ = Encode(history, WithCompression(format.CompressionZstd))
	}
}

func BenchmarkDecode(b *testing.B) {
	history := benchHistory(b)
	data, err := Encode(history)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for b.Loop() {
		_, _ = Decode(data)
	}
}
