package trace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hamsim/code"
	"github.com/arloliu/hamsim/endian"
	"github.com/arloliu/hamsim/format"
	"github.com/arloliu/hamsim/rng"
	"github.com/arloliu/hamsim/solver"
)

// solveHistory produces a real iteration history to round-trip.
func solveHistory(t *testing.T, seed uint64, rate float64) []solver.IterationRecord {
	t.Helper()

	result, err := solver.Solve(code.DataWord{1, 0, 1, 1},
		solver.WithErrorRate(rate),
		solver.WithMaxIterations(100),
		solver.WithSource(rng.NewSeeded(seed)),
	)
	require.NoError(t, err)
	require.NotEmpty(t, result.History)

	return result.History
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	history := solveHistory(t, 42, 0.25)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			data, err := Encode(history, WithCompression(compression))
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, history, decoded)
		})
	}
}

func TestEncodeDecode_BigEndianHeader(t *testing.T) {
	history := solveHistory(t, 7, 0.1)

	data, err := Encode(history, WithBigEndian())
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, history, decoded)
}

func TestEncode_EmptyHistory(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	require.Len(t, data, headerSize)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestEncode_PackedSize(t *testing.T) {
	history := solveHistory(t, 11, 1.0)
	require.Len(t, history, 100)

	data, err := Encode(history)
	require.NoError(t, err)

	// 100 records at 28 bits pack into 350 payload bytes.
	require.Equal(t, headerSize+350, len(data))
}

func TestEncode_LongHistoryCompresses(t *testing.T) {
	// A saturated-noise run oscillates between two states, so its packed
	// records repeat and compress well.
	history := solveHistory(t, 13, 1.0)

	raw, err := Encode(history)
	require.NoError(t, err)

	compressed, err := Encode(history, WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.Less(t, len(compressed), len(raw))
}

func TestEncode_InvalidHistory(t *testing.T) {
	valid := solveHistory(t, 3, 0.2)

	tests := []struct {
		name   string
		mutate func(history []solver.IterationRecord)
	}{
		{"non-contiguous index", func(h []solver.IterationRecord) { h[0].Index = 5 }},
		{"detected without position", func(h []solver.IterationRecord) { h[0].Detected = true; h[0].Position = 0 }},
		{"non-binary input", func(h []solver.IterationRecord) { h[0].Input[1] = 2 }},
		{"non-binary codeword", func(h []solver.IterationRecord) { h[0].Noisy[6] = 9 }},
		{"position out of range", func(h []solver.IterationRecord) { h[0].Position = 8 }},
		{"unquantized error", func(h []solver.IterationRecord) { h[0].ConvergenceError = 0.3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := make([]solver.IterationRecord, len(valid))
			copy(history, valid)
			tt.mutate(history)

			_, err := Encode(history)

			require.ErrorIs(t, err, code.ErrInvalidInput)
		})
	}
}

func TestEncode_InvalidCompression(t *testing.T) {
	_, err := Encode(nil, WithCompression(format.CompressionType(0x7F)))

	require.Error(t, err)
}

func TestDecode_InvalidData(t *testing.T) {
	valid, err := Encode(solveHistory(t, 9, 0.2))
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", valid[:4]},
		{"bad magic", append([]byte{'X', 'X'}, valid[2:]...)},
		{"bad version", append([]byte{'H', 'T', 0xFF}, valid[3:]...)},
		{"bad compression flag", append([]byte{'H', 'T', format.TraceVersion, 0x07}, valid[4:]...)},
		{"truncated payload", valid[:len(valid)-3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)

			require.ErrorIs(t, err, ErrInvalidTrace)
		})
	}
}

func TestDecode_OversizedRecordCount(t *testing.T) {
	// The header count is attacker-controlled: a maximal claim on an empty
	// payload must be rejected before any record allocation, not trusted.
	data := []byte{'H', 'T', format.TraceVersion, 0x01, 0xFF, 0xFF, 0xFF, 0xFF}

	history, err := Decode(data)

	require.ErrorIs(t, err, ErrInvalidTrace)
	require.Nil(t, history)
}

func TestDecode_CountExceedsPayload(t *testing.T) {
	// count=1 needs 4 payload bytes; none follow the header.
	data := []byte{'H', 'T', format.TraceVersion, 0x01, 0x01, 0x00, 0x00, 0x00}

	_, err := Decode(data)

	require.ErrorIs(t, err, ErrInvalidTrace)
}

func TestEncode_DefaultUsesNativeByteOrder(t *testing.T) {
	history := solveHistory(t, 21, 0.2)

	data, err := Encode(history)
	require.NoError(t, err)

	if endian.IsNativeBigEndian() {
		require.NotZero(t, data[3]&0x08)
	} else {
		require.Zero(t, data[3]&0x08)
	}

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, history, decoded)
}

func TestBitWriterReader_RoundTrip(t *testing.T) {
	writer := newBitWriter(16)
	writer.writeBits(0b1011, 4)
	writer.writeBits(0b0110011, 7)
	writer.writeBits(0, 3)
	writer.writeBits(0xFFFFFFFFFFFFFFFF, 64)
	writer.writeBits(0b1, 1)

	reader := newBitReader(writer.bytes())

	v, ok := reader.readBits(4)
	require.True(t, ok)
	require.Equal(t, uint64(0b1011), v)

	v, ok = reader.readBits(7)
	require.True(t, ok)
	require.Equal(t, uint64(0b0110011), v)

	v, ok = reader.readBits(3)
	require.True(t, ok)
	require.Equal(t, uint64(0), v)

	v, ok = reader.readBits(64)
	require.True(t, ok)
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), v)

	v, ok = reader.readBits(1)
	require.True(t, ok)
	require.Equal(t, uint64(1), v)
}

func TestBitReader_Exhaustion(t *testing.T) {
	reader := newBitReader([]byte{0xAB})

	_, ok := reader.readBits(8)
	require.True(t, ok)

	_, ok = reader.readBits(1)
	require.False(t, ok)
}
