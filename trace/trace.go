package trace

import (
	"errors"
	"fmt"

	"github.com/arloliu/hamsim/code"
	"github.com/arloliu/hamsim/compress"
	"github.com/arloliu/hamsim/endian"
	"github.com/arloliu/hamsim/format"
	"github.com/arloliu/hamsim/internal/options"
	"github.com/arloliu/hamsim/solver"
)

// ErrInvalidTrace indicates bytes that are not a well-formed trace: wrong
// magic, unknown version, truncated payload, or a corrupted record stream.
var ErrInvalidTrace = errors.New("trace: invalid trace data")

const (
	headerSize = 8

	magic0 = 'H'
	magic1 = 'T'

	// recordBits is the packed width of one iteration record:
	// 4 input + 7 encoded + 7 noisy + 4 output + 3 position + 3 error.
	recordBits = 28

	compressionMask = 0x07
	bigEndianFlag   = 0x08
)

// encoderConfig holds the trace encoder configuration.
type encoderConfig struct {
	compression format.CompressionType
	engine      endian.EndianEngine
	bigEndian   bool
}

// Option represents a functional option for configuring the trace encoder.
type Option = options.Option[*encoderConfig]

// WithCompression selects the payload compression. Defaults to None; long
// histories benefit from Zstd, hot paths from S2.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *encoderConfig) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = compression
			return nil
		default:
			return fmt.Errorf("invalid trace compression: %v", compression)
		}
	})
}

// WithLittleEndian encodes header integers little-endian. Without an
// explicit endianness option the encoder follows the host's native byte
// order.
func WithLittleEndian() Option {
	return options.NoError(func(c *encoderConfig) {
		c.engine = endian.GetLittleEndianEngine()
		c.bigEndian = false
	})
}

// WithBigEndian encodes header integers big-endian. It rarely needs to be
// used unless interoperability with big-endian consumers is required.
func WithBigEndian() Option {
	return options.NoError(func(c *encoderConfig) {
		c.engine = endian.GetBigEndianEngine()
		c.bigEndian = true
	})
}

// Encode serializes an iteration history into the binary trace format.
//
// The history must be the contiguous record sequence of a single solve
// (indices 1..n in order) with binary-valued words; anything else fails
// with code.ErrInvalidInput before any bytes are produced.
func Encode(history []solver.IterationRecord, opts ...Option) ([]byte, error) {
	cfg := encoderConfig{
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
	// Default to the host's byte order; the flag records the choice either
	// way, so traces stay portable across hosts.
	if endian.IsNativeBigEndian() {
		cfg.engine = endian.GetBigEndianEngine()
		cfg.bigEndian = true
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := validateHistory(history); err != nil {
		return nil, err
	}

	writer := newBitWriter(len(history)*recordBits/8 + 1)
	for i := range history {
		packRecord(writer, &history[i])
	}

	codec, err := compress.CreateCodec(cfg.compression, "trace")
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(writer.bytes())
	if err != nil {
		return nil, err
	}

	flag := byte(cfg.compression) & compressionMask
	if cfg.bigEndian {
		flag |= bigEndianFlag
	}

	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, magic0, magic1, format.TraceVersion, flag)
	out = cfg.engine.AppendUint32(out, uint32(len(history)))
	out = append(out, payload...)

	return out, nil
}

// Decode restores the iteration history from an encoded trace.
//
// Record indices are reconstructed from record order, starting at 1.
func Decode(data []byte) ([]solver.IterationRecord, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidTrace, len(data), headerSize)
	}
	if data[0] != magic0 || data[1] != magic1 {
		return nil, fmt.Errorf("%w: bad magic", ErrInvalidTrace)
	}
	if data[2] != format.TraceVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidTrace, data[2])
	}

	flag := data[3]
	engine := endian.GetLittleEndianEngine()
	if flag&bigEndianFlag != 0 {
		engine = endian.GetBigEndianEngine()
	}

	codec, err := compress.GetCodec(format.CompressionType(flag & compressionMask))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTrace, err)
	}

	count := engine.Uint32(data[4:8])
	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTrace, err)
	}

	// The header count is untrusted input. Bound it against the payload
	// before sizing any allocation: count records need ceil(count*28/8)
	// payload bytes.
	needed := (uint64(count)*recordBits + 7) / 8
	if uint64(len(payload)) < needed {
		return nil, fmt.Errorf("%w: payload %d bytes, %d records need %d",
			ErrInvalidTrace, len(payload), count, needed)
	}

	reader := newBitReader(payload)
	history := make([]solver.IterationRecord, 0, count)
	for i := 0; i < int(count); i++ {
		record, ok := unpackRecord(reader, i+1)
		if !ok {
			return nil, fmt.Errorf("%w: truncated payload at record %d of %d", ErrInvalidTrace, i+1, count)
		}
		history = append(history, record)
	}

	return history, nil
}

func validateHistory(history []solver.IterationRecord) error {
	for i := range history {
		rec := &history[i]
		if rec.Index != i+1 {
			return fmt.Errorf("%w: record %d has index %d, want %d", code.ErrInvalidInput, i, rec.Index, i+1)
		}
		if _, err := code.NewDataWord(rec.Input[:]); err != nil {
			return err
		}
		if _, err := code.NewDataWord(rec.Output[:]); err != nil {
			return err
		}
		if _, err := code.NewCodeword(rec.Encoded[:]); err != nil {
			return err
		}
		if _, err := code.NewCodeword(rec.Noisy[:]); err != nil {
			return err
		}
		if rec.Position < 0 || rec.Position > code.BlockLength {
			return fmt.Errorf("%w: record %d position %d outside [0, 7]", code.ErrInvalidInput, i, rec.Position)
		}
		// Detected is not stored; it must be recoverable from Position.
		if rec.Detected != (rec.Position != 0) {
			return fmt.Errorf("%w: record %d detected=%v with position %d",
				code.ErrInvalidInput, i, rec.Detected, rec.Position)
		}
		if errNumerator(rec.ConvergenceError) < 0 {
			return fmt.Errorf("%w: record %d convergence error %v is not a quarter fraction",
				code.ErrInvalidInput, i, rec.ConvergenceError)
		}
	}

	return nil
}

// errNumerator maps a fractional Hamming distance over 4 bits to its
// numerator 0..4, or -1 when the value is not an exact quarter fraction.
func errNumerator(convErr float64) int {
	scaled := convErr * code.MessageLength
	numerator := int(scaled)
	if float64(numerator) != scaled || numerator < 0 || numerator > code.MessageLength {
		return -1
	}

	return numerator
}

func packRecord(w *bitWriter, rec *solver.IterationRecord) {
	w.writeBits(packBits(rec.Input[:]), code.MessageLength)
	w.writeBits(packBits(rec.Encoded[:]), code.BlockLength)
	w.writeBits(packBits(rec.Noisy[:]), code.BlockLength)
	w.writeBits(packBits(rec.Output[:]), code.MessageLength)
	w.writeBits(uint64(rec.Position), 3)
	w.writeBits(uint64(errNumerator(rec.ConvergenceError)), 3)
}

func unpackRecord(r *bitReader, index int) (solver.IterationRecord, bool) {
	var rec solver.IterationRecord

	input, ok1 := r.readBits(code.MessageLength)
	encoded, ok2 := r.readBits(code.BlockLength)
	noisy, ok3 := r.readBits(code.BlockLength)
	output, ok4 := r.readBits(code.MessageLength)
	position, ok5 := r.readBits(3)
	numerator, ok6 := r.readBits(3)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return rec, false
	}

	rec.Index = index
	unpackBits(input, rec.Input[:])
	unpackBits(encoded, rec.Encoded[:])
	unpackBits(noisy, rec.Noisy[:])
	unpackBits(output, rec.Output[:])
	rec.Position = int(position)
	rec.Detected = rec.Position != 0
	rec.ConvergenceError = float64(numerator) / code.MessageLength

	return rec, true
}

// packBits packs validated bits into a word, first bit most significant.
func packBits(bitvals []byte) uint64 {
	var v uint64
	for _, b := range bitvals {
		v = v<<1 | uint64(b)
	}

	return v
}

func unpackBits(v uint64, bitvals []byte) {
	for i := len(bitvals) - 1; i >= 0; i-- {
		bitvals[i] = byte(v & 1)
		v >>= 1
	}
}
