package trace

// bitWriter accumulates bits MSB-first into a byte slice. It is the
// write-side primitive of the packed record payload.
type bitWriter struct {
	buf      []byte
	bitBuf   uint64
	bitCount int
}

func newBitWriter(capacity int) *bitWriter {
	return &bitWriter{buf: make([]byte, 0, capacity)}
}

// writeBits appends the numBits least significant bits of value,
// most significant first.
func (w *bitWriter) writeBits(value uint64, numBits int) {
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	available := 64 - w.bitCount
	if numBits <= available {
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits
		if w.bitCount == 64 {
			w.flush()
		}

		return
	}

	// Split across the buffer boundary.
	highBits := numBits - available
	w.bitBuf = (w.bitBuf << available) | (value >> highBits)
	w.bitCount = 64
	w.flush()

	w.bitBuf = value & ((1 << highBits) - 1)
	w.bitCount = highBits
}

// flush drains the bit buffer into whole bytes, padding the final partial
// byte with zero bits.
func (w *bitWriter) flush() {
	if w.bitCount == 0 {
		return
	}

	aligned := w.bitBuf << (64 - w.bitCount)
	numBytes := (w.bitCount + 7) / 8
	for i := 0; i < numBytes; i++ {
		w.buf = append(w.buf, byte(aligned>>(56-i*8)))
	}

	w.bitBuf = 0
	w.bitCount = 0
}

// bytes flushes pending bits and returns the accumulated payload.
func (w *bitWriter) bytes() []byte {
	w.flush()

	return w.buf
}

// bitReader reads bits MSB-first from a byte slice, mirroring bitWriter.
type bitReader struct {
	data     []byte
	bytePos  int
	bitBuf   uint64
	bitCount int
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

// readBits reads numBits bits and returns them right-aligned.
func (r *bitReader) readBits(numBits int) (uint64, bool) {
	if numBits == 0 {
		return 0, true
	}

	var result uint64
	first := true
	for numBits > 0 {
		if r.bitCount == 0 {
			if !r.fill() {
				return 0, false
			}
		}

		take := numBits
		if take > r.bitCount {
			take = r.bitCount
		}

		chunk := r.bitBuf >> (64 - take)
		if first {
			result = chunk
			first = false
		} else {
			result = (result << take) | chunk
		}

		r.bitBuf <<= take
		r.bitCount -= take
		numBits -= take
	}

	return result, true
}

func (r *bitReader) fill() bool {
	if r.bytePos >= len(r.data) {
		return false
	}

	take := len(r.data) - r.bytePos
	if take > 8 {
		take = 8
	}

	r.bitBuf = 0
	for i := 0; i < take; i++ {
		r.bitBuf = (r.bitBuf << 8) | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	r.bitBuf <<= (8 - take) * 8
	r.bitCount = take * 8

	return true
}
