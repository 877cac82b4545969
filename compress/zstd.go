package compress

// ZstdCompressor provides Zstandard compression for trace payloads.
//
// Zstd gives the best ratio of the built-in codecs and is the right choice
// for traces that are retained or shipped off-host, such as the iteration
// histories of large batch runs kept for later analysis.
//
// Two implementations exist behind build tags: a cgo-backed one using
// valyala/gozstd and a pure-Go one using klauspost/compress/zstd. Both
// produce interoperable Zstandard frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
