// Package compress provides the compression codecs used by the hamsim trace
// format.
//
// Trace payloads are bit-packed iteration records. They are small and highly
// repetitive (a converging solve repeats near-identical words for many
// iterations), which makes them compress well with fast general-purpose
// codecs. Four codecs are supported:
//
//   - None: passthrough, for short traces where codec overhead dominates
//   - Zstd: best ratio, preferred for retained traces
//   - S2: fastest, preferred for hot paths
//   - LZ4: balanced block compression
//
// Codecs are selected through format.CompressionType and created with
// CreateCodec or fetched from the built-in set with GetCodec.
package compress
