/*
Package doboz implements the Doboz compression format: an LZ77-family
byte-stream compressor tuned for fast decompression at a ratio close to
zlib's maximum setting.

The match finder builds a binary search tree per hash bucket over a cyclic
2 MiB dictionary window; the encoder applies one step of lazy evaluation
before committing to a match, and falls back to storing the input verbatim
when the compressed output would grow past MaxCompressedSize (the size of
the stored form).

# Compress

	dst := make([]byte, doboz.MaxCompressedSize(len(src)))
	n, err := doboz.Compress(src, dst)
	compressed := dst[:n]

For repeated calls, reuse a Compressor to avoid repeatedly allocating its
dictionary arrays:

	c := doboz.NewCompressor()
	defer c.Release()
	n, err := c.Compress(src, dst)

# Decompress

	out := make([]byte, info.UncompressedSize)
	err := doboz.Decompress(compressed, out)

CompressionInfo parses a container's header (sizes, version) without
decompressing its payload.
*/
package doboz
