// SPDX-License-Identifier: MIT

/*
Package lzav implements the LZAV in-memory byte-stream compression codec:
a single-shot compressor that maps a source buffer to a compact,
self-describing block stream, and a decompressor that reconstructs the
original bytes while rejecting malformed input without out-of-bounds
access.

The format is a sliding-window LZ77 variant with a bit-packed
variable-length block encoder and an "offset-carry" trick that steals
two low bits of a reference's offset into a previously written header
byte. Encoded bytes are byte-exact across conforming encoders; only the
decoder is required to be stable across revisions of this package.

# Compress

	out, err := lzav.Compress(data, nil)
	out, err := lzav.Compress(data, &lzav.CompressOptions{ExtBuf: scratch})

CompressInto lets the caller own the destination buffer (sized via
CompressBound) and an optional external hash-table scratch buffer:

	dst := make([]byte, lzav.CompressBound(len(data)))
	n, err := lzav.CompressInto(data, dst, nil)

# Decompress

OutLen is required (use DecompressOptions):

	out, err := lzav.Decompress(compressed, lzav.DefaultDecompressOptions(expectedLen))

To get the number of input bytes consumed (e.g. for back-to-back
compressed blocks):

	out, nRead, err := lzav.DecompressN(compressed, lzav.DefaultDecompressOptions(expectedLen))
	// advance: compressed = compressed[nRead:]

To reuse caller-managed output memory:

	dst := make([]byte, expectedLen)
	out, err := lzav.DecompressInto(compressed, dst)

From an io.Reader of known decompressed size:

	out, err := lzav.DecompressFromReader(r, lzav.DefaultDecompressOptions(expectedLen))
*/
package lzav
