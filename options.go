// SPDX-License-Identifier: MIT

package lzav

// CompressOptions configures a single Compress/CompressInto call.
//
// ExtBuf, if non-nil, is used as hash-table scratch memory instead of an
// internal allocation. A too-small ExtBuf is not an error: the encoder
// silently falls through to its own allocation. ExtBuf is not safe to
// share across concurrent calls.
type CompressOptions struct {
	ExtBuf []byte
}

// DefaultCompressOptions returns options with no external hash buffer.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// DecompressOptions configures decompression. OutLen is required: it is
// the expected decompressed size.
type DecompressOptions struct {
	OutLen int
}

// DefaultDecompressOptions returns options with the given expected
// output length.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}
