// SPDX-License-Identifier: MIT

package lzav

import (
	"encoding/binary"
	"unsafe"
)

// Compress encodes src and returns a freshly allocated destination slice
// sized exactly to the bytes written.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	dst := make([]byte, CompressBound(len(src)))

	n, err := CompressInto(src, dst, opts)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// CompressInto encodes src into dst, returning the number of bytes
// written. dst must be at least CompressBound(len(src)) bytes and must
// not alias src. opts may be nil.
//
// The encoder never fails on inputs that satisfy the contract above; a
// 0 result paired with a nil error only occurs for an empty src.
// Contract violations return a non-nil error instead of silently
// returning 0.
func CompressInto(src, dst []byte, opts *CompressOptions) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	if buffersAlias(src, dst) {
		return 0, ErrAliasedBuffers
	}

	if len(dst) < CompressBound(len(src)) {
		return 0, ErrShortDst
	}

	dst[0] = byte(fmtCur<<4 | refMin)

	if len(src) <= litFin {
		return compressShort(src, dst), nil
	}

	var extBuf []byte
	if opts != nil {
		extBuf = opts.ExtBuf
	}

	seed := binary.LittleEndian.Uint32(src[0:4])
	ht := newHashTable(len(src), extBuf, seed)

	w := newBlockWriter(dst)
	w.op = 1

	mf := newMatchFinder(src, ht, w)
	mf.run()

	return w.op, nil
}

// compressShort implements the short-input fast path: a single literal
// header carrying the whole input, zero-padded to exactly 2+litFin
// bytes.
func compressShort(src, dst []byte) int {
	dst[1] = byte(len(src))
	copy(dst[2:2+len(src)], src)

	for i := 2 + len(src); i < 2+litFin; i++ {
		dst[i] = 0
	}

	return 2 + litFin
}

// buffersAlias reports whether a and b's backing memory overlaps. The
// core requires src and dst to be entirely separate buffers; this also
// catches partial overlap, which would corrupt the encoder's own output
// while it reads already-written bytes for literal copies.
func buffersAlias(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[0]))
	aEnd := uintptr(unsafe.Pointer(&a[len(a)-1]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	bEnd := uintptr(unsafe.Pointer(&b[len(b)-1]))
	return aStart <= bEnd && bStart <= aEnd
}
