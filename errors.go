// SPDX-License-Identifier: MIT

package lzav

import "errors"

// Decoder error codes. Negative values match the codec's own
// error-code table; CodeOf recovers them from a returned error.
const (
	codeParams      = -1
	codeSrcOOB      = -2
	codeDstOOB      = -3
	codeRefOOB      = -4
	codeDstLen      = -5
	codeUnknownFmt  = -6
)

// Sentinel decoder errors, one per error code. Use errors.Is to test for
// a specific one.
var (
	// ErrParams is returned for null/invalid parameters: srcl < 0, dstl <= 0
	// when srcl > 0, or aliased src/dst buffers.
	ErrParams = errors.New("lzav: invalid parameters")
	// ErrSrcOOB is returned when decoding would read past the end of src.
	ErrSrcOOB = errors.New("lzav: source buffer overrun")
	// ErrDstOOB is returned when decoding would write past the end of dst.
	ErrDstOOB = errors.New("lzav: destination buffer overrun")
	// ErrRefOOB is returned when a back-reference points before the start
	// of the output written so far.
	ErrRefOOB = errors.New("lzav: back-reference precedes output start")
	// ErrDstLen is returned when the decompressed length does not equal
	// the caller-supplied dstl.
	ErrDstLen = errors.New("lzav: decompressed length mismatch")
	// ErrUnknownFormat is returned when the stream prefix's high nibble is
	// not the current format id.
	ErrUnknownFormat = errors.New("lzav: unrecognized stream format")
)

// Sentinel errors for the encoder/options contract. The core encoder
// itself never fails on valid inputs; these surface caller-side contract
// violations.
var (
	// ErrAliasedBuffers is returned when src and dst share memory.
	ErrAliasedBuffers = errors.New("lzav: src and dst must not alias")
	// ErrShortDst is returned when dst is smaller than CompressBound(len(src)).
	ErrShortDst = errors.New("lzav: destination buffer smaller than CompressBound")
	// ErrOptionsRequired is returned when Decompress/DecompressN are called
	// with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("lzav: options required: OutLen must be set")
)

// codeErr pairs each sentinel with its numeric error code.
var codeErr = map[error]int{
	ErrParams:         codeParams,
	ErrSrcOOB:         codeSrcOOB,
	ErrDstOOB:         codeDstOOB,
	ErrRefOOB:         codeRefOOB,
	ErrDstLen:         codeDstLen,
	ErrUnknownFormat:  codeUnknownFmt,
}

// CodeOf recovers the original negative error code for a decoder error
// returned by this package, for callers porting C-ABI-shaped logic. It
// returns 0 if err is nil and 1 if err is not one of this package's
// decoder sentinels.
func CodeOf(err error) int {
	if err == nil {
		return 0
	}
	for sentinel, code := range codeErr {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return 1
}
