// SPDX-License-Identifier: MIT

package lzav

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecompressRejectsUnknownFormat(t *testing.T) {
	// High nibble of the prefix byte must equal fmtCur (1); any other
	// value is an unrecognized stream format.
	src := []byte{0x26, 0x01, 0x41, 0, 0, 0, 0}
	_, err := Decompress(src, DefaultDecompressOptions(1))
	require.ErrorIs(t, err, ErrUnknownFormat)
	require.Equal(t, -6, CodeOf(err))
}

func TestDecompressRejectsNilOptions(t *testing.T) {
	_, err := Decompress([]byte{0x16, 0x01, 0x41, 0, 0, 0, 0}, nil)
	require.ErrorIs(t, err, ErrOptionsRequired)
}

func TestDecompressRejectsZeroOutLenWithNonEmptySrc(t *testing.T) {
	src := []byte{0x16, 0x01, 0x41, 0, 0, 0, 0}
	_, err := Decompress(src, DefaultDecompressOptions(0))
	require.ErrorIs(t, err, ErrParams)
}

func TestDecompressTruncatedStreamNeverSucceeds(t *testing.T) {
	// Truncating a valid stream by any number of trailing bytes must
	// never silently succeed or read/write out of bounds; it must
	// surface one of the decoder's own error codes.
	original := bytes.Repeat([]byte("retrieval pack grounding ledger entry "), 80)
	enc, err := Compress(original, nil)
	require.NoError(t, err)

	for cut := 1; cut < len(enc); cut++ {
		truncated := enc[:len(enc)-cut]
		_, _, err := DecompressN(truncated, DefaultDecompressOptions(len(original)))
		require.Error(t, err)
		require.Contains(t, []error{ErrSrcOOB, ErrDstOOB, ErrRefOOB, ErrDstLen}, errorMatch(err))
	}
}

// errorMatch maps err to whichever of the decoder sentinels it is, for use
// with require.Contains in TestDecompressTruncatedStreamNeverSucceeds.
func errorMatch(err error) error {
	for _, sentinel := range []error{ErrSrcOOB, ErrDstOOB, ErrRefOOB, ErrDstLen, ErrParams, ErrUnknownFormat} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}

func TestDecompressRejectsDstLenMismatch(t *testing.T) {
	src := []byte("hello, world, this is long enough to skip the short path")
	enc, err := Compress(src, nil)
	require.NoError(t, err)

	_, err = Decompress(enc, DefaultDecompressOptions(len(src)+1))
	require.Error(t, err)
}

func TestDecompressRejectsAliasedBuffers(t *testing.T) {
	buf := make([]byte, 64)
	_, err := DecompressInto(buf[0:32], buf[16:64])
	require.ErrorIs(t, err, ErrParams)
}

func TestDecompressIntoReusesCallerBuffer(t *testing.T) {
	src := bytes.Repeat([]byte("reused destination buffer "), 10)
	enc, err := Compress(src, nil)
	require.NoError(t, err)

	dst := make([]byte, len(src))
	out, err := DecompressInto(enc, dst)
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestDecompressFromReader(t *testing.T) {
	src := bytes.Repeat([]byte("streamed through an io.Reader "), 20)
	enc, err := Compress(src, nil)
	require.NoError(t, err)

	out, err := DecompressFromReader(bytes.NewReader(enc), DefaultDecompressOptions(len(src)))
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestDecompressNReportsConsumedLength(t *testing.T) {
	src := bytes.Repeat([]byte("framed back-to-back "), 30)
	enc, err := Compress(src, nil)
	require.NoError(t, err)

	_, n, err := DecompressN(enc, DefaultDecompressOptions(len(src)))
	require.NoError(t, err)
	require.Equal(t, len(enc), n)
}
