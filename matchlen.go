// SPDX-License-Identifier: MIT

package lzav

import (
	"encoding/binary"
	"math/bits"
)

// matchLen returns the count of equal leading bytes between a and b, up
// to ml. Callers must guarantee len(a) >= ml and len(b) >= ml; matchLen
// never reads past ml bytes of either slice.
//
// It compares 8 bytes at a time and uses bits.TrailingZeros64 to locate
// the first differing byte within a mismatching word, falling back to a
// byte loop for the tail shorter than a word.
func matchLen(a, b []byte, ml int) int {
	n := 0
	for n+8 <= ml {
		wa := binary.LittleEndian.Uint64(a[n : n+8])
		wb := binary.LittleEndian.Uint64(b[n : n+8])
		if wa != wb {
			return n + bits.TrailingZeros64(wa^wb)/8
		}
		n += 8
	}
	for n < ml {
		if a[n] != b[n] {
			return n
		}
		n++
	}
	return ml
}
