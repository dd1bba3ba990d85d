// SPDX-License-Identifier: MIT

package lzav

import "encoding/binary"

// hash6 computes the two-multiplier mixing hash over the 6 bytes at the
// start of src. Callers must guarantee len(src) >= 6.
//
// Endianness of the intermediate words is not normative: the result is
// used only as a local table index and is never serialized.
func hash6(src []byte) uint32 {
	iw1 := binary.LittleEndian.Uint32(src[0:4])
	iw2 := binary.LittleEndian.Uint16(src[4:6])

	h64 := uint64(0x243F6A88^iw1) * uint64(0x85A308D3^uint32(iw2))

	return uint32(h64) ^ uint32(h64>>32)
}
