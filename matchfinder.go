// SPDX-License-Identifier: MIT

package lzav

import "encoding/binary"

// matchFinder holds the per-call scanning state: the sliding cursor, the
// literal anchor, the running match-rate average, and the adaptive-skip
// decorrelation bit.
type matchFinder struct {
	src []byte
	ht  *hashTable
	w   *blockWriter

	ip   int
	ipa  int
	mavg int
	rndb int
}

func newMatchFinder(src []byte, ht *hashTable, w *blockWriter) *matchFinder {
	return &matchFinder{
		src:  src,
		ht:   ht,
		w:    w,
		mavg: 100 << 22,
	}
}

// run scans the source and emits blocks via its blockWriter, then flushes
// the trailing literal tail through final_writer. Callers must only
// invoke run when len(src) > litFin (the compressor's short path handles
// shorter inputs itself).
func (mf *matchFinder) run() {
	n := len(mf.src)
	limit := n - litFin - (refMin - 1)

	for mf.ip <= limit {
		mf.step(n)
	}

	mf.w.writeFinal(n-mf.ipa, mf.src, mf.ipa)
}

// step performs one iteration of the scan loop: a hash lookup, a
// skip/continue decision on miss, or a block emission on an accepted
// match.
func (mf *matchFinder) step(n int) {
	src := mf.src
	ip := mf.ip

	iw1 := binary.LittleEndian.Uint32(src[ip : ip+4])
	iw2 := binary.LittleEndian.Uint16(src[ip+4 : ip+6])
	hv := hash6(src[ip : ip+6])

	b := &mf.ht.buckets[mf.ht.index(hv)]

	wpo := -1
	hitIdx := -1

	if b.t[0].key == iw1 {
		ww2 := binary.LittleEndian.Uint16(src[b.t[0].off+4 : b.t[0].off+6])
		if iw2 == ww2 {
			wpo, hitIdx = int(b.t[0].off), 0
		} else {
			b.t[0] = tuple{key: iw1, off: uint32(ip)}
		}
	} else if b.t[1].key == iw1 {
		ww2 := binary.LittleEndian.Uint16(src[b.t[1].off+4 : b.t[1].off+6])
		if iw2 == ww2 {
			wpo, hitIdx = int(b.t[1].off), 1
		} else {
			b.t[1] = tuple{key: iw1, off: uint32(ip)}
		}
	} else {
		b.t[1] = tuple{key: iw1, off: uint32(ip)}
	}

	if wpo == -1 {
		mf.decaySkip()
		return
	}

	d := ip - wpo
	if d <= 7 || d >= winLen {
		if d >= winLen {
			if hitIdx == 0 {
				b.t[0].off = uint32(ip)
			} else {
				b.t[1].off = uint32(ip)
			}
		}
		mf.ip++
		return
	}

	if d > refLen && hitIdx == 1 {
		b.t[1] = b.t[0]
		b.t[0] = tuple{key: iw1, off: uint32(ip)}
	}

	ml := d
	if ml > refLen {
		ml = refLen
	}
	if ip+ml > n-litFin {
		ml = n - litFin - ip
	}
	if ml < refMin {
		// Too little lookahead remains to encode a valid reference here;
		// treat this position as a miss rather than emit an unusable match.
		mf.ip++
		return
	}

	lc := ip - mf.ipa
	var rc int

	if lc > 0 && lc < refMin && wpo >= lc {
		rc2 := matchLen(src[ip-lc:], src[wpo-lc:], ml)
		if rc2 >= refMin {
			ip -= lc
			rc = rc2
			lc = 0
		} else {
			rc = refMin + matchLen(src[ip+refMin:], src[wpo+refMin:], ml-refMin)
		}
	} else {
		rc = refMin + matchLen(src[ip+refMin:], src[wpo+refMin:], ml-refMin)
	}

	mf.w.writeBlock(lc, rc, d, src, mf.ipa)

	ip += rc
	mf.ip = ip
	mf.ipa = ip
	mf.mavg += ((rc << 22) - mf.mavg) >> 10
}

// decaySkip implements the adaptive-skip heuristic: on a hash miss, mavg
// decays and, once it falls below the engagement threshold, ip advances
// by more than one byte to spend less time scanning through apparently
// incompressible data.
func (mf *matchFinder) decaySkip() {
	mf.mavg -= mf.mavg >> 11

	if mf.mavg < 200<<15 && mf.ip != mf.ipa {
		io := mf.ip
		mf.ip += 2 | mf.rndb
		mf.rndb = io & 1

		if mf.mavg < 130<<15 {
			mf.ip++
			if mf.mavg < 100<<15 {
				mf.ip += 100 - (mf.mavg >> 15)
			}
		}
	} else {
		mf.ip++
	}
}
