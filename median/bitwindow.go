package median

import "math/bits"

// bitWindow is a bit-indexed multiset over ranks. Bit r is set iff the cell
// whose value has rank r is currently inside the sliding window. A pivot word
// index splits the words into two halves whose popcounts are cached, so that
// rank-select queries only rescan words near the pivot.
type bitWindow struct {
	words []uint64
	half  [2]int // popcount of words [0,pivot) and [pivot,len)
	pivot int
}

func newBitWindow(nbits int) bitWindow {
	return bitWindow{words: make([]uint64, (nbits+63)/64)}
}

// clear empties the set and recenters the pivot.
func (w *bitWindow) clear() {
	for i := range w.words {
		w.words[i] = 0
	}
	w.half[0], w.half[1] = 0, 0
	w.pivot = len(w.words) / 2
}

// update toggles bit r. op is +1 to insert (bit must be clear) or -1 to
// remove (bit must be set).
func (w *bitWindow) update(op, r int) {
	i := r >> 6
	w.words[i] ^= 1 << (uint(r) & 63)
	if i >= w.pivot {
		w.half[1] += op
	} else {
		w.half[0] += op
	}
}

// size returns the number of members.
func (w *bitWindow) size() int {
	return w.half[0] + w.half[1]
}

// find returns the rank of the goal-th smallest member (0-based). The caller
// must guarantee goal < size(). The pivot walks toward the target word,
// transferring word popcounts between the two halves, and is left there for
// the next query.
func (w *bitWindow) find(goal int) int {
	p := w.pivot
	for w.half[0] > goal {
		p--
		n := bits.OnesCount64(w.words[p])
		w.half[0] -= n
		w.half[1] += n
	}
	for {
		n := bits.OnesCount64(w.words[p])
		if w.half[0]+n > goal {
			break
		}
		w.half[0] += n
		w.half[1] -= n
		p++
	}
	w.pivot = p
	return p<<6 + selectBit(w.words[p], goal-w.half[0])
}

// selectBit returns the index of the n-th set bit of x (0-based). x must have
// at least n+1 set bits.
func selectBit(x uint64, n int) int {
	for ; n > 0; n-- {
		x &= x - 1
	}
	return bits.TrailingZeros64(x)
}
