package median

import (
	"math"
	"sort"
)

// nanRank marks a slot whose cell value is NaN. Such slots never enter the
// bitset, so NaN values cannot contribute to any median.
const nanRank = -1

type rankEntry struct {
	value float64
	slot  int32
}

// rankedWindow maps a block's cells to a dense value order and tracks which
// of them are inside the sliding window. It is allocated once per filter
// invocation, sized to the largest possible block, and reused for every
// block.
type rankedWindow struct {
	bits   bitWindow
	rank   []int32     // slot -> rank, or nanRank
	sorted []rankEntry // rank -> (value, slot)
}

func newRankedWindow(slots int) *rankedWindow {
	return &rankedWindow{
		bits:   newBitWindow(slots),
		rank:   make([]int32, slots),
		sorted: make([]rankEntry, 0, slots),
	}
}

// beginBlock resets the sort buffer for a new block.
func (rw *rankedWindow) beginBlock() {
	rw.sorted = rw.sorted[:0]
}

// feed records the value at a block-local slot. NaN values are marked and
// kept out of the sort buffer.
func (rw *rankedWindow) feed(v float64, slot int) {
	if math.IsNaN(v) {
		rw.rank[slot] = nanRank
		return
	}
	rw.sorted = append(rw.sorted, rankEntry{value: v, slot: int32(slot)})
}

// finishBlock sorts the buffered cells and assigns each slot its rank. The
// slot index breaks value ties, so the order is total and the slot<->rank
// mapping is a bijection over the non-NaN cells.
func (rw *rankedWindow) finishBlock() {
	sort.Slice(rw.sorted, func(i, j int) bool {
		a, b := rw.sorted[i], rw.sorted[j]
		if a.value != b.value {
			return a.value < b.value
		}
		return a.slot < b.slot
	})
	for i := range rw.sorted {
		rw.rank[rw.sorted[i].slot] = int32(i)
	}
}

// clear empties the window membership.
func (rw *rankedWindow) clear() {
	rw.bits.clear()
}

// update inserts (op = +1) or removes (op = -1) the cell at slot. NaN slots
// are ignored.
func (rw *rankedWindow) update(op, slot int) {
	r := rw.rank[slot]
	if r == nanRank {
		return
	}
	rw.bits.update(op, int(r))
}

// median returns the median of the values currently in the window. An even
// count averages the two middle values; an empty window yields NaN.
func (rw *rankedWindow) median() float64 {
	total := rw.bits.size()
	if total == 0 {
		return math.NaN()
	}
	g1 := (total - 1) / 2
	v := rw.sorted[rw.bits.find(g1)].value
	if g2 := total / 2; g2 != g1 {
		v = (v + rw.sorted[rw.bits.find(g2)].value) / 2
	}
	return v
}
