package median

// medCalc1D runs the per-block median computation along a single dimension.
type medCalc1D struct {
	win *rankedWindow
	dim blockDim
	src []float64
	dst []float64
}

func (c *medCalc1D) run() {
	view := blockView{dim: &c.dim}
	for b := 0; b < c.dim.count; b++ {
		view.set(b)
		c.runBlock(&view)
	}
}

func (c *medCalc1D) runBlock(v *blockView) {
	w := c.win
	w.beginBlock()
	for x := 0; x < v.size; x++ {
		w.feed(c.src[v.start+x], x)
	}
	w.finishBlock()
	w.clear()

	h := c.dim.radius
	x := v.lo
	for i := v.w0(x); i < v.w1(x); i++ {
		w.update(+1, i)
	}
	c.dst[v.start+x] = w.median()

	for x = v.lo + 1; x < v.hi; x++ {
		// The trailing edge leaves the window once it is past the block
		// start; the leading edge enters while it is inside the block.
		if x-1 >= h {
			w.update(-1, x-1-h)
		}
		if x+h < v.size {
			w.update(+1, x+h)
		}
		c.dst[v.start+x] = w.median()
	}
}
