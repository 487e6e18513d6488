package median

// medCalc2D runs the per-block median computation over a row-major grid.
// Output positions inside a block are visited in snake order: down one
// column, one step right, up the next column. Each step changes the window
// by a single row or column strip, which keeps the bitset pivot close to the
// median between queries.
type medCalc2D struct {
	win    *rankedWindow
	dimX   blockDim
	dimY   blockDim
	src    []float64
	dst    []float64
	stride int
}

func (c *medCalc2D) run() {
	vx := blockView{dim: &c.dimX}
	vy := blockView{dim: &c.dimY}
	for by := 0; by < c.dimY.count; by++ {
		vy.set(by)
		for bx := 0; bx < c.dimX.count; bx++ {
			vx.set(bx)
			c.runBlock(&vx, &vy)
		}
	}
}

func (c *medCalc2D) runBlock(vx, vy *blockView) {
	w := c.win
	w.beginBlock()
	for y := 0; y < vy.size; y++ {
		row := (vy.start+y)*c.stride + vx.start
		for x := 0; x < vx.size; x++ {
			w.feed(c.src[row+x], y*vx.size+x)
		}
	}
	w.finishBlock()
	w.clear()

	x, y := vx.lo, vy.lo
	c.updateRect(+1, vx.w0(x), vx.w1(x), vy.w0(y), vy.w1(y), vx.size)
	c.emit(vx, vy, x, y)

	down := true
	for {
		if down {
			for y+1 < vy.hi {
				c.updateRect(-1, vx.w0(x), vx.w1(x), vy.w0(y), vy.w0(y+1), vx.size)
				c.updateRect(+1, vx.w0(x), vx.w1(x), vy.w1(y), vy.w1(y+1), vx.size)
				y++
				c.emit(vx, vy, x, y)
			}
		} else {
			for y > vy.lo {
				c.updateRect(-1, vx.w0(x), vx.w1(x), vy.w1(y-1), vy.w1(y), vx.size)
				c.updateRect(+1, vx.w0(x), vx.w1(x), vy.w0(y-1), vy.w0(y), vx.size)
				y--
				c.emit(vx, vy, x, y)
			}
		}
		if x+1 >= vx.hi {
			return
		}
		c.updateRect(-1, vx.w0(x), vx.w0(x+1), vy.w0(y), vy.w1(y), vx.size)
		c.updateRect(+1, vx.w1(x), vx.w1(x+1), vy.w0(y), vy.w1(y), vx.size)
		x++
		c.emit(vx, vy, x, y)
		down = !down
	}
}

// updateRect inserts or removes every cell of the block-relative rectangle
// [x0,x1) x [y0,y1).
func (c *medCalc2D) updateRect(op, x0, x1, y0, y1, rowLen int) {
	for y := y0; y < y1; y++ {
		base := y * rowLen
		for x := x0; x < x1; x++ {
			c.win.update(op, base+x)
		}
	}
}

func (c *medCalc2D) emit(vx, vy *blockView, x, y int) {
	c.dst[(vy.start+y)*c.stride+vx.start+x] = c.win.median()
}
