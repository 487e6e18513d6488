package median

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBlockDim_CoversEveryPositionOnce(t *testing.T) {
	sizes := []int{1, 2, 5, 16, 33, 100, 257}
	radii := []int{0, 1, 3, 8}
	for _, n := range sizes {
		for _, h := range radii {
			for _, block := range []int{2*h + 1, 2*h + 2, 4 * (h + 2), 8 * (h + 2)} {
				t.Run(fmt.Sprintf("n=%d/h=%d/b=%d", n, h, block), func(t *testing.T) {
					d := newBlockDim(n, h, block)
					if d.count < 1 {
						t.Fatalf("count: got %d, want >= 1", d.count)
					}
					if n > block && 2*h+d.count*d.step < n {
						t.Fatalf("blocks do not cover dimension: 2h+count*step = %d < %d",
							2*h+d.count*d.step, n)
					}

					emitted := make([]int, n)
					v := blockView{dim: &d}
					for i := 0; i < d.count; i++ {
						v.set(i)
						if v.size > block {
							t.Fatalf("block %d: size %d exceeds block size %d", i, v.size, block)
						}
						if v.start+v.size > n {
							t.Fatalf("block %d: [%d,%d) exceeds dimension %d", i, v.start, v.start+v.size, n)
						}
						for p := v.lo; p < v.hi; p++ {
							emitted[v.start+p]++
							if w := v.w0(p); w < 0 || w > p {
								t.Fatalf("block %d: w0(%d) = %d out of range", i, p, w)
							}
							if w := v.w1(p); w <= p || w > v.size {
								t.Fatalf("block %d: w1(%d) = %d out of range", i, p, w)
							}
						}
					}
					for pos, cnt := range emitted {
						if cnt != 1 {
							t.Fatalf("position %d emitted %d times", pos, cnt)
						}
					}
				})
			}
		}
	}
}

func TestLayout1D(t *testing.T) {
	l, err := Layout1D(1000, 3, 0)
	if err != nil {
		t.Fatalf("Layout1D: %v", err)
	}
	if l.BlockSize != DefaultBlockSize1D(3) {
		t.Errorf("BlockSize: got %d, want %d", l.BlockSize, DefaultBlockSize1D(3))
	}
	if l.Step != l.BlockSize-6 {
		t.Errorf("Step: got %d, want %d", l.Step, l.BlockSize-6)
	}
	if got := l.Count; got < 1 {
		t.Errorf("Count: got %d, want >= 1", got)
	}

	if _, err := Layout1D(100, 4, 8); !errors.Is(err, ErrBlockTooSmall) {
		t.Errorf("undersized hint: got %v, want ErrBlockTooSmall", err)
	}
	if _, err := Layout1D(-1, 0, 0); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("negative size: got %v, want ErrNegativeSize", err)
	}
	if _, err := Layout1D(10, -1, 0); !errors.Is(err, ErrNegativeRadius) {
		t.Errorf("negative radius: got %v, want ErrNegativeRadius", err)
	}
}

func TestLayout2D(t *testing.T) {
	lx, ly, err := Layout2D(640, 480, 2, 5, 0)
	if err != nil {
		t.Fatalf("Layout2D: %v", err)
	}
	if lx.BlockSize != DefaultBlockSize2D(2, 5) || ly.BlockSize != lx.BlockSize {
		t.Errorf("BlockSize: got (%d, %d), want %d", lx.BlockSize, ly.BlockSize, DefaultBlockSize2D(2, 5))
	}
	if lx.Step != lx.BlockSize-4 || ly.Step != ly.BlockSize-10 {
		t.Errorf("Step: got (%d, %d)", lx.Step, ly.Step)
	}

	_, _, err = Layout2D(100, 100, 1, 10, 7)
	if !errors.Is(err, ErrBlockTooSmall) {
		t.Fatalf("undersized hint: got %v, want ErrBlockTooSmall", err)
	}
	if got := err.Error(); !strings.Contains(got, "along y") {
		t.Errorf("error should name dimension y: %q", got)
	}
}
