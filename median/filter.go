package median

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrLengthMismatch indicates input/output slices of different lengths,
	// or a 2D input whose length is not width*height.
	ErrLengthMismatch = errors.New("median: input/output length mismatch")
	// ErrOverlap indicates input and output share backing memory.
	ErrOverlap = errors.New("median: input and output buffers overlap")
	// ErrNegativeRadius indicates a negative window half-radius.
	ErrNegativeRadius = errors.New("median: negative radius")
	// ErrNegativeSize indicates a negative array dimension.
	ErrNegativeSize = errors.New("median: negative dimension")
	// ErrBlockTooSmall indicates a block size that cannot contain the window.
	ErrBlockTooSmall = errors.New("median: block size too small for radius")
)

type config struct {
	blockSize int
}

// Option configures a filter invocation.
type Option func(*config)

// WithBlockSize overrides the block-size heuristic. The value must satisfy
// 2*radius+1 <= n for every filtered dimension; n <= 0 selects the default.
// Any valid block size produces identical output.
func WithBlockSize(n int) Option {
	return func(cfg *config) {
		cfg.blockSize = n
	}
}

// DefaultBlockSize1D returns the block edge used by Filter1D when no
// WithBlockSize option is given.
func DefaultBlockSize1D(radius int) int {
	return 8 * (radius + 2)
}

// DefaultBlockSize2D returns the block edge used by Filter2D when no
// WithBlockSize option is given.
func DefaultBlockSize2D(radiusX, radiusY int) int {
	h := radiusX
	if radiusY > h {
		h = radiusY
	}
	return 4 * (h + 2)
}

// Filter1D writes into dst the sliding-window median of src with the given
// half-radius: dst[i] is the median of the non-NaN values of
// src[max(0,i-radius) : min(len(src),i+radius+1)], or NaN if that window
// holds only NaN values. dst and src must have equal length and must not
// overlap.
func Filter1D(dst, src []float64, radius int, opts ...Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if radius < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: src %d, dst %d", ErrLengthMismatch, len(src), len(dst))
	}
	if overlaps(dst, src) {
		return ErrOverlap
	}
	block := cfg.blockSize
	if block <= 0 {
		block = DefaultBlockSize1D(radius)
	}
	if 2*radius+1 > block {
		return fmt.Errorf("%w: 2*%d+1 > %d along x", ErrBlockTooSmall, radius, block)
	}
	if len(src) == 0 {
		return nil
	}
	calc := medCalc1D{
		win: newRankedWindow(block),
		dim: newBlockDim(len(src), radius, block),
		src: src,
		dst: dst,
	}
	calc.run()
	return nil
}

// Filter2D writes into dst the sliding-window median of the row-major
// width x height grid src with half-radii radiusX and radiusY. The window at
// (x, y) is the clipped rectangle [x-radiusX, x+radiusX] x [y-radiusY,
// y+radiusY]; NaN cells are excluded, and an all-NaN window yields NaN.
// dst and src must both have length width*height and must not overlap.
func Filter2D(dst, src []float64, width, height, radiusX, radiusY int, opts ...Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	if radiusX < 0 || radiusY < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrNegativeRadius, radiusX, radiusY)
	}
	if len(src) != width*height {
		return fmt.Errorf("%w: src %d, want %d*%d", ErrLengthMismatch, len(src), width, height)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: src %d, dst %d", ErrLengthMismatch, len(src), len(dst))
	}
	if overlaps(dst, src) {
		return ErrOverlap
	}
	block := cfg.blockSize
	if block <= 0 {
		block = DefaultBlockSize2D(radiusX, radiusY)
	}
	if 2*radiusX+1 > block {
		return fmt.Errorf("%w: 2*%d+1 > %d along x", ErrBlockTooSmall, radiusX, block)
	}
	if 2*radiusY+1 > block {
		return fmt.Errorf("%w: 2*%d+1 > %d along y", ErrBlockTooSmall, radiusY, block)
	}
	if len(src) == 0 {
		return nil
	}
	calc := medCalc2D{
		win:    newRankedWindow(block * block),
		dimX:   newBlockDim(width, radiusX, block),
		dimY:   newBlockDim(height, radiusY, block),
		src:    src,
		dst:    dst,
		stride: width,
	}
	calc.run()
	return nil
}

// overlaps reports whether the two slices share any backing memory.
func overlaps(a, b []float64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(&a[0]))
	a1 := a0 + uintptr(len(a))*unsafe.Sizeof(a[0])
	b0 := uintptr(unsafe.Pointer(&b[0]))
	b1 := b0 + uintptr(len(b))*unsafe.Sizeof(b[0])
	return a0 < b1 && b0 < a1
}
