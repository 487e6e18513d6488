package median

import "fmt"

// BlockLayout describes how one array dimension is partitioned into blocks.
type BlockLayout struct {
	BlockSize int // block edge length in samples
	Step      int // distance between block starts (BlockSize - 2*radius)
	Count     int // number of blocks covering the dimension
}

// Layout1D returns the block decomposition Filter1D would use for the given
// length, radius, and block hint (0 selects the default heuristic).
func Layout1D(size, radius, blockHint int) (BlockLayout, error) {
	if size < 0 {
		return BlockLayout{}, fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	if radius < 0 {
		return BlockLayout{}, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	block := blockHint
	if block <= 0 {
		block = DefaultBlockSize1D(radius)
	}
	if 2*radius+1 > block {
		return BlockLayout{}, fmt.Errorf("%w: 2*%d+1 > %d along x", ErrBlockTooSmall, radius, block)
	}
	d := newBlockDim(size, radius, block)
	return BlockLayout{BlockSize: block, Step: d.step, Count: d.count}, nil
}

// Layout2D returns the per-dimension block decompositions Filter2D would use.
func Layout2D(width, height, radiusX, radiusY, blockHint int) (x, y BlockLayout, err error) {
	if width < 0 || height < 0 {
		return BlockLayout{}, BlockLayout{}, fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	if radiusX < 0 || radiusY < 0 {
		return BlockLayout{}, BlockLayout{}, fmt.Errorf("%w: (%d, %d)", ErrNegativeRadius, radiusX, radiusY)
	}
	block := blockHint
	if block <= 0 {
		block = DefaultBlockSize2D(radiusX, radiusY)
	}
	if 2*radiusX+1 > block {
		return BlockLayout{}, BlockLayout{}, fmt.Errorf("%w: 2*%d+1 > %d along x", ErrBlockTooSmall, radiusX, block)
	}
	if 2*radiusY+1 > block {
		return BlockLayout{}, BlockLayout{}, fmt.Errorf("%w: 2*%d+1 > %d along y", ErrBlockTooSmall, radiusY, block)
	}
	dx := newBlockDim(width, radiusX, block)
	dy := newBlockDim(height, radiusY, block)
	x = BlockLayout{BlockSize: block, Step: dx.step, Count: dx.count}
	y = BlockLayout{BlockSize: block, Step: dy.step, Count: dy.count}
	return x, y, nil
}
