// Package despike removes isolated outliers from a signal using a Hampel
// filter: a sample is replaced by its local median when it deviates from that
// median by more than a threshold scaled to the local median absolute
// deviation (MAD).
package despike

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-medfilt/median"
)

var (
	// ErrNegativeThreshold indicates a negative or NaN nsigma.
	ErrNegativeThreshold = errors.New("despike: invalid threshold")
	// ErrLengthMismatch indicates input/output slices of different lengths.
	ErrLengthMismatch = errors.New("despike: input/output length mismatch")
)

// madScale converts a MAD to a standard-deviation estimate under Gaussian
// noise (1/Phi^-1(3/4)).
const madScale = 1.4826022185056018

// Hampel writes into dst a despiked copy of src. For each sample the local
// median m and the local MAD over the window [i-radius, i+radius] are
// computed; samples with |src[i]-m| > nsigma*1.4826*MAD are replaced by m,
// all others pass through unchanged. NaN samples always pass through.
// dst and src must have equal length; dst may be src itself for in-place
// operation, but must not otherwise overlap it.
func Hampel(dst, src []float64, radius int, nsigma float64) error {
	if nsigma < 0 || math.IsNaN(nsigma) {
		return fmt.Errorf("%w: %v", ErrNegativeThreshold, nsigma)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: src %d, dst %d", ErrLengthMismatch, len(src), len(dst))
	}
	med, dev, mad, err := localDeviation(src, radius)
	if err != nil {
		return err
	}
	for i := range src {
		if dev[i] > nsigma*madScale*mad[i] {
			dst[i] = med[i]
		} else {
			dst[i] = src[i]
		}
	}
	return nil
}

// Spikes returns the indices Hampel would replace, in ascending order.
func Spikes(src []float64, radius int, nsigma float64) ([]int, error) {
	if nsigma < 0 || math.IsNaN(nsigma) {
		return nil, fmt.Errorf("%w: %v", ErrNegativeThreshold, nsigma)
	}
	_, dev, mad, err := localDeviation(src, radius)
	if err != nil {
		return nil, err
	}
	var out []int
	for i := range src {
		if dev[i] > nsigma*madScale*mad[i] {
			out = append(out, i)
		}
	}
	return out, nil
}

// localDeviation computes the rolling median, the absolute deviation from
// it, and the rolling median of that deviation (the local MAD).
func localDeviation(src []float64, radius int) (med, dev, mad []float64, err error) {
	med = make([]float64, len(src))
	if err := median.Filter1D(med, src, radius); err != nil {
		return nil, nil, nil, err
	}
	dev = make([]float64, len(src))
	for i := range src {
		dev[i] = math.Abs(src[i] - med[i])
	}
	mad = make([]float64, len(src))
	if err := median.Filter1D(mad, dev, radius); err != nil {
		return nil, nil, nil, err
	}
	return med, dev, mad, nil
}
