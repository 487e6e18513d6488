// Package noisefloor estimates the spectral noise floor of a signal.
//
// The magnitude spectrum is median-filtered across frequency bins: narrowband
// components (tones, harmonics, mains hum) occupy few bins and are rejected
// by the median, while the broadband floor passes through. This is the usual
// robust alternative to mean-based smoothing, which a single strong tone can
// drag upward by tens of dB.
package noisefloor

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-medfilt/median"
)

var (
	// ErrEmptySignal indicates an empty input signal.
	ErrEmptySignal = errors.New("noisefloor: empty signal")
	// ErrNonFinite indicates a NaN or Inf input sample.
	ErrNonFinite = errors.New("noisefloor: non-finite sample")
	// ErrInvalidSmoothing indicates a negative smoothing half-width.
	ErrInvalidSmoothing = errors.New("noisefloor: negative smoothing")
)

const defaultSmoothing = 8

// Config holds analysis parameters. Zero fields select defaults.
type Config struct {
	// SampleRate in Hz; used only to report the bin width. Optional.
	SampleRate float64
	// FFTSize is rounded up to a power of two. 0 uses the signal length.
	FFTSize int
	// Smoothing is the median half-width across bins. 0 selects the default.
	Smoothing int
}

// Result holds the estimated floor.
type Result struct {
	// Floor is the per-bin linear magnitude floor, len FFTSize/2+1.
	Floor []float64
	// FloorDB is the floor in dB (-Inf for empty bins).
	FloorDB []float64
	// MeanFloorDB averages the finite FloorDB bins; NaN if there are none.
	MeanFloorDB float64
	// SpreadDB is the standard deviation of the finite FloorDB bins.
	SpreadDB float64
	// BinWidthHz is SampleRate/FFTSize, or 0 when SampleRate is unset.
	BinWidthHz float64
}

// Analyze estimates the noise floor of signal. The signal is Hann-windowed,
// transformed, and the per-bin magnitudes are median-filtered across bins
// with the configured half-width.
func Analyze(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}
	for i, v := range signal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("%w: index %d", ErrNonFinite, i)
		}
	}
	if cfg.Smoothing < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSmoothing, cfg.Smoothing)
	}
	cfg = normalizeConfig(cfg, len(signal))
	n := cfg.FFTSize

	m := len(signal)
	if m > n {
		m = n
	}
	buf := make([]float64, n)
	copy(buf, signal[:m])
	vecmath.MulBlockInPlace(buf[:m], hannWindow(m))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("noisefloor: fft plan: %w", err)
	}
	in := make([]complex128, n)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("noisefloor: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	floor := make([]float64, bins)
	if err := median.Filter1D(floor, mag, cfg.Smoothing); err != nil {
		return Result{}, err
	}

	res := Result{Floor: floor, FloorDB: make([]float64, bins)}
	finite := make([]float64, 0, bins)
	for i, v := range floor {
		db := ampTodB(v)
		res.FloorDB[i] = db
		if !math.IsInf(db, 0) {
			finite = append(finite, db)
		}
	}
	switch {
	case len(finite) == 0:
		res.MeanFloorDB = math.NaN()
	case len(finite) == 1:
		res.MeanFloorDB = finite[0]
	default:
		res.MeanFloorDB = stat.Mean(finite, nil)
		res.SpreadDB = stat.StdDev(finite, nil)
	}
	if cfg.SampleRate > 0 {
		res.BinWidthHz = cfg.SampleRate / float64(n)
	}
	return res, nil
}

func normalizeConfig(cfg Config, signalLen int) Config {
	if cfg.FFTSize <= 0 {
		cfg.FFTSize = signalLen
	}
	cfg.FFTSize = nextPowerOf2(cfg.FFTSize)
	if cfg.Smoothing == 0 {
		cfg.Smoothing = defaultSmoothing
	}
	return cfg
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// ampTodB converts a linear magnitude to decibels. Returns -Inf for zero.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * log10(a)
}
