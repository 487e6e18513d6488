package despike

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-medfilt/internal/testutil"
	"github.com/cwbudde/algo-medfilt/median"
)

func TestHampel_RemovesIsolatedSpikes(t *testing.T) {
	base := testutil.DeterministicSine(50, 48000, 1, 400)
	src, positions := testutil.AddSpikes(base, 5, 6, 25)

	dst := make([]float64, len(src))
	if err := Hampel(dst, src, 7, 3); err != nil {
		t.Fatalf("Hampel: %v", err)
	}
	for _, p := range positions {
		if math.Abs(dst[p]-src[p]) < 1 {
			t.Errorf("spike at %d survived: src %v, dst %v", p, src[p], dst[p])
		}
		if math.Abs(dst[p]-base[p]) > 0.5 {
			t.Errorf("spike at %d poorly repaired: got %v, clean %v", p, dst[p], base[p])
		}
	}
}

func TestHampel_CleanSignalUntouched(t *testing.T) {
	// A pure ramp has zero deviation from its local median everywhere except
	// the clipped edges, and the edge deviation stays below the
	// nsigma*1.4826*MAD threshold.
	src := make([]float64, 100)
	for i := range src {
		src[i] = float64(i)
	}
	dst := make([]float64, len(src))
	if err := Hampel(dst, src, 4, 3); err != nil {
		t.Fatalf("Hampel: %v", err)
	}
	testutil.RequireSliceEqualNaN(t, dst, src)
}

func TestHampel_NaNPassthrough(t *testing.T) {
	src := []float64{1, 1, math.NaN(), 1, 50, 1, 1, 1}
	dst := make([]float64, len(src))
	if err := Hampel(dst, src, 2, 3); err != nil {
		t.Fatalf("Hampel: %v", err)
	}
	if !math.IsNaN(dst[2]) {
		t.Errorf("NaN sample replaced: got %v", dst[2])
	}
	if dst[4] != 1 {
		t.Errorf("spike not repaired to local median: got %v, want 1", dst[4])
	}
}

func TestHampel_InPlace(t *testing.T) {
	src := []float64{0, 0, 0, 40, 0, 0, 0, 0}
	want := make([]float64, len(src))
	if err := Hampel(want, src, 2, 3); err != nil {
		t.Fatalf("Hampel: %v", err)
	}
	buf := make([]float64, len(src))
	copy(buf, src)
	if err := Hampel(buf, buf, 2, 3); err != nil {
		t.Fatalf("Hampel in-place: %v", err)
	}
	testutil.RequireSliceEqualNaN(t, buf, want)
}

func TestSpikes(t *testing.T) {
	src := []float64{0, 0, 0, 0, 30, 0, 0, -30, 0, 0}
	got, err := Spikes(src, 3, 3)
	if err != nil {
		t.Fatalf("Spikes: %v", err)
	}
	want := []int{4, 7}
	if len(got) != len(want) {
		t.Fatalf("spike indices: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spike indices: got %v, want %v", got, want)
		}
	}
}

func TestHampel_Errors(t *testing.T) {
	src := make([]float64, 10)
	dst := make([]float64, 10)
	if err := Hampel(dst, src, 2, -1); !errors.Is(err, ErrNegativeThreshold) {
		t.Errorf("negative nsigma: got %v", err)
	}
	if err := Hampel(dst[:9], src, 2, 3); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("length mismatch: got %v", err)
	}
	if err := Hampel(dst, src, -2, 3); !errors.Is(err, median.ErrNegativeRadius) {
		t.Errorf("negative radius: got %v", err)
	}
	if _, err := Spikes(src, -1, 3); !errors.Is(err, median.ErrNegativeRadius) {
		t.Errorf("Spikes negative radius: got %v", err)
	}
}
