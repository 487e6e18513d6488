package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// SprinkleNaNs returns a copy of data with roughly fraction of its elements
// replaced by NaN, chosen with a fixed seed.
func SprinkleNaNs(data []float64, seed int64, fraction float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		if rng.Float64() < fraction {
			out[i] = math.NaN()
		}
	}
	return out
}

// AddSpikes returns a copy of data with count isolated spikes of the given
// magnitude at seeded pseudo-random positions, and the positions hit.
func AddSpikes(data []float64, seed int64, count int, magnitude float64) ([]float64, []int) {
	out := make([]float64, len(data))
	copy(out, data)
	rng := rand.New(rand.NewSource(seed))
	positions := make([]int, 0, count)
	for len(positions) < count && len(data) > 0 {
		p := rng.Intn(len(data))
		hit := false
		for _, q := range positions {
			if q == p {
				hit = true
				break
			}
		}
		if hit {
			continue
		}
		out[p] += magnitude
		positions = append(positions, p)
	}
	return out, positions
}
