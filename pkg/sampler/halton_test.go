package sampler

import (
	"math"
	"sort"
	"testing"
)

func TestHaltonDeterministic(t *testing.T) {
	a := NewHalton(16, 64, 64, 42)
	b := NewHalton(16, 64, 64, 42)

	a.StartPixelSample(5, 9, 3)
	b.StartPixelSample(5, 9, 3)

	for i := 0; i < 8; i++ {
		va := a.Sample1D()
		vb := b.Sample1D()
		if va != vb {
			t.Fatalf("dimension %d diverged: %v vs %v", i, va, vb)
		}
	}
}

func TestHaltonRangeAndPixelJitter(t *testing.T) {
	h := NewHalton(16, 64, 64, 1)
	for s := 0; s < 16; s++ {
		h.StartPixelSample(3, 4, s)
		p := h.SamplePixel()
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Fatalf("pixel jitter out of range: %v", p)
		}
		for d := 0; d < 5; d++ {
			v := h.Sample1D()
			if v < 0 || v >= 1 {
				t.Fatalf("sample1d out of range: %v", v)
			}
		}
	}
}

// starDiscrepancy1D computes the 1D star discrepancy of a sorted sample set,
// the standard max over the empirical-CDF/uniform-CDF gap at every sample.
func starDiscrepancy1D(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := float64(len(sorted))
	d := 0.0
	for i, x := range sorted {
		d = math.Max(d, math.Abs(float64(i)/n-x))
		d = math.Max(d, math.Abs(float64(i+1)/n-x))
	}
	return d
}

func TestHaltonLowDiscrepancy(t *testing.T) {
	const n = 1024
	h := NewHalton(n, 1, 1, 7)
	for dim := 0; dim < 4; dim++ {
		samples := make([]float64, n)
		for s := 0; s < n; s++ {
			h.StartPixelSample(0, 0, s)
			// advance to the requested dimension
			for k := 0; k < dim; k++ {
				h.Sample1D()
			}
			samples[s] = h.Sample1D()
		}
		disc := starDiscrepancy1D(samples)
		if disc > 0.05 {
			t.Fatalf("dimension %d star discrepancy too high: %v", dim, disc)
		}
	}
}

func TestPermutationElementIsBijection(t *testing.T) {
	const l = 37
	seen := make(map[uint32]bool)
	for i := uint32(0); i < l; i++ {
		v := permutationElement(i, l, 0xabc123)
		if v >= l {
			t.Fatalf("out of range: %d", v)
		}
		if seen[v] {
			t.Fatalf("not a bijection: %d repeated", v)
		}
		seen[v] = true
	}
}
