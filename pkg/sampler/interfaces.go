// Package sampler supplies the random numbers consumed by the integrator:
// one 1D or 2D value at a time, deterministically reproducible per pixel and
// sample index so that two renders of the same scene with the same sampler
// seed produce identical images.
package sampler

import "github.com/quevivasbien/spectral-pathtracer/pkg/core"

// Sampler hands out the random numbers for one camera sample at a time.
// StartPixelSample must be called before drawing any values for a given
// (pixel, sample) pair; it resets whatever per-sample state the
// implementation tracks (stream position for Halton, the PRNG seed for
// Independent).
type Sampler interface {
	SamplesPerPixel() int
	StartPixelSample(pixelX, pixelY, sampleIndex int)
	Sample1D() float64
	Sample2D() core.Vec2
	// SamplePixel returns the (dx,dy) pixel-jitter offset in [0,1)^2 for
	// antialiasing; for Independent this is just Sample2D, for Halton it
	// draws from the low-discrepancy base-2/base-3 dimensions reserved for it.
	SamplePixel() core.Vec2
}
