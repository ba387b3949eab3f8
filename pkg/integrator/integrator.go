package integrator

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/sampler"
)

// Integrator estimates the radiance arriving at the camera along one primary
// ray, given a wavelength-selection random number and a per-sample sampler
// for bounce-time random numbers.
type Integrator interface {
	Li(ray core.Ray, lambdaU float64, rng sampler.Sampler) Result
}

var _ Integrator = (*PathTracer)(nil)
