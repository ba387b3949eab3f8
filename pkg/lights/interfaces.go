// Package lights implements the renderer's light sources: point, directional,
// and shape-bound area lights, plus the uniform light sampler Scene uses for
// next-event estimation. Grounded on the teacher's pkg/lights package and
// original_source/src/light.hpp, simplified relative to the teacher's
// BDPT-oriented Light interface since bidirectional path tracing is out of
// scope (spec §1 Non-goals).
package lights

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// LightSample is a single next-event-estimation sample: a direction and
// distance toward an emitter, its emitted radiance, and the solid-angle pdf
// of having sampled that direction.
type LightSample struct {
	Wi       core.Vec3
	Distance float64
	L        spectrum.SpectrumSample
	PDF      float64
}

// Light is a source of illumination a path can next-event-estimate toward.
type Light interface {
	// Sample draws a direction from point toward the light, for NEE.
	Sample(point core.Vec3, ws spectrum.WavelengthSample, u core.Vec2) (LightSample, bool)
	// PDF returns the solid-angle pdf of having sampled direction wi from point via Sample.
	PDF(point core.Vec3, wi core.Vec3) float64
	// IsDelta reports whether the light occupies zero measure (point,
	// directional): such a light can never be hit by BSDF sampling, so MIS
	// must not weight its NEE contribution against a BSDF pdf.
	IsDelta() bool
}
