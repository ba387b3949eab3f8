// Package material implements the renderer's closed family of surface
// materials (diffuse, conductor, dielectric, thin dielectric, emissive, and a
// probabilistic mix of any two) plus the texture abstraction that feeds them
// spatially-varying reflectance. Grounded on original_source/src/material.hpp
// and texture.hpp, styled after the teacher's pkg/material package.
package material

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/bxdf"
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// Material builds the local BSDF a surface interaction should scatter
// through. u is a single uniform random number, consumed only by Mixed to
// pick between its two component materials.
type Material interface {
	BSDF(si geometry.SurfaceInteraction, ws spectrum.WavelengthSample, u float64) bxdf.BSDF
	// Emission returns the radiance emitted toward wo, zero for non-emissive materials.
	Emission(si geometry.SurfaceInteraction, wo core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample
}

// Texture evaluates a spatially-varying spectral quantity at a surface point.
type Texture interface {
	Value(uv core.Vec2, p core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample
}
