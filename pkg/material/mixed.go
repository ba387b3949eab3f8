package material

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/bxdf"
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// Mixed probabilistically selects between two materials per sample, weighted
// by Fraction (the probability of choosing A). Grounded on
// original_source/src/material.hpp's MixedMaterial<N> template, specialized
// to N=2 since the spec names no use case needing more components.
type Mixed struct {
	A, B     Material
	Fraction float64
}

func NewMixed(a, b Material, fraction float64) *Mixed {
	return &Mixed{A: a, B: b, Fraction: fraction}
}

func (m *Mixed) BSDF(si geometry.SurfaceInteraction, ws spectrum.WavelengthSample, u float64) bxdf.BSDF {
	if u < m.Fraction {
		return m.A.BSDF(si, ws, u/m.Fraction)
	}
	return m.B.BSDF(si, ws, (u-m.Fraction)/(1-m.Fraction))
}

func (m *Mixed) Emission(si geometry.SurfaceInteraction, wo core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	return m.A.Emission(si, wo, ws).Scale(m.Fraction).Add(m.B.Emission(si, wo, ws).Scale(1 - m.Fraction))
}
