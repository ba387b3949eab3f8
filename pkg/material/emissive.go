package material

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/bxdf"
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// Emissive is a light-emitting surface material with a black (non-scattering)
// BSDF; the scene pairs it with an AreaLight for next-event estimation, and
// the integrator adds this Emission directly whenever a path hits it
// (spec §4.G/§4.H), mirroring the teacher's pkg/material/emissive.go.
type Emissive struct {
	Radiance  Texture
	TwoSided  bool
}

func NewEmissive(radiance Texture, twoSided bool) *Emissive {
	return &Emissive{Radiance: radiance, TwoSided: twoSided}
}

func (e *Emissive) BSDF(si geometry.SurfaceInteraction, ws spectrum.WavelengthSample, u float64) bxdf.BSDF {
	return bxdf.NewBSDF(si.Normal, bxdf.DiffuseBxDF{Albedo: spectrum.NewSpectrumSample(ws, 0)})
}

func (e *Emissive) Emission(si geometry.SurfaceInteraction, wo core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	if !e.TwoSided && si.Normal.Dot(wo) <= 0 {
		return spectrum.NewSpectrumSample(ws, 0)
	}
	return e.Radiance.Value(si.UV, si.Point, ws)
}
