package bxdf

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/sampler"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// DiffuseBxDF is a Lambertian reflector: f = albedo/pi over the whole
// hemisphere on the same side as wo, sampled cosine-weighted.
type DiffuseBxDF struct {
	Albedo spectrum.SpectrumSample
}

func sameHemisphere(wo, wi core.Vec3) bool {
	return wo.Z*wi.Z > 0
}

func (b DiffuseBxDF) Eval(wo, wi core.Vec3) spectrum.SpectrumSample {
	if !sameHemisphere(wo, wi) {
		return b.Albedo.Scale(0)
	}
	return b.Albedo.Scale(1 / math.Pi)
}

func (b DiffuseBxDF) Sample(wo core.Vec3, u1 float64, u2 core.Vec2) (BSDFSample, bool) {
	wi := sampler.CosineHemisphere(u2)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}
	pdf := sampler.CosineHemispherePDF(absCosTheta(wi))
	if pdf == 0 {
		return BSDFSample{}, false
	}
	return BSDFSample{
		Spec: b.Eval(wo, wi),
		Wi:   wi,
		PDF:  pdf,
		IOR:  1,
	}, true
}

func (b DiffuseBxDF) PDF(wo, wi core.Vec3) float64 {
	if !sameHemisphere(wo, wi) {
		return 0
	}
	return sampler.CosineHemispherePDF(absCosTheta(wi))
}

func (b DiffuseBxDF) IsSpecular() bool { return false }
