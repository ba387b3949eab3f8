package bxdf

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// ThinDielectricBxDF models a zero-thickness slab (e.g. a soap film or thin
// glass pane) by analytically summing its infinite internal-reflection
// series rather than tracing the second interface, per bxdf.cpp's
// ThinDielectricBxDF.
type ThinDielectricBxDF struct {
	Eta    float64
	Lambda [spectrum.NSamples]float64
}

func (b ThinDielectricBxDF) IsSpecular() bool { return true }

func (b ThinDielectricBxDF) Eval(wo, wi core.Vec3) spectrum.SpectrumSample {
	return broadcast(spectrum.WavelengthSample{Lambda: b.Lambda}, 0)
}

func (b ThinDielectricBxDF) PDF(wo, wi core.Vec3) float64 { return 0 }

func (b ThinDielectricBxDF) effectiveReflectance(cosThetaI float64) float64 {
	r := DielectricReflectance(cosThetaI, b.Eta)
	if r < 1 {
		r += (1 - r) * (1 - r) * r / (1 - r*r)
	}
	return r
}

func (b ThinDielectricBxDF) Sample(wo core.Vec3, u1 float64, u2 core.Vec2) (BSDFSample, bool) {
	r := b.effectiveReflectance(absCosTheta(wo))
	t := 1 - r
	ws := spectrum.WavelengthSample{Lambda: b.Lambda}
	if u1 < r {
		wi := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
		return BSDFSample{
			Spec:        broadcast(ws, r/absCosTheta(wi)),
			Wi:          wi,
			PDF:         r,
			IOR:         1,
			ScatterType: ScatterType{Specular: true},
		}, true
	}
	wi := wo.Negate()
	return BSDFSample{
		Spec:        broadcast(ws, t/absCosTheta(wi)),
		Wi:          wi,
		PDF:         t,
		IOR:         1,
		ScatterType: ScatterType{Specular: true, Transmission: true},
	}, true
}
