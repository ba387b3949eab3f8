package bxdf

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// ConductorBxDF is a (possibly rough) metallic reflector: a Fresnel-weighted
// mirror for smooth roughness, or a Trowbridge-Reitz microfacet reflection
// lobe otherwise. Grounded on bxdf.cpp's ConductorBxDF.
type ConductorBxDF struct {
	Distribution TrowbridgeReitzDistribution
	Eta, K       spectrum.SpectrumSample
}

func (b ConductorBxDF) IsSpecular() bool { return b.Distribution.IsSmooth() }

func (b ConductorBxDF) Eval(wo, wi core.Vec3) spectrum.SpectrumSample {
	if b.IsSpecular() || !sameHemisphere(wo, wi) {
		return spectrum.NewSpectrumSample(wavelengthsOf(b.Eta), 0)
	}
	cosThetaO, cosThetaI := absCosTheta(wo), absCosTheta(wi)
	if cosThetaO == 0 || cosThetaI == 0 {
		return spectrum.NewSpectrumSample(wavelengthsOf(b.Eta), 0)
	}
	wm := wo.Add(wi)
	if wm.IsZero() {
		return spectrum.NewSpectrumSample(wavelengthsOf(b.Eta), 0)
	}
	wm = wm.Normalize()
	fr := SpectralConductorReflectance(wo.AbsDot(wm), b.Eta, b.K)
	d := b.Distribution.D(wm)
	g := b.Distribution.G(wo, wi)
	return fr.Scale(d * g / (4 * cosThetaI * cosThetaO))
}

func (b ConductorBxDF) Sample(wo core.Vec3, u1 float64, u2 core.Vec2) (BSDFSample, bool) {
	if b.IsSpecular() {
		wi := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
		fr := SpectralConductorReflectance(absCosTheta(wi), b.Eta, b.K)
		return BSDFSample{
			Spec:        fr.Scale(1 / absCosTheta(wi)),
			Wi:          wi,
			PDF:         1,
			IOR:         1,
			ScatterType: ScatterType{Specular: true},
		}, true
	}
	if wo.Z == 0 {
		return BSDFSample{}, false
	}
	wm := b.Distribution.Sample(faceforwardSame(wo), u2)
	wi := Reflect(wo, wm)
	if !sameHemisphere(wo, wi) {
		return BSDFSample{}, false
	}
	pdf := b.Distribution.PDF(wo, wm) / (4 * wo.AbsDot(wm))
	if pdf == 0 {
		return BSDFSample{}, false
	}
	cosThetaO, cosThetaI := absCosTheta(wo), absCosTheta(wi)
	fr := SpectralConductorReflectance(wo.AbsDot(wm), b.Eta, b.K)
	d := b.Distribution.D(wm)
	g := b.Distribution.G(wo, wi)
	spec := fr.Scale(d * g / (4 * cosThetaI * cosThetaO))
	return BSDFSample{Spec: spec, Wi: wi, PDF: pdf, IOR: 1}, true
}

func (b ConductorBxDF) PDF(wo, wi core.Vec3) float64 {
	if b.IsSpecular() || !sameHemisphere(wo, wi) {
		return 0
	}
	wm := wo.Add(wi)
	if wm.IsZero() {
		return 0
	}
	wm = wm.Normalize()
	wm = faceforward(wm, core.Vec3{X: 0, Y: 0, Z: 1})
	return b.Distribution.PDF(wo, wm) / (4 * wo.AbsDot(wm))
}

func wavelengthsOf(s spectrum.SpectrumSample) spectrum.WavelengthSample {
	return spectrum.WavelengthSample{Lambda: s.Wavelengths()}
}

func faceforwardSame(w core.Vec3) core.Vec3 {
	if w.Z < 0 {
		return w.Negate()
	}
	return w
}

func faceforward(n, ref core.Vec3) core.Vec3 {
	if n.Dot(ref) < 0 {
		return n.Negate()
	}
	return n
}
