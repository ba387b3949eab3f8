package bxdf

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// DielectricBxDF is a (possibly rough) refractive interface: reflection and
// transmission Fresnel-weighted by a non-dispersive relative IOR. A chosen
// transmission event forces the integrator to terminate the path's secondary
// hero wavelengths, since a dispersive material would send them along
// different directions than the one actually traced (spec §4.D).
type DielectricBxDF struct {
	Distribution TrowbridgeReitzDistribution
	Eta          float64
	Lambda       [spectrum.NSamples]float64
}

func (b DielectricBxDF) IsSpecular() bool {
	return b.Eta == 1 || b.Distribution.IsSmooth()
}

func broadcast(ws spectrum.WavelengthSample, c float64) spectrum.SpectrumSample {
	return spectrum.NewSpectrumSample(ws, c)
}

func (b DielectricBxDF) Eval(wo, wi core.Vec3) spectrum.SpectrumSample {
	ws := spectrum.WavelengthSample{Lambda: b.Lambda}
	if b.Eta == 1 || b.Distribution.IsSmooth() {
		return broadcast(ws, 0)
	}
	cosThetaO, cosThetaI := cosTheta(wo), cosTheta(wi)
	reflect := cosThetaI*cosThetaO > 0
	etap := 1.0
	if !reflect {
		if cosThetaO > 0 {
			etap = b.Eta
		} else {
			etap = 1 / b.Eta
		}
	}
	wm := wi.Multiply(etap).Add(wo)
	if cosThetaI == 0 || cosThetaO == 0 || wm.IsZero() {
		return broadcast(ws, 0)
	}
	wm = faceforward(wm.Normalize(), core.Vec3{X: 0, Y: 0, Z: 1})
	if wm.Dot(wi)*cosThetaI < 0 || wm.Dot(wo)*cosThetaO < 0 {
		return broadcast(ws, 0) // backfacing microfacet
	}

	fr := DielectricReflectance(wo.Dot(wm), b.Eta)
	d := b.Distribution.D(wm)
	g := b.Distribution.G(wo, wi)

	if reflect {
		return broadcast(ws, d*g*fr/math.Abs(4*cosThetaI*cosThetaO))
	}
	denom := wm.Dot(wi) + wm.Dot(wo)/etap
	denom *= denom
	ft := (1 - fr) * d * g * math.Abs(wm.Dot(wi)*wm.Dot(wo)/(cosThetaI*cosThetaO*denom))
	// radiance scaling for a camera ray crossing the interface (non-adjoint path)
	ft /= etap * etap
	return broadcast(ws, ft)
}

func (b DielectricBxDF) Sample(wo core.Vec3, u1 float64, u2 core.Vec2) (BSDFSample, bool) {
	if b.Eta == 1 || b.Distribution.IsSmooth() {
		return b.sampleSmooth(wo, u1)
	}
	return b.sampleRough(wo, u1, u2)
}

func (b DielectricBxDF) sampleSmooth(wo core.Vec3, u1 float64) (BSDFSample, bool) {
	fr := DielectricReflectance(cosTheta(wo), b.Eta)
	ws := spectrum.WavelengthSample{Lambda: b.Lambda}
	if u1 < fr {
		wi := core.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
		return BSDFSample{
			Spec:        broadcast(ws, fr/absCosTheta(wi)),
			Wi:          wi,
			PDF:         fr,
			IOR:         1,
			ScatterType: ScatterType{Specular: true},
		}, true
	}
	wt, etap, ok := Refract(wo, alignedWith(core.Vec3{X: 0, Y: 0, Z: 1}, wo), b.Eta)
	if !ok {
		return BSDFSample{}, false
	}
	ft := (1 - fr)
	ft /= etap * etap
	return BSDFSample{
		Spec:        broadcast(ws, ft/absCosTheta(wt)),
		Wi:          wt,
		PDF:         1 - fr,
		IOR:         etap,
		ScatterType: ScatterType{Specular: true, Transmission: true},
	}, true
}

// alignedWith returns n flipped to be in the same hemisphere as w.
func alignedWith(n, w core.Vec3) core.Vec3 {
	if n.Dot(w) < 0 {
		return n.Negate()
	}
	return n
}

func (b DielectricBxDF) sampleRough(wo core.Vec3, u1 float64, u2 core.Vec2) (BSDFSample, bool) {
	wm := b.Distribution.Sample(faceforwardSame(wo), u2)
	fr := DielectricReflectance(wo.Dot(wm), b.Eta)
	ws := spectrum.WavelengthSample{Lambda: b.Lambda}

	if u1 < fr {
		wi := Reflect(wo, wm)
		if !sameHemisphere(wo, wi) {
			return BSDFSample{}, false
		}
		pdf := b.Distribution.PDF(wo, wm) / (4 * wo.AbsDot(wm)) * fr
		if pdf == 0 {
			return BSDFSample{}, false
		}
		d := b.Distribution.D(wm)
		g := b.Distribution.G(wo, wi)
		spec := d * g * fr / math.Abs(4*cosTheta(wi)*cosTheta(wo))
		return BSDFSample{Spec: broadcast(ws, spec), Wi: wi, PDF: pdf, IOR: 1}, true
	}

	wi, etap, ok := Refract(wo, alignedWith(wm, wo), b.Eta)
	if !ok || sameHemisphere(wo, wi) || wi.Z == 0 {
		return BSDFSample{}, false
	}
	denom := wi.Dot(wm) + wo.Dot(wm)/etap
	denom *= denom
	dwmDwi := wi.AbsDot(wm) / denom
	pdf := b.Distribution.PDF(wo, wm) * dwmDwi * (1 - fr)
	if pdf == 0 {
		return BSDFSample{}, false
	}
	d := b.Distribution.D(wm)
	g := b.Distribution.G(wo, wi)
	ft := (1 - fr) * d * g * math.Abs(wi.Dot(wm)*wo.Dot(wm)/(cosTheta(wi)*cosTheta(wo)*denom))
	ft /= etap * etap
	return BSDFSample{
		Spec:        broadcast(ws, ft),
		Wi:          wi,
		PDF:         pdf,
		IOR:         etap,
		ScatterType: ScatterType{Transmission: true},
	}, true
}

func (b DielectricBxDF) PDF(wo, wi core.Vec3) float64 {
	if b.Eta == 1 || b.Distribution.IsSmooth() {
		return 0
	}
	cosThetaO, cosThetaI := cosTheta(wo), cosTheta(wi)
	reflect := cosThetaI*cosThetaO > 0
	etap := 1.0
	if !reflect {
		if cosThetaO > 0 {
			etap = b.Eta
		} else {
			etap = 1 / b.Eta
		}
	}
	wm := wi.Multiply(etap).Add(wo)
	if cosThetaI == 0 || cosThetaO == 0 || wm.IsZero() {
		return 0
	}
	wm = faceforward(wm.Normalize(), core.Vec3{X: 0, Y: 0, Z: 1})
	if wm.Dot(wi)*cosThetaI < 0 || wm.Dot(wo)*cosThetaO < 0 {
		return 0
	}
	fr := DielectricReflectance(wo.Dot(wm), b.Eta)
	if reflect {
		return b.Distribution.PDF(wo, wm) / (4 * wo.AbsDot(wm)) * fr
	}
	denom := wi.Dot(wm) + wo.Dot(wm)/etap
	denom *= denom
	dwmDwi := wi.AbsDot(wm) / denom
	return b.Distribution.PDF(wo, wm) * dwmDwi * (1 - fr)
}
