// Package bxdf implements the renderer's closed family of bidirectional
// scattering distribution functions: Lambertian diffuse, rough conductor,
// smooth and thin dielectric, each exposing the evaluate/sample/pdf triple
// the integrator drives, plus the Trowbridge-Reitz microfacet distribution
// and Fresnel terms they share. Grounded on the reference renderer's
// bxdf.hpp/bxdf.cpp (see DESIGN.md).
package bxdf

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// ScatterType flags how a BSDFSample was produced, so the integrator can
// decide whether NEE applies and whether to track a refractive-index change.
type ScatterType struct {
	Specular     bool
	Transmission bool
}

// BSDFSample is the result of importance-sampling a BxDF: the incident
// direction, the spectral value f(wo,wi) for that pair (BSDF.Sample
// multiplies it by |cos theta_i|; neither divides by the pdf), the sampling
// pdf, a possibly-updated relative IOR (set only by DielectricBxDF), and
// whether the lobe is a Dirac delta.
type BSDFSample struct {
	Spec               spectrum.SpectrumSample
	Wi                 core.Vec3
	PDF                float64
	IOR                float64
	PDFIsProportional  bool
	ScatterType        ScatterType
}

// BxDF evaluates and samples a scattering distribution in a local frame where
// the surface normal is +z. wo.z>0 means outside, wi.z>0 means reflected.
type BxDF interface {
	// Eval returns f(wo,wi), the value of the distribution for a pair of directions.
	Eval(wo, wi core.Vec3) spectrum.SpectrumSample
	// Sample importance-samples an incident direction for the given outgoing direction.
	Sample(wo core.Vec3, u1 float64, u2 core.Vec2) (BSDFSample, bool)
	// PDF returns the sampling density for wi given wo.
	PDF(wo, wi core.Vec3) float64
	// IsSpecular reports whether the lobe is a Dirac delta (no eval/pdf contribution).
	IsSpecular() bool
}

func cosTheta(w core.Vec3) float64    { return w.Z }
func cos2Theta(w core.Vec3) float64   { return w.Z * w.Z }
func absCosTheta(w core.Vec3) float64 { return math.Abs(w.Z) }
func sin2Theta(w core.Vec3) float64   { return math.Max(0, 1-cos2Theta(w)) }
func sinTheta(w core.Vec3) float64    { return math.Sqrt(sin2Theta(w)) }
func tan2Theta(w core.Vec3) float64   { return sin2Theta(w) / cos2Theta(w) }

func cosPhi(w core.Vec3) float64 {
	st := sinTheta(w)
	if st == 0 {
		return 1
	}
	return clamp(w.X/st, -1, 1)
}

func sinPhi(w core.Vec3) float64 {
	st := sinTheta(w)
	if st == 0 {
		return 0
	}
	return clamp(w.Y/st, -1, 1)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Reflect mirrors wo about normal n (wo points away from the surface).
func Reflect(wo, n core.Vec3) core.Vec3 {
	return wo.Negate().Add(n.Multiply(2 * wo.Dot(n)))
}

// Refract applies Snell's law to transmit wi through interface normal n with
// relative IOR eta (= eta_transmitted/eta_incident). Returns the transmitted
// direction and the (possibly flipped) relative IOR, or ok=false on total
// internal reflection.
func Refract(wi, n core.Vec3, eta float64) (wt core.Vec3, etaOut float64, ok bool) {
	cosThetaI := wi.Dot(n)
	if cosThetaI < 0 {
		eta = 1 / eta
		cosThetaI = -cosThetaI
		n = n.Negate()
	}
	sin2ThetaI := math.Max(0, 1-cosThetaI*cosThetaI)
	sin2ThetaT := sin2ThetaI / (eta * eta)
	if sin2ThetaT >= 1 {
		return core.Vec3{}, 0, false
	}
	cosThetaT := math.Sqrt(1 - sin2ThetaT)
	wt = wi.Negate().Multiply(1 / eta).Add(n.Multiply(cosThetaI/eta - cosThetaT))
	return wt, eta, true
}

// DielectricReflectance is the unpolarized Fresnel reflectance at a real
// (non-absorbing) interface with relative IOR eta, interface-flipped so that
// cosThetaI is always treated as nonnegative (spec §4.D/invariant #11).
func DielectricReflectance(cosThetaI, eta float64) float64 {
	cosThetaI = clamp(cosThetaI, -1, 1)
	if cosThetaI < 0 {
		eta = 1 / eta
		cosThetaI = -cosThetaI
	}
	sin2ThetaI := 1 - cosThetaI*cosThetaI
	sin2ThetaT := sin2ThetaI / (eta * eta)
	if sin2ThetaT >= 1 {
		return 1
	}
	cosThetaT := math.Sqrt(1 - sin2ThetaT)
	rParallel := (eta*cosThetaI - cosThetaT) / (eta*cosThetaI + cosThetaT)
	rPerp := (cosThetaI - eta*cosThetaT) / (cosThetaI + eta*cosThetaT)
	return 0.5 * (rParallel*rParallel + rPerp*rPerp)
}

// ConductorReflectance is the unpolarized Fresnel reflectance at a conducting
// interface with complex relative IOR eta + i*k.
func ConductorReflectance(cosThetaI, eta, k float64) float64 {
	cosThetaI = clamp(cosThetaI, -1, 1)
	if cosThetaI < 0 {
		// complex division to flip the interface orientation
		denom := eta*eta + k*k
		eta, k = eta/denom, -k/denom
		cosThetaI = -cosThetaI
	}
	sin2ThetaI := 1 - cosThetaI*cosThetaI

	// complex arithmetic for sin2ThetaT = sin2ThetaI / (eta+ik)^2
	ior2Re := eta*eta - k*k
	ior2Im := 2 * eta * k
	denom := ior2Re*ior2Re + ior2Im*ior2Im
	sin2tRe := sin2ThetaI * ior2Re / denom
	sin2tIm := -sin2ThetaI * ior2Im / denom

	cosTRe, cosTIm := complexSqrt(1-sin2tRe, -sin2tIm)

	// r_parallel = (eta*cosThetaI - cosThetaT) / (eta*cosThetaI + cosThetaT)
	numRe, numIm := eta*cosThetaI-cosTRe, k*cosThetaI-cosTIm
	denRe, denIm := eta*cosThetaI+cosTRe, k*cosThetaI+cosTIm
	rParRe, rParIm := complexDiv(numRe, numIm, denRe, denIm)

	// r_perp = (cosThetaI - eta*cosThetaT) / (cosThetaI + eta*cosThetaT)
	etaCosTRe := eta*cosTRe - k*cosTIm
	etaCosTIm := eta*cosTIm + k*cosTRe
	numRe, numIm = cosThetaI-etaCosTRe, -etaCosTIm
	denRe, denIm = cosThetaI+etaCosTRe, etaCosTIm
	rPerpRe, rPerpIm := complexDiv(numRe, numIm, denRe, denIm)

	return 0.5 * (rParRe*rParRe + rParIm*rParIm + rPerpRe*rPerpRe + rPerpIm*rPerpIm)
}

func complexDiv(aRe, aIm, bRe, bIm float64) (float64, float64) {
	denom := bRe*bRe + bIm*bIm
	return (aRe*bRe + aIm*bIm) / denom, (aIm*bRe - aRe*bIm) / denom
}

func complexSqrt(re, im float64) (float64, float64) {
	r := math.Hypot(re, im)
	sqrtRe := math.Sqrt((r + re) / 2)
	sqrtIm := math.Sqrt((r - re) / 2)
	if im < 0 {
		sqrtIm = -sqrtIm
	}
	return sqrtRe, sqrtIm
}

// SpectralConductorReflectance evaluates ConductorReflectance lane-by-lane
// for spectral ior/absorption samples co-keyed to the same wavelengths.
func SpectralConductorReflectance(cosThetaI float64, ior, absorption spectrum.SpectrumSample) spectrum.SpectrumSample {
	var lanes [spectrum.NSamples]float64
	for i := 0; i < spectrum.NSamples; i++ {
		lanes[i] = ConductorReflectance(cosThetaI, ior.At(i), absorption.At(i))
	}
	return spectrum.NewSpectrumSampleFromLanes(ior.Wavelengths(), lanes)
}
