package material

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/bxdf"
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// Conductor is a (possibly rough) metallic material with a complex,
// wavelength-dependent index of refraction. Grounded on
// original_source/src/material.hpp's ConductiveMaterial, including its
// aluminum()/copper() presets.
type Conductor struct {
	Eta, K         spectrum.Spectrum
	RoughnessX     float64
	RoughnessY     float64
}

func NewConductor(eta, k spectrum.Spectrum, roughness float64) *Conductor {
	return &Conductor{Eta: eta, K: k, RoughnessX: roughness, RoughnessY: roughness}
}

func (c *Conductor) BSDF(si geometry.SurfaceInteraction, ws spectrum.WavelengthSample, u float64) bxdf.BSDF {
	dist := bxdf.TrowbridgeReitzDistribution{
		AlphaX: bxdf.RoughnessToAlpha(c.RoughnessX),
		AlphaY: bxdf.RoughnessToAlpha(c.RoughnessY),
	}
	eta := spectrum.FromSpectrum(c.Eta, ws)
	k := spectrum.FromSpectrum(c.K, ws)
	return bxdf.NewBSDF(si.Normal, bxdf.ConductorBxDF{Distribution: dist, Eta: eta, K: k})
}

func (c *Conductor) Emission(si geometry.SurfaceInteraction, wo core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	return spectrum.NewSpectrumSample(ws, 0)
}

// aluminumEta/aluminumK and copperEta/copperK are representative complex IOR
// curves across the visible range (360-830nm), coarser than a measured
// dataset but enough to reproduce the characteristic near-neutral aluminum
// and warm-orange copper tint; DESIGN.md records this as a substitution for
// the embedded measured tables the reference renderer does not ship.
var (
	aluminumEta = spectrum.NewPiecewiseLinearSpectrum(
		[]float64{360, 450, 550, 650, 830},
		[]float64{0.35, 0.62, 0.96, 1.26, 1.6},
	)
	aluminumK = spectrum.NewPiecewiseLinearSpectrum(
		[]float64{360, 450, 550, 650, 830},
		[]float64{3.9, 4.8, 6.0, 7.1, 8.3},
	)
	copperEta = spectrum.NewPiecewiseLinearSpectrum(
		[]float64{360, 450, 550, 650, 830},
		[]float64{1.1, 1.17, 0.85, 0.25, 0.2},
	)
	copperK = spectrum.NewPiecewiseLinearSpectrum(
		[]float64{360, 450, 550, 650, 830},
		[]float64{1.9, 2.2, 2.6, 3.4, 4.2},
	)
)

// Aluminum builds a Conductor with the renderer's aluminum preset.
func Aluminum(roughness float64) *Conductor {
	return NewConductor(aluminumEta, aluminumK, roughness)
}

// Copper builds a Conductor with the renderer's copper preset.
func Copper(roughness float64) *Conductor {
	return NewConductor(copperEta, copperK, roughness)
}
