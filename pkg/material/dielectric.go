package material

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/bxdf"
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// Dielectric is a (possibly rough) refractive material such as glass or
// water, grounded on original_source/src/material.hpp's DielectricMaterial.
type Dielectric struct {
	Eta       float64
	Roughness float64
}

func NewDielectric(eta, roughness float64) *Dielectric {
	return &Dielectric{Eta: eta, Roughness: roughness}
}

func (d *Dielectric) BSDF(si geometry.SurfaceInteraction, ws spectrum.WavelengthSample, u float64) bxdf.BSDF {
	dist := bxdf.TrowbridgeReitzDistribution{
		AlphaX: bxdf.RoughnessToAlpha(d.Roughness),
		AlphaY: bxdf.RoughnessToAlpha(d.Roughness),
	}
	return bxdf.NewBSDF(si.Normal, bxdf.DielectricBxDF{Distribution: dist, Eta: d.Eta, Lambda: ws.Lambda})
}

func (d *Dielectric) Emission(si geometry.SurfaceInteraction, wo core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	return spectrum.NewSpectrumSample(ws, 0)
}

// ThinDielectric is a zero-thickness refractive slab (soap film, thin
// glass pane), grounded on ThinDielectricMaterial.
type ThinDielectric struct {
	Eta float64
}

func NewThinDielectric(eta float64) *ThinDielectric { return &ThinDielectric{Eta: eta} }

func (d *ThinDielectric) BSDF(si geometry.SurfaceInteraction, ws spectrum.WavelengthSample, u float64) bxdf.BSDF {
	return bxdf.NewBSDF(si.Normal, bxdf.ThinDielectricBxDF{Eta: d.Eta, Lambda: ws.Lambda})
}

func (d *ThinDielectric) Emission(si geometry.SurfaceInteraction, wo core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	return spectrum.NewSpectrumSample(ws, 0)
}
