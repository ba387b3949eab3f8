package material

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/bxdf"
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// Diffuse is a Lambertian material, grounded on original_source/src/material.hpp's
// DiffuseMaterial and the teacher's pkg/material/lambertian.go.
type Diffuse struct {
	Reflectance Texture
}

func NewDiffuse(reflectance Texture) *Diffuse { return &Diffuse{Reflectance: reflectance} }

func (d *Diffuse) BSDF(si geometry.SurfaceInteraction, ws spectrum.WavelengthSample, u float64) bxdf.BSDF {
	albedo := d.Reflectance.Value(si.UV, si.Point, ws)
	return bxdf.NewBSDF(si.Normal, bxdf.DiffuseBxDF{Albedo: albedo})
}

func (d *Diffuse) Emission(si geometry.SurfaceInteraction, wo core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	return spectrum.NewSpectrumSample(ws, 0)
}
