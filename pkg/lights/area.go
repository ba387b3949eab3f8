package lights

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// RadianceSource evaluates a surface's emitted spectral radiance, satisfied
// by material.Texture without importing the material package (which already
// imports geometry, and would otherwise cycle back through lights->scene).
type RadianceSource interface {
	Value(uv core.Vec2, p core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample
}

// Area is a light bound to a Shape's surface, grounded on the teacher's
// pkg/lights/quad_light.go Sample (area-to-solid-angle pdf conversion) and
// original_source/src/scene.cpp's sample_lights selection scheme.
type Area struct {
	Shape    geometry.Shape
	Radiance RadianceSource
	TwoSided bool
}

func NewArea(shape geometry.Shape, radiance RadianceSource, twoSided bool) *Area {
	return &Area{Shape: shape, Radiance: radiance, TwoSided: twoSided}
}

func (a *Area) Sample(point core.Vec3, ws spectrum.WavelengthSample, u core.Vec2) (LightSample, bool) {
	p, n := a.Shape.SampleArea(u)
	toLight := p.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return LightSample{}, false
	}
	wi := toLight.Multiply(1 / distance)
	cosTheta := n.Dot(wi.Negate())
	frontFacing := cosTheta > 0
	if !a.TwoSided && !frontFacing {
		return LightSample{}, false
	}
	cosTheta = math.Abs(cosTheta)
	if cosTheta < 1e-8 {
		return LightSample{}, false
	}
	pdf := (1.0 / a.Shape.Area()) * distance * distance / cosTheta
	if pdf <= 0 || math.IsInf(pdf, 1) {
		return LightSample{}, false
	}
	l := a.Radiance.Value(core.Vec2{}, p, ws)
	return LightSample{Wi: wi, Distance: distance, L: l, PDF: pdf}, true
}

func (a *Area) PDF(point, wi core.Vec3) float64 {
	ray := core.NewRay(point, wi)
	si, ok := a.Shape.Hit(ray, 1e-4, math.Inf(1))
	if !ok {
		return 0
	}
	cosTheta := math.Abs(si.Normal.Dot(wi))
	if cosTheta < 1e-8 {
		return 0
	}
	return (1.0 / a.Shape.Area()) * si.T * si.T / cosTheta
}

func (a *Area) IsDelta() bool { return false }
