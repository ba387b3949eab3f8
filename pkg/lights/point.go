package lights

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// Point is an isotropic point light with inverse-square falloff, grounded on
// original_source/src/light.hpp's SimpleLight.
type Point struct {
	Position  core.Vec3
	Intensity spectrum.Spectrum
}

func NewPoint(position core.Vec3, intensity spectrum.Spectrum) *Point {
	return &Point{Position: position, Intensity: intensity}
}

func (p *Point) Sample(point core.Vec3, ws spectrum.WavelengthSample, u core.Vec2) (LightSample, bool) {
	toLight := p.Position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return LightSample{}, false
	}
	wi := toLight.Multiply(1 / distance)
	l := spectrum.FromSpectrum(p.Intensity, ws).Scale(1 / (distance * distance))
	return LightSample{Wi: wi, Distance: distance, L: l, PDF: 1}, true
}

// PDF is zero: a point light has no finite solid angle, so BSDF sampling can
// never hit it and MIS never needs its pdf from that direction.
func (p *Point) PDF(point, wi core.Vec3) float64 { return 0 }

func (p *Point) IsDelta() bool { return true }
