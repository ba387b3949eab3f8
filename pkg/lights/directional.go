package lights

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// Directional is an infinitely-distant parallel-ray light (e.g. sunlight),
// grounded on original_source/src/light.hpp's DirectionalLight, whose
// emission formula is radiance * dot(normal, wo).
type Directional struct {
	Direction core.Vec3 // direction the light travels (points away from the light)
	Radiance  spectrum.Spectrum
}

func NewDirectional(direction core.Vec3, radiance spectrum.Spectrum) *Directional {
	return &Directional{Direction: direction.Normalize(), Radiance: radiance}
}

func (d *Directional) Sample(point core.Vec3, ws spectrum.WavelengthSample, u core.Vec2) (LightSample, bool) {
	wi := d.Direction.Negate()
	l := spectrum.FromSpectrum(d.Radiance, ws)
	return LightSample{Wi: wi, Distance: 1e8, L: l, PDF: 1}, true
}

func (d *Directional) PDF(point, wi core.Vec3) float64 { return 0 }

func (d *Directional) IsDelta() bool { return true }
