package material

import (
	"testing"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

func testSI() geometry.SurfaceInteraction {
	return geometry.SurfaceInteraction{
		Point:  core.NewVec3(0, 0, 0),
		Wo:     core.NewVec3(0, 0, 1),
		Normal: core.NewVec3(0, 0, 1),
		UV:     core.NewVec2(0.3, 0.7),
	}
}

func TestDiffuseBSDFIsNotSpecular(t *testing.T) {
	ws := spectrum.UniformWavelengths(0.4)
	d := NewDiffuse(NewSolidColor(spectrum.RGB{R: 0.5, G: 0.5, B: 0.5}))
	b := d.BSDF(testSI(), ws, 0)
	if b.IsSpecular() {
		t.Fatal("diffuse bsdf should not be specular")
	}
}

func TestEmissiveOneSidedZeroFromBehind(t *testing.T) {
	ws := spectrum.UniformWavelengths(0.4)
	e := NewEmissive(NewSolidColor(spectrum.RGB{R: 1, G: 1, B: 1}), false)
	si := testSI()
	front := e.Emission(si, core.NewVec3(0, 0, 1), ws)
	back := e.Emission(si, core.NewVec3(0, 0, -1), ws)
	if front.IsZero() {
		t.Fatal("expected nonzero emission from the front")
	}
	if !back.IsZero() {
		t.Fatal("expected zero emission from behind a one-sided emitter")
	}
}

func TestMixedSelectsByFraction(t *testing.T) {
	ws := spectrum.UniformWavelengths(0.4)
	a := NewDiffuse(NewSolidColor(spectrum.RGB{R: 1, G: 0, B: 0}))
	b := NewDielectric(1.5, 0)
	m := NewMixed(a, b, 0.25)
	si := testSI()
	if m.BSDF(si, ws, 0.1).IsSpecular() {
		t.Fatal("u below the fraction should delegate to the diffuse (non-specular) component A")
	}
	if !m.BSDF(si, ws, 0.9).IsSpecular() {
		t.Fatal("u above the fraction should delegate to the smooth dielectric (specular) component B")
	}
}

func TestConductorPresetsAreSpecularWhenSmooth(t *testing.T) {
	ws := spectrum.UniformWavelengths(0.4)
	c := Aluminum(0)
	b := c.BSDF(testSI(), ws, 0)
	if !b.IsSpecular() {
		t.Fatal("zero-roughness aluminum should be specular")
	}
}

func TestDielectricBSDFRoundTrips(t *testing.T) {
	ws := spectrum.UniformWavelengths(0.4)
	d := NewDielectric(1.5, 0)
	b := d.BSDF(testSI(), ws, 0)
	wo := core.NewVec3(0.1, 0, 1).Normalize()
	if s, ok := b.Sample(wo, 0.01, core.Vec2{X: 0.2, Y: 0.3}); ok {
		if s.Spec.HasNaN() {
			t.Fatal("dielectric sample produced NaN")
		}
	}
}
