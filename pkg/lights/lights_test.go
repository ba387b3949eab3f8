package lights

import (
	"math"
	"testing"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

type constRadiance struct{ v float64 }

func (c constRadiance) Value(uv core.Vec2, p core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	return spectrum.NewSpectrumSample(ws, c.v)
}

func TestPointLightInverseSquareFalloff(t *testing.T) {
	ws := spectrum.UniformWavelengths(0.4)
	intensity := spectrum.ConstantSpectrum{C: 10}
	p := NewPoint(core.NewVec3(0, 0, 0), intensity)
	near, _ := p.Sample(core.NewVec3(0, 0, 1), ws, core.Vec2{})
	far, _ := p.Sample(core.NewVec3(0, 0, 2), ws, core.Vec2{})
	ratio := near.L.At(0) / far.L.At(0)
	if math.Abs(ratio-4) > 1e-9 {
		t.Fatalf("expected inverse-square ratio of 4, got %v", ratio)
	}
}

func TestAreaLightSampleAndPDFAgree(t *testing.T) {
	ws := spectrum.UniformWavelengths(0.4)
	quad := geometry.NewQuad(
		core.NewVec3(-1, 2, -1),
		core.NewVec3(1, 2, -1),
		core.NewVec3(1, 2, 1),
		core.NewVec3(-1, 2, 1),
	)
	light := NewArea(quad, constRadiance{v: 5}, false)
	point := core.NewVec3(0, 0, 0)

	s, ok := light.Sample(point, ws, core.Vec2{X: 0.5, Y: 0.5})
	if !ok {
		t.Fatal("expected a valid sample")
	}
	if s.PDF <= 0 {
		t.Fatalf("expected positive pdf, got %v", s.PDF)
	}
	pdf := light.PDF(point, s.Wi)
	if pdf <= 0 {
		t.Fatalf("expected positive pdf from PDF(), got %v", pdf)
	}
}

func TestSamplerUniformSelection(t *testing.T) {
	a := NewPoint(core.NewVec3(0, 0, 0), spectrum.ConstantSpectrum{C: 1})
	b := NewPoint(core.NewVec3(1, 0, 0), spectrum.ConstantSpectrum{C: 1})
	s := NewSampler([]Light{a, b})
	_, pdf, ok := s.Sample(0.1)
	if !ok || math.Abs(pdf-0.5) > 1e-9 {
		t.Fatalf("expected selection pdf 0.5, got %v (ok=%v)", pdf, ok)
	}
}
