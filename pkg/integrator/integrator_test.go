package integrator

import (
	"math"
	"testing"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/lights"
	"github.com/quevivasbien/spectral-pathtracer/pkg/material"
	"github.com/quevivasbien/spectral-pathtracer/pkg/sampler"
	"github.com/quevivasbien/spectral-pathtracer/pkg/scene"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

func litSceneWithPointLight() *scene.Scene {
	s := scene.New()
	diffuse := material.NewDiffuse(material.NewSolidColor(spectrum.RGB{R: 0.8, G: 0.8, B: 0.8}))
	s.AddSphere(core.NewVec3(0, 0, -3), 1, diffuse)
	s.AddLight(lights.NewPoint(core.NewVec3(5, 5, 0), spectrum.ConstantSpectrum{C: 200}))
	s.Commit()
	return s
}

func TestPathTracerEstimatesNonzeroRadianceTowardLitSurface(t *testing.T) {
	s := litSceneWithPointLight()
	pt := NewPathTracer(s, 8)
	rng := sampler.NewIndependent(16, 64)
	rng.StartPixelSample(0, 0, 0)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	result := pt.Li(ray, 0.5, rng)

	if result.L.HasNaN() {
		t.Fatal("unexpected NaN radiance")
	}
	if result.L.MaxComponent() <= 0 {
		t.Fatalf("expected positive radiance toward a lit diffuse sphere, got %v", result.L.MaxComponent())
	}
}

func TestPathTracerReturnsZeroOnMiss(t *testing.T) {
	s := scene.New()
	s.Commit()
	pt := NewPathTracer(s, 8)
	rng := sampler.NewIndependent(16, 64)
	rng.StartPixelSample(0, 0, 0)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	result := pt.Li(ray, 0.5, rng)
	if !result.L.IsZero() {
		t.Fatalf("expected zero radiance for a ray that hits nothing, got max %v", result.L.MaxComponent())
	}
}

func TestPowerHeuristicSymmetry(t *testing.T) {
	w := powerHeuristic(2, 2)
	if math.Abs(w-0.5) > 1e-12 {
		t.Fatalf("equal pdfs should weight 0.5, got %v", w)
	}
	if powerHeuristic(0, 0) != 0 {
		t.Fatal("expected 0 when both pdfs are 0")
	}
}
