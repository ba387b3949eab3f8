package renderer

import (
	"math"
	"testing"

	"github.com/quevivasbien/spectral-pathtracer/pkg/camera"
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/lights"
	"github.com/quevivasbien/spectral-pathtracer/pkg/material"
	"github.com/quevivasbien/spectral-pathtracer/pkg/scene"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

func litTestScene() (*camera.Camera, *scene.Scene) {
	s := scene.New()
	diffuse := material.NewDiffuse(material.NewSolidColor(spectrum.RGB{R: 0.8, G: 0.8, B: 0.8}))
	s.AddSphere(core.NewVec3(0, 0, -3), 1, diffuse)
	s.AddLight(lights.NewPoint(core.NewVec3(0, 2, 0), spectrum.ConstantSpectrum{C: 10}))
	s.Commit()

	cam := camera.New(16, 16, math.Pi/3, core.Identity())
	return cam, s
}

func TestRenderIdempotence(t *testing.T) {
	cam, s := litTestScene()
	cfg := Config{ScramblingSeed: 42, NumWorkers: 1}

	r1 := Render(cam, s, 4, 4, cfg)
	r2 := Render(cam, s, 4, 4, cfg)

	for i := range r1.Color {
		if r1.Color[i] != r2.Color[i] {
			t.Fatalf("expected bit-identical renders at index %d, got %v vs %v", i, r1.Color[i], r2.Color[i])
		}
	}
}

func TestRenderWorkerCountInvariance(t *testing.T) {
	cam, s := litTestScene()

	r1 := Render(cam, s, 4, 4, Config{ScramblingSeed: 7, NumWorkers: 1})
	r8 := Render(cam, s, 4, 4, Config{ScramblingSeed: 7, NumWorkers: 8})

	for i := range r1.Color {
		if math.Abs(r1.Color[i]-r8.Color[i]) > 1e-9 {
			t.Fatalf("expected thread-count invariance at index %d, got %v vs %v", i, r1.Color[i], r8.Color[i])
		}
	}
}

func TestRenderBlankSceneIsBlack(t *testing.T) {
	s := scene.New()
	s.Commit()
	cam := camera.New(8, 8, math.Pi/3, core.Identity())

	result := Render(cam, s, 1, 1, Config{NumWorkers: 1})
	for i, v := range result.Color {
		if v != 0 {
			t.Fatalf("expected a blank scene to render fully black, got nonzero at index %d: %v", i, v)
		}
	}
}
