package scene

import (
	"math"
	"testing"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/lights"
	"github.com/quevivasbien/spectral-pathtracer/pkg/material"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

func TestRayIntersectResolvesMaterial(t *testing.T) {
	s := New()
	diffuse := material.NewDiffuse(material.NewSolidColor(spectrum.RGB{R: 0.5, G: 0.5, B: 0.5}))
	s.AddSphere(core.NewVec3(0, 0, -5), 1, diffuse)
	s.Commit()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.RayIntersect(ray, 1e-4, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Material != diffuse {
		t.Fatal("expected the resolved material to be the registered diffuse material")
	}
	if math.Abs(hit.T-4) > 1e-6 {
		t.Fatalf("expected t=4, got %v", hit.T)
	}
}

func TestOccludedRespectsSegmentLength(t *testing.T) {
	s := New()
	diffuse := material.NewDiffuse(material.NewSolidColor(spectrum.RGB{R: 1, G: 1, B: 1}))
	s.AddSphere(core.NewVec3(0, 0, -5), 1, diffuse)
	s.Commit()

	// A point well past the sphere: the segment passes through it.
	if !s.Occluded(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -10)) {
		t.Fatal("expected occlusion when the segment passes through the sphere")
	}
	// A point short of the sphere: nothing should block this shorter segment.
	if s.Occluded(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2)) {
		t.Fatal("expected no occlusion when the segment ends before the sphere")
	}
}

func TestAreaLightRoundTripThroughScene(t *testing.T) {
	s := New()
	quad := geometry.NewQuad(
		core.NewVec3(-1, 2, -1),
		core.NewVec3(1, 2, -1),
		core.NewVec3(1, 2, 1),
		core.NewVec3(-1, 2, 1),
	)
	radiance := material.NewSolidColor(spectrum.RGB{R: 5, G: 5, B: 5})
	s.AddAreaLight(quad, radiance, false)
	s.Commit()

	if !s.HasLights() {
		t.Fatal("expected the registered area light to be visible to the light sampler")
	}
	light, pdf, ok := s.SampleLights(0.1)
	if !ok || pdf != 1 {
		t.Fatalf("expected the sole light to be selected with pdf 1, got pdf=%v ok=%v", pdf, ok)
	}
	if _, ok := light.(*lights.Area); !ok {
		t.Fatal("expected the sampled light to be the registered area light")
	}
}
