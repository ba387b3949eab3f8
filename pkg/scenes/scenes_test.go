package scenes

import "testing"

func TestBlankSkyHasNoLights(t *testing.T) {
	cam, s := BlankSky(8, 8)
	if s.HasLights() {
		t.Fatalf("expected blank sky scene to have no lights")
	}
	w, h := cam.Resolution()
	if w != 8 || h != 8 {
		t.Fatalf("expected 8x8 resolution, got %dx%d", w, h)
	}
}

func TestLambertianSphereHasLight(t *testing.T) {
	_, s := LambertianSphere(8, 8)
	if !s.HasLights() {
		t.Fatalf("expected lambertian sphere scene to have a light")
	}
}

func TestMirrorSphereHasLight(t *testing.T) {
	_, s := MirrorSphere(8, 8)
	if !s.HasLights() {
		t.Fatalf("expected mirror sphere scene to have a light")
	}
}

func TestGlassSphereHasLight(t *testing.T) {
	_, s := GlassSphere(8, 8)
	if !s.HasLights() {
		t.Fatalf("expected glass sphere scene to have a light")
	}
}

func TestCornellBoxHasAreaLight(t *testing.T) {
	cam, s := CornellBox(32, 32)
	if !s.HasLights() {
		t.Fatalf("expected Cornell box to have its ceiling area light registered")
	}
	w, h := cam.Resolution()
	if w != 32 || h != 32 {
		t.Fatalf("expected square 32x32 resolution for the Cornell box, got %dx%d", w, h)
	}
}
