package geometry

import (
	"math"
	"testing"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

func TestTriangleHit(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	si, ok := tri.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(si.T-1) > 1e-9 {
		t.Fatalf("expected t=1, got %v", si.T)
	}
	if si.Normal.Z <= 0 {
		t.Fatalf("normal should face the ray origin: %v", si.Normal)
	}
}

func TestTriangleMiss(t *testing.T) {
	tri := NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(5, 5, 1), core.NewVec3(0, 0, -1))
	if _, ok := tri.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Fatal("expected miss")
	}
}

func TestSphereUVContinuity(t *testing.T) {
	uv := sphereUV(core.NewVec3(1, 0, 0))
	if uv.X < 0 || uv.X >= 1 || uv.Y < 0 || uv.Y > 1 {
		t.Fatalf("uv out of range: %v", uv)
	}
}

func TestSphereHit(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 1)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	si, ok := s.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(si.T-4) > 1e-9 {
		t.Fatalf("expected t=4, got %v", si.T)
	}
}

func TestQuadHit(t *testing.T) {
	q := NewQuad(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(-1, 1, 0),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	si, ok := q.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(si.T-5) > 1e-9 {
		t.Fatalf("expected t=5, got %v", si.T)
	}
}

func TestBVHMatchesLinearSearch(t *testing.T) {
	var shapes []Shape
	for i := 0; i < 50; i++ {
		shapes = append(shapes, NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1))
	}
	bvh := NewBVH(shapes)
	ray := core.NewRay(core.NewVec3(30, 0, 5), core.NewVec3(0, 0, -1))

	var wantBest SurfaceInteraction
	wantHit := false
	closest := math.Inf(1)
	for _, s := range shapes {
		if si, ok := s.Hit(ray, 0.001, closest); ok {
			wantHit = true
			closest = si.T
			wantBest = si
		}
	}

	si, ok := bvh.Hit(ray, 0.001, math.Inf(1))
	if ok != wantHit {
		t.Fatalf("hit mismatch: bvh=%v want=%v", ok, wantHit)
	}
	if ok && math.Abs(si.T-wantBest.T) > 1e-9 {
		t.Fatalf("t mismatch: bvh=%v want=%v", si.T, wantBest.T)
	}
}

func TestTriangleMeshBuilds(t *testing.T) {
	verts := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 1, 0),
	}
	faces := []int{0, 1, 2, 1, 3, 2}
	mesh := NewTriangleMesh(verts, faces)
	mesh.SetGeomID(7)
	if mesh.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", mesh.TriangleCount())
	}
	ray := core.NewRay(core.NewVec3(0.4, 0.4, 1), core.NewVec3(0, 0, -1))
	si, ok := mesh.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if si.GeomID != 7 {
		t.Fatalf("expected geom id 7, got %d", si.GeomID)
	}
}
