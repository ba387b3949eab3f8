package geometry

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

// Triangle is a single triangle defined by three vertices, with geometric
// (not per-vertex) UVs and normal. Grounded on the teacher's geometry.Triangle,
// adapted to drop the embedded Material and return the new SurfaceInteraction.
type Triangle struct {
	baseShape
	V0, V1, V2 core.Vec3
	normal     core.Vec3
	bbox       core.AABB
}

// NewTriangle builds a triangle and precomputes its face normal and bounds.
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// Hit intersects ray against the triangle using the Moller-Trumbore algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (SurfaceInteraction, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return SurfaceInteraction{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return SurfaceInteraction{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return SurfaceInteraction{}, false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return SurfaceInteraction{}, false
	}

	normal := t.normal
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}

	return SurfaceInteraction{
		Point:  ray.At(tHit),
		Wo:     ray.Direction.Negate().Normalize(),
		Normal: normal,
		UV:     core.NewVec2(u, v),
		T:      tHit,
		GeomID: t.GeomID(),
	}, true
}

func (t *Triangle) BoundingBox() core.AABB { return t.bbox }

// Area returns the triangle's surface area via half the cross-product magnitude.
func (t *Triangle) Area() float64 {
	return 0.5 * t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length()
}

// SampleArea draws a uniform point via the standard sqrt-based barycentric mapping.
func (t *Triangle) SampleArea(u core.Vec2) (core.Vec3, core.Vec3) {
	su0 := math.Sqrt(u.X)
	b0 := 1 - su0
	b1 := u.Y * su0
	p := t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(1 - b0 - b1))
	return p, t.normal
}
