package geometry

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

// Quad is a planar rectangle defined by four clockwise vertices (spec §4.F),
// stored internally as a corner plus two edge vectors for the teacher's
// plane/barycentric intersection test (pkg/geometry/quad.go), adapted to drop
// the embedded Material.
type Quad struct {
	baseShape
	Corner core.Vec3
	U, V   core.Vec3
	Normal core.Vec3
	d      float64
	w      core.Vec3
	area   float64
}

// NewQuad builds a quad from four clockwise vertices a, b, c, d, where
// (b-a) and (d-a) are the two edge vectors.
func NewQuad(a, b, c, d core.Vec3) *Quad {
	u := b.Subtract(a)
	v := d.Subtract(a)
	normal := u.Cross(v).Normalize()
	cross := u.Cross(v)
	w := normal.Multiply(1.0 / normal.Dot(cross))
	return &Quad{
		Corner: a,
		U:      u,
		V:      v,
		Normal: normal,
		d:      normal.Dot(a),
		w:      w,
		area:   u.Cross(v).Length(),
	}
}

func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (SurfaceInteraction, bool) {
	denom := ray.Direction.Dot(q.Normal)
	if math.Abs(denom) < 1e-8 {
		return SurfaceInteraction{}, false
	}
	t := (q.d - ray.Origin.Dot(q.Normal)) / denom
	if t < tMin || t > tMax {
		return SurfaceInteraction{}, false
	}
	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return SurfaceInteraction{}, false
	}

	normal := q.Normal
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}

	return SurfaceInteraction{
		Point:  hitPoint,
		Wo:     ray.Direction.Negate().Normalize(),
		Normal: normal,
		UV:     core.NewVec2(alpha, beta),
		T:      t,
		GeomID: q.GeomID(),
	}, true
}

func (q *Quad) BoundingBox() core.AABB {
	corners := []core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}
	return core.NewAABBFromPoints(corners...)
}

func (q *Quad) Area() float64 { return q.area }

func (q *Quad) SampleArea(u core.Vec2) (core.Vec3, core.Vec3) {
	p := q.Corner.Add(q.U.Multiply(u.X)).Add(q.V.Multiply(u.Y))
	return p, q.Normal
}
