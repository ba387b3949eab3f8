// Package geometry implements the renderer's closed family of intersectable
// primitives (triangle, quad, sphere, triangle mesh) and the BVH that
// accelerates ray queries against them. Shapes carry no reference to
// Material or Light: Scene resolves those by geometry id after a hit,
// avoiding the cyclic reference a shape->material->light->shape chain would
// otherwise create (spec §9 design note).
package geometry

import "github.com/quevivasbien/spectral-pathtracer/pkg/core"

// SurfaceInteraction describes a ray/shape intersection in render space.
type SurfaceInteraction struct {
	Point  core.Vec3
	Wo     core.Vec3
	Normal core.Vec3
	UV     core.Vec2
	T      float64
	GeomID int
}

// Shape is the common interface every intersectable primitive satisfies.
type Shape interface {
	// Hit intersects ray against the shape over the parametric range
	// [tMin, tMax], returning the nearest hit if any.
	Hit(ray core.Ray, tMin, tMax float64) (SurfaceInteraction, bool)
	// BoundingBox returns the shape's axis-aligned world-space bounds.
	BoundingBox() core.AABB
	// Area returns the shape's surface area, used by area lights for pdf conversion.
	Area() float64
	// SampleArea draws a uniformly-distributed point and normal on the shape's surface.
	SampleArea(u core.Vec2) (point, normal core.Vec3)
	// SetGeomID stamps the shape with the scene-assigned geometry id returned in hits.
	SetGeomID(id int)
	// GeomID returns the shape's assigned geometry id.
	GeomID() int
}

// baseShape centralizes the geom-id bookkeeping all Shape implementations share.
type baseShape struct {
	geomID int
}

func (b *baseShape) SetGeomID(id int) { b.geomID = id }
func (b *baseShape) GeomID() int      { return b.geomID }
