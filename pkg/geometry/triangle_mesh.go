package geometry

import "github.com/quevivasbien/spectral-pathtracer/pkg/core"

// TriangleMesh is a collection of triangles sharing one geometry id,
// accelerated with an internal BVH. Adapted from the teacher's
// pkg/geometry/triangle_mesh.go, trimmed to the vertex/face-index payload a
// minimal OBJ loader produces (spec §6) — no per-triangle material override,
// since Scene resolves material by geom-id rather than per-shape.
type TriangleMesh struct {
	baseShape
	triangles []Shape
	bvh       *BVH
	bbox      core.AABB
}

// NewTriangleMesh builds a mesh from a flat vertex list and a face-index
// list where every run of 3 indices names one triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("face indices must be a multiple of 3")
	}
	numTriangles := len(faces) / 3
	triangles := make([]Shape, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		triangles[i] = NewTriangle(vertices[i0], vertices[i1], vertices[i2])
	}

	var bbox core.AABB
	if len(triangles) > 0 {
		bbox = triangles[0].BoundingBox()
		for _, t := range triangles[1:] {
			bbox = bbox.Union(t.BoundingBox())
		}
	}

	return &TriangleMesh{triangles: triangles, bvh: NewBVH(triangles), bbox: bbox}
}

// SetGeomID stamps every constituent triangle with the mesh's geometry id, so
// a BVH hit anywhere in the mesh resolves back to the same Scene geom-data entry.
func (tm *TriangleMesh) SetGeomID(id int) {
	tm.baseShape.SetGeomID(id)
	for _, t := range tm.triangles {
		t.SetGeomID(id)
	}
}

func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (SurfaceInteraction, bool) {
	return tm.bvh.Hit(ray, tMin, tMax)
}

func (tm *TriangleMesh) BoundingBox() core.AABB { return tm.bbox }

func (tm *TriangleMesh) Area() float64 {
	total := 0.0
	for _, t := range tm.triangles {
		total += t.Area()
	}
	return total
}

// SampleArea picks a triangle uniformly by index (every triangle equally
// likely; the choice is not weighted by triangle area) and samples a point
// on it.
func (tm *TriangleMesh) SampleArea(u core.Vec2) (core.Vec3, core.Vec3) {
	idx := int(u.X * float64(len(tm.triangles)))
	if idx >= len(tm.triangles) {
		idx = len(tm.triangles) - 1
	}
	return tm.triangles[idx].SampleArea(core.Vec2{X: u.X*float64(len(tm.triangles)) - float64(idx), Y: u.Y})
}

// TriangleCount reports how many triangles the mesh was built from.
func (tm *TriangleMesh) TriangleCount() int { return len(tm.triangles) }
