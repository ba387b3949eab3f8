package geometry

import (
	"sort"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

// leafThreshold is the maximum number of shapes kept in a BVH leaf before a
// further split is attempted, matching the teacher's BVH.
const leafThreshold = 8

// bvhNode is one node of the BVH binary tree: an interior node has Left/Right
// and no Shapes, a leaf has Shapes and no children.
type bvhNode struct {
	bbox        core.AABB
	left, right *bvhNode
	shapes      []Shape
}

// BVH accelerates ray/shape queries over a fixed set of shapes via a
// median-split-on-longest-axis binary tree, adapted from the teacher's
// pkg/geometry/bvh.go to operate on the new geometry.SurfaceInteraction.
type BVH struct {
	root   *bvhNode
	shapes []Shape
}

// NewBVH builds a BVH over shapes. An empty slice yields a BVH that never hits.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}
	cp := append([]Shape(nil), shapes...)
	return &BVH{root: buildBVH(cp), shapes: cp}
}

func boundsOf(shapes []Shape) core.AABB {
	bbox := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		bbox = bbox.Union(s.BoundingBox())
	}
	return bbox
}

func buildBVH(shapes []Shape) *bvhNode {
	bbox := boundsOf(shapes)
	if len(shapes) <= leafThreshold {
		return &bvhNode{bbox: bbox, shapes: shapes}
	}

	axis := bbox.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		return axisValue(shapes[i].BoundingBox().Center(), axis) < axisValue(shapes[j].BoundingBox().Center(), axis)
	})

	mid := len(shapes) / 2
	left := buildBVH(shapes[:mid])
	right := buildBVH(shapes[mid:])
	return &bvhNode{bbox: bbox, left: left, right: right}
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit finds the nearest intersection among the BVH's shapes over [tMin, tMax].
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (SurfaceInteraction, bool) {
	if b.root == nil {
		return SurfaceInteraction{}, false
	}
	return hitNode(b.root, ray, tMin, tMax)
}

func hitNode(n *bvhNode, ray core.Ray, tMin, tMax float64) (SurfaceInteraction, bool) {
	if !n.bbox.Hit(ray, tMin, tMax) {
		return SurfaceInteraction{}, false
	}

	if n.shapes != nil {
		var best SurfaceInteraction
		hitAny := false
		closest := tMax
		for _, s := range n.shapes {
			if si, ok := s.Hit(ray, tMin, closest); ok {
				hitAny = true
				closest = si.T
				best = si
			}
		}
		return best, hitAny
	}

	siLeft, hitLeft := hitNode(n.left, ray, tMin, tMax)
	closest := tMax
	if hitLeft {
		closest = siLeft.T
	}
	siRight, hitRight := hitNode(n.right, ray, tMin, closest)
	if hitRight {
		return siRight, true
	}
	return siLeft, hitLeft
}

// BoundingBox returns the bounds of every shape the BVH holds.
func (b *BVH) BoundingBox() core.AABB {
	if b.root == nil {
		return core.AABB{}
	}
	return b.root.bbox
}
