package geometry

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

// Sphere is a sphere shape. Grounded on the teacher's geometry.Sphere for
// the quadratic intersection test, but the UV parameterization follows
// original_source/src/scene.cpp's get_sphere_uv exactly, since a ray-tracing
// acceleration structure built from a sphere primitive (rather than a
// triangulated mesh) has no native UVs to fall back on.
type Sphere struct {
	baseShape
	Center core.Vec3
	Radius float64
}

func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (SurfaceInteraction, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return SurfaceInteraction{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return SurfaceInteraction{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	normal := outwardNormal
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}

	return SurfaceInteraction{
		Point:  point,
		Wo:     ray.Direction.Negate().Normalize(),
		Normal: normal,
		UV:     sphereUV(outwardNormal),
		T:      root,
		GeomID: s.GeomID(),
	}, true
}

// sphereUV maps a unit normal to the (u,v) parameterization Sphere.Hit
// reports for every sphere hit (spec §4.F).
func sphereUV(n core.Vec3) core.Vec2 {
	phi := math.Atan2(n.Z, n.X) + math.Pi
	u := phi / (2.0 * math.Pi)
	if u >= 1.0 {
		u = math.Nextafter(1.0, 0)
	}
	theta := math.Acos(n.Y)
	v := theta / math.Pi
	if v >= 1.0 {
		v = math.Nextafter(1.0, 0)
	}
	return core.NewVec2(u, v)
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

func (s *Sphere) Area() float64 { return 4 * math.Pi * s.Radius * s.Radius }

// SampleArea draws a uniform point on the sphere via UniformSphere-style
// inversion, kept local to avoid a geometry->sampler import cycle.
func (s *Sphere) SampleArea(u core.Vec2) (core.Vec3, core.Vec3) {
	z := 1 - 2*u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	n := core.Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
	return s.Center.Add(n.Multiply(s.Radius)), n
}
