package sampler

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

// UniformDiskConcentric maps a uniform 2D sample to the unit disk using
// Shirley's concentric-square-to-disk mapping (low-distortion compared to a
// polar mapping).
func UniformDiskConcentric(u core.Vec2) core.Vec2 {
	offset := core.Vec2{X: 2*u.X - 1, Y: 2*u.Y - 1}
	if offset.X == 0 && offset.Y == 0 {
		return core.Vec2{}
	}
	var theta, r float64
	if math.Abs(offset.X) > math.Abs(offset.Y) {
		r = offset.X
		theta = math.Pi / 4 * (offset.Y / offset.X)
	} else {
		r = offset.Y
		theta = math.Pi/2 - math.Pi/4*(offset.X/offset.Y)
	}
	return core.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// UniformHemisphere samples a direction uniformly over the hemisphere z>=0.
func UniformHemisphere(u core.Vec2) core.Vec3 {
	z := u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return core.Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// UniformHemispherePDF is the constant solid-angle PDF of UniformHemisphere.
func UniformHemispherePDF() float64 { return 0.5 * (1 / math.Pi) }

// UniformSphere samples a direction uniformly over the full sphere.
func UniformSphere(u core.Vec2) core.Vec3 {
	z := 1 - 2*u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return core.Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// UniformSpherePDF is the constant solid-angle PDF of UniformSphere.
func UniformSpherePDF() float64 { return 0.25 * (1 / math.Pi) }

// CosineHemisphere samples a direction from the cosine-weighted hemisphere
// z>=0 by projecting a concentric disk sample upward.
func CosineHemisphere(u core.Vec2) core.Vec3 {
	d := UniformDiskConcentric(u)
	z := math.Sqrt(math.Max(0, 1-d.X*d.X-d.Y*d.Y))
	return core.Vec3{X: d.X, Y: d.Y, Z: z}
}

// CosineHemispherePDF is the PDF of CosineHemisphere at the given |cos theta|.
func CosineHemispherePDF(cosTheta float64) float64 { return cosTheta / math.Pi }
