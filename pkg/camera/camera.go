// Package camera implements the perspective pinhole camera described in
// spec §4.I, generalizing the teacher's pkg/renderer/camera.go (a fixed
// 16:9/origin-at-zero camera) to an arbitrary field of view and placement
// via core.Transform.
package camera

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

// Camera is a perspective pinhole camera. CastRay(u,v) returns a ray from
// the origin through the point (u,v) of the image plane, u/v in [0,1] with
// v=0 at the bottom row.
type Camera struct {
	width, height      int
	origin             core.Vec3
	viewportBottomLeft core.Vec3
	pixelDU            core.Vec3
	pixelDV            core.Vec3
}

// New builds a camera from image dimensions, vertical field of view (in
// radians), and a transform applied to the canonical basis (-z forward,
// +y up, +x right) to place and orient it in the scene.
func New(width, height int, fovRadians float64, transform core.Transform) *Camera {
	aspect := float64(width) / float64(height)
	viewportHeight := 2.0 * math.Tan(fovRadians/2.0)
	viewportWidth := viewportHeight * aspect

	origin := transform.ApplyPt(core.NewPt3(0, 0, 0)).AsVec3()
	forward := transform.ApplyVec(core.NewVec3(0, 0, -1)).Normalize()
	up := transform.ApplyVec(core.NewVec3(0, 1, 0)).Normalize()
	right := forward.Cross(up).Normalize()
	// re-derive up so the basis stays orthonormal even if transform wasn't pure rotation
	up = right.Cross(forward).Normalize()

	horizontal := right.Multiply(viewportWidth)
	vertical := up.Multiply(viewportHeight)
	bottomLeft := origin.
		Add(forward).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &Camera{
		width:              width,
		height:             height,
		origin:             origin,
		viewportBottomLeft: bottomLeft,
		pixelDU:            horizontal,
		pixelDV:            vertical,
	}
}

// CastRay returns a primary ray through normalized image coordinates (u, v).
func (c *Camera) CastRay(u, v float64) core.Ray {
	target := c.viewportBottomLeft.Add(c.pixelDU.Multiply(u)).Add(c.pixelDV.Multiply(v))
	direction := target.Subtract(c.origin)
	return core.NewRay(c.origin, direction)
}

// Origin returns the camera's world-space position.
func (c *Camera) Origin() core.Vec3 { return c.origin }

// Resolution returns the image dimensions the camera was built for.
func (c *Camera) Resolution() (width, height int) { return c.width, c.height }

// NewLookAt builds a camera directly from an eye position, a look-at target,
// and an approximate up vector, generalizing the teacher's
// pkg/renderer.CameraConfig{Center, LookAt, Up, VFov} constructor style
// without needing to round-trip through a generic core.Transform.
func NewLookAt(width, height int, fovRadians float64, eye, target, up core.Vec3) *Camera {
	aspect := float64(width) / float64(height)
	viewportHeight := 2.0 * math.Tan(fovRadians/2.0)
	viewportWidth := viewportHeight * aspect

	forward := target.Subtract(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward).Normalize()

	horizontal := right.Multiply(viewportWidth)
	vertical := trueUp.Multiply(viewportHeight)
	bottomLeft := eye.
		Add(forward).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &Camera{
		width:              width,
		height:             height,
		origin:             eye,
		viewportBottomLeft: bottomLeft,
		pixelDU:            horizontal,
		pixelDV:            vertical,
	}
}
