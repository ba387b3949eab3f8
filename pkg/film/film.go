// Package film accumulates per-pixel radiance samples into a RenderResult:
// a gamma-correctable color buffer plus auxiliary albedo/normal buffers for
// denoising, per spec §4.I and §6. Grounded on the teacher's pixel-stats
// accumulation in pkg/renderer/stats.go, generalized from luminance-only
// variance tracking to a full RGB running mean with auxiliary channels.
package film

import (
	"image"
	"image/color"
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// Film accumulates running per-pixel means of color, albedo, and normal
// across samples. One Film is shared read-write across render worker
// goroutines, but each pixel is only ever touched by the worker owning its
// tile (spec §5): no locking is required on the buffers themselves.
type Film struct {
	Width, Height int
	color         []core.Vec3
	albedo        []core.Vec3
	normal        []core.Vec3
	sampleCount   []int
}

// New allocates a film of the given pixel dimensions.
func New(width, height int) *Film {
	n := width * height
	return &Film{
		Width:       width,
		Height:      height,
		color:       make([]core.Vec3, n),
		albedo:      make([]core.Vec3, n),
		normal:      make([]core.Vec3, n),
		sampleCount: make([]int, n),
	}
}

func (f *Film) index(x, y int) int { return y*f.Width + x }

// AddSample folds one path sample's RGB radiance, first-bounce albedo, and
// first-bounce normal into pixel (x, y)'s running mean.
func (f *Film) AddSample(x, y int, rgb spectrum.RGB, albedo, normal core.Vec3) {
	i := f.index(x, y)
	n := f.sampleCount[i]
	c := core.NewVec3(rgb.R, rgb.G, rgb.B)
	if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) {
		return // spec §7: NaN radiance contributes zero and must not escape into the film
	}
	f.color[i] = runningMean(f.color[i], c, n)
	f.albedo[i] = runningMean(f.albedo[i], albedo, n)
	f.normal[i] = runningMean(f.normal[i], normal, n)
	f.sampleCount[i] = n + 1
}

func runningMean(mean, sample core.Vec3, n int) core.Vec3 {
	return mean.Add(sample.Subtract(mean).Multiply(1.0 / float64(n+1)))
}

// RenderResult is the finished, read-only output of a render: three float
// buffers in B,G,R row-major order (spec §6) plus un-gamma-corrected albedo
// and normal auxiliary buffers.
type RenderResult struct {
	Width, Height int
	Color         []float64 // len = Width*Height*3, channel order B,G,R
	Albedo        []float64
	Normal        []float64
}

// Finish converts the accumulated means into a RenderResult, applying
// p -> p^gamma to the color buffer only (gamma=1 is a no-op, the spec's
// default). Albedo and normal are emitted linear.
func (f *Film) Finish(gamma float64) RenderResult {
	if gamma == 0 {
		gamma = 1
	}
	r := RenderResult{
		Width:  f.Width,
		Height: f.Height,
		Color:  make([]float64, f.Width*f.Height*3),
		Albedo: make([]float64, f.Width*f.Height*3),
		Normal: make([]float64, f.Width*f.Height*3),
	}
	for i := 0; i < f.Width*f.Height; i++ {
		c := f.color[i]
		b := math.Pow(math.Max(c.Z, 0), gamma)
		g := math.Pow(math.Max(c.Y, 0), gamma)
		rr := math.Pow(math.Max(c.X, 0), gamma)
		r.Color[3*i+0], r.Color[3*i+1], r.Color[3*i+2] = b, g, rr

		a := f.albedo[i]
		r.Albedo[3*i+0], r.Albedo[3*i+1], r.Albedo[3*i+2] = a.Z, a.Y, a.X

		n := f.normal[i]
		r.Normal[3*i+0], r.Normal[3*i+1], r.Normal[3*i+2] = n.Z, n.Y, n.X
	}
	return r
}

// ToImage renders the color buffer to an 8-bit image.RGBA for display or PNG
// encoding, applying no transfer curve of its own: it clamps each channel to
// [0, 1] and quantizes, assuming Color is
// already gamma-applied (i.e. the RenderResult came from Finish with the
// desired display gamma).
func (r RenderResult) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			i := (y*r.Width + x) * 3
			b, g, rr := r.Color[i], r.Color[i+1], r.Color[i+2]
			img.Set(x, y, color.RGBA{
				R: toByte(rr),
				G: toByte(g),
				B: toByte(b),
				A: 255,
			})
		}
	}
	return img
}

func toByte(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(v*255.0 + 0.5)
}
