// Package renderer drives the full image render: tiling the pixel grid
// across a worker pool, giving each worker a thread-local sampler and
// integrator, and folding the results into a film.RenderResult. Grounded on
// the teacher's pkg/renderer/worker_pool.go and tile_renderer.go, replacing
// the teacher's channel/WaitGroup worker pool with an atomic pixel cursor
// and golang.org/x/sync/errgroup per spec §5.
package renderer

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/quevivasbien/spectral-pathtracer/pkg/camera"
	"github.com/quevivasbien/spectral-pathtracer/pkg/film"
	"github.com/quevivasbien/spectral-pathtracer/pkg/integrator"
	"github.com/quevivasbien/spectral-pathtracer/pkg/sampler"
	"github.com/quevivasbien/spectral-pathtracer/pkg/scene"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// tilePixels is the number of pixels handed to a worker per cursor claim,
// per spec §5's TILE=4096.
const tilePixels = 4096

// Config collects the render driver's optional knobs beyond the required
// (camera, scene, samples_per_pixel, max_bounces) parameters spec §6 names.
type Config struct {
	// Gamma is applied to the color buffer only (p -> p^gamma); 0 means
	// the spec's default of 1 (no-op).
	Gamma float64
	// NumWorkers overrides the worker count; 0 means
	// min(runtime.NumCPU(), ceil(image_size/TILE)) per spec §5.
	NumWorkers int
	// ScramblingSeed seeds the Halton sampler; samplers are reconstructible
	// from (pixel_index, sample_index, scrambling_seed) alone (spec §9).
	ScramblingSeed uint64
	// ImagingRatio scales the sensor's RGB output; 0 means 1 (no scaling).
	ImagingRatio float64
	// SamplerType selects the per-pixel sampler: "halton" (default, the
	// spec's pinned canonical choice) or "independent" (spec §9's open
	// question leaves both available behind the Sampler interface).
	SamplerType string
	Logger      Logger
}

// Render is the public entry point described in spec §6:
// render(camera, scene, samples_per_pixel, max_bounces[, gamma]) -> RenderResult.
func Render(cam *camera.Camera, scn *scene.Scene, samplesPerPixel, maxBounces int, cfg Config) film.RenderResult {
	width, height := cam.Resolution()
	f := film.New(width, height)

	gamma := cfg.Gamma
	if gamma == 0 {
		gamma = 1
	}
	imagingRatio := cfg.ImagingRatio
	if imagingRatio == 0 {
		imagingRatio = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NewDefaultLogger()
	}

	imageSize := width * height
	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		tiles := (imageSize + tilePixels - 1) / tilePixels
		numWorkers = runtime.NumCPU()
		if tiles < numWorkers {
			numWorkers = tiles
		}
		if numWorkers < 1 {
			numWorkers = 1
		}
	}

	pt := integrator.NewPathTracer(scn, maxBounces)
	sensor := spectrum.CIEXYZSensor(imagingRatio)

	var cursor int64
	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			rng := newSampler(cfg.SamplerType, samplesPerPixel, width, height, cfg.ScramblingSeed)
			renderWorker(pt, sensor, cam, f, rng, samplesPerPixel, imageSize, width, &cursor)
			return nil
		})
	}
	_ = g.Wait()

	logger.Printf("render complete: %dx%d, %d spp, %d workers", width, height, samplesPerPixel, numWorkers)
	return f.Finish(gamma)
}

// newSampler builds the per-worker sampler named by samplerType: "independent"
// for spec §9's alternative, or Halton (the default, pinned for the
// determinism invariants #9/#10/#14/#15) for anything else.
func newSampler(samplerType string, samplesPerPixel, width, height int, scramblingSeed uint64) sampler.Sampler {
	if samplerType == "independent" {
		return sampler.NewIndependent(samplesPerPixel, width)
	}
	return sampler.NewHalton(samplesPerPixel, width, height, scramblingSeed)
}

// renderWorker repeatedly claims the next half-open pixel range from cursor
// and renders every pixel in it, using its own thread-local sampler (spec §5:
// samplers are thread-local, re-seeded per pixel).
func renderWorker(pt *integrator.PathTracer, sensor *spectrum.PixelSensor, cam *camera.Camera, f *film.Film, rng sampler.Sampler, samplesPerPixel int, imageSize, width int, cursor *int64) {
	for {
		start := atomic.AddInt64(cursor, tilePixels) - tilePixels
		if start >= int64(imageSize) {
			return
		}
		end := start + tilePixels
		if end > int64(imageSize) {
			end = int64(imageSize)
		}
		renderRange(pt, sensor, cam, f, rng, samplesPerPixel, width, int(start), int(end))
	}
}

// renderRange renders every pixel index in [start, end) of the flattened
// row-major pixel grid.
func renderRange(pt *integrator.PathTracer, sensor *spectrum.PixelSensor, cam *camera.Camera, f *film.Film, rng sampler.Sampler, samplesPerPixel, width, start, end int) {
	height := f.Height
	for idx := start; idx < end; idx++ {
		x := idx % width
		y := idx / width
		for s := 0; s < samplesPerPixel; s++ {
			rng.StartPixelSample(x, y, s)
			lambdaU := rng.Sample1D()
			jitter := rng.SamplePixel()

			u := (float64(x) + jitter.X) / float64(width)
			v := 1.0 - (float64(y)+jitter.Y)/float64(height)

			ray := cam.CastRay(u, v)
			result := pt.Li(ray, lambdaU, rng)

			rgb := sensor.ToSensorRGB(result.L, result.Lambda)
			f.AddSample(x, y, rgb, result.Albedo, result.Normal)
		}
	}
}
