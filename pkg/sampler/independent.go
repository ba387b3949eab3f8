package sampler

import (
	"math/rand"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

// Independent draws i.i.d. uniform numbers from a math/rand PRNG reseeded at the
// start of every pixel sample from (pixelIndex, sampleIndex). It trades the
// low-discrepancy guarantees of Halton for simplicity; spec §9's open
// question on which sampler is canonical leaves both in, selectable via the
// Sampler interface.
type Independent struct {
	samplesPerPixel int
	xRes            int
	rng             *rand.Rand
}

// NewIndependent builds an Independent sampler for an image of the given
// resolution (used only to form the per-pixel hash).
func NewIndependent(samplesPerPixel, xRes int) *Independent {
	return &Independent{samplesPerPixel: samplesPerPixel, xRes: xRes, rng: rand.New(rand.NewSource(0))}
}

func (s *Independent) SamplesPerPixel() int { return s.samplesPerPixel }

func (s *Independent) StartPixelSample(pixelX, pixelY, sampleIndex int) {
	pixelIndex := uint64(pixelY*s.xRes + pixelX)
	seed := MurmurHash64A(hashBytes(pixelIndex, uint64(sampleIndex)), 0)
	s.rng = rand.New(rand.NewSource(int64(seed)))
}

func (s *Independent) Sample1D() float64 { return s.rng.Float64() }

func (s *Independent) Sample2D() core.Vec2 {
	return core.Vec2{X: s.rng.Float64(), Y: s.rng.Float64()}
}

func (s *Independent) SamplePixel() core.Vec2 { return s.Sample2D() }
