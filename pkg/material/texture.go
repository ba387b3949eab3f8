package material

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/loaders"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// SolidColor is a spatially-constant texture, storing its RGB reflectance as
// a fitted RGBSigmoidPolynomial (pkg/spectrum/rgb_to_spectrum_table.go) so it
// can be evaluated at any hero wavelength.
type SolidColor struct {
	poly spectrum.RGBSigmoidPolynomial
}

// NewSolidColor fits rgb into the working color space's reflectance model.
func NewSolidColor(rgb spectrum.RGB) SolidColor {
	return SolidColor{poly: spectrum.SRGB().ToSpectrum(rgb)}
}

func (t SolidColor) Value(uv core.Vec2, p core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	var lanes [spectrum.NSamples]float64
	for i := 0; i < spectrum.NSamples; i++ {
		lanes[i] = t.poly.At(ws.Lambda[i])
	}
	return spectrum.NewSpectrumSampleFromLanes(ws.Lambda, lanes)
}

// Checkerboard alternates between two textures based on UV-space parity,
// grounded on the teacher's NewCheckerboardTexture (rasterized); this version
// evaluates the pattern analytically instead of baking it to a pixel grid.
type Checkerboard struct {
	Scale        float64
	Even, Odd    Texture
}

func NewCheckerboard(scale float64, even, odd Texture) Checkerboard {
	return Checkerboard{Scale: scale, Even: even, Odd: odd}
}

func (c Checkerboard) Value(uv core.Vec2, p core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	iu := int(uv.X*c.Scale) & 1
	iv := int(uv.Y*c.Scale) & 1
	if (iu^iv) == 0 {
		return c.Even.Value(uv, p, ws)
	}
	return c.Odd.Value(uv, p, ws)
}

// ImageTexture samples an image loaded via pkg/loaders with nearest-neighbor
// filtering, adapted from the teacher's pkg/material/image_texture.go to
// return a fitted spectral reflectance rather than an RGB triple.
type ImageTexture struct {
	image *loaders.ImageData
}

func NewImageTexture(img *loaders.ImageData) ImageTexture {
	return ImageTexture{image: img}
}

func (t ImageTexture) Value(uv core.Vec2, p core.Vec3, ws spectrum.WavelengthSample) spectrum.SpectrumSample {
	u := uv.X - float64(int(uv.X))
	v := uv.Y - float64(int(uv.Y))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}
	x := int(u * float64(t.image.Width))
	y := int((1.0 - v) * float64(t.image.Height))
	if x >= t.image.Width {
		x = t.image.Width - 1
	}
	if y >= t.image.Height {
		y = t.image.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	poly := t.image.Spectra[y*t.image.Width+x]
	var lanes [spectrum.NSamples]float64
	for i := 0; i < spectrum.NSamples; i++ {
		lanes[i] = poly.At(ws.Lambda[i])
	}
	return spectrum.NewSpectrumSampleFromLanes(ws.Lambda, lanes)
}
