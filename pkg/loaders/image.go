// Package loaders reads external scene assets (OBJ meshes, PNG/JPEG images)
// off disk. Grounded on the teacher's pkg/loaders, with image loading
// adapted here to produce spectral reflectance curves rather than raw RGB,
// since every texture consumer in this renderer (pkg/material.Texture)
// evaluates at a hero wavelength rather than in RGB.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// ImageData is a decoded image, with each texel's sRGB color pre-fit to a
// spectral reflectance curve (pkg/spectrum/rgb_to_spectrum_table.go) so a
// Texture can evaluate it at any wavelength without re-fitting per sample.
type ImageData struct {
	Width   int
	Height  int
	Pixels  []core.Vec3
	Spectra []spectrum.RGBSigmoidPolynomial
}

// LoadImage decodes a PNG or JPEG file and fits every texel to the working
// color space's reflectance model.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode auto-detects PNG/JPEG from the file header.
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	spectra := make([]spectrum.RGBSigmoidPolynomial, width*height)
	colorSpace := spectrum.SRGB()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			rgb := spectrum.RGB{
				R: float64(r) / 65535.0,
				G: float64(g) / 65535.0,
				B: float64(b) / 65535.0,
			}
			idx := y*width + x
			pixels[idx] = core.NewVec3(rgb.R, rgb.G, rgb.B)
			spectra[idx] = colorSpace.ToSpectrum(rgb)
		}
	}

	return &ImageData{
		Width:   width,
		Height:  height,
		Pixels:  pixels,
		Spectra: spectra,
	}, nil
}
