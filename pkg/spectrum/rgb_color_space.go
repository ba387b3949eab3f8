package spectrum

import "math"

// mat3 is a row-major 3x3 matrix, used only for RGB<->XYZ primary conversions.
type mat3 [3][3]float64

func (m mat3) mulVec(v [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return r
}

func (m mat3) mulDiag(d [3]float64) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] * d[j]
		}
	}
	return r
}

func (m mat3) invert() mat3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	invDet := 1.0 / det

	return mat3{
		{(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet},
		{(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet},
		{(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet},
	}
}

// RGBColorSpace relates a linear RGB space (defined by its primaries and white
// point) to CIE XYZ, and provides RGB<->spectrum conversion through an
// RGBToSpectrumTable.
type RGBColorSpace struct {
	rPrimary, gPrimary, bPrimary [2]float64
	white                        [2]float64
	xyzFromRGB                   mat3
	rgbFromXYZ                   mat3
	illuminant                   Spectrum
	table                        *RGBToSpectrumTable
}

// NewRGBColorSpace builds a color space from chromaticity primaries, a white-point
// illuminant spectrum, and the spectrum-conversion table to use for ToSpectrum.
func NewRGBColorSpace(r, g, b [2]float64, illuminant Spectrum, table *RGBToSpectrumTable) *RGBColorSpace {
	white := XYZFromSpectrum(illuminant)
	wx, wy := white.Chromaticity()

	toXYZ := func(xy [2]float64) [3]float64 {
		c := XYZFromXyY(xy[0], xy[1], 1)
		return [3]float64{c.X, c.Y, c.Z}
	}
	R := toXYZ(r)
	G := toXYZ(g)
	B := toXYZ(b)

	primaries := mat3{
		{R[0], G[0], B[0]},
		{R[1], G[1], B[1]},
		{R[2], G[2], B[2]},
	}
	whiteXYZ := [3]float64{wx / wy, 1, (1 - wx - wy) / wy}
	scale := primaries.invert().mulVec(whiteXYZ)
	xyzFromRGB := primaries.mulDiag(scale)

	return &RGBColorSpace{
		rPrimary: r, gPrimary: g, bPrimary: b, white: [2]float64{wx, wy},
		xyzFromRGB: xyzFromRGB,
		rgbFromXYZ: xyzFromRGB.invert(),
		illuminant: illuminant,
		table:      table,
	}
}

var sRGBColorSpace = NewRGBColorSpace(
	[2]float64{0.64, 0.33},
	[2]float64{0.3, 0.6},
	[2]float64{0.15, 0.06},
	StdIllumD65(),
	SRGBSpectrumTable(),
)

// SRGB returns the standard sRGB/Rec.709 color space, the renderer's default
// working space for texture and output colors.
func SRGB() *RGBColorSpace { return sRGBColorSpace }

// sRGBFromXYZRaw converts XYZ to sRGB primaries using a fixed matrix, used
// internally while fitting RGBToSpectrumTable entries (avoids depending on
// RGBColorSpace during its own construction).
func sRGBFromXYZRaw(xyz XYZ) RGB {
	r := 3.2406*xyz.X - 1.5372*xyz.Y - 0.4986*xyz.Z
	g := -0.9689*xyz.X + 1.8758*xyz.Y + 0.0415*xyz.Z
	b := 0.0557*xyz.X - 0.2040*xyz.Y + 1.0570*xyz.Z
	return RGB{R: r, G: g, B: b}
}

// FromXYZ converts a CIE XYZ color into this color space's linear RGB.
func (cs *RGBColorSpace) FromXYZ(xyz XYZ) RGB {
	v := cs.rgbFromXYZ.mulVec([3]float64{xyz.X, xyz.Y, xyz.Z})
	return RGB{R: v[0], G: v[1], B: v[2]}
}

// ToXYZ converts a linear RGB color in this space into CIE XYZ.
func (cs *RGBColorSpace) ToXYZ(rgb RGB) XYZ {
	v := cs.xyzFromRGB.mulVec([3]float64{rgb.R, rgb.G, rgb.B})
	return XYZ{X: v[0], Y: v[1], Z: v[2]}
}

// FromSample converts a hero-wavelength radiance sample into this space's RGB.
func (cs *RGBColorSpace) FromSample(ss SpectrumSample, ws WavelengthSample) RGB {
	return cs.FromXYZ(XYZFromSample(ss, ws))
}

// ToSpectrum converts an RGB reflectance/color into a continuous spectrum via
// the color space's RGBToSpectrumTable, clamping negative input components to zero.
func (cs *RGBColorSpace) ToSpectrum(rgb RGB) RGBSigmoidPolynomial {
	return cs.table.Lookup(RGB{
		R: math.Max(rgb.R, 0),
		G: math.Max(rgb.G, 0),
		B: math.Max(rgb.B, 0),
	})
}

// Whitepoint returns the color space's white point chromaticity.
func (cs *RGBColorSpace) Whitepoint() (x, y float64) { return cs.white[0], cs.white[1] }
