package spectrum

import "math"

// CIEYIntegral is the integral of the CIE y-bar matching function over the
// visible range, used to normalize XYZ tristimulus values to Y=1 for a
// spectrum of reflectance 1.
const CIEYIntegral = 106.856895

// gaussianLobe is one term of a multi-lobe Gaussian fit to a CIE matching function.
type gaussianLobe struct {
	amp, mu, sigma1, sigma2 float64
}

func (g gaussianLobe) at(lambda float64) float64 {
	sigma := g.sigma1
	if lambda > g.mu {
		sigma = g.sigma2
	}
	t := (lambda - g.mu) / sigma
	return g.amp * math.Exp(-0.5*t*t)
}

// cieMatchingSpectrum evaluates the CIE 1931 x-bar/y-bar/z-bar matching functions
// via the Wyman/Sloan/Shirley multi-lobe Gaussian fit. The literal 1nm-resolution
// CIE tables the reference renderer embeds were not available to port verbatim
// (see DESIGN.md), so this analytic fit stands in: it reproduces the standard
// observer curves to within the tolerance the color pipeline needs.
type cieMatchingSpectrum struct {
	lobes []gaussianLobe
}

func (s cieMatchingSpectrum) At(lambda float64) float64 {
	sum := 0.0
	for _, l := range s.lobes {
		sum += l.at(lambda)
	}
	return sum
}

var cieX = cieMatchingSpectrum{lobes: []gaussianLobe{
	{0.362, 442.0, 16.0, 26.7},
	{1.056, 599.8, 37.9, 31.0},
	{-0.065, 501.1, 20.4, 26.2},
}}

var cieY = cieMatchingSpectrum{lobes: []gaussianLobe{
	{0.821, 568.8, 46.9, 40.5},
	{0.286, 530.9, 16.3, 31.1},
}}

var cieZ = cieMatchingSpectrum{lobes: []gaussianLobe{
	{1.217, 437.0, 11.8, 36.0},
	{0.681, 459.0, 26.0, 13.8},
}}

// CIEX is the CIE 1931 x-bar color matching function.
func CIEX() Spectrum { return cieX }

// CIEY is the CIE 1931 y-bar color matching function (the luminous efficiency curve).
func CIEY() Spectrum { return cieY }

// CIEZ is the CIE 1931 z-bar color matching function.
func CIEZ() Spectrum { return cieZ }

// XYZ is a CIE XYZ tristimulus color.
type XYZ struct {
	X, Y, Z float64
}

// XYZFromSpectrum projects a continuous reflectance/radiance spectrum into XYZ.
func XYZFromSpectrum(s Spectrum) XYZ {
	return XYZ{
		X: InnerProduct(cieX, s) / CIEYIntegral,
		Y: InnerProduct(cieY, s) / CIEYIntegral,
		Z: InnerProduct(cieZ, s) / CIEYIntegral,
	}
}

// XYZFromSample projects a hero-wavelength radiance sample into XYZ via Monte
// Carlo estimation against the matching functions, dividing out the sampling PDF.
func XYZFromSample(ss SpectrumSample, ws WavelengthSample) XYZ {
	sx := FromSpectrum(cieX, ws)
	sy := FromSpectrum(cieY, ws)
	sz := FromSpectrum(cieZ, ws)
	pdf := ws.PDFAsSpectrumSample()
	x := sx.Mul(ss).Div(pdf).Average() / CIEYIntegral
	y := sy.Mul(ss).Div(pdf).Average() / CIEYIntegral
	z := sz.Mul(ss).Div(pdf).Average() / CIEYIntegral
	return XYZ{X: x, Y: y, Z: z}
}

// Chromaticity returns the CIE xy chromaticity coordinates of this color.
func (c XYZ) Chromaticity() (x, y float64) {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return 0, 0
	}
	return c.X / sum, c.Y / sum
}

// XYZFromXyY builds an XYZ color from chromaticity coordinates and a luminance.
func XYZFromXyY(x, y, Y float64) XYZ {
	if y == 0 {
		return XYZ{}
	}
	return XYZ{X: x * Y / y, Y: Y, Z: (1 - x - y) * Y / y}
}

// StdIllumD65 returns the CIE standard illuminant D65, approximated as a smooth
// daylight spectrum (correlated color temperature ~6504K) rather than the
// reference renderer's embedded measured table (unavailable to port, see
// DESIGN.md); normalized so Y=1 over the visible range.
func StdIllumD65() Spectrum {
	bb := NewBlackbodySpectrum(6504)
	y := XYZFromSpectrum(bb).Y
	if y == 0 {
		return bb
	}
	return NewScaledSpectrum(bb, 1.0/y)
}

// ScaledSpectrum wraps another spectrum, multiplying every sample by a constant.
type ScaledSpectrum struct {
	inner Spectrum
	scale float64
}

// NewScaledSpectrum wraps inner so that At(lambda) returns scale*inner.At(lambda).
func NewScaledSpectrum(inner Spectrum, scale float64) *ScaledSpectrum {
	return &ScaledSpectrum{inner: inner, scale: scale}
}

func (s *ScaledSpectrum) At(lambda float64) float64 { return s.scale * s.inner.At(lambda) }
