package spectrum

// SensorSaturation is the maximum value any sensor RGB channel is allowed to
// report before all three channels are scaled down together.
const SensorSaturation = 40.0

var lmsFromXYZ = mat3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

var xyzFromLMS = mat3{
	{0.986993, -0.147054, 0.159963},
	{0.432305, 0.51836, 0.0492912},
	{-0.00852866, 0.0400428, 0.968487},
}

// WhiteBalance returns the 3x3 XYZ->XYZ matrix that performs a von Kries
// chromatic adaptation in LMS space from a source white point to a target
// white point, both given as CIE xy chromaticity coordinates.
func WhiteBalance(sourceWhite, targetWhite [2]float64) mat3 {
	sourceXYZ := XYZFromXyY(sourceWhite[0], sourceWhite[1], 1)
	targetXYZ := XYZFromXyY(targetWhite[0], targetWhite[1], 1)
	sourceLMS := lmsFromXYZ.mulVec([3]float64{sourceXYZ.X, sourceXYZ.Y, sourceXYZ.Z})
	targetLMS := lmsFromXYZ.mulVec([3]float64{targetXYZ.X, targetXYZ.Y, targetXYZ.Z})

	ratio := mat3{
		{targetLMS[0] / sourceLMS[0], 0, 0},
		{0, targetLMS[1] / sourceLMS[1], 0},
		{0, 0, targetLMS[2] / sourceLMS[2]},
	}
	return multiplyMat3(xyzFromLMS, multiplyMat3(ratio, lmsFromXYZ))
}

func multiplyMat3(a, b mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// PixelSensor converts a hero-wavelength radiance sample into an RGB pixel
// value: three response curves (X/Y/Z by default, or a measured camera
// response), an exposure-like imaging ratio, and a white-balance matrix
// correcting from the scene illuminant's white point to the target color
// space's white point.
type PixelSensor struct {
	r, g, b         Spectrum
	imagingRatio    float64
	xyzFromSensorRGB mat3
}

// NewPixelSensor builds a sensor using the CIE XYZ matching functions as its
// response curves, white-balanced from illuminant to cs's white point.
func NewPixelSensor(cs *RGBColorSpace, illuminant Spectrum, imagingRatio float64) *PixelSensor {
	return NewPixelSensorWithResponse(cieX, cieY, cieZ, cs, illuminant, imagingRatio)
}

// NewPixelSensorWithResponse builds a sensor with an explicit (possibly
// manufacturer-measured) r/g/b response, white-balanced as above.
func NewPixelSensorWithResponse(r, g, b Spectrum, cs *RGBColorSpace, illuminant Spectrum, imagingRatio float64) *PixelSensor {
	sourceWhite := XYZFromSpectrum(illuminant)
	sx, sy := sourceWhite.Chromaticity()
	tx, ty := cs.Whitepoint()
	return &PixelSensor{
		r: r, g: g, b: b,
		imagingRatio:     imagingRatio,
		xyzFromSensorRGB: WhiteBalance([2]float64{sx, sy}, [2]float64{tx, ty}),
	}
}

// ToSensorRGB converts a hero-wavelength radiance sample to an RGB pixel
// value, dividing out the sampling PDF, projecting through the response
// curves, applying the imaging ratio and the white-balance matrix, and
// clamping at SensorSaturation.
func (s *PixelSensor) ToSensorRGB(sample SpectrumSample, ws WavelengthSample) RGB {
	l := sample.DivideByPDF(ws)
	rSample := FromSpectrum(s.r, ws)
	gSample := FromSpectrum(s.g, ws)
	bSample := FromSpectrum(s.b, ws)

	rgb := RGB{
		R: rSample.Mul(l).Average() * s.imagingRatio,
		G: gSample.Mul(l).Average() * s.imagingRatio,
		B: bSample.Mul(l).Average() * s.imagingRatio,
	}
	wb := s.xyzFromSensorRGB.mulVec([3]float64{rgb.R, rgb.G, rgb.B})
	rgb = RGB{R: wb[0], G: wb[1], B: wb[2]}

	m := rgb.R
	if rgb.G > m {
		m = rgb.G
	}
	if rgb.B > m {
		m = rgb.B
	}
	if m > SensorSaturation {
		scale := SensorSaturation / m
		rgb.R *= scale
		rgb.G *= scale
		rgb.B *= scale
	}
	return rgb
}

// CIEXYZSensor returns a sensor using the CIE matching functions directly,
// white-balanced from D65 to sRGB's white point.
func CIEXYZSensor(imagingRatio float64) *PixelSensor {
	return NewPixelSensor(SRGB(), StdIllumD65(), imagingRatio)
}

// canonEOSR/G/B approximate a consumer DSLR's per-channel spectral response as
// single Gaussian lobes. The reference renderer ships measured Canon EOS
// response curves; that measured data was not available to port (see
// DESIGN.md), so this stands in as a plausible manufacturer-measured sensor
// for scenes that want something other than the CIE XYZ response.
var canonEOSR = gaussianLobe{amp: 1, mu: 600, sigma1: 40, sigma2: 40}
var canonEOSG = gaussianLobe{amp: 1, mu: 535, sigma1: 35, sigma2: 35}
var canonEOSB = gaussianLobe{amp: 1, mu: 460, sigma1: 30, sigma2: 30}

// CanonEOSSensor returns a sensor approximating a Canon EOS-style DSLR's
// spectral response, white-balanced from D65 to sRGB's white point.
func CanonEOSSensor(imagingRatio float64) *PixelSensor {
	return NewPixelSensorWithResponse(
		cieMatchingSpectrum{lobes: []gaussianLobe{canonEOSR}},
		cieMatchingSpectrum{lobes: []gaussianLobe{canonEOSG}},
		cieMatchingSpectrum{lobes: []gaussianLobe{canonEOSB}},
		SRGB(), StdIllumD65(), imagingRatio,
	)
}
