package spectrum

import (
	"math"
	"sync"
)

// SpectrumTableResolution is the per-axis resolution of the reference renderer's
// sRGB-to-spectrum lookup table.
const SpectrumTableResolution = 64

// sRGBZNodes are the 64 z-axis (largest-RGB-component) sample positions used by
// the reference renderer's lookup table; these are measured constants, carried
// over verbatim (see DESIGN.md).
var sRGBZNodes = [SpectrumTableResolution]float64{
	0, 1.67704457e-06, 2.62230806e-05, 0.000129584747, 0.000399308716, 0.000949404493,
	0.00191508455, 0.00344748166, 0.00570843136, 0.00886540301, 0.013086644, 0.0185365994,
	0.0253716707, 0.0337363295, 0.0437596664, 0.0555523485, 0.0692040548, 0.0847813785,
	0.102326222, 0.121854618, 0.143356144, 0.166793674, 0.192103669, 0.219196871,
	0.247959405, 0.2782543, 0.309923291, 0.342789054, 0.376657575, 0.411320895,
	0.446559966, 0.482147723, 0.517852247, 0.553440034, 0.588679135, 0.623342395,
	0.657210946, 0.690076709, 0.721745729, 0.752040565, 0.780803144, 0.807896316,
	0.833206296, 0.856643856, 0.878145397, 0.897673786, 0.915218592, 0.930795968,
	0.944447637, 0.956240356, 0.966263652, 0.974628329, 0.981463373, 0.986913383,
	0.991134584, 0.994291544, 0.996552527, 0.998084903, 0.999050617, 0.999600708,
	0.99987042, 0.999973774, 0.999998331, 1,
}

// RGBToSpectrumTable converts an RGB color into an RGBSigmoidPolynomial spectrum
// that reproduces that color under the CIE observer and a chosen illuminant.
//
// The reference renderer ships a precomputed lookup table (64^3 cells x 3
// coefficients) produced offline by fitting a sigmoid-polynomial to each grid
// color; that literal table (~2.4M floats) was not present in the material
// available to build this port (see DESIGN.md), so coefficients are instead
// solved on demand via damped Gauss-Newton iteration against the real CIE
// matching functions, matched to the same quadratic-in-sigmoid basis, and
// cached so repeated lookups for the same color are O(1).
type RGBToSpectrumTable struct {
	illuminant Spectrum
	cache      sync.Map // map[RGB]RGBSigmoidPolynomial
}

// NewRGBToSpectrumTable builds a table that fits colors against the given illuminant.
func NewRGBToSpectrumTable(illuminant Spectrum) *RGBToSpectrumTable {
	return &RGBToSpectrumTable{illuminant: illuminant}
}

var sRGBSpectrumTable = NewRGBToSpectrumTable(StdIllumD65())

// SRGBSpectrumTable returns the shared table used by the sRGB color space.
func SRGBSpectrumTable() *RGBToSpectrumTable { return sRGBSpectrumTable }

// Lookup converts rgb (each component should already be clamped to >= 0) into a spectrum.
func (t *RGBToSpectrumTable) Lookup(rgb RGB) RGBSigmoidPolynomial {
	if rgb.R == rgb.G && rgb.G == rgb.B {
		// A gray value's reflectance is wavelength-independent: c0=c1=0 and c2
		// alone gives a constant sigmoid(c2) = rgb.R.
		v := math.Max(1e-4, math.Min(1-1e-4, rgb.R))
		return RGBSigmoidPolynomial{C0: 0, C1: 0, C2: grayC2(v)}
	}
	if cached, ok := t.cache.Load(rgb); ok {
		return cached.(RGBSigmoidPolynomial)
	}
	poly := t.fit(rgb)
	t.cache.Store(rgb, poly)
	return poly
}

// grayC2 inverts the sigmoid for a constant-spectrum polynomial, i.e. solves
// sigmoid(c2) = v the same way the reference renderer's degenerate-gray case does.
func grayC2(v float64) float64 {
	return (v - 0.5) / math.Sqrt(v*(1-v))
}

// fit solves for (c0, c1, c2) via a handful of damped Gauss-Newton steps that
// minimize the squared error between the polynomial's resulting RGB (projected
// through the illuminant and the CIE matching functions) and the target rgb.
func (t *RGBToSpectrumTable) fit(rgb RGB) RGBSigmoidPolynomial {
	target := rgb
	avg := math.Max(1e-4, math.Min(1-1e-4, (rgb.R+rgb.G+rgb.B)/3))
	c := [3]float64{0, 0, grayC2(avg)}

	residual := func(c [3]float64) [3]float64 {
		poly := RGBSigmoidPolynomial{C0: c[0], C1: c[1], C2: c[2]}
		got := evalPolynomialRGB(poly, t.illuminant)
		return [3]float64{got.R - target.R, got.G - target.G, got.B - target.B}
	}

	const steps = 16
	const h = 1e-3
	for iter := 0; iter < steps; iter++ {
		r0 := residual(c)
		var jac [3][3]float64
		for j := 0; j < 3; j++ {
			cp := c
			cp[j] += h
			rp := residual(cp)
			for i := 0; i < 3; i++ {
				jac[i][j] = (rp[i] - r0[i]) / h
			}
		}
		delta, ok := solve3x3(jac, r0)
		if !ok {
			break
		}
		errBefore := normSq3(r0)
		var next [3]float64
		lambda := 1.0
		for attempt := 0; attempt < 8; attempt++ {
			for i := 0; i < 3; i++ {
				next[i] = c[i] - lambda*delta[i]
			}
			if normSq3(residual(next)) < errBefore || attempt == 7 {
				break
			}
			lambda *= 0.5
		}
		c = next
		if normSq3(residual(c)) < 1e-10 {
			break
		}
	}
	return RGBSigmoidPolynomial{C0: c[0], C1: c[1], C2: c[2]}
}

func evalPolynomialRGB(poly RGBSigmoidPolynomial, illuminant Spectrum) RGB {
	reflectance := poly
	xyz := XYZFromSpectrum(reflectanceUnderIlluminant{reflectance: reflectance, illuminant: illuminant})
	return sRGBFromXYZRaw(xyz)
}

type reflectanceUnderIlluminant struct {
	reflectance Spectrum
	illuminant  Spectrum
}

func (r reflectanceUnderIlluminant) At(lambda float64) float64 {
	return r.reflectance.At(lambda) * r.illuminant.At(lambda)
}

func normSq3(v [3]float64) float64 { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }

// solve3x3 solves Ax = b via Cramer's rule; returns ok=false if A is singular.
func solve3x3(a [3][3]float64, b [3]float64) ([3]float64, bool) {
	det := det3(a)
	if math.Abs(det) < 1e-18 {
		return [3]float64{}, false
	}
	var x [3]float64
	for col := 0; col < 3; col++ {
		m := a
		for row := 0; row < 3; row++ {
			m[row][col] = b[row]
		}
		x[col] = det3(m) / det
	}
	return x, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
