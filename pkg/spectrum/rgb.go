package spectrum

import "math"

// RGB is a linear RGB triple.
type RGB struct {
	R, G, B float64
}

// RGBSigmoidPolynomial is a smooth, always-nonnegative, bounded spectrum built
// from a quadratic passed through a sigmoid; it is the continuous spectrum an
// RGBToSpectrumTable lookup returns for a given color.
type RGBSigmoidPolynomial struct {
	C0, C1, C2 float64
}

func sigmoid(x float64) float64 {
	if math.IsInf(x, 0) {
		if x > 0 {
			return 1
		}
		return 0
	}
	return 0.5 + x/(2*math.Sqrt(1+x*x))
}

func (p RGBSigmoidPolynomial) At(lambda float64) float64 {
	return sigmoid(p.C0*lambda*lambda + p.C1*lambda + p.C2)
}

// MaxValue returns the polynomial's maximum over [LambdaMin, LambdaMax], checking
// the endpoints and the vertex of the underlying quadratic.
func (p RGBSigmoidPolynomial) MaxValue() float64 {
	result := math.Max(p.At(LambdaMin), p.At(LambdaMax))
	if p.C0 != 0 {
		lambda := -p.C1 / (2 * p.C0)
		if lambda >= LambdaMin && lambda <= LambdaMax {
			result = math.Max(result, p.At(lambda))
		}
	}
	return result
}
