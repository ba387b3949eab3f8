// Package spectrum implements the renderer's spectral color pipeline: hero
// wavelength sampling, spectrum representations, RGB<->spectrum conversion via
// a sigmoid-polynomial table, and the sensor model that turns a spectral
// radiance sample into an RGB pixel value.
package spectrum

const (
	// LambdaMin is the lower bound, in nanometers, of the visible range this renderer samples.
	LambdaMin = 360.0
	// LambdaMax is the upper bound, in nanometers, of the visible range this renderer samples.
	LambdaMax = 830.0
	// NSamples is the number of hero wavelengths carried per camera ray.
	NSamples = 4
)

// WavelengthSample holds N hero wavelengths and their sampling PDFs, shared by
// every SpectrumSample along one camera ray.
//
// Invariant: either all four PDFs are nonzero (normal state), or only the
// first is nonzero with value uniformPDF/N (secondary-terminated state).
// Once terminated, a WavelengthSample stays terminated.
type WavelengthSample struct {
	Lambda [NSamples]float64
	PDF    [NSamples]float64
}

// UniformWavelengths draws a WavelengthSample from a single random variable u
// in [0,1), stratifying the remaining N-1 lanes by equal strides.
func UniformWavelengths(u float64) WavelengthSample {
	var ws WavelengthSample
	ws.Lambda[0] = (1-u)*LambdaMin + u*LambdaMax
	delta := (LambdaMax - LambdaMin) / NSamples
	for i := 1; i < NSamples; i++ {
		ws.Lambda[i] = ws.Lambda[i-1] + delta
		if ws.Lambda[i] > LambdaMax {
			ws.Lambda[i] -= (LambdaMax - LambdaMin)
		}
	}
	pdf := 1.0 / (LambdaMax - LambdaMin)
	for i := 0; i < NSamples; i++ {
		ws.PDF[i] = pdf
	}
	return ws
}

// SecondaryTerminated reports whether lanes 1..N-1 have already been zeroed out.
func (ws WavelengthSample) SecondaryTerminated() bool {
	for i := 1; i < NSamples; i++ {
		if ws.PDF[i] != 0 {
			return false
		}
	}
	return true
}

// TerminateSecondary collapses the sample to a single surviving wavelength (lane 0),
// to be called after any wavelength-dependent event (e.g. dispersive refraction).
// Safe to call more than once.
func (ws *WavelengthSample) TerminateSecondary() {
	if ws.SecondaryTerminated() {
		return
	}
	ws.PDF[0] /= NSamples
	for i := 1; i < NSamples; i++ {
		ws.PDF[i] = 0
	}
}

// PDFAsSpectrumSample returns the wavelength PDFs as a SpectrumSample, the
// denominator used throughout the estimator (see SpectrumSample.DivideByPDF).
func (ws WavelengthSample) PDFAsSpectrumSample() SpectrumSample {
	return SpectrumSample{lambda: ws.Lambda, v: ws.PDF}
}
