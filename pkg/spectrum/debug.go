//go:build spectral_debug

package spectrum

import "fmt"

// checkWavelengthsMatch panics if two wavelength arrays diverge. Only compiled
// in when built with -tags spectral_debug; the release build (debug_release.go)
// is a no-op so the hot arithmetic path pays nothing for it by default.
func checkWavelengthsMatch(a, b [NSamples]float64) {
	if a != b {
		panic(fmt.Sprintf("spectrum: wavelength mismatch between operands: %v vs %v", a, b))
	}
}
