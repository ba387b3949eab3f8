//go:build !spectral_debug

package spectrum

// checkWavelengthsMatch is a no-op in the default build; see debug.go for the
// -tags spectral_debug variant that actually asserts.
func checkWavelengthsMatch(a, b [NSamples]float64) {}
