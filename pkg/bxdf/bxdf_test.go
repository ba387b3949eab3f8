package bxdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

func testWavelengths() [spectrum.NSamples]float64 {
	return [spectrum.NSamples]float64{600, 550, 500, 450}
}

func randomDirection(rng *rand.Rand, upper bool) core.Vec3 {
	z := rng.Float64()
	if !upper {
		z = -z
	}
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * rng.Float64()
	return core.Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// TestDiffuseSampleConsistency checks that sampled directions agree with
// Eval/PDF up to the standard importance-sampling identity (invariant #8).
func TestDiffuseSampleConsistency(t *testing.T) {
	ws := spectrum.WavelengthSample{Lambda: testWavelengths()}
	b := DiffuseBxDF{Albedo: spectrum.NewSpectrumSample(ws, 0.8)}
	rng := rand.New(rand.NewSource(1))
	wo := randomDirection(rng, true)
	for i := 0; i < 100; i++ {
		s, ok := b.Sample(wo, rng.Float64(), core.Vec2{X: rng.Float64(), Y: rng.Float64()})
		if !ok {
			t.Fatal("diffuse sample rejected")
		}
		if s.PDF <= 0 {
			t.Fatalf("non-positive pdf: %v", s.PDF)
		}
		pdf := b.PDF(wo, s.Wi)
		if math.Abs(pdf-s.PDF) > 1e-9 {
			t.Fatalf("pdf mismatch: sample=%v pdf()=%v", s.PDF, pdf)
		}
		f := b.Eval(wo, s.Wi)
		if math.Abs(f.At(0)-s.Spec.At(0)) > 1e-9 {
			t.Fatalf("eval mismatch: sample=%v eval=%v", s.Spec.At(0), f.At(0))
		}
	}
}

// TestDiffuseEnergyConservation Monte-Carlo integrates reflectance and checks
// it does not exceed the albedo (invariant #6).
func TestDiffuseEnergyConservation(t *testing.T) {
	ws := spectrum.WavelengthSample{Lambda: testWavelengths()}
	albedo := 0.7
	b := DiffuseBxDF{Albedo: spectrum.NewSpectrumSample(ws, albedo)}
	wo := core.Vec3{X: 0, Y: 0, Z: 1}
	rng := rand.New(rand.NewSource(2))
	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		wi := randomDirection(rng, true)
		f := b.Eval(wo, wi)
		sum += f.At(0) * absCosTheta(wi) / UniformHemispherePDFForTest()
	}
	reflectance := sum / n
	if reflectance > albedo+0.02 {
		t.Fatalf("diffuse reflectance %v exceeds albedo %v", reflectance, albedo)
	}
}

func UniformHemispherePDFForTest() float64 { return 0.5 / math.Pi }

// TestDielectricReflectanceSymmetry checks that the Fresnel term is unchanged
// when both the side of incidence and the relative IOR are flipped:
// F(cos, eta) == F(-cos, 1/eta) (invariant #11).
func TestDielectricReflectanceSymmetry(t *testing.T) {
	eta := 1.5
	for _, cos := range []float64{0.1, 0.3, 0.6, 0.9} {
		front := DielectricReflectance(cos, eta)
		back := DielectricReflectance(-cos, 1/eta)
		if math.Abs(front-back) > 1e-9 {
			t.Fatalf("fresnel asymmetry at cos=%v: %v vs %v", cos, front, back)
		}
	}
}

// TestDielectricReflectanceBounds checks 0<=R<=1 and normal incidence matches
// the closed-form Schlick-adjacent formula ((eta-1)/(eta+1))^2.
func TestDielectricReflectanceBounds(t *testing.T) {
	eta := 1.5
	r0 := DielectricReflectance(1, eta)
	want := math.Pow((eta-1)/(eta+1), 2)
	if math.Abs(r0-want) > 1e-9 {
		t.Fatalf("normal incidence reflectance = %v, want %v", r0, want)
	}
	for cos := 0.01; cos <= 1; cos += 0.05 {
		r := DielectricReflectance(cos, eta)
		if r < 0 || r > 1 {
			t.Fatalf("reflectance out of [0,1] at cos=%v: %v", cos, r)
		}
	}
}

// TestRefractSnellsLaw checks that Refract's output direction obeys
// sin(theta_t) = sin(theta_i)/eta (invariant #12).
func TestRefractSnellsLaw(t *testing.T) {
	n := core.Vec3{X: 0, Y: 0, Z: 1}
	eta := 1.5
	thetaI := math.Pi / 6
	wi := core.Vec3{X: math.Sin(thetaI), Y: 0, Z: math.Cos(thetaI)}
	wt, etap, ok := Refract(wi, n, eta)
	if !ok {
		t.Fatal("unexpected total internal reflection")
	}
	sinThetaT := math.Hypot(wt.X, wt.Y)
	sinThetaI := math.Sin(thetaI)
	if math.Abs(sinThetaT*etap-sinThetaI) > 1e-9 {
		t.Fatalf("snell's law violated: sinThetaI=%v sinThetaT=%v etap=%v", sinThetaI, sinThetaT, etap)
	}
}

// TestTrowbridgeReitzVNDFMatchesPDF checks that the VNDF sampling PDF matches
// the analytic density used to weight BSDF samples (invariant #13).
func TestTrowbridgeReitzVNDFMatchesPDF(t *testing.T) {
	d := TrowbridgeReitzDistribution{AlphaX: 0.3, AlphaY: 0.3}
	wo := core.Vec3{X: 0.2, Y: 0, Z: math.Sqrt(1 - 0.04)}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		wm := d.Sample(wo, core.Vec2{X: rng.Float64(), Y: rng.Float64()})
		pdf := d.PDF(wo, wm)
		if pdf < 0 {
			t.Fatalf("negative pdf: %v", pdf)
		}
		dval := d.D(wm)
		if dval < 0 {
			t.Fatalf("negative D: %v", dval)
		}
		want := d.G1(wo) * wo.AbsDot(wm) * dval / absCosTheta(wo)
		if math.Abs(pdf-want) > 1e-9*math.Max(1, want) {
			t.Fatalf("vndf pdf mismatch: PDF()=%v analytic=%v", pdf, want)
		}
	}
}

// TestConductorSmoothIsSpecular checks the zero-roughness special case.
func TestConductorSmoothIsSpecular(t *testing.T) {
	ws := spectrum.WavelengthSample{Lambda: testWavelengths()}
	b := ConductorBxDF{
		Distribution: TrowbridgeReitzDistribution{AlphaX: 0, AlphaY: 0},
		Eta:          spectrum.NewSpectrumSample(ws, 0.2),
		K:            spectrum.NewSpectrumSample(ws, 3.0),
	}
	if !b.IsSpecular() {
		t.Fatal("zero-roughness conductor should be specular")
	}
	wo := core.Vec3{X: 0, Y: 0, Z: 1}
	s, ok := b.Sample(wo, 0.5, core.Vec2{})
	if !ok {
		t.Fatal("sample rejected")
	}
	if s.Wi.Z <= 0 {
		t.Fatalf("mirror reflection should stay in upper hemisphere: %v", s.Wi)
	}
}

// TestThinDielectricEnergyConservation checks that the effective reflectance
// of the analytic infinite-bounce composition stays within [0,1], so that
// the transmitted share 1-R is never negative.
func TestThinDielectricEnergyConservation(t *testing.T) {
	b := ThinDielectricBxDF{Eta: 1.5, Lambda: testWavelengths()}
	for _, cos := range []float64{0.2, 0.5, 0.8, 1.0} {
		r := b.effectiveReflectance(cos)
		if r < 0 || r > 1 {
			t.Fatalf("thin dielectric reflectance out of range at cos=%v: %v", cos, r)
		}
	}
}

// TestBSDFSampleRejectsGrazingNormal checks the wo.z==0 early-out.
func TestBSDFSampleRejectsGrazingNormal(t *testing.T) {
	ws := spectrum.WavelengthSample{Lambda: testWavelengths()}
	bx := DiffuseBxDF{Albedo: spectrum.NewSpectrumSample(ws, 0.5)}
	b := NewBSDF(core.Vec3{X: 0, Y: 0, Z: 1}, bx)
	wo := core.Vec3{X: 1, Y: 0, Z: 0} // grazing: perpendicular to normal
	if _, ok := b.Sample(wo, 0.3, core.Vec2{X: 0.2, Y: 0.7}); ok {
		t.Fatal("expected rejection at grazing incidence")
	}
}
