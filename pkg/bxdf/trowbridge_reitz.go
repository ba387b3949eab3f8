package bxdf

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

// TrowbridgeReitzDistribution is the GGX microfacet normal distribution with
// possibly anisotropic roughness, grounded on the reference renderer's
// bxdf.cpp TrowbridgeReitzDistribution.
type TrowbridgeReitzDistribution struct {
	AlphaX, AlphaY float64
}

// RoughnessToAlpha converts a perceptually-linear roughness in [0,1] to the
// alpha parameter the distribution expects.
func RoughnessToAlpha(roughness float64) float64 {
	return math.Sqrt(roughness)
}

// IsSmooth reports whether both roughness axes are effectively zero, in
// which case the distribution degenerates to a Dirac delta.
func (d TrowbridgeReitzDistribution) IsSmooth() bool {
	return math.Max(d.AlphaX, d.AlphaY) < 1e-3
}

// D evaluates the normal distribution function at microfacet normal wm.
func (d TrowbridgeReitzDistribution) D(wm core.Vec3) float64 {
	tan2t := tan2Theta(wm)
	if math.IsInf(tan2t, 1) {
		return 0
	}
	cos4t := cos2Theta(wm) * cos2Theta(wm)
	if cos4t < 1e-16 {
		return 0
	}
	e := tan2t * (cosPhi(wm)*cosPhi(wm)/(d.AlphaX*d.AlphaX) + sinPhi(wm)*sinPhi(wm)/(d.AlphaY*d.AlphaY))
	denom := math.Pi * d.AlphaX * d.AlphaY * cos4t * (1 + e) * (1 + e)
	return 1 / denom
}

// Lambda is the Smith masking function's auxiliary term.
func (d TrowbridgeReitzDistribution) Lambda(w core.Vec3) float64 {
	tan2t := tan2Theta(w)
	if math.IsInf(tan2t, 1) {
		return 0
	}
	alpha2 := cosPhi(w)*cosPhi(w)*d.AlphaX*d.AlphaX + sinPhi(w)*sinPhi(w)*d.AlphaY*d.AlphaY
	return (math.Sqrt(1+alpha2*tan2t) - 1) / 2
}

// G1 is the Smith masking function for a single direction.
func (d TrowbridgeReitzDistribution) G1(w core.Vec3) float64 {
	return 1 / (1 + d.Lambda(w))
}

// G is the Smith height-correlated masking-shadowing function for a pair of directions.
func (d TrowbridgeReitzDistribution) G(wo, wi core.Vec3) float64 {
	return 1 / (1 + d.Lambda(wo) + d.Lambda(wi))
}

// DVisible is the visible normal distribution used to importance-sample wm.
func (d TrowbridgeReitzDistribution) DVisible(w, wm core.Vec3) float64 {
	return d.G1(w) / absCosTheta(w) * d.D(wm) * w.AbsDot(wm)
}

// PDF is the pdf of a microfacet normal sampled via Sample, expressed as a
// solid-angle density over wm.
func (d TrowbridgeReitzDistribution) PDF(w, wm core.Vec3) float64 {
	return d.DVisible(w, wm)
}

// Sample draws a visible microfacet normal given outgoing direction w, using
// Heitz's 2018 VNDF sampling method (stretch, project to disk, unstretch).
func (d TrowbridgeReitzDistribution) Sample(w core.Vec3, u core.Vec2) core.Vec3 {
	wh := core.Vec3{X: d.AlphaX * w.X, Y: d.AlphaY * w.Y, Z: w.Z}.Normalize()
	if wh.Z < 0 {
		wh = wh.Negate()
	}

	var t1 core.Vec3
	if wh.Z < 0.999 {
		t1 = core.Vec3{X: 0, Y: 0, Z: 1}.Cross(wh).Normalize()
	} else {
		t1 = core.Vec3{X: 1, Y: 0, Z: 0}
	}
	t2 := wh.Cross(t1)

	p := uniformDiskPolar(u)
	h := math.Sqrt(1 - p.X*p.X)
	py := (1+wh.Z)/2*p.Y + (1-(1+wh.Z)/2)*h
	pz := math.Sqrt(math.Max(0, 1-p.X*p.X-py*py))

	nh := t1.Multiply(p.X).Add(t2.Multiply(py)).Add(wh.Multiply(pz))
	return core.Vec3{
		X: d.AlphaX * nh.X,
		Y: d.AlphaY * nh.Y,
		Z: math.Max(1e-6, nh.Z),
	}.Normalize()
}

func uniformDiskPolar(u core.Vec2) core.Vec2 {
	r := math.Sqrt(u.X)
	theta := 2 * math.Pi * u.Y
	return core.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}
