// Package integrator implements spectral path tracing with next-event
// estimation and multiple importance sampling, per spec §4.H. Grounded on
// the teacher's progressive path tracer (pkg/integrator/path_tracing.go),
// generalized from RGB throughput to hero-wavelength SpectrumSample
// throughput and from the teacher's unidirectional-only NEE to power-heuristic
// MIS between light and BSDF sampling.
package integrator

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/bxdf"
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/sampler"
	"github.com/quevivasbien/spectral-pathtracer/pkg/scene"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// rayEpsilon offsets a spawned ray's origin along the surface normal to
// avoid immediate self-intersection.
const rayEpsilon = 1e-4

// Result is one camera sample's contribution: the spectral radiance
// estimate plus the albedo/normal recorded at the first non-specular
// bounce, for the film's auxiliary buffers.
type Result struct {
	L      spectrum.SpectrumSample
	Lambda spectrum.WavelengthSample
	Albedo core.Vec3
	Normal core.Vec3
}

// PathTracer implements the Integrator interface with NEE + MIS.
type PathTracer struct {
	Scene      *scene.Scene
	MaxBounces int
}

// NewPathTracer builds a path tracer bound to scene, stopping bounces at maxBounces.
func NewPathTracer(s *scene.Scene, maxBounces int) *PathTracer {
	return &PathTracer{Scene: s, MaxBounces: maxBounces}
}

// Li estimates the radiance arriving at the camera along ray, given a
// per-sample wavelength-selection random number and a sampler positioned
// for this pixel sample (for bounce-time random numbers).
func (pt *PathTracer) Li(ray core.Ray, lambdaU float64, rng sampler.Sampler) Result {
	ws := spectrum.UniformWavelengths(lambdaU)

	beta := spectrum.NewSpectrumSample(ws, 1)
	l := spectrum.NewSpectrumSample(ws, 0)
	etaScale := 1.0
	specularBounce := true
	lastPDF := 1.0
	var prevSI *scene.Interaction

	result := Result{}
	haveAux := false

	for bounce := 0; bounce <= pt.MaxBounces; bounce++ {
		hit, ok := pt.Scene.RayIntersect(ray, rayEpsilon, math.Inf(1))
		if !ok {
			break
		}

		if hit.Light != nil {
			le := hit.Material.Emission(hit.SurfaceInteraction, hit.Wo, ws)
			if !le.IsZero() {
				if specularBounce || prevSI == nil {
					l = l.Add(beta.Mul(le))
				} else {
					lightPDF := hit.Light.PDF(prevSI.Point, ray.Direction.Normalize()) * pt.Scene.LightSelectionPDF()
					weight := powerHeuristic(lastPDF, lightPDF)
					l = l.Add(beta.Mul(le).Scale(weight))
				}
			}
		}

		bsdf := hit.Material.BSDF(hit.SurfaceInteraction, ws, rng.Sample1D())

		if !haveAux {
			if !bsdf.IsSpecular() {
				result.Albedo = estimateAlbedo(bsdf, hit.Wo)
				result.Normal = hit.Normal
				haveAux = true
			} else if bounce == pt.MaxBounces {
				result.Normal = hit.Normal
				haveAux = true
			}
		}

		if !bsdf.IsSpecular() && pt.Scene.HasLights() {
			l = l.Add(beta.Mul(pt.sampleLightNEE(hit, bsdf, ws, rng)))
		}

		s, ok := bsdf.Sample(hit.Wo, rng.Sample1D(), rng.Sample2D())
		if !ok || s.Spec.IsZero() || s.PDF == 0 {
			break
		}

		beta = beta.Mul(s.Spec).Scale(1 / s.PDF)
		if beta.HasNaN() {
			break
		}
		if s.ScatterType.Transmission {
			ws.TerminateSecondary()
			etaScale *= s.IOR * s.IOR
		}

		specularBounce = s.ScatterType.Specular
		lastPDF = s.PDF
		hitCopy := hit
		prevSI = &hitCopy

		if bounce > 0 {
			rrBeta := beta.Scale(etaScale)
			q := math.Max(0, 1-rrBeta.MaxComponent())
			if rng.Sample1D() < q {
				break
			}
			beta = beta.Scale(1 / (1 - q))
		}

		origin := offsetOrigin(hit.Point, hit.Normal, s.Wi)
		ray = core.NewRay(origin, s.Wi)
	}

	result.L = l
	result.Lambda = ws
	return result
}

// sampleLightNEE draws one light sample and returns its MIS-weighted,
// occlusion-tested contribution (still needs to be multiplied by the
// path's current throughput beta by the caller).
func (pt *PathTracer) sampleLightNEE(hit scene.Interaction, bsdf bxdf.BSDF, ws spectrum.WavelengthSample, rng sampler.Sampler) spectrum.SpectrumSample {
	zero := spectrum.NewSpectrumSample(ws, 0)
	light, selectPDF, ok := pt.Scene.SampleLights(rng.Sample1D())
	if !ok {
		return zero
	}
	ls, ok := light.Sample(hit.Point, ws, rng.Sample2D())
	if !ok || ls.PDF == 0 || ls.L.IsZero() {
		return zero
	}

	lightEnd := hit.Point.Add(ls.Wi.Multiply(ls.Distance))
	origin := offsetOrigin(hit.Point, hit.Normal, ls.Wi)
	if pt.Scene.Occluded(origin, lightEnd) {
		return zero
	}

	f := bsdf.Eval(hit.Wo, ls.Wi)
	if f.IsZero() {
		return zero
	}
	lightPDF := ls.PDF * selectPDF
	weight := 1.0
	if !light.IsDelta() {
		bsdfPDF := bsdf.PDF(hit.Wo, ls.Wi)
		weight = powerHeuristic(lightPDF, bsdfPDF)
	}
	return f.Mul(ls.L).Scale(weight / lightPDF)
}

// powerHeuristic is the beta=2 power heuristic MIS weight for pdfA against
// pdfB (spec §4.H calls out the balance heuristic with the squared/power
// form as an allowed variant).
func powerHeuristic(pdfA, pdfB float64) float64 {
	if pdfA == 0 && pdfB == 0 {
		return 0
	}
	a := pdfA * pdfA
	b := pdfB * pdfB
	return a / (a + b)
}

// offsetOrigin nudges a spawned ray's origin along the geometric normal, on
// the side the outgoing direction points toward, to avoid self-intersection.
func offsetOrigin(p, n, wOut core.Vec3) core.Vec3 {
	offset := n.Multiply(rayEpsilon * 10)
	if n.Dot(wOut) < 0 {
		offset = offset.Negate()
	}
	return p.Add(offset)
}

// estimateAlbedo approximates a BSDF's hemispherical-directional reflectance
// with a small fixed number of cosine-weighted samples, per spec §4.H's
// "rho_hd via a fixed small number of samples" guidance.
func estimateAlbedo(b bxdf.BSDF, wo core.Vec3) core.Vec3 {
	const samples = 8
	var acc spectrum.SpectrumSample
	first := true
	for i := 0; i < samples; i++ {
		u1 := (float64(i) + 0.5) / samples
		u2 := core.NewVec2((float64(i)+0.5)/samples, (float64(i*7%samples)+0.5)/samples)
		s, ok := b.Sample(wo, u1, u2)
		if !ok || s.PDF == 0 {
			continue
		}
		contribution := s.Spec.Scale(1 / s.PDF)
		if first {
			acc = contribution
			first = false
		} else {
			acc = acc.Add(contribution)
		}
	}
	if first {
		return core.Vec3{}
	}
	avg := acc.Scale(1.0 / samples).Average()
	return core.NewVec3(avg, avg, avg)
}
