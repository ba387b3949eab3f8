package bxdf

import (
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// BSDF adapts a BxDF's local-frame (shading normal = +z) evaluation to
// render-space directions via an orthonormal basis built from the shading
// normal, mirroring bxdf.cpp's BSDF wrapper.
type BSDF struct {
	frame core.OrthonormalBasis
	bxdf  BxDF
}

// NewBSDF builds a BSDF around shading normal n (must be unit length).
func NewBSDF(n core.Vec3, b BxDF) BSDF {
	return BSDF{frame: core.NewOrthonormalBasis(n), bxdf: b}
}

func (b BSDF) toLocal(w core.Vec3) core.Vec3   { return b.frame.ToLocal(w) }
func (b BSDF) toRender(w core.Vec3) core.Vec3  { return b.frame.FromLocal(w) }

// IsSpecular reports whether the underlying BxDF is a Dirac delta lobe.
func (b BSDF) IsSpecular() bool { return b.bxdf.IsSpecular() }

// Eval returns f(wo,wi)*|cos(theta_i)| with both directions in render space.
func (b BSDF) Eval(woRender, wiRender core.Vec3) spectrum.SpectrumSample {
	wo, wi := b.toLocal(woRender), b.toLocal(wiRender)
	if wo.Z == 0 {
		return b.bxdf.Eval(wo, wi).Scale(0)
	}
	return b.bxdf.Eval(wo, wi).Scale(absCosTheta(wi))
}

// PDF returns the BxDF's sampling density for wiRender given woRender.
func (b BSDF) PDF(woRender, wiRender core.Vec3) float64 {
	wo, wi := b.toLocal(woRender), b.toLocal(wiRender)
	if wo.Z == 0 {
		return 0
	}
	return b.bxdf.PDF(wo, wi)
}

// Sample draws an incident direction in render space. The returned Spec is
// f*|cos theta_i| (not divided by the pdf, which is returned separately);
// degenerate or zero-pdf samples are rejected.
func (b BSDF) Sample(woRender core.Vec3, u1 float64, u2 core.Vec2) (BSDFSample, bool) {
	wo := b.toLocal(woRender)
	if wo.Z == 0 {
		return BSDFSample{}, false
	}
	s, ok := b.bxdf.Sample(wo, u1, u2)
	if !ok || s.PDF == 0 || s.Wi.Z == 0 {
		return BSDFSample{}, false
	}
	s.Spec = s.Spec.Scale(absCosTheta(s.Wi))
	s.Wi = b.toRender(s.Wi)
	return s, true
}
