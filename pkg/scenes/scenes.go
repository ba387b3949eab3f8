// Package scenes provides example scene builders, generalizing the teacher's
// pkg/scene/default_scene.go, cornell.go, and spheregrid.go from their
// RGB-Lambertian setups to the spectral material system. Each builder
// returns a ready-to-commit camera/scene pair matching one of spec §8's
// end-to-end scenarios.
package scenes

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/camera"
	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/lights"
	"github.com/quevivasbien/spectral-pathtracer/pkg/material"
	"github.com/quevivasbien/spectral-pathtracer/pkg/scene"
	"github.com/quevivasbien/spectral-pathtracer/pkg/spectrum"
)

// BlankSky builds the empty scene of scenario E1: no geometry, no lights, so
// every camera ray escapes to black.
func BlankSky(width, height int) (*camera.Camera, *scene.Scene) {
	cam := camera.New(width, height, math.Pi/3, core.Identity())
	s := scene.New()
	s.Commit()
	return cam, s
}

// LambertianSphere builds scenario E2: a unit sphere with Lambertian
// reflectance 0.8 at (0,0,-3), lit by a point light at (0,2,0) scaled by 10
// against the D65 illuminant.
func LambertianSphere(width, height int) (*camera.Camera, *scene.Scene) {
	cam := camera.New(width, height, math.Pi/3, core.Identity())

	s := scene.New()
	diffuse := material.NewDiffuse(material.NewSolidColor(spectrum.RGB{R: 0.8, G: 0.8, B: 0.8}))
	s.AddSphere(core.NewVec3(0, 0, -3), 1, diffuse)
	s.AddLight(lights.NewPoint(core.NewVec3(0, 2, 0), spectrum.NewScaledSpectrum(spectrum.StdIllumD65(), 10)))
	s.Commit()
	return cam, s
}

// MirrorSphere builds scenario E3: the same setup as LambertianSphere but
// with the sphere replaced by a smooth copper conductor, so the center pixel
// sees the (black) background reflected back at it.
func MirrorSphere(width, height int) (*camera.Camera, *scene.Scene) {
	cam := camera.New(width, height, math.Pi/3, core.Identity())

	s := scene.New()
	s.AddSphere(core.NewVec3(0, 0, -3), 1, material.Copper(0))
	s.AddLight(lights.NewPoint(core.NewVec3(0, 2, 0), spectrum.NewScaledSpectrum(spectrum.StdIllumD65(), 10)))
	s.Commit()
	return cam, s
}

// GlassSphere builds scenario E5: a dielectric sphere (IOR 1.5) in front of
// a vertically striped background plane, so rays refracting through the
// sphere's centerline invert the visible stripe order.
func GlassSphere(width, height int) (*camera.Camera, *scene.Scene) {
	cam := camera.New(width, height, math.Pi/3, core.Identity())

	s := scene.New()
	stripe := material.NewCheckerboard(0.25,
		material.NewSolidColor(spectrum.RGB{R: 0.9, G: 0.9, B: 0.9}),
		material.NewSolidColor(spectrum.RGB{R: 0.1, G: 0.1, B: 0.1}),
	)
	s.AddPlane(core.NewVec3(0, 0, -6), core.NewVec3(0, 0, 1), 10, material.NewDiffuse(stripe))
	s.AddSphere(core.NewVec3(0, 0, -3), 1, material.NewDielectric(1.5, 0))
	s.AddLight(lights.NewDirectional(core.NewVec3(0, 0, 1), spectrum.NewScaledSpectrum(spectrum.StdIllumD65(), 3)))
	s.Commit()
	return cam, s
}

// CornellBox builds scenario E4: a Cornell box of five wall quads (red left
// wall, green right wall, white floor/ceiling/back wall; there is no front
// wall, the side facing the camera is open), a ceiling area
// light, and one Lambertian sphere, generalized from the teacher's
// pkg/scene/cornell.go to spectral reflectance textures and this renderer's
// own Scene/Light types.
func CornellBox(width, height int) (*camera.Camera, *scene.Scene) {
	const boxSize = 555.0

	cam := camera.NewLookAt(
		width, height, 40.0*math.Pi/180.0,
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
	)

	s := scene.New()

	white := material.NewDiffuse(material.NewSolidColor(spectrum.RGB{R: 0.73, G: 0.73, B: 0.73}))
	red := material.NewDiffuse(material.NewSolidColor(spectrum.RGB{R: 0.65, G: 0.05, B: 0.05}))
	green := material.NewDiffuse(material.NewSolidColor(spectrum.RGB{R: 0.12, G: 0.45, B: 0.15}))

	// Floor
	s.AddQuad(
		core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0),
		core.NewVec3(boxSize, 0, boxSize), core.NewVec3(0, 0, boxSize),
		white,
	)
	// Ceiling
	s.AddQuad(
		core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, boxSize, 0),
		core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(0, boxSize, boxSize),
		white,
	)
	// Back wall
	s.AddQuad(
		core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, boxSize),
		core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(0, boxSize, boxSize),
		white,
	)
	// Left wall (red), at x=0, normal +x
	s.AddQuad(
		core.NewVec3(0, 0, boxSize), core.NewVec3(0, 0, 0),
		core.NewVec3(0, boxSize, 0), core.NewVec3(0, boxSize, boxSize),
		red,
	)
	// Right wall (green), at x=boxSize, normal -x
	s.AddQuad(
		core.NewVec3(boxSize, 0, 0), core.NewVec3(boxSize, 0, boxSize),
		core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(boxSize, boxSize, 0),
		green,
	)

	// Ceiling area light
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	radiance := material.NewSolidColor(spectrum.RGB{R: 15, G: 15, B: 15})
	quad := geometry.NewQuad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightOffset+lightSize, boxSize-1, lightOffset),
		core.NewVec3(lightOffset+lightSize, boxSize-1, lightOffset+lightSize),
		core.NewVec3(lightOffset, boxSize-1, lightOffset+lightSize),
	)
	s.AddAreaLight(quad, radiance, false)

	// Lambertian sphere
	s.AddSphere(core.NewVec3(278, 90, 280), 90, white)

	s.Commit()
	return cam, s
}
