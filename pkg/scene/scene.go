// Package scene implements the Scene façade: a flat table of geometry
// entries (shape + material + optional light) keyed by geometry id, backed
// by one BVH over every registered shape. Grounded on
// original_source/src/scene.cpp, whose Embree-backed GeometryData lookup
// this reproduces without the Embree dependency (spec §9 design note on
// avoiding a shape<->material<->light reference cycle).
package scene

import (
	"math"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
	"github.com/quevivasbien/spectral-pathtracer/pkg/geometry"
	"github.com/quevivasbien/spectral-pathtracer/pkg/lights"
	"github.com/quevivasbien/spectral-pathtracer/pkg/loaders"
	"github.com/quevivasbien/spectral-pathtracer/pkg/material"
)

// geomData is the per-shape entry Scene resolves a BVH hit's geom id against,
// mirroring the reference renderer's GeometryData{shape_type, material}.
type geomData struct {
	shape    geometry.Shape
	material material.Material
	light    lights.Light // non-nil only for shapes paired with an area light
}

// Interaction extends a raw geometric hit with the material and light (if
// any) the intersected shape was registered with.
type Interaction struct {
	geometry.SurfaceInteraction
	Material material.Material
	Light    lights.Light
}

// Scene holds every registered shape, its material/light pairing, and the
// BVH built over them once Commit is called.
type Scene struct {
	shapes    []geometry.Shape
	geomData  []geomData
	bvh       *geometry.BVH
	lightList []lights.Light
	sampler   *lights.Sampler
	committed bool
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) register(shape geometry.Shape, mat material.Material) *geomData {
	id := len(s.geomData)
	shape.SetGeomID(id)
	s.shapes = append(s.shapes, shape)
	s.geomData = append(s.geomData, geomData{shape: shape, material: mat})
	return &s.geomData[id]
}

// AddTriangle registers a single triangle with the given material.
func (s *Scene) AddTriangle(a, b, c core.Vec3, mat material.Material) {
	s.register(geometry.NewTriangle(a, b, c), mat)
}

// AddQuad registers a planar quad defined by four clockwise vertices.
func (s *Scene) AddQuad(a, b, c, d core.Vec3, mat material.Material) {
	s.register(geometry.NewQuad(a, b, c, d), mat)
}

// AddSphere registers a sphere.
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.register(geometry.NewSphere(center, radius), mat)
}

// AddMesh registers a triangle mesh built from a flat vertex/face-index payload.
func (s *Scene) AddMesh(vertices []core.Vec3, faces []int, mat material.Material) {
	s.register(geometry.NewTriangleMesh(vertices, faces), mat)
}

// AddOBJ loads a Wavefront OBJ file (spec §6) and registers it as a single
// triangle-mesh shape with the given material.
func (s *Scene) AddOBJ(filename string, mat material.Material) error {
	mesh, err := loaders.LoadOBJ(filename)
	if err != nil {
		return err
	}
	s.AddMesh(mesh.Vertices, mesh.Faces, mat)
	return nil
}

// AddPlane registers a large quad centered at p with normal n, modeling an
// infinite plane as a finite quad of the given half-size, per
// original_source/src/scene.cpp's Scene::add_plane.
func (s *Scene) AddPlane(p, n core.Vec3, halfSize float64, mat material.Material) {
	basis := core.NewOrthonormalBasis(n.Normalize())
	u := basis.FromLocal(core.NewVec3(1, 0, 0)).Multiply(halfSize)
	v := basis.FromLocal(core.NewVec3(0, 1, 0)).Multiply(halfSize)
	a := p.Subtract(u).Subtract(v)
	b := p.Add(u).Subtract(v)
	c := p.Add(u).Add(v)
	d := p.Subtract(u).Add(v)
	s.AddQuad(a, b, c, d, mat)
}

// AddAreaLight registers a shape as both a geometric surface and an emitter,
// pairing an Emissive material with a lights.Area bound to the same shape so
// NEE and BSDF-sampled hits agree on emitted radiance.
func (s *Scene) AddAreaLight(shape geometry.Shape, radiance material.Texture, twoSided bool) {
	id := len(s.geomData)
	shape.SetGeomID(id)
	emissive := material.NewEmissive(radiance, twoSided)
	light := lights.NewArea(shape, radiance, twoSided)
	s.shapes = append(s.shapes, shape)
	s.geomData = append(s.geomData, geomData{shape: shape, material: emissive, light: light})
	s.lightList = append(s.lightList, light)
}

// AddLight registers a light with no associated surface geometry (point, directional).
func (s *Scene) AddLight(light lights.Light) {
	s.lightList = append(s.lightList, light)
}

// Commit builds the acceleration structure and light sampler over everything
// registered so far. Scene is read-only after Commit.
func (s *Scene) Commit() {
	s.bvh = geometry.NewBVH(s.shapes)
	s.sampler = lights.NewSampler(s.lightList)
	s.committed = true
}

// RayIntersect finds the nearest hit along ray within [tMin, tMax], resolving
// the returned geom id back to its material/light via the geom-data table.
func (s *Scene) RayIntersect(ray core.Ray, tMin, tMax float64) (Interaction, bool) {
	if s.bvh == nil {
		return Interaction{}, false
	}
	si, ok := s.bvh.Hit(ray, tMin, tMax)
	if !ok {
		return Interaction{}, false
	}
	data := s.geomData[si.GeomID]
	return Interaction{SurfaceInteraction: si, Material: data.material, Light: data.light}, true
}

// Occluded tests visibility between two points along the unnormalized
// segment start->end, matching original_source/src/scene.cpp's
// Scene::occluded: a hit only counts if it lands at parametric t<=1.
func (s *Scene) Occluded(start, end core.Vec3) bool {
	if s.bvh == nil {
		return false
	}
	direction := end.Subtract(start)
	ray := core.NewRay(start, direction)
	si, ok := s.bvh.Hit(ray, 1e-4, math.Inf(1))
	if !ok {
		return false
	}
	return si.T <= 1.0
}

// SampleLights picks a light uniformly at random for next-event estimation,
// per original_source/src/scene.cpp's Scene::sample_lights.
func (s *Scene) SampleLights(u float64) (lights.Light, float64, bool) {
	if s.sampler == nil {
		return nil, 0, false
	}
	return s.sampler.Sample(u)
}

// LightSelectionPDF returns the uniform light sampler's per-light selection pdf.
func (s *Scene) LightSelectionPDF() float64 {
	if s.sampler == nil || len(s.lightList) == 0 {
		return 0
	}
	return 1.0 / float64(len(s.lightList))
}

// Lights returns every registered light.
func (s *Scene) Lights() []lights.Light { return s.lightList }

// HasLights reports whether the scene has any registered light.
func (s *Scene) HasLights() bool { return len(s.lightList) > 0 }
