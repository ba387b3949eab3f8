package lights

// Sampler picks a light for next-event estimation uniformly at random among
// the scene's registered lights, ported from
// original_source/src/scene.cpp's Scene::sample_lights.
type Sampler struct {
	lights []Light
}

func NewSampler(lights []Light) *Sampler {
	return &Sampler{lights: lights}
}

// Sample returns a light picked uniformly at random and its selection pdf
// (1/N), or ok=false if the scene has no lights.
func (s *Sampler) Sample(u float64) (light Light, selectionPDF float64, ok bool) {
	if len(s.lights) == 0 {
		return nil, 0, false
	}
	i := int(u * float64(len(s.lights)))
	if i >= len(s.lights) {
		i = len(s.lights) - 1
	}
	return s.lights[i], 1.0 / float64(len(s.lights)), true
}

// PDF returns the selection pdf of any one light — uniform, so constant.
func (s *Sampler) PDF(light Light) float64 {
	if len(s.lights) == 0 {
		return 0
	}
	return 1.0 / float64(len(s.lights))
}

// Lights returns the registered lights, for Scene's emissive-hit bookkeeping.
func (s *Sampler) Lights() []Light { return s.lights }
