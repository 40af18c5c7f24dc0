package scene

import (
	"math/rand"

	"github.com/david14higgins/Pathtracer/types"
)

// LightKind distinguishes the two supported emitter shapes.
type LightKind uint8

const (
	PointLight LightKind = iota
	AreaLight
)

// Light is a tagged union of {Point, Area} emitters. UAxis/VAxis are only
// meaningful for AreaLight.
type Light struct {
	Kind      LightKind
	Position  types.Vec3
	Intensity types.Vec3

	UAxis types.Vec3
	VAxis types.Vec3
}

// NewPointLight creates a point emitter.
func NewPointLight(position, intensity types.Vec3) Light {
	return Light{Kind: PointLight, Position: position, Intensity: intensity}
}

// NewAreaLight creates a rectangular area emitter centered at position,
// spanning uAxis/vAxis.
func NewAreaLight(position, intensity, uAxis, vAxis types.Vec3) Light {
	return Light{Kind: AreaLight, Position: position, Intensity: intensity, UAxis: uAxis, VAxis: vAxis}
}

// LightSample is one sample point on a light, paired with the shading
// weight it should contribute (1 for a point light's single sample, 1/K for
// each of an area light's K samples).
type LightSample struct {
	Point  types.Vec3
	Weight float64
}

// Sample returns k sample points with weights summing to 1. For a point
// light, k is ignored and a single full-weight sample at the light
// position is returned.
func (l Light) Sample(k int, rng *rand.Rand) []LightSample {
	if l.Kind == PointLight {
		return []LightSample{{Point: l.Position, Weight: 1}}
	}

	samples := make([]LightSample, k)
	weight := 1.0 / float64(k)
	for i := 0; i < k; i++ {
		alpha := rng.Float64() - 0.5
		beta := rng.Float64() - 0.5
		p := l.Position.Add(l.UAxis.Scale(alpha)).Add(l.VAxis.Scale(beta))
		samples[i] = LightSample{Point: p, Weight: weight}
	}
	return samples
}
