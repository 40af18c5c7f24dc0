package scene

import "github.com/david14higgins/Pathtracer/types"

// Material holds the surface parameters consumed by the Phong and path
// tracing shaders. DefaultMaterial returns the canonical default: black,
// non-reflective, non-refractive, with IOR 1.
type Material struct {
	Ks               float64
	Kd               float64
	SpecularExponent float64

	DiffuseColor  types.Vec3
	SpecularColor types.Vec3

	IsReflective bool
	Reflectivity float64

	IsRefractive    bool
	RefractiveIndex float64

	HasTexture bool
	Texture    *Texture
}

// DefaultMaterial returns the zero-value material with a refractive index
// of 1 (vacuum/air).
func DefaultMaterial() Material {
	return Material{RefractiveIndex: 1}
}

// BaseColor returns the material's diffuse color at the given UV
// coordinate, sampling the texture if one is attached.
func (m Material) BaseColor(u, v float64) types.Vec3 {
	if m.HasTexture && m.Texture != nil {
		return m.Texture.Sample(u, v)
	}
	return m.DiffuseColor
}
