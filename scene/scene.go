package scene

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/david14higgins/Pathtracer/types"
)

// Scene aggregates primitives, lights and a background color, and owns a
// lazily-built BVH. Once BVH() has been called for the first time, the
// scene is considered frozen: Scene/BVH/primitives must be treated as
// immutable for the rest of the render, and the BVH builder never mutates
// Scene's own primitive slice — BuildBVH takes its own copy of the slice
// before sorting it, so AddPrimitive calls that raced with a build would
// be a programmer error, not a correctness bug in the BVH itself.
type Scene struct {
	BgColor types.Vec3

	Materials  []*Material
	Primitives []Shape
	Lights     []Light

	bvhOnce sync.Once
	bvhRoot *BVHNode
	bvhSeed int64
}

// NewScene creates an empty scene with the given background color.
func NewScene(bgColor types.Vec3) *Scene {
	return &Scene{BgColor: bgColor}
}

// AddMaterial registers a material with the scene. Primitives must
// reference a material that has already been added.
func (s *Scene) AddMaterial(material *Material) error {
	for _, mat := range s.Materials {
		if mat == material {
			return fmt.Errorf("scene: material already added")
		}
	}
	s.Materials = append(s.Materials, material)
	return nil
}

// AddPrimitive adds a primitive to the scene. The primitive's material must
// already be registered via AddMaterial.
func (s *Scene) AddPrimitive(prim Shape) error {
	mat := prim.Mat()
	if mat == nil {
		return fmt.Errorf("scene: no material assigned to primitive")
	}
	for _, m := range s.Materials {
		if m == mat {
			s.Primitives = append(s.Primitives, prim)
			return nil
		}
	}
	return fmt.Errorf("scene: primitive references unknown material; ensure that the material is added to the scene before adding the primitive")
}

// AddLight registers a light with the scene.
func (s *Scene) AddLight(light Light) {
	s.Lights = append(s.Lights, light)
}

// SetBVHSeed fixes the random seed used for the per-node axis choice on the
// first BVH build, so repeated renders of the same scene are
// deterministic.
func (s *Scene) SetBVHSeed(seed int64) {
	s.bvhSeed = seed
}

// BVH returns the scene's bounding volume hierarchy, building it on first
// access and caching the result for subsequent calls.
func (s *Scene) BVH() *BVHNode {
	s.bvhOnce.Do(func() {
		s.bvhRoot = BuildBVH(s.Primitives, rand.New(rand.NewSource(s.bvhSeed)))
	})
	return s.bvhRoot
}

// Intersect finds the closest primitive hit by ray, using the BVH if
// useBVH is true or a linear scan otherwise. Both paths must agree on the
// result.
func (s *Scene) Intersect(ray types.Ray, useBVH bool) (t float64, prim Shape, ok bool) {
	if useBVH {
		return s.BVH().Intersect(ray)
	}
	return IntersectLinear(s.Primitives, ray)
}

// IntersectShadow reports whether anything occludes ray before maxDist.
func (s *Scene) IntersectShadow(ray types.Ray, maxDist float64, useBVH bool) bool {
	if useBVH {
		return s.BVH().IntersectShadow(ray, maxDist)
	}
	for _, p := range s.Primitives {
		if t, hit := p.Intersect(ray); hit && t < maxDist {
			return true
		}
	}
	return false
}
