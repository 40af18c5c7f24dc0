package renderer

import (
	"math/rand"

	"github.com/david14higgins/Pathtracer/log"
	"github.com/david14higgins/Pathtracer/scene"
	"github.com/david14higgins/Pathtracer/types"
)

var shaderLogger = log.New("shader")

const shadowBias = 1e-4

// shade dispatches to the mode-specific shader for a single ray, returning
// a linear-domain color (in [0,1] per channel for Binary and Phong; path
// tracer values are not clamped and can exceed 1). Exposure and tone
// mapping are applied once per pixel by renderTiles (workerpool.go), and
// 8-bit quantization by Image.RGBAt (image.go).
func shade(sc *scene.Scene, ray types.Ray, depth int, opts Options, rng *rand.Rand) types.Vec3 {
	switch opts.Mode {
	case Binary:
		return shadeBinary(sc, ray, opts.UseBVH)
	case Phong:
		return shadePhong(sc, ray, depth, opts, rng)
	case PathTracer:
		return tracePath(sc, ray, depth, opts, rng)
	default:
		return types.Vec3{}
	}
}

// shadeBinary returns full-intensity red on any hit via the BVH or linear
// scan, black otherwise.
func shadeBinary(sc *scene.Scene, ray types.Ray, useBVH bool) types.Vec3 {
	if _, _, ok := sc.Intersect(ray, useBVH); ok {
		return types.XYZ(1, 0, 0)
	}
	return types.Vec3{}
}

// hitInfo bundles a resolved ray/scene intersection with the derived
// surface point and normal.
type hitInfo struct {
	t      float64
	prim   scene.Shape
	point  types.Vec3
	normal types.Vec3
}

// closestHit unifies the linear-scan and BVH intersection paths. A panic
// during BVH traversal is logged and treated as a miss rather than
// propagated.
func closestHit(sc *scene.Scene, ray types.Ray, useBVH bool) (hi hitInfo, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			shaderLogger.Errorf("bvh traversal fault: %v", r)
			hi, ok = hitInfo{}, false
		}
	}()

	t, prim, hit := sc.Intersect(ray, useBVH)
	if !hit {
		return hitInfo{}, false
	}
	point := ray.At(t)
	return hitInfo{t: t, prim: prim, point: point, normal: prim.Normal(point)}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
