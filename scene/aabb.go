package scene

import (
	"math"

	"github.com/david14higgins/Pathtracer/types"
)

// axisEpsilon guards the slab test against a direction component that is
// numerically zero but not exactly zero.
const axisEpsilon = 1e-6

// AABB is an axis-aligned bounding box represented by its min and max
// corners. The invariant Min[i] <= Max[i] is maintained by NewAABB and
// SurroundingBox; callers must not construct an AABB by hand with the
// corners reversed.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// NewAABB builds an AABB from two corner points, sorting components so the
// Min <= Max invariant holds regardless of argument order.
func NewAABB(a, b types.Vec3) AABB {
	return AABB{Min: types.MinVec3(a, b), Max: types.MaxVec3(a, b)}
}

// SurroundingBox returns the smallest AABB containing both a and b.
func SurroundingBox(a, b AABB) AABB {
	return AABB{
		Min: types.MinVec3(a.Min, b.Min),
		Max: types.MaxVec3(a.Max, b.Max),
	}
}

// Intersects reports whether ray hits the box, using the slab method on
// each of the three axes.
func (b AABB) Intersects(ray types.Ray) bool {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Get(axis)
		dir := ray.Direction.Get(axis)
		min := b.Min.Get(axis)
		max := b.Max.Get(axis)

		if math.Abs(dir) < axisEpsilon {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		t0 := (min - origin) / dir
		t1 := (max - origin) / dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmax <= tmin+axisEpsilon {
			return false
		}
	}

	return tmax >= 0
}

// Center returns the midpoint of the box.
func (b AABB) Center() types.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
