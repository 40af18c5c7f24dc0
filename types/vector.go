package types

import "math"

// Vec3 is a 3 component vector of float64 values. Unlike the GPU-oriented
// tracer this package descends from, the CPU rendering core needs double
// precision to keep self-intersection bias epsilons (1e-4, 1e-6) well
// separated from floating point noise, so Vec3 is a plain struct rather than
// built on golang.org/x/image/math/f32.
type Vec3 struct {
	X, Y, Z float64
}

// XYZ constructs a vector from its components.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Get returns the i-th component (0=X, 1=Y, 2=Z). An out-of-range axis is a
// programmer error and panics rather than returning a zero value.
func (v Vec3) Get(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("types: vector index out of range")
	}
}

// Add adds a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v.X + v2.X, v.Y + v2.Y, v.Z + v2.Z}
}

// Sub subtracts a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v.X - v2.X, v.Y - v2.Y, v.Z - v2.Z}
}

// Scale multiplies a vector with a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul multiplies two vectors componentwise.
func (v Vec3) Mul(v2 Vec3) Vec3 {
	return Vec3{v.X * v2.X, v.Y * v2.Y, v.Z * v2.Z}
}

// Dot calculates the dot product of two vectors.
func (v Vec3) Dot(v2 Vec3) float64 {
	return v.X*v2.X + v.Y*v2.Y + v.Z*v2.Z
}

// Cross calculates the cross product of two vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{
		v.Y*v2.Z - v.Z*v2.Y,
		v.Z*v2.X - v.X*v2.Z,
		v.X*v2.Y - v.Y*v2.X,
	}
}

// Len returns the euclidean length of the vector.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector pointing in the same direction. If the
// vector has zero length it is returned unchanged (safe normalize).
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1.0 / l)
}

// Negate flips the sign of every component.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Reflect reflects v around the unit normal n: v - 2(n.v)n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * n.Dot(v)))
}

// MinVec3 returns the componentwise minimum of two vectors.
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2.X < out.X {
		out.X = v2.X
	}
	if v2.Y < out.Y {
		out.Y = v2.Y
	}
	if v2.Z < out.Z {
		out.Z = v2.Z
	}
	return out
}

// MaxVec3 returns the componentwise maximum of two vectors.
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2.X > out.X {
		out.X = v2.X
	}
	if v2.Y > out.Y {
		out.Y = v2.Y
	}
	if v2.Z > out.Z {
		out.Z = v2.Z
	}
	return out
}

// Ray is a parametric ray with origin and direction. By convention the
// direction is unit length by the time a ray reaches a primitive or BVH
// test; generators (Camera, reflection/refraction) normalize before
// returning a Ray.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay constructs a ray, normalizing its direction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At evaluates the ray's position at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Biased returns origin nudged by eps along dir, used to avoid
// self-intersection when spawning shadow/reflection/refraction rays from a
// surface point.
func Biased(origin, dir Vec3, eps float64) Vec3 {
	return origin.Add(dir.Scale(eps))
}
