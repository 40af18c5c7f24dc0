package scene

import (
	"math"

	"github.com/david14higgins/Pathtracer/types"
)

// Shape is implemented by every primitive type the renderer core supports:
// Sphere, Cylinder and Triangle. The shading pipeline calls
// Intersect/Normal/UV/BoundingBox directly against whichever concrete type
// satisfies it.
type Shape interface {
	// Intersect returns the nearest strictly-positive ray parameter, or
	// ok=false if the ray misses.
	Intersect(ray types.Ray) (t float64, ok bool)

	// Normal returns the unit outward normal at a point on the surface.
	Normal(point types.Vec3) types.Vec3

	// UV returns the texture coordinate at a point on the surface.
	UV(point types.Vec3) (u, v float64)

	// BoundingBox returns the primitive's axis-aligned bounding box.
	BoundingBox() AABB

	// Mat returns the material attached to this primitive.
	Mat() *Material
}

// Sphere is a primitive centered at Center with radius Radius.
type Sphere struct {
	Center   types.Vec3
	Radius   float64
	Material *Material
}

// NewSphere creates a sphere primitive.
func NewSphere(center types.Vec3, radius float64, material *Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

func (s *Sphere) Mat() *Material { return s.Material }

func (s *Sphere) Intersect(ray types.Ray) (float64, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	if t1 > 0 {
		return t1, true
	}
	if t2 > 0 {
		return t2, true
	}
	return 0, false
}

func (s *Sphere) Normal(point types.Vec3) types.Vec3 {
	return point.Sub(s.Center).Scale(1 / s.Radius)
}

func (s *Sphere) UV(point types.Vec3) (float64, float64) {
	d := s.Normal(point)
	u := 0.5 + math.Atan2(d.Z, d.X)/(2*math.Pi)
	v := 0.5 - math.Asin(clamp(d.Y, -1, 1))/math.Pi
	return u, v
}

func (s *Sphere) BoundingBox() AABB {
	r := types.XYZ(s.Radius, s.Radius, s.Radius)
	return NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

// Cylinder is a finite, capped cylinder spanning [-HalfHeight, +HalfHeight]
// along Axis (unit length), centered at Center.
type Cylinder struct {
	Center     types.Vec3
	Axis       types.Vec3
	Radius     float64
	HalfHeight float64
	Material   *Material
}

// NewCylinder creates a capped cylinder primitive.
func NewCylinder(center, axis types.Vec3, radius, halfHeight float64, material *Material) *Cylinder {
	return &Cylinder{Center: center, Axis: axis.Normalize(), Radius: radius, HalfHeight: halfHeight, Material: material}
}

func (c *Cylinder) Mat() *Material { return c.Material }

func (c *Cylinder) Intersect(ray types.Ray) (float64, bool) {
	best := math.Inf(1)
	hit := false

	if t, ok := c.intersectSide(ray); ok && t < best {
		best, hit = t, true
	}
	if t, ok := c.intersectCap(ray, 1); ok && t < best {
		best, hit = t, true
	}
	if t, ok := c.intersectCap(ray, -1); ok && t < best {
		best, hit = t, true
	}

	if !hit {
		return 0, false
	}
	return best, true
}

// intersectSide solves the quadratic for the infinite cylinder's lateral
// surface using the direction and origin projected perpendicular to the
// axis, then rejects roots whose height along the axis falls outside
// [-H, H].
func (c *Cylinder) intersectSide(ray types.Ray) (float64, bool) {
	oc := ray.Origin.Sub(c.Center)

	dPerp := ray.Direction.Sub(c.Axis.Scale(ray.Direction.Dot(c.Axis)))
	ocPerp := oc.Sub(c.Axis.Scale(oc.Dot(c.Axis)))

	a := dPerp.Dot(dPerp)
	if a < 1e-12 {
		return 0, false
	}
	b := 2 * dPerp.Dot(ocPerp)
	cc := ocPerp.Dot(ocPerp) - c.Radius*c.Radius

	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, false
	}
	sqrtDisc := math.Sqrt(disc)

	best := math.Inf(1)
	found := false
	for _, t := range [2]float64{(-b - sqrtDisc) / (2 * a), (-b + sqrtDisc) / (2 * a)} {
		if t <= 0 {
			continue
		}
		p := ray.At(t)
		h := p.Sub(c.Center).Dot(c.Axis)
		if h >= -c.HalfHeight && h <= c.HalfHeight && t < best {
			best, found = t, true
		}
	}
	return best, found
}

// intersectCap tests the plane of one end cap (side = +1 or -1) and checks
// that the hit point lies within the cap's radius.
func (c *Cylinder) intersectCap(ray types.Ray, side float64) (float64, bool) {
	capCenter := c.Center.Add(c.Axis.Scale(side * c.HalfHeight))
	denom := ray.Direction.Dot(c.Axis)
	if math.Abs(denom) < 1e-9 {
		return 0, false
	}
	t := capCenter.Sub(ray.Origin).Dot(c.Axis) / denom
	if t <= 0 {
		return 0, false
	}
	p := ray.At(t)
	if p.Sub(capCenter).Len() > c.Radius {
		return 0, false
	}
	return t, true
}

func (c *Cylinder) Normal(point types.Vec3) types.Vec3 {
	rel := point.Sub(c.Center)
	h := rel.Dot(c.Axis)

	if h >= c.HalfHeight-1e-6 {
		return c.Axis
	}
	if h <= -c.HalfHeight+1e-6 {
		return c.Axis.Negate()
	}
	radial := rel.Sub(c.Axis.Scale(h))
	return radial.Normalize()
}

func (c *Cylinder) UV(point types.Vec3) (float64, float64) {
	rel := point.Sub(c.Center)
	h := rel.Dot(c.Axis)
	radial := rel.Sub(c.Axis.Scale(h))

	tangent := c.Axis.Cross(types.XYZ(0, 1, 0))
	if tangent.Len() < 1e-6 {
		tangent = c.Axis.Cross(types.XYZ(1, 0, 0))
	}
	tangent = tangent.Normalize()
	bitangent := c.Axis.Cross(tangent)

	x := radial.Dot(tangent)
	z := radial.Dot(bitangent)

	u := 0.5 + math.Atan2(z, x)/(2*math.Pi)
	v := (h + c.HalfHeight) / (2 * c.HalfHeight)
	return u, v
}

func (c *Cylinder) BoundingBox() AABB {
	c1 := c.Center.Add(c.Axis.Scale(c.HalfHeight))
	c2 := c.Center.Sub(c.Axis.Scale(c.HalfHeight))
	r := types.XYZ(c.Radius, c.Radius, c.Radius)
	b1 := NewAABB(c1.Sub(r), c1.Add(r))
	b2 := NewAABB(c2.Sub(r), c2.Add(r))
	return SurroundingBox(b1, b2)
}

// Triangle is defined by three vertices, tested with Möller–Trumbore.
type Triangle struct {
	V0, V1, V2 types.Vec3
	Material   *Material
}

// NewTriangle creates a triangle primitive.
func NewTriangle(v0, v1, v2 types.Vec3, material *Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
}

func (tr *Triangle) Mat() *Material { return tr.Material }

func (tr *Triangle) Intersect(ray types.Ray) (float64, bool) {
	const epsilon = 1e-9

	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < epsilon {
		return 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t <= 0 {
		return 0, false
	}
	return t, true
}

func (tr *Triangle) Normal(point types.Vec3) types.Vec3 {
	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)
	return edge1.Cross(edge2).Normalize()
}

// UV returns the barycentric (beta, gamma) coordinates of point, or (0,0)
// for a degenerate (zero-area) triangle.
func (tr *Triangle) UV(point types.Vec3) (float64, float64) {
	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)
	n := edge1.Cross(edge2)
	areaSq := n.Dot(n)
	if areaSq < 1e-18 {
		return 0, 0
	}

	vp := point.Sub(tr.V0)
	beta := edge2.Negate().Cross(vp).Dot(n) / areaSq
	gamma := edge1.Cross(vp).Dot(n) / areaSq
	return beta, gamma
}

func (tr *Triangle) BoundingBox() AABB {
	min := types.MinVec3(types.MinVec3(tr.V0, tr.V1), tr.V2)
	max := types.MaxVec3(types.MaxVec3(tr.V0, tr.V1), tr.V2)
	return NewAABB(min, max)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
