package scene

import (
	"math"
	"math/rand"

	"github.com/david14higgins/Pathtracer/types"
)

// CameraKind selects the primary-ray generation model.
type CameraKind uint8

const (
	Pinhole CameraKind = iota
	ThinLens
)

// Camera controls primary ray generation, computing a per-pixel ray
// direction directly from an orthonormal basis rather than an inverse
// projection matrix.
type Camera struct {
	Kind CameraKind

	Width, Height int

	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	FOV      float64
	Exposure float64

	// ThinLens-only parameters.
	Aperture      float64
	FocalDistance float64

	forward, right, up types.Vec3
	aspect, fovScale    float64
	basisValid          bool
}

// NewCamera creates a camera and computes its orthonormal basis.
func NewCamera(kind CameraKind, width, height int, position, lookAt, up types.Vec3, fov float64) *Camera {
	c := &Camera{
		Kind:     kind,
		Width:    width,
		Height:   height,
		Position: position,
		LookAt:   lookAt,
		Up:       up,
		FOV:      fov,
	}
	c.setupBasis()
	return c
}

// setupBasis computes the forward/right/up orthonormal basis and the FOV
// scale factor.
func (c *Camera) setupBasis() {
	c.forward = c.LookAt.Sub(c.Position).Normalize()
	c.right = c.forward.Cross(c.Up).Normalize()
	c.up = c.right.Cross(c.forward).Normalize()
	c.aspect = float64(c.Width) / float64(c.Height)
	c.fovScale = math.Tan(c.FOV / 2 * math.Pi / 180)
	c.basisValid = true
}

// pixelDirection computes the unit ray direction for continuous pixel
// coordinates (x,y). Horizontal pixel coordinates are mirrored (increasing
// x maps to decreasing camera-right), so x=0 looks toward +right and the
// image is left-right flipped; this flip is part of the camera's contract.
func (c *Camera) pixelDirection(x, y float64) types.Vec3 {
	if !c.basisValid {
		c.setupBasis()
	}
	px := -(2*x/float64(c.Width) - 1) * c.aspect * c.fovScale
	py := (1 - 2*y/float64(c.Height)) * c.fovScale
	return c.forward.Add(c.right.Scale(px)).Add(c.up.Scale(py)).Normalize()
}

// GenerateRay issues a primary ray through continuous pixel coordinates
// (x,y). rng is only consulted for ThinLens cameras, to sample a point on
// the aperture disk; Pinhole cameras ignore it.
func (c *Camera) GenerateRay(x, y float64, rng *rand.Rand) types.Ray {
	dir := c.pixelDirection(x, y)

	if c.Kind == Pinhole {
		return types.NewRay(c.Position, dir)
	}

	focalPoint := c.Position.Add(dir.Scale(c.FocalDistance))

	r := math.Sqrt(rng.Float64()) * c.Aperture
	theta := 2 * math.Pi * rng.Float64()
	lensPoint := c.Position.Add(c.right.Scale(r * math.Cos(theta))).Add(c.up.Scale(r * math.Sin(theta)))

	return types.NewRay(lensPoint, focalPoint.Sub(lensPoint))
}

// GenerateRayAt issues a primary ray through the center of integer pixel
// (i,j).
func (c *Camera) GenerateRayAt(i, j int, rng *rand.Rand) types.Ray {
	return c.GenerateRay(float64(i)+0.5, float64(j)+0.5, rng)
}
