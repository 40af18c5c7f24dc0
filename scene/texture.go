package scene

import (
	"fmt"
	"math"

	"github.com/david14higgins/Pathtracer/types"
)

// Texture is a rectangular grid of colors sampled by (u,v) coordinates.
// Loading textures from PPM files is handled by asset/texture; this type
// only knows how to store and sample pixels once they've been decoded.
type Texture struct {
	Width, Height int
	// Pixels is row-major, top-to-bottom, left-to-right, with values in
	// [0,1] per channel.
	Pixels []types.Vec3
}

// NewTexture allocates a texture of the given dimensions.
func NewTexture(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene: invalid texture dimensions %dx%d", width, height)
	}
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: make([]types.Vec3, width*height),
	}, nil
}

// Set stores a pixel at (x,y), x in [0,Width), y in [0,Height).
func (t *Texture) Set(x, y int, c types.Vec3) {
	t.Pixels[y*t.Width+x] = c
}

// Sample looks up the nearest pixel for (u,v) coordinates after wrapping u
// and v into [0,1) via u - floor(u).
func (t *Texture) Sample(u, v float64) types.Vec3 {
	u = u - math.Floor(u)
	v = v - math.Floor(v)

	x := int(math.Round(u * float64(t.Width-1)))
	y := int(math.Round(v * float64(t.Height-1)))
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pixels[y*t.Width+x]
}
