package renderer

import "github.com/david14higgins/Pathtracer/types"

// Image is a rendered frame buffer: one color per pixel in scanline order,
// top-to-bottom, left-to-right. Pixels carry floating-point channel values
// already multiplied by 255 by the worker pool, without clamping; RGBAt
// performs the final clamp and 8-bit quantization.
type Image struct {
	Width, Height int
	Pixels        []types.Vec3
}

// NewImage allocates a width x height frame buffer.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]types.Vec3, width*height)}
}

// Set stores the color for pixel (x,y).
func (img *Image) Set(x, y int, c types.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// At returns the stored color for pixel (x,y).
func (img *Image) At(x, y int) types.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// RGBAt quantizes the pixel at (x,y) to 8-bit channels with min(v,255).
func (img *Image) RGBAt(x, y int) (r, g, b uint8) {
	c := img.At(x, y)
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

func quantize(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
