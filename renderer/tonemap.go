package renderer

import "github.com/david14higgins/Pathtracer/types"

// reinhardToneMap applies the luminance-preserving Reinhard-with-white-point
// operator L' = L(1 + L/white^2)/(1 + L), scaling color by L'/L so hue is
// preserved. Luminance is compressed only when white > 1; white = 1 leaves
// the color unchanged.
func reinhardToneMap(c types.Vec3, white float64) types.Vec3 {
	l := 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
	if l <= 0 {
		return c
	}
	lp := l * (1 + l/(white*white)) / (1 + l)
	return c.Scale(lp / l)
}

// applyExposureAndToneMap applies exposure scaling and, if enabled, the
// Reinhard operator. Tone mapping is off by default; Options.ToneMap opts
// in.
func applyExposureAndToneMap(c types.Vec3, opts Options) types.Vec3 {
	c = c.Scale(opts.Exposure)
	if opts.ToneMap {
		c = reinhardToneMap(c, opts.ToneMapWhite)
	}
	return c
}
