package renderer

import (
	"math/rand"

	"github.com/david14higgins/Pathtracer/scene"
	"github.com/david14higgins/Pathtracer/types"
)

// samplePixel returns the shaded color for one pixel (the average of the
// values shade returns), averaging a stratified s x s grid of independently-jittered subpixel
// samples when AA is enabled, or a single sample at the pixel center
// otherwise. Each subpixel cell draws its own dx, dy jitter so no single
// RNG value is reused across both axes.
func samplePixel(sc *scene.Scene, cam *scene.Camera, x, y int, opts Options, rng *rand.Rand) types.Vec3 {
	if !opts.UseAA {
		ray := cam.GenerateRayAt(x, y, rng)
		return integratePaths(sc, ray, opts, rng)
	}

	s := opts.SamplesPerPixel
	if s < 1 {
		s = 1
	}
	sum := types.Vec3{}
	for sy := 0; sy < s; sy++ {
		for sx := 0; sx < s; sx++ {
			dx := (float64(sx) + rng.Float64()) / float64(s)
			dy := (float64(sy) + rng.Float64()) / float64(s)
			ray := cam.GenerateRay(float64(x)+dx, float64(y)+dy, rng)
			sum = sum.Add(integratePaths(sc, ray, opts, rng))
		}
	}
	return sum.Scale(1 / float64(s*s))
}

// integratePaths averages opts.PathSamples independent path-traced samples
// for a single primary ray when Options.Mode is PathTracer; other modes
// need only a single sample per ray.
func integratePaths(sc *scene.Scene, ray types.Ray, opts Options, rng *rand.Rand) types.Vec3 {
	if opts.Mode != PathTracer {
		return shade(sc, ray, 0, opts, rng)
	}

	n := opts.PathSamples
	if n < 1 {
		n = 1
	}
	sum := types.Vec3{}
	for i := 0; i < n; i++ {
		sum = sum.Add(shade(sc, ray, 0, opts, rng))
	}
	return sum.Scale(1 / float64(n))
}
