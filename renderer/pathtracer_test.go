package renderer

import (
	"math/rand"
	"testing"

	"github.com/david14higgins/Pathtracer/scene"
	"github.com/david14higgins/Pathtracer/types"
)

func TestCosineSampleHemisphereStaysOnCorrectSide(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := types.XYZ(0, 1, 0)

	for i := 0; i < 200; i++ {
		wi := cosineSampleHemisphere(n, rng)
		if d := wi.Dot(n); d < -1e-9 {
			t.Fatalf("sample %v fell on the wrong side of the hemisphere (n.wi=%v)", wi, d)
		}
		if l := wi.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("sample %v is not unit length (len=%v)", wi, l)
		}
	}
}

func TestSchlickFresnelBoundsAndNormalIncidence(t *testing.T) {
	f := schlickFresnel(1, 1.0, 1.5)
	r0 := (1.0 - 1.5) / (1.0 + 1.5)
	r0 *= r0
	if diff := f - r0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected fresnel at normal incidence to equal r0=%v, got %v", r0, f)
	}

	grazing := schlickFresnel(0.001, 1.0, 1.5)
	if grazing < f {
		t.Errorf("expected fresnel reflectance to increase toward grazing incidence: normal=%v grazing=%v", f, grazing)
	}
	if grazing > 1 || grazing < 0 {
		t.Errorf("fresnel reflectance must stay within [0,1], got %v", grazing)
	}
}

func TestTracePathReturnsBackgroundOnMissAndDepthCap(t *testing.T) {
	sc := scene.NewScene(types.XYZ(0.1, 0.2, 0.3))
	opts := DefaultOptions()
	opts.Mode = PathTracer
	opts.NumBounces = 4
	rng := rand.New(rand.NewSource(1))

	ray := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1))
	if got := tracePath(sc, ray, 0, opts, rng); got != sc.BgColor {
		t.Errorf("expected miss to return background, got %v", got)
	}
	if got := tracePath(sc, ray, opts.NumBounces, opts, rng); got != sc.BgColor {
		t.Errorf("expected depth cap to return background, got %v", got)
	}
}
