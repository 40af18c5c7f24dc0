package renderer

import (
	"testing"

	"github.com/david14higgins/Pathtracer/scene"
	"github.com/david14higgins/Pathtracer/types"
)

func oneSphereScene(mat *scene.Material) (*scene.Scene, *scene.Camera) {
	sc := scene.NewScene(types.Vec3{})
	sc.AddMaterial(mat)
	sc.AddPrimitive(scene.NewSphere(types.XYZ(0, 0, -3), 1, mat))
	sc.AddLight(scene.NewPointLight(types.XYZ(0, 5, 0), types.XYZ(1, 1, 1)))

	cam := scene.NewCamera(scene.Pinhole, 64, 64, types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), types.XYZ(0, 1, 0), 60)
	return sc, cam
}

// One unit sphere at (0,0,-3), Binary mode; center pixel hits, corners
// miss.
func TestBinaryModeSphereHitAndCornersMiss(t *testing.T) {
	mat := scene.DefaultMaterial()
	mat.DiffuseColor = types.XYZ(1, 0, 0)
	sc, cam := oneSphereScene(&mat)

	opts := DefaultOptions()
	opts.FrameW, opts.FrameH = 64, 64
	opts.Mode = Binary
	opts.Workers = 1

	r, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img, err := r.Render(sc, cam)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	cr, cg, cb := img.RGBAt(32, 32)
	if cr != 255 || cg != 0 || cb != 0 {
		t.Errorf("expected center pixel (255,0,0), got (%d,%d,%d)", cr, cg, cb)
	}

	corners := [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}}
	for _, c := range corners {
		r8, g8, b8 := img.RGBAt(c[0], c[1])
		if r8 != 0 || g8 != 0 || b8 != 0 {
			t.Errorf("expected corner pixel %v to be black, got (%d,%d,%d)", c, r8, g8, b8)
		}
	}
}

// Phong mode; center pixel should be reddish and the sample closer to
// the overhead light should be brighter than the one further from it.
func TestPhongModeCenterIsReddishAndLightDirectionMatters(t *testing.T) {
	mat := scene.DefaultMaterial()
	mat.Ks = 0.5
	mat.Kd = 0.8
	mat.SpecularExponent = 32
	mat.DiffuseColor = types.XYZ(1, 0, 0)
	sc, cam := oneSphereScene(&mat)

	opts := DefaultOptions()
	opts.FrameW, opts.FrameH = 64, 64
	opts.Mode = Phong
	opts.NumBounces = 0
	opts.Workers = 1

	r, _ := New(opts)
	img, err := r.Render(sc, cam)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	cr, cg, cb := img.RGBAt(32, 32)
	if !(cr > cg && cr > cb) {
		t.Errorf("expected center pixel to be reddish, got (%d,%d,%d)", cr, cg, cb)
	}

	topR, _, _ := img.RGBAt(32, 20)
	bottomR, _, _ := img.RGBAt(32, 44)
	if topR <= bottomR {
		t.Errorf("expected pixel closer to overhead light to be brighter: top=%d bottom=%d", topR, bottomR)
	}
}

// Pixels that miss every primitive should render as exactly the
// background color scaled to 8 bits, with tone mapping disabled (the
// default).
func TestMissPixelsRenderBackgroundUnscaled(t *testing.T) {
	sc := scene.NewScene(types.XYZ(0.2, 0.3, 0.8))
	mat := scene.DefaultMaterial()
	sc.AddMaterial(&mat)
	sc.AddPrimitive(scene.NewSphere(types.XYZ(-3, 0, -5), 1, &mat))
	sc.AddPrimitive(scene.NewSphere(types.XYZ(3, 0, -5), 1, &mat))

	cam := scene.NewCamera(scene.Pinhole, 32, 32, types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), types.XYZ(0, 1, 0), 10)

	opts := DefaultOptions()
	opts.FrameW, opts.FrameH = 32, 32
	opts.Mode = Phong
	opts.Workers = 1

	r, _ := New(opts)
	img, err := r.Render(sc, cam)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	er, eg, eb := quantize(0.2*255), quantize(0.3*255), quantize(0.8*255)
	gr, gg, gb := img.RGBAt(0, 0)
	if gr != er || gg != eg || gb != eb {
		t.Errorf("expected background-colored miss pixel (%d,%d,%d), got (%d,%d,%d)", er, eg, eb, gr, gg, gb)
	}
}

// Renders must be deterministic given a fixed seed and worker count:
// identical pixel arrays across runs.
func TestRenderIsDeterministicGivenFixedSeedAndWorkerCount(t *testing.T) {
	build := func() *Image {
		mat := scene.DefaultMaterial()
		mat.DiffuseColor = types.XYZ(0.8, 0.2, 0.2)
		sc, cam := oneSphereScene(&mat)
		sc.AddLight(scene.NewAreaLight(types.XYZ(2, 5, 0), types.XYZ(1, 1, 1), types.XYZ(1, 0, 0), types.XYZ(0, 0, 1)))

		opts := DefaultOptions()
		opts.FrameW, opts.FrameH = 24, 24
		opts.Mode = PathTracer
		opts.NumBounces = 3
		opts.PathSamples = 4
		opts.UseAA = true
		opts.SamplesPerPixel = 2
		opts.Seed = 42
		opts.Workers = 3

		r, _ := New(opts)
		img, err := r.Render(sc, cam)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		return img
	}

	a := build()
	b := build()
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("expected identical pixel arrays at index %d, got %v vs %v", i, a.Pixels[i], b.Pixels[i])
		}
	}
}

func TestNewRejectsInvalidFrameSize(t *testing.T) {
	opts := DefaultOptions()
	opts.FrameW, opts.FrameH = 0, 10
	if _, err := New(opts); err != ErrInvalidFrameSize {
		t.Errorf("expected ErrInvalidFrameSize, got %v", err)
	}
}

func TestRenderRejectsNilSceneAndCamera(t *testing.T) {
	opts := DefaultOptions()
	opts.FrameW, opts.FrameH = 4, 4
	r, _ := New(opts)

	if _, err := r.Render(nil, &scene.Camera{}); err != ErrSceneNotDefined {
		t.Errorf("expected ErrSceneNotDefined, got %v", err)
	}

	sc := scene.NewScene(types.Vec3{})
	if _, err := r.Render(sc, nil); err != ErrCameraNotDefined {
		t.Errorf("expected ErrCameraNotDefined, got %v", err)
	}
}
