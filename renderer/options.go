package renderer

// Mode selects the per-pixel shader.
type Mode uint8

const (
	Binary Mode = iota
	Phong
	PathTracer
)

// Options collects render-wide configuration for a single frame.
type Options struct {
	FrameW int
	FrameH int

	Mode Mode

	// NumBounces is the maximum recursion depth for reflection/refraction
	// (Phong) and indirect bounces (path tracer).
	NumBounces int

	// MinBouncesForRR is the path tracer depth beyond which Russian
	// roulette termination is applied. Zero disables Russian roulette.
	MinBouncesForRR int

	UseBVH bool

	UseAA           bool
	SamplesPerPixel int // AA stratification grid edge

	// PathSamples is the number of internal paths averaged per primary ray
	// by the path tracer, independent of AA.
	PathSamples int

	// Exposure scales color before tone mapping / quantization.
	Exposure float64

	ToneMap      bool
	ToneMapWhite float64

	// Seed is the render-wide RNG seed; each worker derives its own
	// reproducible stream from it.
	Seed int64

	// Workers caps the number of goroutines used for the pixel loop. Zero
	// means GOMAXPROCS.
	Workers int

	// ProgressFunc, if set, is invoked with a value in (0,1] every time an
	// additional 10% of pixels complete. It is called from the worker
	// goroutines, one call at a time.
	ProgressFunc func(fraction float64)
}

// DefaultOptions returns the CLI's baseline defaults: AA stratification
// grid edge 8, tone mapping off, and a zero bounce budget.
func DefaultOptions() Options {
	return Options{
		Mode:            Binary,
		SamplesPerPixel: 8,
		PathSamples:     16,
		Exposure:        1,
		ToneMapWhite:    1.0,
		Seed:            1,
	}
}
