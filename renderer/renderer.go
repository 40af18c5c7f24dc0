package renderer

import (
	"time"

	"github.com/david14higgins/Pathtracer/log"
	"github.com/david14higgins/Pathtracer/scene"
)

// Renderer is implemented by the single CPU pipeline this package ships.
// The interface keeps cmd/render.go decoupled from the concrete
// implementation.
type Renderer interface {
	// Render produces a full frame for scene/camera and returns it.
	Render(sc *scene.Scene, cam *scene.Camera) (*Image, error)

	// Stats returns timing information for the most recently rendered
	// frame.
	Stats() FrameStats
}

// cpuRenderer is the sole Renderer implementation: a parallel tile-based
// pixel loop over the rendering core in scene/, dispatched across a pool
// of goroutines rather than any device/kernel layer.
type cpuRenderer struct {
	opts   Options
	logger log.Logger
	stats  FrameStats
}

// New creates a Renderer for the given options.
func New(opts Options) (Renderer, error) {
	if opts.FrameW <= 0 || opts.FrameH <= 0 {
		return nil, ErrInvalidFrameSize
	}
	if opts.Mode != Binary && opts.Mode != Phong && opts.Mode != PathTracer {
		return nil, ErrUnknownMode
	}
	return &cpuRenderer{opts: opts, logger: log.New("render")}, nil
}

func (r *cpuRenderer) Render(sc *scene.Scene, cam *scene.Camera) (*Image, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if cam == nil {
		return nil, ErrCameraNotDefined
	}

	start := time.Now()

	// Trigger the BVH build (if requested) before dispatching parallel
	// traversal so every worker sees it already built.
	if r.opts.UseBVH {
		sc.BVH()
	}

	img := NewImage(r.opts.FrameW, r.opts.FrameH)
	tiles := renderTiles(sc, cam, r.opts, img)

	r.stats = FrameStats{Tiles: tiles, RenderTime: time.Since(start)}
	r.logger.Noticef("rendered %dx%d frame in %s", r.opts.FrameW, r.opts.FrameH, r.stats.RenderTime)

	return img, nil
}

func (r *cpuRenderer) Stats() FrameStats {
	return r.stats
}
