package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/david14higgins/Pathtracer/scene"
)

// tileAssignment splits the frame height into contiguous row ranges and
// hands one to each worker. CPU workers are assumed equally fast, so this
// is a straight equal split, with any remainder rows appended to the
// first worker.
func tileAssignment(frameH, workers int) []int {
	if workers < 1 {
		workers = 1
	}
	if workers > frameH {
		workers = frameH
	}
	base := int(math.Floor(float64(frameH) / float64(workers)))
	if base < 1 {
		base = 1
	}
	heights := make([]int, workers)
	assigned := 0
	for i := range heights {
		heights[i] = base
		assigned += base
	}
	heights[0] += frameH - assigned
	return heights
}

// renderTiles dispatches one goroutine per row-tile, each owning an
// independent *rand.Rand seeded from opts.Seed and the worker index so
// renders are reproducible given a fixed seed and worker count. It
// returns per-tile stats in worker order.
func renderTiles(sc *scene.Scene, cam *scene.Camera, opts Options, img *Image) []TileStat {
	workers := opts.Workers
	if workers < 1 {
		workers = defaultWorkerCount()
	}

	heights := tileAssignment(opts.FrameH, workers)
	stats := make([]TileStat, len(heights))

	var completed int64
	total := int64(opts.FrameW * opts.FrameH)
	var progressMu sync.Mutex
	lastDecile := int64(0)

	reportProgress := func(n int64) {
		if opts.ProgressFunc == nil || total == 0 {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		completed += n
		decile := completed * 10 / total
		if decile > lastDecile {
			lastDecile = decile
			opts.ProgressFunc(float64(completed) / float64(total))
		}
	}

	var wg sync.WaitGroup
	rowStart := 0
	for w, h := range heights {
		rowEnd := rowStart + h
		wg.Add(1)
		go func(workerId, rowStart, rowEnd int) {
			defer wg.Done()
			start := time.Now()
			rng := rand.New(rand.NewSource(opts.Seed + int64(workerId)))
			for y := rowStart; y < rowEnd; y++ {
				for x := 0; x < opts.FrameW; x++ {
					c := samplePixel(sc, cam, x, y, opts, rng)
					c = applyExposureAndToneMap(c, opts)
					img.Set(x, y, c.Scale(255))
				}
				reportProgress(int64(opts.FrameW))
			}
			stats[workerId] = TileStat{
				WorkerId:     workerId,
				RowStart:     rowStart,
				RowEnd:       rowEnd,
				FramePercent: 100 * float64(rowEnd-rowStart) / float64(opts.FrameH),
				RenderTime:   time.Since(start),
			}
		}(w, rowStart, rowEnd)
		rowStart = rowEnd
	}
	wg.Wait()

	return stats
}

func defaultWorkerCount() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
