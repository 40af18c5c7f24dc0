package renderer

import "time"

// TileStat reports the timing for one horizontal band of rows rendered by a
// single worker goroutine.
type TileStat struct {
	// WorkerId identifies the goroutine that rendered this tile.
	WorkerId int

	// RowStart/RowEnd bound the tile, RowEnd exclusive.
	RowStart, RowEnd int

	// FramePercent is the share of total pixels this tile covers.
	FramePercent float64

	RenderTime time.Duration
}

// FrameStats aggregates per-tile stats plus a total render time.
type FrameStats struct {
	Tiles      []TileStat
	RenderTime time.Duration
}
