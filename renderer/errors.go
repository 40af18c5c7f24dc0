package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInvalidFrameSize = errors.New("renderer: frame width and height must be > 0")
	ErrUnknownMode      = errors.New("renderer: unknown render mode")
	ErrInterrupted      = errors.New("renderer: interrupted while rendering")
)
