package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image width, aspect ratio, samples and depth must be positive")
	ErrNoWorld           = errors.New("renderer: no world to render")
)
