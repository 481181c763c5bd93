package sizing

import "errors"

var (
	// ErrInvalidCanvasSize indicates a canvas with a non-positive width or height.
	ErrInvalidCanvasSize = errors.New("sizing: invalid canvas size")

	// ErrInvalidGridDimensions indicates a non-positive target cell count.
	ErrInvalidGridDimensions = errors.New("sizing: invalid grid dimensions")
)
