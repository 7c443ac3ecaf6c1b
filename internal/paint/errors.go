package paint

import (
	"errors"
	"fmt"
)

// Domain errors for painting and persisting canvases.
var (
	// ErrInvalidArgument indicates a non-positive dimension, an unknown style
	// or an otherwise unusable request.
	ErrInvalidArgument = errors.New("paint: invalid argument")

	// ErrIOFailure indicates a canvas could not be written or read back.
	ErrIOFailure = errors.New("paint: i/o failure")
)

// DimensionError reports the offending size of a rejected paint request.
type DimensionError struct {
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: width=%d height=%d (both must be positive)", ErrInvalidArgument, e.Width, e.Height)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidArgument
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return &DimensionError{Width: width, Height: height}
	}
	return nil
}
