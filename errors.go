package shapeframe

import (
	"errors"
	"fmt"
)

// Sentinel errors for the shapeframe package.
var (
	// ErrUnknownShape is returned by ParseShape for names outside the shape set.
	ErrUnknownShape = errors.New("shapeframe: unknown shape")

	// ErrNoImage is returned when an action needs an image and none is loaded.
	ErrNoImage = errors.New("shapeframe: no image loaded")

	// ErrEmptyImage is returned when decoded or exported images have no pixels.
	ErrEmptyImage = errors.New("shapeframe: image has zero size")

	// ErrInvalidFrame is returned by New for a canvas without area or with
	// negative padding.
	ErrInvalidFrame = errors.New("shapeframe: invalid frame")

	// ErrUnknownFontFamily is returned by LoadFonts for a family that is not bundled.
	ErrUnknownFontFamily = errors.New("shapeframe: unknown font family")
)

// DecodeError is returned when uploaded bytes cannot be turned into an image.
type DecodeError struct {
	// Format is the detected file type, or "unknown".
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("shapeframe: decode %s image: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
