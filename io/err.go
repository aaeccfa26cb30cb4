package io

import (
	"errors"

	"github.com/steffenhaug/zen/translate"
)

var f = translate.From

var (
	// Device errors
	ErrFrameBounds   = errors.New(f("frame bounds"))
	ErrButtonUnknown = errors.New(f("button unknown"))
)

// ErrPixel reports a pixel coordinate outside the frame buffer.
type ErrPixel struct {
	X, Y          int
	Width, Height int
}

func (err ErrPixel) Error() string {
	return f("pixel (%d,%d) outside %dx%d", err.X, err.Y, err.Width, err.Height)
}

func (err ErrPixel) Unwrap() error {
	return ErrFrameBounds
}
