package gui

import "errors"

var (
	// ErrNoSurface is returned (or panicked with, from MeasureText) when an
	// operation needs a drawing surface and none is bound to the frame.
	ErrNoSurface = errors.New("gui: no surface bound")
)
