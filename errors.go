package main

import "errors"

var (
	// ErrOutOfBounds indicates a shape's bounding box leaves the canvas.
	ErrOutOfBounds = errors.New("does not fit on canvas")
	// ErrDuplicate indicates an identical shape (kind, size, anchor) exists.
	ErrDuplicate = errors.New("duplicate shape")
	// ErrOccupied indicates another shape is already anchored at the target.
	ErrOccupied = errors.New("position occupied")
	// ErrNotFound indicates no shape has the requested id.
	ErrNotFound = errors.New("shape not found")
	// ErrInvalidSize indicates a non-positive radius, side, height or length.
	ErrInvalidSize = errors.New("invalid size")
	// ErrUnsupportedColor indicates a color outside the fixed palette.
	ErrUnsupportedColor = errors.New("unsupported color")
	// ErrUnknownShape indicates a shape type name that is not registered.
	ErrUnknownShape = errors.New("unknown shape type")
	// ErrUnknownProperty indicates an edit of a field that does not exist.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidValue indicates a property value that cannot be parsed.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidRecord indicates a malformed line in a saved drawing.
	ErrInvalidRecord = errors.New("invalid record")
)

// Command-line errors.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrUsage           = errors.New("usage")
	ErrNothingToExport = errors.New("nothing to export")
)
