package imageframe

import "errors"

// Common errors for frame operations.
var (
	// ErrFormat is returned when an operation needs channel or byte-depth
	// metadata but the format is FormatUnknown.
	ErrFormat = errors.New("imageframe: unknown image format")

	// ErrInvalidArgument is returned for non-positive alignment boundaries,
	// negative dimensions and destination buffers smaller than the pixel data.
	ErrInvalidArgument = errors.New("imageframe: invalid argument")

	// ErrDisposed is returned when a frame is used after Close.
	ErrDisposed = errors.New("imageframe: frame already disposed")

	// ErrUnsupportedFormat is returned when a format has no image.Image view.
	ErrUnsupportedFormat = errors.New("imageframe: format has no image view")
)
