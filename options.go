package imageframe

// Option configures frame allocation in NewImageFrame, FromImage and Pool.
//
// Example:
//
//	// 64-byte rows for SIMD consumers
//	f, err := imageframe.NewImageFrame(imageframe.FormatGray8, 100, 100,
//	    imageframe.WithAlignment(64))
type Option func(*options)

// options holds allocation settings.
type options struct {
	alignment     int
	mmapThreshold int
}

// defaultMmapThreshold keeps owned buffers on the Go heap unless
// WithMmapThreshold opts in to mapping.
const defaultMmapThreshold = -1

// defaultOptions returns the default allocation options.
func defaultOptions() options {
	return options{
		alignment:     DefaultAlignmentBoundary,
		mmapThreshold: defaultMmapThreshold,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithAlignment sets the boundary that both the row stride and the start of
// the buffer are aligned to. The boundary must be positive; NewImageFrame
// reports ErrInvalidArgument otherwise.
func WithAlignment(boundary int) Option {
	return func(o *options) {
		o.alignment = boundary
	}
}

// WithMmapThreshold sets the buffer size in bytes from which owned buffers
// are backed by an anonymous memory mapping on unix systems. A negative
// value, the default, keeps every buffer on the Go heap.
//
// Mapped buffers are returned to the operating system by Close, so slices
// from PixelData and views from Image must not be touched afterwards: the
// access faults instead of panicking. Only opt in when the frame's lifetime
// is strictly scoped.
func WithMmapThreshold(bytes int) Option {
	return func(o *options) {
		o.mmapThreshold = bytes
	}
}
