package imageframe

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// DefaultAlignmentBoundary is the row and address alignment used by
// NewImageFrame when no WithAlignment option is given.
const DefaultAlignmentBoundary = 16

// CacheLineAlignment is the cache-line size of the host CPU. Passing it to
// WithAlignment keeps every row on its own cache-line boundary.
const CacheLineAlignment = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// ComputeWidthStep returns the smallest multiple of boundary that can hold
// width*channels*byteDepth bytes.
//
// Returns ErrInvalidArgument if boundary is not positive or any other input
// is negative. Any positive boundary is accepted, powers of two being the
// expected case.
func ComputeWidthStep(width, channels, byteDepth, boundary int) (int, error) {
	if boundary <= 0 {
		return 0, fmt.Errorf("%w: alignment boundary %d must be positive", ErrInvalidArgument, boundary)
	}
	if width < 0 || channels < 0 || byteDepth < 0 {
		return 0, fmt.Errorf("%w: negative row geometry (%d, %d, %d)", ErrInvalidArgument, width, channels, byteDepth)
	}
	if pixel := channels * byteDepth; pixel > 0 && width > (math.MaxInt-boundary+1)/pixel {
		return 0, fmt.Errorf("%w: width %d overflows the row size", ErrInvalidArgument, width)
	}
	rowBytes := width * channels * byteDepth
	return (rowBytes + boundary - 1) / boundary * boundary, nil
}

// IsAlignedAt reports whether both addr and widthStep are multiples of
// boundary. A zero address is never aligned.
func IsAlignedAt(addr uintptr, widthStep, boundary int) bool {
	if boundary <= 0 || addr == 0 {
		return false
	}
	return addr%uintptr(boundary) == 0 && widthStep%boundary == 0
}
