// Package imageframe provides typed views over raw pixel memory.
//
// # Overview
//
// An ImageFrame describes a block of pixels by format, width, height and row
// stride (width step). Rows may carry trailing padding so that every row
// starts on an alignment boundary, which is what SIMD kernels and most
// native image pipelines expect. The frame keeps the layout arithmetic in one
// place and hands pixels out as tightly packed slices.
//
// # Quick Start
//
//	import "github.com/gogpu/imageframe"
//
//	// Owned frame, rows aligned to 16 bytes
//	f, err := imageframe.NewImageFrame(imageframe.FormatGray8, 100, 100)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	step, _ := f.WidthStep() // 112
//	pixels, err := f.CopyToByteBuffer(100 * 100)
//
// # Ownership
//
// Frames built with NewImageFrame or FromImage own their buffer and release
// it on Close. Frames built with FromBuffer or FromPointer borrow memory from
// the caller, which must keep it valid until the frame is closed; Close never
// frees borrowed memory. Close is idempotent, and every other method fails
// with ErrDisposed afterwards.
//
// # Errors
//
// Accessors return an error next to their value:
//   - ErrFormat when the value needs channel metadata and the format is
//     FormatUnknown
//   - ErrInvalidArgument for bad alignment boundaries, negative sizes and
//     destination buffers that are too small
//   - ErrDisposed after Close
//
// # Architecture
//
// The package is organized into:
//   - Layout: ImageFormat and FormatInfo (format table), ComputeWidthStep and
//     IsAlignedAt (alignment)
//   - Frames: ImageFrame, its row view and the typed copy-out functions
//   - Reuse: Pool
//   - Interop: ImageFrame.Image and FromImage for the standard image types
//   - Internal: memory (aligned heap and mmap-backed blocks)
package imageframe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
