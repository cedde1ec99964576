package imageframe

import (
	"fmt"
	"unsafe"
)

// Element is the set of destination element types for copy-out.
type Element interface {
	~uint8 | ~uint16 | ~float32
}

// CopyTo returns the frame's pixels packed without row padding in a new
// slice of n elements.
//
// Returns ErrInvalidArgument if n elements of T cannot hold
// PixelDataSizeStoredContiguously bytes. Only the first
// PixelDataSizeStoredContiguously bytes of the result carry pixel data.
// Elements are copied in host byte order.
func CopyTo[T Element](f *ImageFrame, n int) ([]T, error) {
	v, err := f.rows()
	if err != nil {
		return nil, err
	}
	if err := checkDestination[T](v, n); err != nil {
		return nil, err
	}
	dst := make([]T, n)
	v.copyTight(asBytes(dst))
	return dst, nil
}

// CopyInto packs the frame's pixels without row padding into dst.
// Elements of dst past the pixel data keep their previous values.
func CopyInto[T Element](f *ImageFrame, dst []T) error {
	v, err := f.rows()
	if err != nil {
		return err
	}
	if err := checkDestination[T](v, len(dst)); err != nil {
		return err
	}
	v.copyTight(asBytes(dst))
	return nil
}

// CopyToByteBuffer returns the pixels packed into n bytes.
func (f *ImageFrame) CopyToByteBuffer(n int) ([]byte, error) {
	return CopyTo[byte](f, n)
}

// CopyToUint16Buffer returns the pixels packed into n 16-bit elements.
func (f *ImageFrame) CopyToUint16Buffer(n int) ([]uint16, error) {
	return CopyTo[uint16](f, n)
}

// CopyToFloat32Buffer returns the pixels packed into n 32-bit floats.
func (f *ImageFrame) CopyToFloat32Buffer(n int) ([]float32, error) {
	return CopyTo[float32](f, n)
}

func checkDestination[T Element](v rowView, n int) error {
	var zero T
	size := int(unsafe.Sizeof(zero))
	need := v.tightSize()
	if n < 0 || n < (need+size-1)/size {
		return fmt.Errorf("%w: destination of %d elements (%d bytes each) cannot hold %d bytes",
			ErrInvalidArgument, n, size, need)
	}
	return nil
}

// asBytes reinterprets s as its underlying bytes.
func asBytes[T Element](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
