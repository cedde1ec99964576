package imageframe

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/imageframe/internal/memory"
)

// ImageFrame is a view over raw pixel memory with a known format, size and
// row stride.
//
// A frame either owns its buffer (NewImageFrame, FromImage) or borrows memory
// supplied by the caller (FromBuffer, FromPointer). Close releases owned
// buffers and marks the frame disposed; every other method then fails with
// ErrDisposed. Callers should defer Close right after construction.
//
// The zero value is an empty frame with FormatUnknown.
//
// Thread safety: concurrent read-only access is safe. SetToZero,
// SetAlignmentPaddingAreas and Close require external synchronization.
type ImageFrame struct {
	format    ImageFormat
	width     int
	height    int
	widthStep int
	store     storage
	disposed  bool
}

// New returns an empty frame with FormatUnknown and no buffer.
func New() *ImageFrame {
	return &ImageFrame{}
}

// NewImageFrame allocates an owned frame of the given format and size.
//
// The row stride is the tight row size rounded up to the alignment boundary
// (DefaultAlignmentBoundary unless WithAlignment is given) and the buffer
// starts on that boundary. The buffer is zero-filled. A zero width or height
// yields an empty frame.
func NewImageFrame(format ImageFormat, width, height int, opts ...Option) (*ImageFrame, error) {
	info, err := format.Info()
	if err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidArgument, width, height)
	}

	o := applyOptions(opts)
	step, err := ComputeWidthStep(width, info.Channels, info.ByteDepth, o.alignment)
	if err != nil {
		return nil, err
	}
	if err := checkRowCount(width, info, height, step); err != nil {
		return nil, err
	}

	block, err := memory.Alloc(step*height, o.alignment, o.mmapThreshold)
	if err != nil {
		return nil, fmt.Errorf("imageframe: allocate %v %dx%d: %w", format, width, height, err)
	}
	Logger().Debug("imageframe: allocated frame",
		"format", format, "width", width, "height", height,
		"widthStep", step, "mapped", block.Mapped())

	return &ImageFrame{
		format:    format,
		width:     width,
		height:    height,
		widthStep: step,
		store:     ownedStorage{block: block},
	}, nil
}

// FromBuffer binds a frame to caller memory without copying.
//
// buf must hold at least widthStep*height bytes and widthStep must cover a
// full row of pixels. The caller keeps ownership of buf and must keep it
// valid until the frame is closed; Close never frees it.
func FromBuffer(format ImageFormat, width, height, widthStep int, buf []byte) (*ImageFrame, error) {
	if _, err := checkExternal(format, width, height, widthStep); err != nil {
		return nil, err
	}
	size := widthStep * height
	if len(buf) < size {
		return nil, fmt.Errorf("%w: buffer of %d bytes, need %d", ErrInvalidArgument, len(buf), size)
	}

	var data []byte
	if size > 0 {
		data = buf[:size:size]
	}
	return &ImageFrame{
		format:    format,
		width:     width,
		height:    height,
		widthStep: widthStep,
		store:     borrowedStorage{data: data},
	}, nil
}

// FromPointer binds a frame to memory that is not managed by the Go runtime,
// such as a buffer handed over through cgo.
//
// The region [ptr, ptr+widthStep*height) must stay valid and must not move
// until the frame is closed. Close never frees it.
func FromPointer(format ImageFormat, width, height, widthStep int, ptr unsafe.Pointer) (*ImageFrame, error) {
	if _, err := checkExternal(format, width, height, widthStep); err != nil {
		return nil, err
	}
	size := widthStep * height
	if size > 0 && ptr == nil {
		return nil, fmt.Errorf("%w: nil pixel pointer for %d bytes", ErrInvalidArgument, size)
	}

	var data []byte
	if size > 0 {
		data = unsafe.Slice((*byte)(ptr), size)
	}
	return &ImageFrame{
		format:    format,
		width:     width,
		height:    height,
		widthStep: widthStep,
		store:     borrowedStorage{data: data},
	}, nil
}

// checkExternal validates the geometry of caller-supplied memory.
func checkExternal(format ImageFormat, width, height, widthStep int) (FormatInfo, error) {
	info, err := format.Info()
	if err != nil {
		return FormatInfo{}, err
	}
	if width < 0 || height < 0 || widthStep < 0 {
		return FormatInfo{}, fmt.Errorf("%w: geometry %dx%d step %d", ErrInvalidArgument, width, height, widthStep)
	}
	if err := checkRowCount(width, info, height, widthStep); err != nil {
		return FormatInfo{}, err
	}
	if rowBytes := info.RowBytes(width); widthStep < rowBytes {
		return FormatInfo{}, fmt.Errorf("%w: width step %d below row size %d", ErrInvalidArgument, widthStep, rowBytes)
	}
	return info, nil
}

// checkRowCount rejects geometries whose byte sizes do not fit in an int.
func checkRowCount(width int, info FormatInfo, height, widthStep int) error {
	if pixel := info.Channels * info.ByteDepth; pixel > 0 && width > math.MaxInt/pixel {
		return fmt.Errorf("%w: width %d overflows the row size", ErrInvalidArgument, width)
	}
	if height > 0 && widthStep > math.MaxInt/height {
		return fmt.Errorf("%w: %d rows of step %d overflow the buffer size", ErrInvalidArgument, height, widthStep)
	}
	return nil
}

// Close releases the buffer of an owned frame and marks the frame disposed.
// Borrowed memory is left alone. Calling Close more than once is a no-op.
//
// If releasing the buffer fails the error is returned, but the frame is
// disposed anyway and will not retry.
func (f *ImageFrame) Close() error {
	if f.disposed {
		return nil
	}
	f.disposed = true

	store := f.store
	f.store = nil
	if store == nil {
		return nil
	}
	if err := store.release(); err != nil {
		Logger().Warn("imageframe: release failed", "format", f.format, "error", err)
		return fmt.Errorf("imageframe: release buffer: %w", err)
	}
	if store.ownership() == Owned {
		Logger().Debug("imageframe: released frame",
			"format", f.format, "width", f.width, "height", f.height)
	}
	return nil
}

// IsDisposed reports whether Close has been called.
func (f *ImageFrame) IsDisposed() bool {
	return f.disposed
}

// alive returns ErrDisposed once the frame has been closed.
func (f *ImageFrame) alive() error {
	if f.disposed {
		return ErrDisposed
	}
	return nil
}

// info returns the format metadata of a live frame.
func (f *ImageFrame) info() (FormatInfo, error) {
	if err := f.alive(); err != nil {
		return FormatInfo{}, err
	}
	return f.format.Info()
}

// data returns the strided buffer, nil when empty.
func (f *ImageFrame) data() []byte {
	if f.store == nil {
		return nil
	}
	return f.store.bytes()
}

// Format returns the pixel format.
func (f *ImageFrame) Format() (ImageFormat, error) {
	return f.format, f.alive()
}

// Width returns the width in pixels.
func (f *ImageFrame) Width() (int, error) {
	return f.width, f.alive()
}

// Height returns the height in pixels.
func (f *ImageFrame) Height() (int, error) {
	return f.height, f.alive()
}

// WidthStep returns the number of bytes per row, padding included.
func (f *ImageFrame) WidthStep() (int, error) {
	return f.widthStep, f.alive()
}

// Ownership returns whether the frame releases its buffer on Close.
func (f *ImageFrame) Ownership() (Ownership, error) {
	if err := f.alive(); err != nil {
		return Borrowed, err
	}
	if f.store == nil {
		return Borrowed, nil
	}
	return f.store.ownership(), nil
}

// ChannelSize returns the size in bytes of one channel element.
func (f *ImageFrame) ChannelSize() (int, error) {
	info, err := f.info()
	return info.ChannelSize, err
}

// NumberOfChannels returns the number of channels per pixel.
func (f *ImageFrame) NumberOfChannels() (int, error) {
	info, err := f.info()
	return info.Channels, err
}

// ByteDepth returns the number of bytes per channel value.
func (f *ImageFrame) ByteDepth() (int, error) {
	info, err := f.info()
	return info.ByteDepth, err
}

// PixelDataSize returns the size of the buffer, padding included.
func (f *ImageFrame) PixelDataSize() (int, error) {
	return f.widthStep * f.height, f.alive()
}

// PixelDataSizeStoredContiguously returns the size the pixels would take
// without row padding.
func (f *ImageFrame) PixelDataSizeStoredContiguously() (int, error) {
	info, err := f.info()
	if err != nil {
		return 0, err
	}
	return info.RowBytes(f.width) * f.height, nil
}

// IsEmpty reports whether the frame has no buffer.
func (f *ImageFrame) IsEmpty() (bool, error) {
	return len(f.data()) == 0, f.alive()
}

// IsContiguous reports whether rows follow each other without padding.
// An empty frame is never contiguous.
func (f *ImageFrame) IsContiguous() (bool, error) {
	if err := f.alive(); err != nil {
		return false, err
	}
	if len(f.data()) == 0 {
		return false, nil
	}
	info, err := f.format.Info()
	if err != nil {
		return false, err
	}
	return f.widthStep == info.RowBytes(f.width), nil
}

// IsAligned reports whether both the buffer start and the row stride are
// multiples of boundary. An empty frame is never aligned.
func (f *ImageFrame) IsAligned(boundary int) (bool, error) {
	if err := f.alive(); err != nil {
		return false, err
	}
	data := f.data()
	if len(data) == 0 {
		return false, nil
	}
	return IsAlignedAt(uintptr(unsafe.Pointer(&data[0])), f.widthStep, boundary), nil
}

// PixelData returns the frame's buffer, row padding included. Writes through
// the slice change the frame. It is nil for an empty frame.
//
// The slice is invalid after Close. For mapped buffers (WithMmapThreshold)
// any access after Close faults.
func (f *ImageFrame) PixelData() ([]byte, error) {
	if err := f.alive(); err != nil {
		return nil, err
	}
	return f.data(), nil
}

// SetToZero writes zero to every byte of the buffer, padding included.
func (f *ImageFrame) SetToZero() error {
	if err := f.alive(); err != nil {
		return err
	}
	clear(f.data())
	return nil
}

// SetAlignmentPaddingAreas zeroes the padding at the end of each row and
// leaves pixel bytes untouched. It does nothing for empty or contiguous
// frames.
func (f *ImageFrame) SetAlignmentPaddingAreas() error {
	if err := f.alive(); err != nil {
		return err
	}
	if len(f.data()) == 0 {
		return nil
	}
	v, err := f.rows()
	if err != nil {
		return err
	}
	if v.contiguous() {
		return nil
	}
	for y := range v.height {
		clear(v.padding(y))
	}
	return nil
}

// String returns a short description of the frame layout.
func (f *ImageFrame) String() string {
	state := "live"
	if f.disposed {
		state = "disposed"
	}
	return fmt.Sprintf("ImageFrame(%v %dx%d step=%d %s)", f.format, f.width, f.height, f.widthStep, state)
}
