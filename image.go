package imageframe

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Image returns an image.Image that shares memory with the frame.
//
// Gray8 frames are exposed as *image.Gray and Srgba frames as *image.NRGBA,
// with Stride set to the frame's width step. Other formats return
// ErrUnsupportedFormat. The view is invalid after Close; for mapped buffers
// (WithMmapThreshold) any access after Close faults.
func (f *ImageFrame) Image() (image.Image, error) {
	if err := f.alive(); err != nil {
		return nil, err
	}
	data := f.data()
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty frame has no image view", ErrInvalidArgument)
	}

	rect := image.Rect(0, 0, f.width, f.height)
	switch f.format {
	case FormatGray8:
		return &image.Gray{Pix: data, Stride: f.widthStep, Rect: rect}, nil
	case FormatSrgba:
		return &image.NRGBA{Pix: data, Stride: f.widthStep, Rect: rect}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f.format)
	}
}

// FromImage allocates an owned Srgba frame with the size of src and draws
// src into it.
func FromImage(src image.Image, opts ...Option) (*ImageFrame, error) {
	b := src.Bounds()
	f, err := NewImageFrame(FormatSrgba, b.Dx(), b.Dy(), opts...)
	if err != nil {
		return nil, err
	}
	if b.Empty() {
		return f, nil
	}

	dst := &image.NRGBA{
		Pix:    f.data(),
		Stride: f.widthStep,
		Rect:   image.Rect(0, 0, b.Dx(), b.Dy()),
	}
	xdraw.Draw(dst, dst.Rect, src, b.Min, xdraw.Src)
	return f, nil
}
