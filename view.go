package imageframe

import "fmt"

// rowView centralizes stride arithmetic over a frame buffer. Every slice it
// hands out lies inside [0, step*height) of the buffer.
type rowView struct {
	data     []byte
	rowBytes int
	step     int
	height   int
}

// rows returns the row view of a live frame with a known format.
// An empty frame yields a view with no rows.
func (f *ImageFrame) rows() (rowView, error) {
	info, err := f.info()
	if err != nil {
		return rowView{}, err
	}
	v := rowView{rowBytes: info.RowBytes(f.width), step: f.widthStep}
	data := f.data()
	if len(data) == 0 {
		return v, nil
	}
	if f.widthStep < v.rowBytes || len(data) < f.widthStep*f.height {
		return rowView{}, fmt.Errorf("%w: buffer of %d bytes cannot hold %d rows of step %d",
			ErrInvalidArgument, len(data), f.height, f.widthStep)
	}
	v.data = data
	v.height = f.height
	return v, nil
}

// row returns the pixel bytes of row y without padding.
func (v rowView) row(y int) []byte {
	start := y * v.step
	end := start + v.rowBytes
	return v.data[start:end:end]
}

// padding returns the bytes between the end of row y's pixels and the start
// of the next row.
func (v rowView) padding(y int) []byte {
	start := y*v.step + v.rowBytes
	end := (y + 1) * v.step
	return v.data[start:end:end]
}

func (v rowView) contiguous() bool {
	return v.step == v.rowBytes
}

// tightSize returns the pixel byte count without padding.
func (v rowView) tightSize() int {
	return v.rowBytes * v.height
}

// copyTight packs the pixel rows into dst, which must hold tightSize bytes.
// Bytes of dst past tightSize are not written.
func (v rowView) copyTight(dst []byte) {
	if v.height == 0 {
		return
	}
	if v.contiguous() {
		copy(dst, v.data[:v.tightSize()])
		return
	}
	off := 0
	for y := range v.height {
		off += copy(dst[off:off+v.rowBytes], v.row(y))
	}
}
