package imageframe

import (
	"errors"
	"slices"
	"sync"
)

// Pool is a thread-safe pool for reusing owned frames.
//
// Pool groups frames by format, dimensions and row stride so that reused
// frames have exactly the layout a fresh NewImageFrame call would produce.
// This avoids repeated allocation (and, for large frames, repeated mmap)
// in pipelines that produce frames of the same shape over and over.
//
// Thread safety: All methods are safe for concurrent use. The frames handed
// out are not.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*ImageFrame
	maxSize int // max frames per bucket
	opts    []Option
	closed  bool
}

// poolKey identifies a bucket of identical frame layouts.
type poolKey struct {
	format    ImageFormat
	width     int
	height    int
	widthStep int
}

// NewPool creates a pool that keeps at most maxPerBucket frames per layout.
// A maxPerBucket of 0 or less means unlimited. opts are used for every frame
// the pool allocates.
func NewPool(maxPerBucket int, opts ...Option) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*ImageFrame),
		maxSize: maxPerBucket,
		opts:    opts,
	}
}

// Get returns a zeroed owned frame of the given format and size, reusing a
// pooled frame when one is available.
func (p *Pool) Get(format ImageFormat, width, height int) (*ImageFrame, error) {
	info, err := format.Info()
	if err != nil {
		return nil, err
	}
	o := applyOptions(p.opts)
	step, err := ComputeWidthStep(width, info.Channels, info.ByteDepth, o.alignment)
	if err != nil {
		return nil, err
	}
	key := poolKey{format: format, width: width, height: height, widthStep: step}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		f := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		if err := f.SetToZero(); err != nil {
			return nil, err
		}
		Logger().Debug("imageframe: pool reuse", "format", format, "width", width, "height", height)
		return f, nil
	}
	p.mu.Unlock()

	return NewImageFrame(format, width, height, p.opts...)
}

// Put returns a frame to the pool. Nil, disposed and borrowed frames are
// ignored, and so is a frame that is already pooled. If the bucket is full
// or the pool is closed, the frame is closed instead.
func (p *Pool) Put(f *ImageFrame) {
	if f == nil || f.disposed || f.store == nil || f.store.ownership() != Owned {
		return
	}
	key := poolKey{format: f.format, width: f.width, height: f.height, widthStep: f.widthStep}

	p.mu.Lock()
	bucket := p.buckets[key]
	if slices.Contains(bucket, f) {
		p.mu.Unlock()
		return
	}
	if p.closed || (p.maxSize > 0 && len(bucket) >= p.maxSize) {
		p.mu.Unlock()
		Logger().Debug("imageframe: pool discard", "format", f.format, "width", f.width, "height", f.height)
		if err := f.Close(); err != nil {
			Logger().Warn("imageframe: pool discard failed", "error", err)
		}
		return
	}
	p.buckets[key] = append(bucket, f)
	p.mu.Unlock()
}

// Len returns the number of frames currently held by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}

// Close closes every pooled frame. Frames put after Close are closed
// immediately.
func (p *Pool) Close() error {
	p.mu.Lock()
	buckets := p.buckets
	p.buckets = make(map[poolKey][]*ImageFrame)
	p.closed = true
	p.mu.Unlock()

	var errs []error
	for _, bucket := range buckets {
		for _, f := range bucket {
			if err := f.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
