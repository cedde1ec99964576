// Package memory allocates the aligned byte blocks that back owned frames.
//
// Small blocks come from the Go heap, over-allocated and sliced so that the
// first byte sits on the requested boundary. When the caller opts in, large
// blocks are mapped with anonymous mmap where the platform supports it, which
// yields page-aligned, zero-filled memory that is returned to the OS on Free.
// A mapped block that becomes unreachable without Free is unmapped by a
// runtime cleanup.
package memory

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

// ErrInvalidSize is returned when a block size or boundary is out of range.
var ErrInvalidSize = errors.New("memory: invalid block size")

// Block is an aligned region of memory with a single owner.
type Block struct {
	data    []byte
	raw     []byte
	mapped  bool
	cleanup runtime.Cleanup
}

// Alloc returns a zero-filled block of size bytes whose first byte is a
// multiple of boundary.
//
// Blocks of at least mmapThreshold bytes are mapped when the platform
// supports anonymous mappings and boundary divides the page size. A negative
// threshold disables mapping. A size of 0 yields an empty block.
func Alloc(size, boundary, mmapThreshold int) (*Block, error) {
	if size < 0 || boundary <= 0 || size > math.MaxInt-boundary+1 {
		return nil, fmt.Errorf("%w: size=%d boundary=%d", ErrInvalidSize, size, boundary)
	}
	if size == 0 {
		return &Block{}, nil
	}

	if mmapThreshold >= 0 && size >= mmapThreshold && canMap && pageSize()%boundary == 0 {
		raw, err := mapPages(size)
		if err == nil {
			Logger().Debug("memory: mapped block", "size", size, "boundary", boundary)
			b := &Block{data: raw[:size:size], raw: raw, mapped: true}
			b.cleanup = runtime.AddCleanup(b, unmapLeaked, raw)
			return b, nil
		}
		Logger().Warn("memory: mmap failed, falling back to heap", "size", size, "error", err)
	}

	raw := make([]byte, size+boundary-1)
	off := alignOffset(uintptr(unsafe.Pointer(&raw[0])), boundary)
	Logger().Debug("memory: heap block", "size", size, "boundary", boundary, "offset", off)
	return &Block{data: raw[off : off+size : off+size], raw: raw}, nil
}

// Bytes returns the aligned region. It is nil for an empty or freed block.
func (b *Block) Bytes() []byte {
	return b.data
}

// Mapped reports whether the block is backed by an anonymous mapping.
func (b *Block) Mapped() bool {
	return b.mapped
}

// Free releases the block. Mapped blocks are unmapped; heap blocks drop their
// reference. Calling Free more than once is a no-op.
func (b *Block) Free() error {
	if b.raw == nil {
		return nil
	}
	raw, mapped := b.raw, b.mapped
	b.data, b.raw, b.mapped = nil, nil, false
	if !mapped {
		return nil
	}
	b.cleanup.Stop()
	if err := unmapPages(raw); err != nil {
		return fmt.Errorf("memory: munmap: %w", err)
	}
	Logger().Debug("memory: unmapped block", "size", len(raw))
	return nil
}

// unmapLeaked releases the mapping of a block that became unreachable
// without Free.
func unmapLeaked(raw []byte) {
	if err := unmapPages(raw); err != nil {
		Logger().Warn("memory: unmap of leaked block failed", "size", len(raw), "error", err)
		return
	}
	Logger().Debug("memory: unmapped leaked block", "size", len(raw))
}

// alignOffset returns how many bytes to skip from addr to reach the next
// multiple of boundary.
func alignOffset(addr uintptr, boundary int) int {
	rem := int(addr % uintptr(boundary))
	if rem == 0 {
		return 0
	}
	return boundary - rem
}
