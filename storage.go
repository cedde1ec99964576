package imageframe

import "github.com/gogpu/imageframe/internal/memory"

// Ownership tells whether a frame is responsible for releasing its buffer.
type Ownership uint8

const (
	// Borrowed frames reference memory owned by someone else and never
	// release it. The zero-value frame reports Borrowed.
	Borrowed Ownership = iota

	// Owned frames allocated their buffer and release it on Close.
	Owned
)

// String returns a string representation of the ownership mode.
func (o Ownership) String() string {
	if o == Owned {
		return "Owned"
	}
	return "Borrowed"
}

// storage is the buffer behind a frame: either an owned block or a borrowed
// slice.
type storage interface {
	bytes() []byte
	ownership() Ownership
	release() error
}

// ownedStorage is a block allocated by the frame.
type ownedStorage struct {
	block *memory.Block
}

func (s ownedStorage) bytes() []byte {
	if s.block == nil {
		return nil
	}
	return s.block.Bytes()
}

func (ownedStorage) ownership() Ownership { return Owned }

func (s ownedStorage) release() error {
	if s.block == nil {
		return nil
	}
	return s.block.Free()
}

// borrowedStorage is caller memory; release only forgets it.
type borrowedStorage struct {
	data []byte
}

func (s borrowedStorage) bytes() []byte      { return s.data }
func (borrowedStorage) ownership() Ownership { return Borrowed }
func (borrowedStorage) release() error       { return nil }
