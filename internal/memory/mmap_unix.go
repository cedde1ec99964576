//go:build unix

package memory

import "golang.org/x/sys/unix"

const canMap = true

func pageSize() int {
	return unix.Getpagesize()
}

func mapPages(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapPages(b []byte) error {
	return unix.Munmap(b)
}
