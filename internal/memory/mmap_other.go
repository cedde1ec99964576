//go:build !unix

package memory

import "errors"

const canMap = false

var errNoMmap = errors.New("anonymous mappings not supported on this platform")

func pageSize() int {
	return 4096
}

func mapPages(int) ([]byte, error) {
	return nil, errNoMmap
}

func unmapPages([]byte) error {
	return errNoMmap
}
