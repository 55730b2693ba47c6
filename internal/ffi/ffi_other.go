//go:build !(darwin || linux || freebsd)

package ffi

import "fmt"

func load(path string) (*api, error) {
	return nil, fmt.Errorf("%w: %s: dynamic loading is not supported on this platform", ErrLibraryNotLoaded, path)
}
