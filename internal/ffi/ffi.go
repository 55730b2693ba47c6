// Package ffi drives a native renderer library through purego. The library
// owns the window; this package exposes it as a retained.Canvas and an
// event source. No cgo is involved, so the binary cross-compiles.
package ffi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"
)

var (
	// ErrLibraryNotLoaded is returned when the renderer library cannot be opened.
	ErrLibraryNotLoaded = errors.New("ffi: renderer library not loaded")

	// ErrSymbolMissing is returned when the library lacks a required function.
	ErrSymbolMissing = errors.New("ffi: symbol missing")
)

// Config describes the window to open.
type Config struct {
	// Library is the renderer path. Empty searches STACKUI_LIB_PATH and the
	// usual locations.
	Library string
	Title   string
	Width   uint32
	Height  uint32
}

// RendererError is a negative status code returned by the library.
type RendererError struct {
	Op   string
	Code int32
}

func (e *RendererError) Error() string {
	var reason string
	switch e.Code {
	case -1:
		reason = "invalid argument"
	case -2:
		reason = "no window"
	case -3:
		reason = "surface lost"
	default:
		reason = "unknown error"
	}
	return fmt.Sprintf("ffi: %s: %s (code %d)", e.Op, reason, e.Code)
}

func check(op string, code int32) error {
	if code < 0 {
		return &RendererError{Op: op, Code: code}
	}
	return nil
}

// libraryName returns the platform file name of the renderer.
func libraryName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libstackui_renderer.dylib"
	case "windows":
		return "stackui_renderer.dll"
	default:
		return "libstackui_renderer.so"
	}
}

// libraryPath resolves the renderer location.
func libraryPath(configured string) string {
	if configured != "" {
		return configured
	}
	if path := os.Getenv("STACKUI_LIB_PATH"); path != "" {
		return path
	}

	libName := libraryName()
	searchPaths := []string{
		libName,
		filepath.Join("renderer", "target", "release", libName),
		filepath.Join("renderer", "target", "debug", libName),
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}

	// Let the dynamic loader search.
	return libName
}

// ============================================================================
// String Helpers
// ============================================================================

// cString returns a NUL-terminated copy of s. Keep the slice alive for the
// duration of the call.
func cString(s string) []byte {
	return append([]byte(s), 0)
}

func ptr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

// goString converts a NUL-terminated C string to a Go string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Pointer(p + uintptr(length))) != 0 {
		length++
		if length > 1<<20 {
			break
		}
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), length))
}
