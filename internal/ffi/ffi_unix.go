//go:build darwin || linux || freebsd

package ffi

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	libOnce sync.Once
	libAPI  *api
	libErr  error
)

// load opens the renderer once per process and binds its functions.
func load(path string) (*api, error) {
	libOnce.Do(func() {
		log.Printf("ffi: runtime.GOOS = %s, runtime.GOARCH = %s", runtime.GOOS, runtime.GOARCH)
		log.Printf("ffi: loading renderer from %s", path)

		handle, err := openLibrary(path)
		if err != nil {
			libErr = fmt.Errorf("%w: %s: %v", ErrLibraryNotLoaded, path, err)
			return
		}
		fn := &api{}
		if err := bind(handle, fn); err != nil {
			libErr = err
			return
		}
		libAPI = fn
	})
	return libAPI, libErr
}

func bind(handle uintptr, fn *api) error {
	symbols := []struct {
		name   string
		target any
	}{
		{"stackui_window_open", &fn.windowOpen},
		{"stackui_window_close", &fn.windowClose},
		{"stackui_window_resize", &fn.windowResize},
		{"stackui_clear", &fn.clear},
		{"stackui_fill_rect", &fn.fillRect},
		{"stackui_draw_text", &fn.drawText},
		{"stackui_measure_text", &fn.measureText},
		{"stackui_draw_image", &fn.drawImage},
		{"stackui_present", &fn.present},
		{"stackui_poll_event", &fn.pollEvent},
		{"stackui_version", &fn.version},
	}
	for _, s := range symbols {
		sym, err := getSymbol(handle, s.name)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrSymbolMissing, s.name)
		}
		purego.RegisterFunc(s.target, sym)
	}
	return nil
}

// openLibrary loads a dynamic library on Unix-like systems
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

// getSymbol retrieves a symbol from the loaded library
func getSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
