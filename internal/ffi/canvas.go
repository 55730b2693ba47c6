package ffi

import (
	"image"
	"log"
	"runtime"
	"unsafe"

	"github.com/disintegration/imaging"

	"github.com/agiangrant/stackui/retained"
)

// api holds the renderer entry points. Strings are NUL-terminated byte
// pointers; out parameters are pointers to uint32.
type api struct {
	windowOpen   func(title uintptr, width, height uint32) int32
	windowClose  func()
	windowResize func(width, height uint32) int32
	clear        func(rgba uint32)
	fillRect     func(x, y int32, width, height, rgba uint32)
	drawText     func(x, y int32, width, height uint32, text, family uintptr, size float32, rgba uint32)
	measureText  func(text, family uintptr, size float32, widthOut, heightOut uintptr) int32
	drawImage    func(x, y int32, width, height uint32, pixels uintptr, stride uint32)
	present      func() int32
	pollEvent    func(out uintptr) int32
	version      func() uintptr
}

// EventC matches the renderer's event struct.
type EventC struct {
	Kind   uint8
	Button uint8
	Mods   uint8
	_      uint8
	Key    uint32
	X      int32
	Y      int32
	Text   [32]byte
}

// Canvas is a retained.Canvas and retained.EventSource backed by a native
// window.
type Canvas struct {
	fn     *api
	size   retained.Size
	closed bool
}

var (
	_ retained.Canvas      = (*Canvas)(nil)
	_ retained.EventSource = (*Canvas)(nil)
)

// Open loads the renderer and opens a window.
func Open(config Config) (*Canvas, error) {
	fn, err := load(libraryPath(config.Library))
	if err != nil {
		return nil, err
	}
	return open(fn, config)
}

func open(fn *api, config Config) (*Canvas, error) {
	title := cString(config.Title)
	code := fn.windowOpen(ptr(title), config.Width, config.Height)
	runtime.KeepAlive(title)
	if err := check("window_open", code); err != nil {
		return nil, err
	}
	return &Canvas{fn: fn, size: retained.Size{Width: config.Width, Height: config.Height}}, nil
}

// Version returns the renderer's version string.
func (c *Canvas) Version() string {
	return goString(c.fn.version())
}

// Close closes the window. Later calls are no-ops.
func (c *Canvas) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.fn.windowClose()
}

// Measure asks the renderer for the size of text.
func (c *Canvas) Measure(font retained.Font, text string) retained.Size {
	t, family := cString(text), cString(font.Family)
	var w, h uint32
	code := c.fn.measureText(ptr(t), ptr(family), font.Size,
		uintptr(unsafe.Pointer(&w)), uintptr(unsafe.Pointer(&h)))
	runtime.KeepAlive(t)
	runtime.KeepAlive(family)
	if code < 0 {
		log.Printf("ffi: measure %q failed with code %d", text, code)
		return retained.Size{}
	}
	if text == "" {
		w = 0
	}
	return retained.Size{Width: w, Height: h}
}

func (c *Canvas) Clear(rgba uint32) {
	c.fn.clear(rgba)
}

func (c *Canvas) FillRect(r retained.Rect, rgba uint32) {
	if rgba&0xff == 0 || r.Width == 0 || r.Height == 0 {
		return
	}
	c.fn.fillRect(int32(r.X), int32(r.Y), r.Width, r.Height, rgba)
}

func (c *Canvas) DrawText(r retained.Rect, font retained.Font, text string, rgba uint32) {
	if text == "" {
		return
	}
	t, family := cString(text), cString(font.Family)
	c.fn.drawText(int32(r.X), int32(r.Y), r.Width, r.Height, ptr(t), ptr(family), font.Size, rgba)
	runtime.KeepAlive(t)
	runtime.KeepAlive(family)
}

// DrawImage scales img on the Go side and uploads the pixels.
func (c *Canvas) DrawImage(r retained.Rect, img image.Image) {
	if img == nil || r.Width == 0 || r.Height == 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	w, h := fitSize(b.Dx(), b.Dy(), int(r.Width), int(r.Height))
	scaled := imaging.Resize(img, w, h, imaging.Lanczos)
	x := r.X + (int(r.Width)-w)/2
	y := r.Y + (int(r.Height)-h)/2
	c.fn.drawImage(int32(x), int32(y), uint32(w), uint32(h), ptr(scaled.Pix), uint32(scaled.Stride))
	runtime.KeepAlive(scaled)
}

func fitSize(sw, sh, dw, dh int) (int, int) {
	if sw*dh > sh*dw {
		return dw, max(sh*dw/sw, 1)
	}
	return max(sw*dh/sh, 1), dh
}

func (c *Canvas) Size() retained.Size {
	return c.size
}

func (c *Canvas) Resize(size retained.Size) error {
	if err := check("window_resize", c.fn.windowResize(size.Width, size.Height)); err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *Canvas) Present() error {
	return check("present", c.fn.present())
}

// Poll drains one event from the window. A closed window reports Quit.
func (c *Canvas) Poll() (retained.Event, bool) {
	if c.closed {
		return retained.Event{}, false
	}
	for {
		var ev EventC
		if c.fn.pollEvent(uintptr(unsafe.Pointer(&ev))) <= 0 {
			return retained.Event{}, false
		}
		if e, ok := ev.toEvent(); ok {
			return e, true
		}
		log.Printf("ffi: dropping event of unknown kind %d", ev.Kind)
	}
}

// Event kinds in EventC.Kind.
const (
	eventQuit uint8 = iota + 1
	eventKeyDown
	eventPointerMove
	eventPointerDown
	eventPointerUp
	eventTextInput
)

// toEvent converts a renderer event. Unknown kinds report false.
func (e EventC) toEvent() (retained.Event, bool) {
	switch e.Kind {
	case eventQuit:
		return retained.QuitEvent(), true
	case eventKeyDown:
		return retained.KeyDownEvent(retained.Keycode(e.Key), retained.Modifiers(e.Mods)), true
	case eventPointerMove:
		return retained.PointerMoveEvent(int(e.X), int(e.Y)), true
	case eventPointerDown:
		return retained.PointerDownEvent(retained.MouseButton(e.Button), int(e.X), int(e.Y)), true
	case eventPointerUp:
		return retained.PointerUpEvent(retained.MouseButton(e.Button), int(e.X), int(e.Y)), true
	case eventTextInput:
		n := 0
		for n < len(e.Text) && e.Text[n] != 0 {
			n++
		}
		return retained.TextInputEvent(string(e.Text[:n])), true
	}
	return retained.Event{}, false
}
