package ffi

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/stackui/retained"
)

type fakeRenderer struct {
	calls   []string
	events  []EventC
	present int32
}

func (f *fakeRenderer) functions() *api {
	version := cString("1.2.0")
	return &api{
		windowOpen: func(title uintptr, width, height uint32) int32 {
			f.calls = append(f.calls, fmt.Sprintf("open %q %dx%d", goString(title), width, height))
			return 0
		},
		windowClose: func() { f.calls = append(f.calls, "close") },
		windowResize: func(width, height uint32) int32 {
			if width > 4096 {
				return -1
			}
			f.calls = append(f.calls, fmt.Sprintf("resize %dx%d", width, height))
			return 0
		},
		clear: func(rgba uint32) { f.calls = append(f.calls, fmt.Sprintf("clear %08x", rgba)) },
		fillRect: func(x, y int32, width, height, rgba uint32) {
			f.calls = append(f.calls, fmt.Sprintf("fill %d,%d %dx%d %08x", x, y, width, height, rgba))
		},
		drawText: func(x, y int32, width, height uint32, text, family uintptr, size float32, rgba uint32) {
			f.calls = append(f.calls, fmt.Sprintf("text %d,%d %q %q %g", x, y, goString(text), goString(family), size))
		},
		measureText: func(text, family uintptr, size float32, widthOut, heightOut uintptr) int32 {
			*(*uint32)(unsafe.Pointer(widthOut)) = uint32(len(goString(text))) * 7
			*(*uint32)(unsafe.Pointer(heightOut)) = uint32(size)
			return 0
		},
		drawImage: func(x, y int32, width, height uint32, pixels uintptr, stride uint32) {
			f.calls = append(f.calls, fmt.Sprintf("image %d,%d %dx%d stride %d", x, y, width, height, stride))
		},
		present: func() int32 { return f.present },
		pollEvent: func(out uintptr) int32 {
			if len(f.events) == 0 {
				return 0
			}
			*(*EventC)(unsafe.Pointer(out)) = f.events[0]
			f.events = f.events[1:]
			return 1
		},
		version: func() uintptr { return ptr(version) },
	}
}

func openFake(t *testing.T, f *fakeRenderer) *Canvas {
	t.Helper()
	c, err := open(f.functions(), Config{Title: "demo", Width: 320, Height: 200})
	require.NoError(t, err)
	return c
}

func TestOpenAndDraw(t *testing.T) {
	f := &fakeRenderer{}
	c := openFake(t, f)

	assert.Equal(t, retained.Size{Width: 320, Height: 200}, c.Size())
	assert.Equal(t, "1.2.0", c.Version())

	c.Clear(0x000000ff)
	c.FillRect(retained.NewRect(1, 2, 3, 4), 0xff0000ff)
	c.FillRect(retained.NewRect(1, 2, 3, 4), 0xff000000)
	c.DrawText(retained.NewRect(5, 6, 50, 20), retained.Font{Family: "mono", Size: 14}, "hi", 0xffffffff)
	c.DrawText(retained.NewRect(5, 6, 50, 20), retained.Font{}, "", 0xffffffff)
	require.NoError(t, c.Resize(retained.Size{Width: 100, Height: 50}))
	c.Close()
	c.Close()

	assert.Equal(t, []string{
		`open "demo" 320x200`,
		"clear 000000ff",
		"fill 1,2 3x4 ff0000ff",
		`text 5,6 "hi" "mono" 14`,
		"resize 100x50",
		"close",
	}, f.calls)
	assert.Equal(t, retained.Size{Width: 100, Height: 50}, c.Size())
}

func TestMeasure(t *testing.T) {
	c := openFake(t, &fakeRenderer{})
	assert.Equal(t, retained.Size{Width: 21, Height: 16}, c.Measure(retained.Font{Size: 16}, "abc"))
	assert.Equal(t, retained.Size{Width: 0, Height: 16}, c.Measure(retained.Font{Size: 16}, ""))
}

func TestDrawImageScalesOnGoSide(t *testing.T) {
	f := &fakeRenderer{}
	c := openFake(t, f)
	c.DrawImage(retained.NewRect(10, 10, 40, 40), image.NewNRGBA(image.Rect(0, 0, 20, 10)))
	assert.Equal(t, "image 10,20 40x20 stride 160", f.calls[len(f.calls)-1])
}

func TestRendererErrors(t *testing.T) {
	f := &fakeRenderer{present: -3}
	c := openFake(t, f)

	var rerr *RendererError
	err := c.Present()
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "present", rerr.Op)
	assert.EqualError(t, err, "ffi: present: surface lost (code -3)")

	err = c.Resize(retained.Size{Width: 5000, Height: 10})
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, retained.Size{Width: 320, Height: 200}, c.Size(), "failed resizes keep the size")
}

func TestPollEvents(t *testing.T) {
	var text [32]byte
	copy(text[:], "hé")
	f := &fakeRenderer{events: []EventC{
		{Kind: eventPointerMove, X: 4, Y: 5},
		{Kind: eventPointerDown, Button: uint8(retained.MouseButtonLeft), X: 4, Y: 5},
		{Kind: eventKeyDown, Key: uint32(retained.KeyEnter), Mods: uint8(retained.ModShift)},
		{Kind: eventTextInput, Text: text},
		{Kind: eventQuit},
	}}
	c := openFake(t, f)

	var got []retained.Event
	for {
		ev, ok := c.Poll()
		if !ok {
			break
		}
		got = append(got, ev)
	}
	assert.Equal(t, []retained.Event{
		retained.PointerMoveEvent(4, 5),
		retained.PointerDownEvent(retained.MouseButtonLeft, 4, 5),
		retained.KeyDownEvent(retained.KeyEnter, retained.ModShift),
		retained.TextInputEvent("hé"),
		retained.QuitEvent(),
	}, got)

	c.Close()
	f.events = []EventC{{Kind: eventPointerMove}}
	_, ok := c.Poll()
	assert.False(t, ok, "a closed window has no events")
}

func TestPollSkipsUnknownEvents(t *testing.T) {
	f := &fakeRenderer{events: []EventC{
		{Kind: 0},
		{Kind: 42, X: 1, Y: 1},
		{Kind: eventPointerMove, X: 7, Y: 8},
		{Kind: 200},
	}}
	c := openFake(t, f)

	ev, ok := c.Poll()
	require.True(t, ok)
	assert.Equal(t, retained.PointerMoveEvent(7, 8), ev)

	_, ok = c.Poll()
	assert.False(t, ok, "unknown trailing events are dropped, not turned into quit")
	assert.Empty(t, f.events)
}

func TestOpenMissingLibrary(t *testing.T) {
	_, err := Open(Config{Library: filepath.Join(t.TempDir(), "missing.so")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLibraryNotLoaded))
}

func TestLibraryPath(t *testing.T) {
	assert.Equal(t, "/opt/lib.so", libraryPath("/opt/lib.so"))
	t.Setenv("STACKUI_LIB_PATH", "/env/lib.so")
	assert.Equal(t, "/env/lib.so", libraryPath(""))
}
