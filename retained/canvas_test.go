package retained

import (
	"fmt"
	"image"
	"unicode/utf8"
)

// fakeCanvas measures every rune as 8x16 and records draw calls.
type fakeCanvas struct {
	size      Size
	ops       []string
	measures  int
	presents  int
	resizes   []Size
	resizeErr error
}

func newFakeCanvas(w, h uint32) *fakeCanvas {
	return &fakeCanvas{size: Size{Width: w, Height: h}}
}

func (c *fakeCanvas) Measure(_ Font, text string) Size {
	c.measures++
	return Size{Width: uint32(8 * utf8.RuneCountInString(text)), Height: 16}
}

func (c *fakeCanvas) Clear(color uint32) {
	c.ops = c.ops[:0]
	c.ops = append(c.ops, fmt.Sprintf("clear %08x", color))
}

func (c *fakeCanvas) FillRect(r Rect, color uint32) {
	c.ops = append(c.ops, fmt.Sprintf("fill %d,%d %dx%d %08x", r.X, r.Y, r.Width, r.Height, color))
}

func (c *fakeCanvas) DrawText(r Rect, _ Font, text string, color uint32) {
	c.ops = append(c.ops, fmt.Sprintf("text %d,%d %q", r.X, r.Y, text))
}

func (c *fakeCanvas) DrawImage(r Rect, _ image.Image) {
	c.ops = append(c.ops, fmt.Sprintf("image %d,%d %dx%d", r.X, r.Y, r.Width, r.Height))
}

func (c *fakeCanvas) Size() Size { return c.size }

func (c *fakeCanvas) Resize(size Size) error {
	if c.resizeErr != nil {
		return c.resizeErr
	}
	c.size = size
	c.resizes = append(c.resizes, size)
	return nil
}

func (c *fakeCanvas) Present() error {
	c.presents++
	return nil
}

// indexOf returns the index of the first recorded op with the given text, or -1.
func (c *fakeCanvas) indexOf(text string) int {
	want := fmt.Sprintf("%q", text)
	for i, op := range c.ops {
		if len(op) > len(want) && op[len(op)-len(want):] == want {
			return i
		}
	}
	return -1
}
