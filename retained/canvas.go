package retained

import "image"

// Font names a typeface and size. An empty Family selects the backend default.
type Font struct {
	Family string
	Size   float32
}

// Measurer is the text measurement service consumed by the layout engine.
// Measure returns the drawn size of text at font; an empty string measures
// as zero width and one line height.
type Measurer interface {
	Measure(font Font, text string) Size
}

// Canvas is the render service a backend exposes to the engine.
// Colours are 0xRRGGBBAA.
type Canvas interface {
	Measurer

	// Clear fills the whole surface.
	Clear(color uint32)
	FillRect(r Rect, color uint32)
	// DrawText draws text with its top-left corner at r's origin, clipped to r.
	DrawText(r Rect, font Font, text string, color uint32)
	// DrawImage draws img scaled to fit r, preserving its aspect ratio.
	DrawImage(r Rect, img image.Image)

	// Size returns the current surface size.
	Size() Size
	Resize(size Size) error
	Present() error
}

// strokeRect draws a border of the given width inside r.
func strokeRect(c Canvas, r Rect, width, color uint32) {
	if width == 0 || color&0xff == 0 {
		return
	}
	if width*2 >= r.Width || width*2 >= r.Height {
		c.FillRect(r, color)
		return
	}
	w := int(width)
	c.FillRect(Rect{X: r.X, Y: r.Y, Width: r.Width, Height: width}, color)
	c.FillRect(Rect{X: r.X, Y: r.Bottom() - w, Width: r.Width, Height: width}, color)
	c.FillRect(Rect{X: r.X, Y: r.Y + w, Width: width, Height: r.Height - 2*width}, color)
	c.FillRect(Rect{X: r.Right() - w, Y: r.Y + w, Width: width, Height: r.Height - 2*width}, color)
}
