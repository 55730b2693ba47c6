package retained

import "image"

// ImageWidget draws a decoded image scaled to fit its frame.
type ImageWidget[S any] struct {
	widgetBase
	img     image.Image
	onClick func(*S)

	shade       bool
	hoverShade  uint32
	activeShade uint32
}

// Default shade colors for WithHoverShade.
const (
	DefaultHoverShade  uint32 = 0x1e1e5064
	DefaultActiveShade uint32 = 0x141432a0
)

// Image creates an image widget sized to the image's bounds unless a size
// is given through classes or WithSize.
func Image[S any](img image.Image, classes string) *ImageWidget[S] {
	w := &ImageWidget[S]{img: img}
	w.widgetBase = newWidgetBase(KindImage, "")
	if img != nil {
		b := img.Bounds()
		w.frame.Width, w.frame.Height = uint32(b.Dx()), uint32(b.Dy())
	}
	w.setClasses(classes)
	return w
}

func (w *ImageWidget[S]) Node() Node[S] { return WidgetNode[S](w) }

func (w *ImageWidget[S]) WithID(id WidgetID) *ImageWidget[S] {
	w.id = id
	return w
}

func (w *ImageWidget[S]) WithSize(width, height uint32) *ImageWidget[S] {
	w.setSize(width, height)
	return w
}

func (w *ImageWidget[S]) OnClick(fn func(*S)) *ImageWidget[S] {
	w.onClick = fn
	return w
}

// WithHoverShade tints the image with translucent colors while it is
// hovered or pressed. Zero colors select the defaults.
func (w *ImageWidget[S]) WithHoverShade(hover, active uint32) *ImageWidget[S] {
	if hover == 0 {
		hover = DefaultHoverShade
	}
	if active == 0 {
		active = DefaultActiveShade
	}
	w.shade, w.hoverShade, w.activeShade = true, hover, active
	return w
}

func (w *ImageWidget[S]) Source() image.Image { return w.img }

func (w *ImageWidget[S]) Render(c Canvas, state WidgetState) {
	p := w.resolve(state)
	paintBox(c, w.frame, p)
	if w.img != nil {
		c.DrawImage(w.frame.Inset(w.padding(Insets{})), w.img)
	}
	if !w.shade {
		return
	}
	switch state {
	case StateHovering:
		c.FillRect(w.frame, w.hoverShade)
	case StateActive:
		c.FillRect(w.frame, w.activeShade)
	}
}

func (w *ImageWidget[S]) Click(app *S) {
	if w.onClick != nil {
		w.onClick(app)
	}
}

func (w *ImageWidget[S]) Update(*S, Event) {}
