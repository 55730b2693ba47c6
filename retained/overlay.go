package retained

// OverlayView covers the window with a backdrop and centers one content
// view on top of it. It is anchored to the window: translation does not
// move it, and a parent stack does not reserve space for it.
type OverlayView[S any] struct {
	viewBase[S]
	backdrop *BackdropDecoration
	content  View[S]
	viewport Size
}

// Overlay creates an overlay around content. classes style the backdrop.
// It panics with a *ConfigError if content is or contains another Overlay.
func Overlay[S any](content View[S], classes string) *OverlayView[S] {
	if content == nil {
		configPanic("Overlay", "nil content view")
	}
	if content.Kind() == KindOverlay {
		configPanic("Overlay", "overlay nested directly inside an overlay")
	}
	for _, v := range ChildViews(content) {
		if v.Kind() == KindOverlay {
			configPanic("Overlay", "overlay nested inside an overlay's content")
		}
	}

	o := &OverlayView[S]{backdrop: NewBackdrop(classes), content: content}
	o.kind = KindOverlay
	o.styles = resolveStyles("")
	o.nodes = []Node[S]{DecorationNode[S](o.backdrop), ViewNode(content)}
	return o
}

func (o *OverlayView[S]) Node() Node[S] { return ViewNode[S](o) }

// Floating reports that parents lay the overlay out outside their flow.
func (o *OverlayView[S]) Floating() bool { return true }

// Content returns the centered view.
func (o *OverlayView[S]) Content() View[S] { return o.content }

// Alignment is always centered.
func (o *OverlayView[S]) Alignment() Alignment { return AlignCenter }

func (o *OverlayView[S]) IntrinsicSize() Size { return o.viewport }

func (o *OverlayView[S]) DrawWidth() uint32 { return o.viewport.Width }

func (o *OverlayView[S]) DrawHeight() uint32 { return o.viewport.Height }

func (o *OverlayView[S]) Bounds() Rect {
	return Rect{Width: o.viewport.Width, Height: o.viewport.Height}
}

// Place covers the viewport with the backdrop and places the content at
// the window origin; Align centers it.
func (o *OverlayView[S]) Place(_ Point, env LayoutEnv) {
	o.viewport = env.Viewport
	o.backdrop.cover(env.Viewport)
	o.content.Place(Point{}, env)
}

func (o *OverlayView[S]) Align() {
	o.content.Align()
	b := o.content.Bounds()
	dx := centerOffset(o.viewport.Width, b.Width) - b.X
	dy := centerOffset(o.viewport.Height, b.Height) - b.Y
	o.content.Translate(dx, dy)
}

// Translate is a no-op: the overlay is anchored to the window.
func (o *OverlayView[S]) Translate(dx, dy int) {}

func (o *OverlayView[S]) Render(Canvas) {}
