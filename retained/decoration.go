package retained

import "github.com/agiangrant/stackui/tw"

// Decoration is a non-interactive drawable. It takes part in layout but
// never receives events.
type Decoration interface {
	Kind() WidgetKind
	Frame() Rect
	SetOrigin(p Point)
	Translate(dx, dy int)
	Render(c Canvas)
}

// Axis is a layout direction.
type Axis uint8

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// stretcher is implemented by decorations that fill their parent's cross
// axis. Stretch receives the parent's stacking axis and the content extent
// across it.
type stretcher interface {
	Stretch(axis Axis, extent uint32)
}

// DividerDecoration is a thin rule separating stacked children.
type DividerDecoration struct {
	frame     Rect
	thickness uint32
	styles    *tw.ComputedStyles
}

// Divider creates a rule of thickness 1 (or h-N/w-N from classes).
// In a VStack it spans the stack's width, in an HStack its height.
func Divider[S any](classes string) Node[S] {
	return DecorationNode[S](NewDivider(classes))
}

// NewDivider creates a divider decoration.
func NewDivider(classes string) *DividerDecoration {
	d := &DividerDecoration{thickness: 1}
	d.styles = resolveStyles(themeClasses(string(KindDivider), classes))
	if h := d.styles.Base.Height; h != nil {
		d.thickness = *h
	}
	d.frame.Width, d.frame.Height = d.thickness, d.thickness
	return d
}

func (d *DividerDecoration) Kind() WidgetKind { return KindDivider }

func (d *DividerDecoration) Frame() Rect { return d.frame }

func (d *DividerDecoration) SetOrigin(p Point) { d.frame.X, d.frame.Y = p.X, p.Y }

func (d *DividerDecoration) Translate(dx, dy int) { d.frame = d.frame.Translate(dx, dy) }

func (d *DividerDecoration) Stretch(axis Axis, extent uint32) {
	if axis == AxisVertical {
		d.frame.Width, d.frame.Height = extent, d.thickness
	} else {
		d.frame.Width, d.frame.Height = d.thickness, extent
	}
}

func (d *DividerDecoration) Render(c Canvas) {
	c.FillRect(d.frame, tw.Color(d.styles.Base.BackgroundColor, CurrentTheme().Foreground))
}

// BackdropDecoration covers the whole window with a translucent fill.
// Overlays place one beneath their content.
type BackdropDecoration struct {
	frame  Rect
	styles *tw.ComputedStyles
}

// NewBackdrop creates a backdrop. Its size is set when laid out.
func NewBackdrop(classes string) *BackdropDecoration {
	return &BackdropDecoration{styles: resolveStyles(themeClasses(string(KindBackdrop), classes))}
}

func (b *BackdropDecoration) Kind() WidgetKind { return KindBackdrop }

func (b *BackdropDecoration) Frame() Rect { return b.frame }

func (b *BackdropDecoration) SetOrigin(p Point) { b.frame.X, b.frame.Y = p.X, p.Y }

// Translate is a no-op: the backdrop is anchored to the window.
func (b *BackdropDecoration) Translate(dx, dy int) {}

func (b *BackdropDecoration) cover(viewport Size) {
	b.frame = Rect{Width: viewport.Width, Height: viewport.Height}
}

func (b *BackdropDecoration) Render(c Canvas) {
	if bg := tw.Color(b.styles.Base.BackgroundColor, 0x00000080); bg&0xff != 0 {
		c.FillRect(b.frame, bg)
	}
}
