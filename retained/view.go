package retained

import "github.com/agiangrant/stackui/tw"

// Alignment positions children along a stack's cross axis. In an HStack
// AlignLeft means top and AlignRight means bottom.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	}
	return "center"
}

// offset returns where an item of size sits within extent.
func (a Alignment) offset(extent, size uint32) int {
	switch a {
	case AlignLeft:
		return 0
	case AlignRight:
		return int(extent) - int(size)
	}
	return centerOffset(extent, size)
}

// LayoutEnv carries what placement needs beyond the tree itself.
type LayoutEnv struct {
	// Viewport is the window size Overlays cover.
	Viewport Size
}

// View is a container laying out an ordered sequence of nodes. Order is
// both layout order and z-order.
type View[S any] interface {
	Component[S]

	Kind() WidgetKind
	Nodes() []Node[S]
	Padding() Insets
	Alignment() Alignment
	// AssignedSize returns the fixed size and whether one was set per axis.
	AssignedSize() (size Size, width, height bool)

	// IntrinsicSize is the children's bounding size plus padding.
	IntrinsicSize() Size
	// DrawWidth and DrawHeight are the size the parent lays out: the
	// assigned size where set, else the intrinsic size.
	DrawWidth() uint32
	DrawHeight() uint32
	// Bounds is the view's origin with its draw size.
	Bounds() Rect

	// Place positions the view at origin and stacks its children,
	// placing nested views recursively.
	Place(origin Point, env LayoutEnv)
	// Align moves children to their cross-axis position. It is idempotent.
	Align()
	// Translate moves the view and its whole subtree.
	Translate(dx, dy int)

	// Render paints the view's own background, not its children.
	Render(c Canvas)
}

// viewBase holds the fields shared by every view variant.
type viewBase[S any] struct {
	kind      WidgetKind
	nodes     []Node[S]
	origin    Point
	padding   Insets
	alignment Alignment
	spacing   uint32
	assigned  Size
	fixedW    bool
	fixedH    bool
	styles    *tw.ComputedStyles
}

func newViewBase[S any](kind WidgetKind, classes string, children []Component[S]) viewBase[S] {
	t := CurrentTheme()
	v := viewBase[S]{
		kind:    kind,
		nodes:   toNodes(string(kind), children),
		spacing: t.Spacing,
		styles:  resolveStyles(themeClasses(string(kind), classes)),
	}
	v.padding = paddingOf(v.styles.Base, UniformInsets(t.Padding))
	if w := v.styles.Base.Width; w != nil {
		v.assigned.Width, v.fixedW = *w, true
	}
	if h := v.styles.Base.Height; h != nil {
		v.assigned.Height, v.fixedH = *h, true
	}
	return v
}

func (v *viewBase[S]) Kind() WidgetKind { return v.kind }

func (v *viewBase[S]) Nodes() []Node[S] { return v.nodes }

func (v *viewBase[S]) Padding() Insets { return v.padding }

func (v *viewBase[S]) Alignment() Alignment { return v.alignment }

func (v *viewBase[S]) Spacing() uint32 { return v.spacing }

func (v *viewBase[S]) AssignedSize() (Size, bool, bool) {
	return v.assigned, v.fixedW, v.fixedH
}

// paint fills the view's background and border from its classes.
func (v *viewBase[S]) paint(c Canvas, bounds Rect) {
	paintBox(c, bounds, v.styles.Base)
}

// placeNode positions a single child at p.
func placeNode[S any](n Node[S], p Point, env LayoutEnv) {
	switch n.kind {
	case NodeWidget:
		n.widget.SetOrigin(p)
	case NodeView:
		n.view.Place(p, env)
	case NodeDecoration:
		n.decoration.SetOrigin(p)
	}
}
