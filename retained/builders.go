package retained

// Builder helpers for stack views. Children are any mix of widgets, views
// and decorations; the type parameter is the application state:
//
//	VStack[App]("p-4",
//		Text[App]("Settings", "text-xl"),
//		Divider[App](""),
//		HStack[App]("", ok, cancel),
//	)

// StackView lays its children out along one axis in declaration order.
type StackView[S any] struct {
	viewBase[S]
	axis Axis
}

// VStack creates a vertical stack container.
// Children are laid out top-to-bottom.
func VStack[S any](classes string, children ...Component[S]) *StackView[S] {
	return &StackView[S]{viewBase: newViewBase(KindVStack, classes, children), axis: AxisVertical}
}

// HStack creates a horizontal stack container.
// Children are laid out left-to-right.
func HStack[S any](classes string, children ...Component[S]) *StackView[S] {
	return &StackView[S]{viewBase: newViewBase(KindHStack, classes, children), axis: AxisHorizontal}
}

func (v *StackView[S]) Node() Node[S] { return ViewNode[S](v) }

// Axis returns the stacking direction.
func (v *StackView[S]) Axis() Axis { return v.axis }

// WithAlignment sets the cross-axis alignment of the children.
func (v *StackView[S]) WithAlignment(a Alignment) *StackView[S] {
	v.alignment = a
	return v
}

// WithSpacing sets the gap between consecutive children.
func (v *StackView[S]) WithSpacing(spacing uint32) *StackView[S] {
	v.spacing = spacing
	return v
}

// WithPadding replaces the padding taken from the theme or classes.
func (v *StackView[S]) WithPadding(p Insets) *StackView[S] {
	v.padding = p
	return v
}

// WithSize fixes the size the stack occupies in its parent.
func (v *StackView[S]) WithSize(width, height uint32) *StackView[S] {
	v.assigned = Size{Width: width, Height: height}
	v.fixedW, v.fixedH = true, true
	return v
}

// Append adds children after the existing ones.
func (v *StackView[S]) Append(children ...Component[S]) *StackView[S] {
	v.nodes = append(v.nodes, toNodes(string(v.kind), children)...)
	return v
}

// split returns a size's extent along the stacking axis and across it.
func (v *StackView[S]) split(s Size) (main, cross uint32) {
	if v.axis == AxisVertical {
		return s.Height, s.Width
	}
	return s.Width, s.Height
}

// IntrinsicSize sums the children along the stacking axis, with spacing
// between them, and takes the largest across it. Floating children do not
// count.
func (v *StackView[S]) IntrinsicSize() Size {
	var main, cross uint32
	count := 0
	for _, n := range v.nodes {
		if n.floating() {
			continue
		}
		m, c := v.split(n.Size())
		main += m
		cross = max(cross, c)
		count++
	}
	if count > 1 {
		main += uint32(count-1) * v.spacing
	}
	if v.axis == AxisVertical {
		return Size{Width: cross + v.padding.Horizontal(), Height: main + v.padding.Vertical()}
	}
	return Size{Width: main + v.padding.Horizontal(), Height: cross + v.padding.Vertical()}
}

func (v *StackView[S]) DrawWidth() uint32 {
	if v.fixedW {
		return v.assigned.Width
	}
	return v.IntrinsicSize().Width
}

func (v *StackView[S]) DrawHeight() uint32 {
	if v.fixedH {
		return v.assigned.Height
	}
	return v.IntrinsicSize().Height
}

func (v *StackView[S]) Bounds() Rect {
	return Rect{X: v.origin.X, Y: v.origin.Y, Width: v.DrawWidth(), Height: v.DrawHeight()}
}

// Place stacks the children from the padded origin, each child advancing
// the cursor by its size plus spacing. Cross-axis positions are left at
// the padding edge for Align.
func (v *StackView[S]) Place(origin Point, env LayoutEnv) {
	v.origin = origin
	x, y := origin.X+int(v.padding.Left), origin.Y+int(v.padding.Top)
	for _, n := range v.nodes {
		if n.floating() {
			placeNode(n, Point{}, env)
			continue
		}
		placeNode(n, Point{X: x, Y: y}, env)
		m, _ := v.split(n.Size())
		if v.axis == AxisVertical {
			y += int(m + v.spacing)
		} else {
			x += int(m + v.spacing)
		}
	}
}

// Align aligns nested views first, then moves every child across the
// stacking axis to its aligned position within the intrinsic content
// extent. The stacking-axis position is never changed.
func (v *StackView[S]) Align() {
	_, extent := v.split(v.IntrinsicSize())
	if v.axis == AxisVertical {
		extent = subClamp(extent, v.padding.Horizontal())
	} else {
		extent = subClamp(extent, v.padding.Vertical())
	}

	for _, n := range v.nodes {
		if n.kind == NodeView {
			n.view.Align()
		}
		if n.floating() {
			continue
		}
		if s, ok := n.decoration.(stretcher); ok && n.kind == NodeDecoration {
			s.Stretch(v.axis, extent)
		}

		_, size := v.split(n.Size())
		f := n.Frame()
		if v.axis == AxisVertical {
			target := v.origin.X + int(v.padding.Left) + v.alignment.offset(extent, size)
			n.Translate(target-f.X, 0)
		} else {
			target := v.origin.Y + int(v.padding.Top) + v.alignment.offset(extent, size)
			n.Translate(0, target-f.Y)
		}
	}
}

// Translate moves every owned node, nested views recursively.
func (v *StackView[S]) Translate(dx, dy int) {
	v.origin.X += dx
	v.origin.Y += dy
	for _, n := range v.nodes {
		n.Translate(dx, dy)
	}
}

func (v *StackView[S]) Render(c Canvas) {
	v.paint(c, v.Bounds())
}
