package retained

// Layout runs both layout passes over a freshly built tree and returns the
// root's size.
//
// The measurement pass asks m for the size of every text component, deepest
// views included, and lets each widget size itself around its text. The
// placement pass then stacks every view from the window origin and aligns
// children across each stack's axis. Running Layout again on the same tree
// yields the same frames.
func Layout[S any](root View[S], m Measurer, env LayoutEnv) Size {
	MeasureText(root, m)
	root.Place(Point{}, env)
	root.Align()
	return Size{Width: root.DrawWidth(), Height: root.DrawHeight()}
}

// MeasureText is the measurement pass: every widget with a text component,
// in z-order, receives the measured size of its text.
func MeasureText[S any](root View[S], m Measurer) {
	for _, w := range ChildWidgets(root) {
		tc := w.TextComponent()
		if tc == nil {
			continue
		}
		w.AssignTextDimensions(m.Measure(tc.Font, tc.Text))
	}
}

// HitTest returns the topmost widget of widgets containing p, or nil.
// widgets must be in z-order.
func HitTest[S any](widgets []Widget[S], p Point) Widget[S] {
	var hit Widget[S]
	for _, w := range widgets {
		if w.Frame().Contains(p) {
			hit = w
		}
	}
	return hit
}
