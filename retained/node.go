package retained

import "strconv"

// NodeKind discriminates the variants of a Node.
type NodeKind uint8

const (
	NodeWidget NodeKind = iota + 1
	NodeView
	NodeDecoration
)

func (k NodeKind) String() string {
	switch k {
	case NodeWidget:
		return "widget"
	case NodeView:
		return "view"
	case NodeDecoration:
		return "decoration"
	}
	return "invalid"
}

// Node is one element of a view tree: a Widget, a nested View, or a
// Decoration. Exactly one of the payloads is set, matching Kind.
type Node[S any] struct {
	kind       NodeKind
	widget     Widget[S]
	view       View[S]
	decoration Decoration
}

// Component is anything that can be placed in a view: every widget, view
// and Node implements it.
type Component[S any] interface {
	Node() Node[S]
}

// WidgetNode wraps a widget.
func WidgetNode[S any](w Widget[S]) Node[S] {
	if w == nil {
		configPanic("WidgetNode", "nil widget")
	}
	return Node[S]{kind: NodeWidget, widget: w}
}

// ViewNode wraps a nested view.
func ViewNode[S any](v View[S]) Node[S] {
	if v == nil {
		configPanic("ViewNode", "nil view")
	}
	return Node[S]{kind: NodeView, view: v}
}

// DecorationNode wraps a decoration.
func DecorationNode[S any](d Decoration) Node[S] {
	if d == nil {
		configPanic("DecorationNode", "nil decoration")
	}
	return Node[S]{kind: NodeDecoration, decoration: d}
}

// Node returns n, so a bare Node can be passed where a Component is expected.
func (n Node[S]) Node() Node[S] { return n }

func (n Node[S]) Kind() NodeKind { return n.kind }

func (n Node[S]) Widget() Widget[S] { return n.widget }

func (n Node[S]) View() View[S] { return n.view }

func (n Node[S]) Decoration() Decoration { return n.decoration }

// Size returns the size the node occupies in its parent's layout.
func (n Node[S]) Size() Size {
	switch n.kind {
	case NodeWidget:
		return n.widget.Frame().Size()
	case NodeView:
		return Size{Width: n.view.DrawWidth(), Height: n.view.DrawHeight()}
	case NodeDecoration:
		return n.decoration.Frame().Size()
	}
	return Size{}
}

// Frame returns the node's current rectangle.
func (n Node[S]) Frame() Rect {
	switch n.kind {
	case NodeWidget:
		return n.widget.Frame()
	case NodeView:
		return n.view.Bounds()
	case NodeDecoration:
		return n.decoration.Frame()
	}
	return Rect{}
}

// Translate moves the node. A view moves its whole subtree.
func (n Node[S]) Translate(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	switch n.kind {
	case NodeWidget:
		n.widget.Translate(dx, dy)
	case NodeView:
		n.view.Translate(dx, dy)
	case NodeDecoration:
		n.decoration.Translate(dx, dy)
	}
}

// floating reports whether the node is excluded from its parent's stacking.
func (n Node[S]) floating() bool {
	if n.kind != NodeView {
		return false
	}
	f, ok := n.view.(interface{ Floating() bool })
	return ok && f.Floating()
}

// toNodes converts components to nodes, rejecting nil entries.
func toNodes[S any](op string, children []Component[S]) []Node[S] {
	nodes := make([]Node[S], 0, len(children))
	for i, c := range children {
		if c == nil {
			configPanic(op, "nil child at index "+strconv.Itoa(i))
		}
		n := c.Node()
		if n.kind == 0 {
			configPanic(op, "empty node at index "+strconv.Itoa(i))
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// ============================================================================
// Traversal
// ============================================================================

// walkFrame is one level of the explicit traversal stack.
type walkFrame[S any] struct {
	nodes []Node[S]
	next  int
}

// walk visits every node below root depth-first, pre-order, in declaration
// order: a nested view is visited before its children, and its children
// before the view's later siblings. This is z-order.
func walk[S any](root View[S], visit func(Node[S])) {
	if root == nil {
		return
	}
	stack := []walkFrame[S]{{nodes: root.Nodes()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.nodes) {
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.nodes[top.next]
		top.next++
		visit(n)
		if n.kind == NodeView {
			stack = append(stack, walkFrame[S]{nodes: n.view.Nodes()})
		}
	}
}

// Widgets returns the widgets that are direct children of v.
func Widgets[S any](v View[S]) []Widget[S] {
	var out []Widget[S]
	for _, n := range v.Nodes() {
		if n.kind == NodeWidget {
			out = append(out, n.widget)
		}
	}
	return out
}

// ChildWidgets returns every widget in v's subtree, flattened in z-order.
func ChildWidgets[S any](v View[S]) []Widget[S] {
	return appendChildWidgets(nil, v)
}

func appendChildWidgets[S any](dst []Widget[S], v View[S]) []Widget[S] {
	walk(v, func(n Node[S]) {
		if n.kind == NodeWidget {
			dst = append(dst, n.widget)
		}
	})
	return dst
}

// ChildDecorations returns every decoration in v's subtree in z-order.
func ChildDecorations[S any](v View[S]) []Decoration {
	var out []Decoration
	walk(v, func(n Node[S]) {
		if n.kind == NodeDecoration {
			out = append(out, n.decoration)
		}
	})
	return out
}

// ChildViews returns every view nested below v in z-order, excluding v.
func ChildViews[S any](v View[S]) []View[S] {
	var out []View[S]
	walk(v, func(n Node[S]) {
		if n.kind == NodeView {
			out = append(out, n.view)
		}
	})
	return out
}
