package retained

// Point is a position in window coordinates.
type Point struct {
	X, Y int
}

// Size is a width/height pair. Sizes are never negative.
type Size struct {
	Width, Height uint32
}

// Rect is an axis-aligned rectangle in window coordinates.
// The origin is the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height uint32
}

// NewRect builds a rectangle from an origin and a size.
func NewRect(x, y int, width, height uint32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + int(r.Width) }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + int(r.Height) }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Inset shrinks r by the given insets, clamping at zero size.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{X: r.X + int(in.Left), Y: r.Y + int(in.Top)}
	out.Width = subClamp(r.Width, in.Left+in.Right)
	out.Height = subClamp(r.Height, in.Top+in.Bottom)
	return out
}

// Insets is a four-sided inset used for padding.
type Insets struct {
	Top, Right, Bottom, Left uint32
}

// UniformInsets returns insets with the same value on every side.
func UniformInsets(v uint32) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// SymmetricInsets returns insets with separate horizontal and vertical values.
func SymmetricInsets(horizontal, vertical uint32) Insets {
	return Insets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() uint32 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() uint32 { return in.Top + in.Bottom }

func subClamp(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

// centerOffset returns the offset that centers inner within outer.
// Negative when inner is larger.
func centerOffset(outer, inner uint32) int {
	return (int(outer) - int(inner)) / 2
}
