package retained

import "github.com/agiangrant/stackui/tw"

// Control widgets: CheckBox and ScrollBar.

// ============================================================================
// CheckBox
// ============================================================================

// CheckBoxWidget is a square glyph followed by a label. A completed click
// or Space while focused flips it.
type CheckBoxWidget[S any] struct {
	widgetBase
	checked bool
	onCheck func(*S, bool)
}

// CheckBox creates a checkbox. Its glyph side matches the label height.
func CheckBox[S any](label string, checked bool, classes string) *CheckBoxWidget[S] {
	cb := &CheckBoxWidget[S]{widgetBase: newWidgetBase(KindCheckBox, classes), checked: checked}
	cb.canFocus = true
	cb.setText(label)
	return cb
}

func (cb *CheckBoxWidget[S]) Node() Node[S] { return WidgetNode[S](cb) }

func (cb *CheckBoxWidget[S]) WithID(id WidgetID) *CheckBoxWidget[S] {
	cb.id = id
	return cb
}

// OnCheck sets the callback invoked with the new value after every toggle.
func (cb *CheckBoxWidget[S]) OnCheck(fn func(*S, bool)) *CheckBoxWidget[S] {
	cb.onCheck = fn
	return cb
}

// Checked returns whether the checkbox is checked.
func (cb *CheckBoxWidget[S]) Checked() bool { return cb.checked }

func (cb *CheckBoxWidget[S]) AssignTextDimensions(measured Size) {
	cb.requireText("AssignTextDimensions")
	cb.text.Measured = measured
	side := measured.Height
	content := Size{Width: side + measured.Width, Height: measured.Height}
	if measured.Width > 0 {
		content.Width += CurrentTheme().CheckGap
	}
	cb.sizeTo(content, cb.padding(Insets{}))
}

// glyph returns the checkbox square inside the frame.
func (cb *CheckBoxWidget[S]) glyph() Rect {
	inner := cb.frame.Inset(cb.padding(Insets{}))
	side := cb.text.Measured.Height
	return Rect{X: inner.X, Y: inner.Y + centerOffset(inner.Height, side), Width: side, Height: side}
}

func (cb *CheckBoxWidget[S]) Render(c Canvas, state WidgetState) {
	p := cb.resolve(state)
	if bg := tw.Color(p.BackgroundColor, 0); bg&0xff != 0 {
		c.FillRect(cb.frame, bg)
	}
	fg := tw.Color(p.TextColor, CurrentTheme().Foreground)
	mark := tw.Color(p.BorderColor, fg)

	g := cb.glyph()
	if g.Width < 4 {
		// Cell backends: the glyph is a single cell.
		if cb.checked {
			c.FillRect(g, mark)
		} else {
			strokeRect(c, g, 1, mark)
		}
	} else {
		strokeRect(c, g, tw.Dim(p.BorderWidth, 1), mark)
		if cb.checked {
			inset := g.Width / 4
			c.FillRect(g.Inset(UniformInsets(inset)), mark)
		}
	}

	if cb.text.Text == "" {
		return
	}
	m := cb.text.Measured
	label := Rect{
		X:      g.Right() + int(CurrentTheme().CheckGap),
		Y:      g.Y + centerOffset(g.Height, m.Height),
		Width:  m.Width,
		Height: m.Height,
	}
	c.DrawText(label, cb.text.Font, cb.text.Text, fg)
}

func (cb *CheckBoxWidget[S]) toggle(app *S) {
	cb.checked = !cb.checked
	if cb.onCheck != nil {
		cb.onCheck(app, cb.checked)
	}
}

func (cb *CheckBoxWidget[S]) Click(app *S) {
	cb.toggle(app)
}

func (cb *CheckBoxWidget[S]) Update(app *S, ev Event) {
	if ev.Kind == EventKeyDown && ev.Key == KeySpace {
		cb.toggle(app)
	}
}

// ============================================================================
// ScrollBar
// ============================================================================

// Orientation is the axis a scrollbar's thumb travels along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// ScrollBarWidget is a track with a draggable thumb selecting a value in
// [min, max].
type ScrollBarWidget[S any] struct {
	widgetBase
	orientation Orientation
	value       float64
	min, max    float64
	step        float64
	dragging    bool
	onChange    func(*S, float64)
}

// ScrollBar creates a horizontal scrollbar. value is clamped to [min, max].
func ScrollBar[S any](value, min, max float64, classes string) *ScrollBarWidget[S] {
	if max < min {
		min, max = max, min
	}
	s := &ScrollBarWidget[S]{min: min, max: max, value: clamp(value, min, max)}
	s.widgetBase = newWidgetBase(KindScrollBar, "")
	s.canFocus = true
	s.orientation = Horizontal
	t := CurrentTheme()
	s.frame.Width, s.frame.Height = t.ScrollBarLength, t.ScrollBarThickness
	s.setClasses(classes)
	return s
}

func (s *ScrollBarWidget[S]) Node() Node[S] { return WidgetNode[S](s) }

func (s *ScrollBarWidget[S]) WithID(id WidgetID) *ScrollBarWidget[S] {
	s.id = id
	return s
}

// Vertical turns the scrollbar on its side, swapping its length and thickness.
func (s *ScrollBarWidget[S]) Vertical() *ScrollBarWidget[S] {
	if s.orientation != Vertical {
		s.orientation = Vertical
		s.frame.Width, s.frame.Height = s.frame.Height, s.frame.Width
		s.fixedW, s.fixedH = s.fixedH, s.fixedW
	}
	return s
}

func (s *ScrollBarWidget[S]) WithSize(width, height uint32) *ScrollBarWidget[S] {
	s.setSize(width, height)
	return s
}

// WithStep snaps values to multiples of step above min. Zero is continuous.
func (s *ScrollBarWidget[S]) WithStep(step float64) *ScrollBarWidget[S] {
	s.step = step
	return s
}

// OnValueChanged sets the callback invoked whenever the value changes.
func (s *ScrollBarWidget[S]) OnValueChanged(fn func(*S, float64)) *ScrollBarWidget[S] {
	s.onChange = fn
	return s
}

func (s *ScrollBarWidget[S]) Value() float64 { return s.value }

func (s *ScrollBarWidget[S]) Dragging() bool { return s.dragging }

// Ratio returns the value's position within the range, in [0, 1].
func (s *ScrollBarWidget[S]) Ratio() float64 {
	if s.max == s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

// track returns the length of the travel axis and the thumb length.
func (s *ScrollBarWidget[S]) track() (length, thumb uint32) {
	length, thickness := s.frame.Width, s.frame.Height
	if s.orientation == Vertical {
		length, thickness = s.frame.Height, s.frame.Width
	}
	thumb = max(length/8, thickness)
	if thumb > length {
		thumb = length
	}
	return length, thumb
}

// thumbRect returns the thumb's rectangle for the current value.
func (s *ScrollBarWidget[S]) thumbRect() Rect {
	length, thumb := s.track()
	off := int(float64(length-thumb) * s.Ratio())
	if s.orientation == Vertical {
		return Rect{X: s.frame.X, Y: s.frame.Y + off, Width: s.frame.Width, Height: thumb}
	}
	return Rect{X: s.frame.X + off, Y: s.frame.Y, Width: thumb, Height: s.frame.Height}
}

// valueAt maps a pointer position to a value, centring the thumb on it.
func (s *ScrollBarWidget[S]) valueAt(p Point) float64 {
	length, thumb := s.track()
	travel := int(length - thumb)
	if travel <= 0 {
		return s.min
	}
	pos := p.X - s.frame.X
	if s.orientation == Vertical {
		pos = p.Y - s.frame.Y
	}
	ratio := float64(pos-int(thumb)/2) / float64(travel)
	return s.snap(s.min + clamp(ratio, 0, 1)*(s.max-s.min))
}

func (s *ScrollBarWidget[S]) snap(v float64) float64 {
	if s.step > 0 {
		v = s.min + float64(int((v-s.min)/s.step+0.5))*s.step
	}
	return clamp(v, s.min, s.max)
}

func (s *ScrollBarWidget[S]) setValue(app *S, v float64) {
	v = clamp(v, s.min, s.max)
	if v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(app, v)
	}
}

// Press starts a drag and jumps the thumb to the pointer.
func (s *ScrollBarWidget[S]) Press(app *S, at Point) {
	s.dragging = true
	s.setValue(app, s.valueAt(at))
}

func (s *ScrollBarWidget[S]) Click(*S) {}

func (s *ScrollBarWidget[S]) Update(app *S, ev Event) {
	switch ev.Kind {
	case EventPointerMove:
		if s.dragging {
			s.setValue(app, s.valueAt(ev.Point()))
		}
	case EventPointerUp:
		if s.dragging && ev.IsPrimary() {
			s.setValue(app, s.valueAt(ev.Point()))
			s.dragging = false
		}
	case EventKeyDown:
		step := s.step
		if step == 0 {
			step = (s.max - s.min) / 100
		}
		switch ev.Key {
		case KeyLeft, KeyUp:
			s.setValue(app, s.value-step)
		case KeyRight, KeyDown:
			s.setValue(app, s.value+step)
		case KeyHome:
			s.setValue(app, s.min)
		case KeyEnd:
			s.setValue(app, s.max)
		}
	}
}

// CarryFrom keeps an in-progress drag alive across a rebuild.
func (s *ScrollBarWidget[S]) CarryFrom(prev Widget[S]) {
	if p, ok := prev.(*ScrollBarWidget[S]); ok {
		s.dragging = p.dragging
	}
}

func (s *ScrollBarWidget[S]) Render(c Canvas, state WidgetState) {
	p := s.resolve(state)
	paintBox(c, s.frame, p)
	c.FillRect(s.thumbRect(), tw.Color(p.TextColor, CurrentTheme().Foreground))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
