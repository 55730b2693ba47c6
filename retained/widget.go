// Package retained is a declarative widget engine. Application code builds
// a tree of views and widgets from its state; the engine lays the tree out,
// routes input to the widget under the pointer or holding focus, and paints
// each frame through a backend Canvas.
//
// The tree is rebuilt wholesale whenever the application state changes.
// Everything runs on the goroutine that drives the Loop.
package retained

import "github.com/agiangrant/stackui/tw"

// WidgetID identifies a widget within one tree. IDs left empty at
// construction are assigned by AssignIDs from traversal order.
type WidgetID string

// WidgetKind identifies the type of a widget, view, or decoration.
type WidgetKind string

const (
	KindVStack    WidgetKind = "vstack"
	KindHStack    WidgetKind = "hstack"
	KindOverlay   WidgetKind = "overlay"
	KindText      WidgetKind = "text"
	KindButton    WidgetKind = "button"
	KindCheckBox  WidgetKind = "checkbox"
	KindTextBox   WidgetKind = "textbox"
	KindScrollBar WidgetKind = "scrollbar"
	KindImage     WidgetKind = "image"
	KindDivider   WidgetKind = "divider"
	KindBackdrop  WidgetKind = "backdrop"
)

// WidgetState is the visual state a widget is rendered in for one frame.
type WidgetState uint8

const (
	StateBase WidgetState = iota
	StateHovering
	StateActive
	StateFocused
)

func (s WidgetState) String() string {
	switch s {
	case StateHovering:
		return "hovering"
	case StateActive:
		return "active"
	case StateFocused:
		return "focused"
	}
	return "base"
}

// TextComponent is the text a widget sizes itself around.
// Measured is filled in by the layout engine.
type TextComponent struct {
	Text     string
	Font     Font
	Measured Size
}

// Widget is a leaf of the tree. Widgets are created by builder functions,
// laid out once per tree, and receive input through Click and Update.
type Widget[S any] interface {
	Component[S]

	ID() WidgetID
	SetID(id WidgetID)
	Kind() WidgetKind

	Frame() Rect
	SetOrigin(p Point)
	Translate(dx, dy int)

	// TextComponent returns nil for widgets without text.
	TextComponent() *TextComponent
	// AssignTextDimensions sizes the widget around its measured text.
	// It panics with a *ConfigError on a widget without text.
	AssignTextDimensions(measured Size)

	CanFocus() bool

	Render(c Canvas, state WidgetState)
	// Click runs when a press and release both land on the widget.
	Click(app *S)
	// Update receives raw events while the widget is focused or pressed.
	Update(app *S, ev Event)
}

// presser is implemented by widgets that react to the press itself, not
// only to the completed click.
type presser[S any] interface {
	Press(app *S, at Point)
}

// carrier is implemented by widgets with transient input state (a cursor,
// a drag) that must survive a tree rebuild. CarryFrom receives the widget
// with the same id and kind from the previous tree.
type carrier[S any] interface {
	CarryFrom(prev Widget[S])
}

// widgetBase holds the fields shared by every widget variant.
type widgetBase struct {
	id       WidgetID
	kind     WidgetKind
	frame    Rect
	fixedW   bool
	fixedH   bool
	text     *TextComponent
	canFocus bool
	classes  string
	styles   *tw.ComputedStyles
}

func newWidgetBase(kind WidgetKind, classes string) widgetBase {
	b := widgetBase{kind: kind}
	b.setClasses(classes)
	return b
}

func (b *widgetBase) ID() WidgetID { return b.id }

func (b *widgetBase) SetID(id WidgetID) { b.id = id }

func (b *widgetBase) Kind() WidgetKind { return b.kind }

func (b *widgetBase) Frame() Rect { return b.frame }

func (b *widgetBase) CanFocus() bool { return b.canFocus }

func (b *widgetBase) Classes() string { return b.classes }

func (b *widgetBase) SetOrigin(p Point) { b.frame.X, b.frame.Y = p.X, p.Y }

func (b *widgetBase) Translate(dx, dy int) { b.frame = b.frame.Translate(dx, dy) }

func (b *widgetBase) TextComponent() *TextComponent { return b.text }

// setClasses applies the theme's classes for the kind, then classes.
// Width and height utilities fix the frame size.
func (b *widgetBase) setClasses(classes string) {
	b.classes = classes
	b.styles = resolveStyles(themeClasses(string(b.kind), classes))
	if w := b.styles.Base.Width; w != nil {
		b.frame.Width, b.fixedW = *w, true
	}
	if h := b.styles.Base.Height; h != nil {
		b.frame.Height, b.fixedH = *h, true
	}
}

func (b *widgetBase) setSize(width, height uint32) {
	b.frame.Width, b.frame.Height = width, height
	b.fixedW, b.fixedH = true, true
}

func (b *widgetBase) setText(text string) {
	if b.text == nil {
		b.text = &TextComponent{Font: CurrentTheme().Font}
	}
	b.text.Text = text
	b.text.Font = fontOf(b.styles.Base, b.text.Font)
}

func (b *widgetBase) resolve(state WidgetState) tw.StyleProperties {
	return b.styles.Resolve(toTWState(state))
}

func (b *widgetBase) padding(def Insets) Insets {
	return paddingOf(b.styles.Base, def)
}

// AssignTextDimensions sizes the frame to the measured text plus padding,
// leaving fixed dimensions alone.
func (b *widgetBase) AssignTextDimensions(measured Size) {
	b.requireText("AssignTextDimensions")
	b.text.Measured = measured
	b.sizeTo(measured, b.padding(Insets{}))
}

func (b *widgetBase) requireText(op string) {
	if b.text == nil {
		configPanic(op, string(b.kind)+" has no text component")
	}
}

// sizeTo sets every non-fixed dimension to content plus pad.
func (b *widgetBase) sizeTo(content Size, pad Insets) {
	if !b.fixedW {
		b.frame.Width = content.Width + pad.Horizontal()
	}
	if !b.fixedH {
		b.frame.Height = content.Height + pad.Vertical()
	}
}

// textOrigin returns where measured text starts when centered in r.
func (b *widgetBase) textOrigin(r Rect) Point {
	m := b.text.Measured
	return Point{X: r.X + centerOffset(r.Width, m.Width), Y: r.Y + centerOffset(r.Height, m.Height)}
}

// drawLabel draws the text component centered in r.
func (b *widgetBase) drawLabel(c Canvas, r Rect, p tw.StyleProperties) {
	if b.text == nil || b.text.Text == "" {
		return
	}
	o := b.textOrigin(r)
	m := b.text.Measured
	c.DrawText(Rect{X: o.X, Y: o.Y, Width: m.Width, Height: m.Height}, b.text.Font, b.text.Text,
		tw.Color(p.TextColor, CurrentTheme().Foreground))
}
