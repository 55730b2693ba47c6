package retained

// ButtonWidget is a clickable label.
type ButtonWidget[S any] struct {
	widgetBase
	onClick func(*S)
}

// Button creates a button showing label. The theme's button classes apply
// first, then classes.
func Button[S any](label string, classes string) *ButtonWidget[S] {
	b := &ButtonWidget[S]{widgetBase: newWidgetBase(KindButton, classes)}
	b.setText(label)
	return b
}

func (b *ButtonWidget[S]) Node() Node[S] { return WidgetNode[S](b) }

// WithID sets a stable id.
func (b *ButtonWidget[S]) WithID(id WidgetID) *ButtonWidget[S] {
	b.id = id
	return b
}

// WithSize fixes the button's size instead of sizing it around its label.
func (b *ButtonWidget[S]) WithSize(width, height uint32) *ButtonWidget[S] {
	b.setSize(width, height)
	return b
}

// OnClick sets the click callback.
func (b *ButtonWidget[S]) OnClick(fn func(*S)) *ButtonWidget[S] {
	b.onClick = fn
	return b
}

// Focusable lets the button take focus, after which Enter or Space clicks it.
func (b *ButtonWidget[S]) Focusable() *ButtonWidget[S] {
	b.canFocus = true
	return b
}

// Label returns the button text.
func (b *ButtonWidget[S]) Label() string { return b.text.Text }

func (b *ButtonWidget[S]) AssignTextDimensions(measured Size) {
	b.requireText("AssignTextDimensions")
	b.text.Measured = measured
	u := CurrentTheme().SpacingUnit
	b.sizeTo(measured, b.padding(SymmetricInsets(4*u, 2*u)))
}

func (b *ButtonWidget[S]) Render(c Canvas, state WidgetState) {
	p := b.resolve(state)
	paintBox(c, b.frame, p)
	b.drawLabel(c, b.frame, p)
}

func (b *ButtonWidget[S]) Click(app *S) {
	if b.onClick != nil {
		b.onClick(app)
	}
}

func (b *ButtonWidget[S]) Update(app *S, ev Event) {
	if ev.Kind == EventKeyDown && (ev.Key == KeyEnter || ev.Key == KeySpace) {
		b.Click(app)
	}
}
