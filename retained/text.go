package retained

// TextWidget displays a string. It is display-only unless given OnClick.
type TextWidget[S any] struct {
	widgetBase
	onClick func(*S)
}

// Text creates a text widget.
func Text[S any](text string, classes string) *TextWidget[S] {
	t := &TextWidget[S]{widgetBase: newWidgetBase(KindText, classes)}
	t.setText(text)
	return t
}

func (t *TextWidget[S]) Node() Node[S] { return WidgetNode[S](t) }

func (t *TextWidget[S]) WithID(id WidgetID) *TextWidget[S] {
	t.id = id
	return t
}

func (t *TextWidget[S]) WithSize(width, height uint32) *TextWidget[S] {
	t.setSize(width, height)
	return t
}

func (t *TextWidget[S]) OnClick(fn func(*S)) *TextWidget[S] {
	t.onClick = fn
	return t
}

// Value returns the displayed string.
func (t *TextWidget[S]) Value() string { return t.text.Text }

func (t *TextWidget[S]) Render(c Canvas, state WidgetState) {
	p := t.resolve(state)
	paintBox(c, t.frame, p)
	t.drawLabel(c, t.frame.Inset(t.padding(Insets{})), p)
}

func (t *TextWidget[S]) Click(app *S) {
	if t.onClick != nil {
		t.onClick(app)
	}
}

func (t *TextWidget[S]) Update(*S, Event) {}
