package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// laidOut lays root out and returns its widgets in z-order.
func laidOut(t *testing.T, root View[testApp]) []Widget[testApp] {
	t.Helper()
	require.NoError(t, AssignIDs(root))
	Layout(root, newFakeCanvas(800, 600), viewport)
	return ChildWidgets(root)
}

func center(w interface{ Frame() Rect }) (int, int) {
	f := w.Frame()
	return f.X + int(f.Width)/2, f.Y + int(f.Height)/2
}

func click(r *Router[testApp], app *testApp, widgets []Widget[testApp], x, y int) {
	r.Dispatch(app, widgets, PointerMoveEvent(x, y))
	r.Dispatch(app, widgets, PointerDownEvent(MouseButtonLeft, x, y))
	r.Dispatch(app, widgets, PointerUpEvent(MouseButtonLeft, x, y))
}

func recordClick(id string) func(*testApp) {
	return func(a *testApp) { a.Clicks = append(a.Clicks, id) }
}

func TestRouterTopmostWins(t *testing.T) {
	// An overlay's content is later in z-order than the widget beneath it.
	under := fixedButton("under", 800, 600).OnClick(recordClick("under"))
	over := fixedButton("over", 100, 40).OnClick(recordClick("over"))
	root := VStack[testApp]("",
		under,
		Overlay[testApp](VStack[testApp]("", over), ""),
	).WithPadding(UniformInsets(0))
	widgets := laidOut(t, root)

	x, y := center(over)
	require.True(t, under.Frame().Contains(Point{x, y}), "widgets must overlap")

	r := NewRouter[testApp]()
	var app testApp
	r.Dispatch(&app, widgets, PointerMoveEvent(x, y))
	assert.Equal(t, WidgetID("over"), r.State().Hovering)

	r.Dispatch(&app, widgets, PointerDownEvent(MouseButtonLeft, x, y))
	assert.Equal(t, WidgetID("over"), r.State().Clicking)

	r.Dispatch(&app, widgets, PointerUpEvent(MouseButtonLeft, x, y))
	assert.Equal(t, []string{"over"}, app.Clicks)
}

func TestRouterClickRelease(t *testing.T) {
	x := fixedButton("x", 100, 40).OnClick(recordClick("x"))
	widgets := laidOut(t, VStack[testApp]("", x))
	cx, cy := center(x)

	t.Run("release on widget clicks once", func(t *testing.T) {
		r := NewRouter[testApp]()
		var app testApp
		click(r, &app, widgets, cx, cy)

		assert.Equal(t, []string{"x"}, app.Clicks)
		assert.Equal(t, WidgetID(""), r.State().Clicking)
		assert.Equal(t, WidgetID("x"), r.State().Hovering)
	})

	t.Run("release outside does nothing", func(t *testing.T) {
		r := NewRouter[testApp]()
		var app testApp
		r.Dispatch(&app, widgets, PointerMoveEvent(cx, cy))
		r.Dispatch(&app, widgets, PointerDownEvent(MouseButtonLeft, cx, cy))
		r.Dispatch(&app, widgets, PointerMoveEvent(700, 500))
		r.Dispatch(&app, widgets, PointerUpEvent(MouseButtonLeft, 700, 500))

		assert.Empty(t, app.Clicks)
		assert.Equal(t, WidgetID(""), r.State().Clicking)
		assert.Equal(t, WidgetID(""), r.State().Hovering)
	})

	t.Run("secondary button is ignored", func(t *testing.T) {
		r := NewRouter[testApp]()
		var app testApp
		r.Dispatch(&app, widgets, PointerMoveEvent(cx, cy))
		r.Dispatch(&app, widgets, PointerDownEvent(MouseButtonRight, cx, cy))
		r.Dispatch(&app, widgets, PointerUpEvent(MouseButtonRight, cx, cy))

		assert.Empty(t, app.Clicks)
		assert.Equal(t, WidgetID("x"), r.State().Hovering)
	})
}

func TestRouterPressedWidgetIsNotHovering(t *testing.T) {
	x := fixedButton("x", 100, 40)
	widgets := laidOut(t, VStack[testApp]("", x))
	cx, cy := center(x)

	r := NewRouter[testApp]()
	var app testApp
	r.Dispatch(&app, widgets, PointerMoveEvent(cx, cy))
	r.Dispatch(&app, widgets, PointerDownEvent(MouseButtonLeft, cx, cy))
	r.Dispatch(&app, widgets, PointerMoveEvent(cx+1, cy))

	s := r.State()
	assert.Equal(t, WidgetID("x"), s.Clicking)
	assert.Equal(t, WidgetID(""), s.Hovering)
	assert.Equal(t, StateActive, r.WidgetState("x"))
}

func TestRouterFocus(t *testing.T) {
	box := TextBox[testApp]("", "", "").WithID("box")
	plain := fixedButton("plain", 100, 40)
	root := VStack[testApp]("", box, plain)
	widgets := laidOut(t, root)

	r := NewRouter[testApp]()
	var app testApp

	bx, by := center(box)
	click(r, &app, widgets, bx, by)
	assert.Equal(t, WidgetID("box"), r.State().Focused)
	assert.Equal(t, StateFocused, r.WidgetState("box"))

	// Empty space clears focus.
	click(r, &app, widgets, 790, 590)
	assert.Equal(t, WidgetID(""), r.State().Focused)

	// So does a non-focusable widget.
	click(r, &app, widgets, bx, by)
	require.Equal(t, WidgetID("box"), r.State().Focused)
	px, py := center(plain)
	click(r, &app, widgets, px, py)
	assert.Equal(t, WidgetID(""), r.State().Focused)
}

func TestRouterRoutesToFocusedWidget(t *testing.T) {
	box := TextBox[testApp]("", "", "").WithID("box").
		OnValueChanged(func(a *testApp, s string) { a.Name = s }).
		OnSubmit(func(a *testApp, s string) { a.Clicks = append(a.Clicks, "submit:"+s) })
	widgets := laidOut(t, VStack[testApp]("", box))

	r := NewRouter[testApp]()
	var app testApp
	bx, by := center(box)
	click(r, &app, widgets, bx, by)

	r.Dispatch(&app, widgets, TextInputEvent("hi"))
	r.Dispatch(&app, widgets, KeyDownEvent(KeyBackspace, 0))
	r.Dispatch(&app, widgets, TextInputEvent("!"))
	r.Dispatch(&app, widgets, KeyDownEvent(KeyEnter, 0))

	assert.Equal(t, "h!", app.Name)
	assert.Equal(t, []string{"submit:h!"}, app.Clicks)
}

func TestRouterCheckBoxToggles(t *testing.T) {
	var calls []bool
	cb := CheckBox[testApp]("Accept", false, "").WithID("cb").
		OnCheck(func(a *testApp, v bool) {
			a.Checked = v
			calls = append(calls, v)
		})
	widgets := laidOut(t, VStack[testApp]("", cb))
	x, y := center(cb)

	r := NewRouter[testApp]()
	var app testApp
	for i := 0; i < 3; i++ {
		click(r, &app, widgets, x, y)
	}

	assert.Equal(t, []bool{true, false, true}, calls)
	assert.True(t, app.Checked)
	assert.True(t, cb.Checked())

	// Focused, Space toggles too.
	r.Dispatch(&app, widgets, KeyDownEvent(KeySpace, 0))
	assert.Equal(t, []bool{true, false, true, false}, calls)
}

func TestRouterScenarioThreeButtons(t *testing.T) {
	var buttons []*ButtonWidget[testApp]
	var children []Component[testApp]
	for _, id := range []string{"b1", "b2", "b3"} {
		b := fixedButton(id, 100, 40).OnClick(recordClick(id))
		buttons = append(buttons, b)
		children = append(children, b)
	}
	root := VStack[testApp]("", children...).WithPadding(UniformInsets(10)).WithSpacing(10)
	widgets := laidOut(t, root)
	require.Equal(t, uint32(160), root.DrawHeight())

	r := NewRouter[testApp]()
	var app testApp
	x, y := center(buttons[1])
	click(r, &app, widgets, x, y)

	assert.Equal(t, []string{"b2"}, app.Clicks)
	assert.Equal(t, WidgetID("b2"), r.State().Hovering)
	assert.Equal(t, WidgetID(""), r.State().Clicking)
}

func TestRouterScrollBarDrag(t *testing.T) {
	var values []float64
	sb := ScrollBar[testApp](0, 0, 100, "").WithID("sb").WithSize(108, 12).
		OnValueChanged(func(a *testApp, v float64) {
			a.Volume = v
			values = append(values, v)
		})
	root := VStack[testApp]("", sb).WithPadding(UniformInsets(0))
	widgets := laidOut(t, root)

	// Thumb is 13 wide (108/8), travel 95.
	r := NewRouter[testApp]()
	var app testApp
	r.Dispatch(&app, widgets, PointerMoveEvent(6, 6))
	r.Dispatch(&app, widgets, PointerDownEvent(MouseButtonLeft, 6, 6))
	assert.True(t, sb.Dragging())
	assert.Empty(t, values, "pressing at the current value changes nothing")

	r.Dispatch(&app, widgets, PointerMoveEvent(6+95, 6))
	assert.Equal(t, float64(100), app.Volume)

	// Dragging past the end clamps, and the release outside still ends the drag.
	r.Dispatch(&app, widgets, PointerMoveEvent(300, 300))
	r.Dispatch(&app, widgets, PointerUpEvent(MouseButtonLeft, 300, 300))
	assert.False(t, sb.Dragging())
	assert.Equal(t, []float64{100}, values)

	// Focused: arrows step by 1% of the range.
	r.Dispatch(&app, widgets, KeyDownEvent(KeyLeft, 0))
	assert.Equal(t, float64(99), app.Volume)
}

func TestRouterQuit(t *testing.T) {
	r := NewRouter[testApp]()
	var app testApp
	assert.True(t, r.Dispatch(&app, nil, QuitEvent()))
	assert.True(t, r.Dispatch(&app, nil, KeyDownEvent(KeyEscape, 0)))
	assert.False(t, r.Dispatch(&app, nil, KeyDownEvent(KeyA, 0)))
}

func TestRouterTabCyclesFocus(t *testing.T) {
	a := TextBox[testApp]("", "", "").WithID("a")
	b := CheckBox[testApp]("b", false, "").WithID("b")
	plain := fixedButton("plain", 10, 10)
	widgets := laidOut(t, VStack[testApp]("", a, plain, b))

	r := NewRouter[testApp]()
	var app testApp
	tab := KeyDownEvent(KeyTab, 0)
	r.Dispatch(&app, widgets, tab)
	assert.Equal(t, WidgetID("a"), r.State().Focused)
	r.Dispatch(&app, widgets, tab)
	assert.Equal(t, WidgetID("b"), r.State().Focused)
	r.Dispatch(&app, widgets, tab)
	assert.Equal(t, WidgetID("a"), r.State().Focused)
	r.Dispatch(&app, widgets, KeyDownEvent(KeyTab, ModShift))
	assert.Equal(t, WidgetID("b"), r.State().Focused)
}

func TestWidgetStatePrecedence(t *testing.T) {
	r := NewRouter[testApp]()
	r.state = InteractionState{Hovering: "h", Clicking: "c", Focused: "f"}

	assert.Equal(t, StateFocused, r.WidgetState("f"))
	assert.Equal(t, StateActive, r.WidgetState("c"))
	assert.Equal(t, StateHovering, r.WidgetState("h"))
	assert.Equal(t, StateBase, r.WidgetState("other"))
	assert.Equal(t, StateBase, r.WidgetState(""))

	r.state = InteractionState{Clicking: "x", Focused: "x"}
	assert.Equal(t, StateFocused, r.WidgetState("x"))
}
