package retained

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterApp(builds *int) func(testApp) View[testApp] {
	return func(s testApp) View[testApp] {
		*builds++
		return VStack[testApp]("",
			Button[testApp]("inc", "").WithID("inc").WithSize(100, 40).OnClick(recordClick("inc")),
			Text[testApp]("clicks", ""),
		)
	}
}

func TestLoopRebuildsOnlyOnStateChange(t *testing.T) {
	var builds int
	events := NewEventQueue()
	canvas := newFakeCanvas(800, 600)
	loop := NewLoop(testApp{}, counterApp(&builds), canvas, events, DefaultLoopConfig[testApp]())

	for i := 0; i < 3; i++ {
		quit, err := loop.Step()
		require.NoError(t, err)
		require.False(t, quit)
	}
	assert.Equal(t, 1, builds)
	assert.Equal(t, uint64(3), loop.Frames())

	f := loop.Widgets()[0].Frame()
	x, y := f.X+1, f.Y+1
	events.Push(PointerMoveEvent(x, y), PointerDownEvent(MouseButtonLeft, x, y), PointerUpEvent(MouseButtonLeft, x, y))
	_, err := loop.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, builds, "events are routed against the tree of the frame")
	assert.Equal(t, []string{"inc"}, loop.State().Clicks)

	_, err = loop.Step()
	require.NoError(t, err)
	assert.Equal(t, 2, builds)
	assert.Equal(t, uint64(2), loop.Rebuilds())
	assert.Equal(t, WidgetID("inc"), loop.Interaction().Hovering, "interaction survives a rebuild")
}

func TestLoopResizesToRoot(t *testing.T) {
	canvas := newFakeCanvas(800, 600)
	build := func(testApp) View[testApp] {
		return VStack[testApp]("", fixedButton("b", 100, 40)).WithPadding(UniformInsets(10))
	}
	loop := NewLoop(testApp{}, build, canvas, NewEventQueue(), DefaultLoopConfig[testApp]())

	_, err := loop.Step()
	require.NoError(t, err)
	assert.Equal(t, []Size{{Width: 120, Height: 60}}, canvas.resizes)

	_, err = loop.Step()
	require.NoError(t, err)
	assert.Len(t, canvas.resizes, 1)
}

func TestLoopResizeFailure(t *testing.T) {
	canvas := newFakeCanvas(800, 600)
	canvas.resizeErr = errors.New("no surface")
	build := func(testApp) View[testApp] { return VStack[testApp]("", fixedButton("b", 10, 10)) }
	loop := NewLoop(testApp{}, build, canvas, NewEventQueue(), DefaultLoopConfig[testApp]())

	_, err := loop.Step()
	assert.ErrorIs(t, err, canvas.resizeErr)
}

func TestLoopQuit(t *testing.T) {
	var builds int
	canvas := newFakeCanvas(800, 600)
	events := NewEventQueue(QuitEvent(), PointerMoveEvent(1, 1))
	loop := NewLoop(testApp{}, counterApp(&builds), canvas, events, DefaultLoopConfig[testApp]())

	quit, err := loop.Step()
	require.NoError(t, err)
	assert.True(t, quit)
	assert.True(t, loop.Done())
	assert.Equal(t, 1, canvas.presents, "the quitting frame is still presented")
	assert.Equal(t, 1, events.Len(), "events after quit are not drained")

	quit, err = loop.Step()
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Equal(t, 1, canvas.presents)
}

func TestLoopPaintsInZOrder(t *testing.T) {
	canvas := newFakeCanvas(800, 600)
	build := func(testApp) View[testApp] {
		return Overlay[testApp](VStack[testApp]("", Text[testApp]("dialog", "")), "")
	}
	loop := NewLoop(testApp{}, build, canvas, NewEventQueue(), DefaultLoopConfig[testApp]())

	_, err := loop.Step()
	require.NoError(t, err)
	require.NotEmpty(t, canvas.ops)

	assert.Equal(t, "clear 111827ff", canvas.ops[0])
	backdrop := -1
	for i, op := range canvas.ops {
		if op == "fill 0,0 800x600 0000007f" {
			backdrop = i
		}
	}
	require.NotEqual(t, -1, backdrop, "backdrop painted: %v", canvas.ops)
	assert.Less(t, backdrop, canvas.indexOf("dialog"))
}

func TestLoopDuplicateIDs(t *testing.T) {
	build := func(testApp) View[testApp] {
		return VStack[testApp]("", fixedButton("same", 1, 1), fixedButton("same", 1, 1))
	}
	loop := NewLoop(testApp{}, build, newFakeCanvas(800, 600), NewEventQueue(), DefaultLoopConfig[testApp]())

	_, err := loop.Step()
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoopNilRoot(t *testing.T) {
	build := func(testApp) View[testApp] { return nil }
	loop := NewLoop(testApp{}, build, newFakeCanvas(800, 600), NewEventQueue(), DefaultLoopConfig[testApp]())

	_, err := loop.Step()
	assert.ErrorIs(t, err, ErrNilRoot)
}

func TestLoopCarriesTextCursorAcrossRebuilds(t *testing.T) {
	build := func(s testApp) View[testApp] {
		return VStack[testApp]("",
			TextBox[testApp](s.Name, "name", "").WithID("name").
				OnValueChanged(func(a *testApp, v string) { a.Name = v }),
		)
	}
	events := NewEventQueue()
	loop := NewLoop(testApp{}, build, newFakeCanvas(800, 600), events, DefaultLoopConfig[testApp]())
	_, err := loop.Step()
	require.NoError(t, err)

	f := loop.Widgets()[0].Frame()
	x, y := f.X+2, f.Y+2
	events.Push(
		PointerMoveEvent(x, y), PointerDownEvent(MouseButtonLeft, x, y), PointerUpEvent(MouseButtonLeft, x, y),
		TextInputEvent("ab"),
		KeyDownEvent(KeyLeft, 0),
	)
	_, err = loop.Step()
	require.NoError(t, err)
	require.Equal(t, "ab", loop.State().Name)

	// The rebuilt box keeps the cursor between a and b.
	events.Push(TextInputEvent("X"))
	_, err = loop.Step()
	require.NoError(t, err)
	assert.Equal(t, "aXb", loop.State().Name)
	assert.Equal(t, WidgetID("name"), loop.Interaction().Focused)
}

func TestLoopRun(t *testing.T) {
	var builds int

	t.Run("stops on quit", func(t *testing.T) {
		events := NewEventQueue(QuitEvent())
		loop := NewLoop(testApp{}, counterApp(&builds), newFakeCanvas(800, 600), events, DefaultLoopConfig[testApp]())
		assert.NoError(t, loop.Run(context.Background()))
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		loop := NewLoop(testApp{}, counterApp(&builds), newFakeCanvas(800, 600), NewEventQueue(), DefaultLoopConfig[testApp]())
		assert.ErrorIs(t, loop.Run(ctx), context.Canceled)
		assert.GreaterOrEqual(t, loop.Frames(), uint64(1))
	})
}

func TestLoopDefaultsViewportToCanvas(t *testing.T) {
	canvas := newFakeCanvas(320, 200)
	build := func(testApp) View[testApp] {
		return Overlay[testApp](VStack[testApp]("", fixedButton("b", 20, 20)), "")
	}
	loop := NewLoop(testApp{}, build, canvas, NewEventQueue(), LoopConfig[testApp]{})

	_, err := loop.Step()
	require.NoError(t, err)
	assert.Empty(t, canvas.resizes)
	assert.Equal(t, uint32(320), loop.Root().DrawWidth())
}

func dialogApp(s testApp) View[testApp] {
	root := VStack[testApp]("",
		fixedButton("open", 100, 40).OnClick(func(a *testApp) { a.Dialog = true }),
	).WithPadding(UniformInsets(10)).WithSpacing(10)
	if s.Dialog {
		root.Append(
			fixedText(500, 300),
			Overlay[testApp](VStack[testApp]("", fixedButton("close", 40, 20)).WithPadding(Insets{}), ""),
		)
	}
	return root
}

func TestLoopOverlayCoversResizedSurface(t *testing.T) {
	canvas := newFakeCanvas(800, 600)
	events := NewEventQueue()
	loop := NewLoop(testApp{}, dialogApp, canvas, events, DefaultLoopConfig[testApp]())

	_, err := loop.Step()
	require.NoError(t, err)
	require.Equal(t, Size{Width: 120, Height: 60}, canvas.Size())

	events.Push(PointerMoveEvent(15, 15), PointerDownEvent(MouseButtonLeft, 15, 15), PointerUpEvent(MouseButtonLeft, 15, 15))
	_, err = loop.Step()
	require.NoError(t, err)
	require.True(t, loop.State().Dialog)

	_, err = loop.Step()
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 520, Height: 370}, canvas.Size())

	decorations := ChildDecorations(loop.Root())
	require.Len(t, decorations, 1)
	assert.Equal(t, NewRect(0, 0, 520, 370), decorations[0].Frame(), "backdrop covers the grown window")

	var closeFrame Rect
	for _, w := range loop.Widgets() {
		if w.ID() == "close" {
			closeFrame = w.Frame()
		}
	}
	assert.Equal(t, NewRect(240, 175, 40, 20), closeFrame, "dialog centered in the grown window")
}

func TestLoopFirstFrameOverlayUsesShrunkSurface(t *testing.T) {
	canvas := newFakeCanvas(800, 600)
	build := func(testApp) View[testApp] {
		return VStack[testApp]("",
			fixedButton("b", 100, 40),
			Overlay[testApp](VStack[testApp]("", fixedButton("close", 20, 20)).WithPadding(Insets{}), ""),
		).WithPadding(UniformInsets(10))
	}
	loop := NewLoop(testApp{}, build, canvas, NewEventQueue(), DefaultLoopConfig[testApp]())

	_, err := loop.Step()
	require.NoError(t, err)
	assert.Equal(t, []Size{{Width: 120, Height: 60}}, canvas.resizes)
	assert.Equal(t, NewRect(0, 0, 120, 60), ChildDecorations(loop.Root())[0].Frame())
	assert.Contains(t, canvas.ops, "fill 0,0 120x60 0000007f")
}

func TestLoopResizesWhenViewportDiffersFromCanvas(t *testing.T) {
	canvas := newFakeCanvas(320, 200)
	build := func(testApp) View[testApp] {
		return VStack[testApp]("", fixedButton("b", 100, 40)).WithPadding(UniformInsets(10))
	}
	config := DefaultLoopConfig[testApp]()
	config.Viewport = Size{Width: 120, Height: 60}
	loop := NewLoop(testApp{}, build, canvas, NewEventQueue(), config)

	_, err := loop.Step()
	require.NoError(t, err)
	assert.Equal(t, []Size{{Width: 120, Height: 60}}, canvas.resizes)
}
