package retained

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"time"
)

// LoopConfig configures the frame driver.
type LoopConfig[S any] struct {
	// TargetFPS paces Run. Default 60.
	TargetFPS int

	// Viewport is the window size the first tree is measured against.
	// Afterwards the surface follows the root view's size, and floating
	// views cover the surface.
	Viewport Size

	// Equal decides whether the state changed since the last build.
	// Default reflect.DeepEqual.
	Equal func(a, b S) bool

	// Clone copies the state kept for comparison. The default is a plain
	// copy, which is not enough when callbacks mutate maps or slice
	// elements in place.
	Clone func(S) S

	// Debug logs tree rebuilds and surface resizes.
	Debug bool
}

// DefaultLoopConfig returns the default configuration.
func DefaultLoopConfig[S any]() LoopConfig[S] {
	return LoopConfig[S]{
		TargetFPS: 60,
		Viewport:  Size{Width: 800, Height: 600},
	}
}

// Loop is the frame driver. It owns the application state, the current
// tree and the interaction state, and runs every frame on one goroutine.
type Loop[S any] struct {
	config   LoopConfig[S]
	build    func(S) View[S]
	canvas   Canvas
	measurer Measurer
	events   EventSource
	router   *Router[S]

	state    S
	snapshot S

	root    View[S]
	widgets []Widget[S]
	spare   []Widget[S]
	size    Size

	frames   uint64
	rebuilds uint64
	quit     bool
}

// NewLoop creates a driver for initial state. build is called with the
// current state whenever it changes.
func NewLoop[S any](initial S, build func(S) View[S], canvas Canvas, events EventSource, config LoopConfig[S]) *Loop[S] {
	if config.TargetFPS <= 0 {
		config.TargetFPS = 60
	}
	if config.Equal == nil {
		config.Equal = func(a, b S) bool { return reflect.DeepEqual(a, b) }
	}
	if config.Clone == nil {
		config.Clone = func(s S) S { return s }
	}
	if config.Viewport == (Size{}) {
		config.Viewport = canvas.Size()
	}
	return &Loop[S]{
		config:   config,
		build:    build,
		canvas:   canvas,
		measurer: NewMeasureCache(canvas, 0),
		events:   events,
		router:   NewRouter[S](),
		state:    initial,
		size:     canvas.Size(),
	}
}

// State returns the current application state.
func (l *Loop[S]) State() S { return l.state }

// Interaction returns the router's interaction state.
func (l *Loop[S]) Interaction() InteractionState { return l.router.State() }

// Router exposes the router, for programmatic focus.
func (l *Loop[S]) Router() *Router[S] { return l.router }

// Root returns the current tree, nil before the first Step.
func (l *Loop[S]) Root() View[S] { return l.root }

// Widgets returns the current tree's widgets in z-order.
func (l *Loop[S]) Widgets() []Widget[S] { return l.widgets }

// Frames returns the number of frames presented.
func (l *Loop[S]) Frames() uint64 { return l.frames }

// Rebuilds returns the number of times the tree was built.
func (l *Loop[S]) Rebuilds() uint64 { return l.rebuilds }

// Done reports whether a quit event has been seen.
func (l *Loop[S]) Done() bool { return l.quit }

// Step runs one frame without pacing: rebuild and lay out the tree if the
// state changed, clear, drain and route every queued event, paint in
// z-order, present. It reports whether the loop should stop.
func (l *Loop[S]) Step() (bool, error) {
	if l.quit {
		return true, nil
	}
	if err := l.refresh(); err != nil {
		return false, err
	}

	l.canvas.Clear(CurrentTheme().Background)

	for {
		ev, ok := l.events.Poll()
		if !ok {
			break
		}
		if l.router.Dispatch(&l.state, l.widgets, ev) {
			l.quit = true
			break
		}
	}

	l.paint()
	if err := l.canvas.Present(); err != nil {
		return false, fmt.Errorf("present frame %d: %w", l.frames, err)
	}
	l.frames++
	return l.quit, nil
}

// Run steps at the target frame rate until a quit event, a failed step,
// or ctx is done.
func (l *Loop[S]) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.config.TargetFPS))
	defer ticker.Stop()

	for {
		quit, err := l.Step()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// refresh rebuilds the tree when the state differs from the last build.
func (l *Loop[S]) refresh() error {
	if l.root != nil && l.config.Equal(l.snapshot, l.state) {
		return nil
	}

	root := l.build(l.state)
	if root == nil {
		return ErrNilRoot
	}
	if err := AssignIDs(root); err != nil {
		return fmt.Errorf("build tree: %w", err)
	}

	viewport := l.size
	if l.root == nil {
		viewport = l.config.Viewport
	}
	size := Layout(root, l.measurer, LayoutEnv{Viewport: viewport})
	if size != l.size && size.Width > 0 && size.Height > 0 {
		if err := l.canvas.Resize(size); err != nil {
			return fmt.Errorf("resize surface to %dx%d: %w", size.Width, size.Height, err)
		}
		if l.config.Debug {
			log.Printf("driver: resized surface %dx%d -> %dx%d", l.size.Width, l.size.Height, size.Width, size.Height)
		}
		l.size = size
	}
	if viewport != l.size {
		// Floating views cover the window, so they are placed again in the
		// final surface size. Stacks never size around them.
		Layout(root, l.measurer, LayoutEnv{Viewport: l.size})
	}

	widgets := appendChildWidgets(l.spare[:0], root)
	l.carryOver(widgets)

	l.spare, l.widgets = l.widgets, widgets
	clear(l.spare)
	l.root = root
	l.snapshot = l.config.Clone(l.state)
	l.rebuilds++

	if l.config.Debug {
		log.Printf("driver: rebuilt tree %d: %d widgets, root %dx%d", l.rebuilds, len(widgets), size.Width, size.Height)
	}
	return nil
}

// carryOver hands transient input state from the previous tree's widgets
// to their rebuilt counterparts.
func (l *Loop[S]) carryOver(widgets []Widget[S]) {
	if len(l.widgets) == 0 {
		return
	}
	prev := make(map[WidgetID]Widget[S], len(l.widgets))
	for _, w := range l.widgets {
		prev[w.ID()] = w
	}
	for _, w := range widgets {
		c, ok := w.(carrier[S])
		if !ok {
			continue
		}
		if p, ok := prev[w.ID()]; ok && p.Kind() == w.Kind() {
			c.CarryFrom(p)
		}
	}
}

// paint renders the tree in z-order: each view's background, then its
// children, depth first.
func (l *Loop[S]) paint() {
	if l.root == nil {
		return
	}
	l.root.Render(l.canvas)
	walk(l.root, func(n Node[S]) {
		switch n.kind {
		case NodeView:
			n.view.Render(l.canvas)
		case NodeWidget:
			n.widget.Render(l.canvas, l.router.WidgetState(n.widget.ID()))
		case NodeDecoration:
			n.decoration.Render(l.canvas)
		}
	})
}
