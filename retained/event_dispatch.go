package retained

// ============================================================================
// Event Router
// ============================================================================

// InteractionState records which widgets are hovered, pressed and focused.
// An empty id means none. Hovering and Clicking never hold the same id: a
// pressed widget under the pointer is active, not hovered.
type InteractionState struct {
	Hovering WidgetID
	Clicking WidgetID
	Focused  WidgetID
}

// Idle reports whether nothing is hovered, pressed or focused.
func (s InteractionState) Idle() bool {
	return s.Hovering == "" && s.Clicking == "" && s.Focused == ""
}

// Router resolves input events against the flattened widget list of the
// current tree and dispatches them. Later widgets in the list are drawn on
// top, so every scan runs to the end and the last match wins.
type Router[S any] struct {
	state InteractionState
}

// NewRouter returns an idle router.
func NewRouter[S any]() *Router[S] {
	return &Router[S]{}
}

// State returns the current interaction state.
func (r *Router[S]) State() InteractionState { return r.state }

// Focus moves keyboard focus to id.
func (r *Router[S]) Focus(id WidgetID) { r.state.Focused = id }

// Blur clears keyboard focus.
func (r *Router[S]) Blur() { r.state.Focused = "" }

// WidgetState derives the render state of the widget with id. Focus takes
// precedence over press, and press over hover.
func (r *Router[S]) WidgetState(id WidgetID) WidgetState {
	switch id {
	case "":
		return StateBase
	case r.state.Focused:
		return StateFocused
	case r.state.Clicking:
		return StateActive
	case r.state.Hovering:
		return StateHovering
	}
	return StateBase
}

// Dispatch feeds one event through the state machine. widgets must be the
// tree's widgets in z-order. It reports whether the event ends the loop.
func (r *Router[S]) Dispatch(app *S, widgets []Widget[S], ev Event) (quit bool) {
	if ev.Kind == EventQuit {
		return true
	}

	// Raw events go to the focused widget, or failing that the pressed one.
	if r.state.Focused != "" {
		if w := find(widgets, r.state.Focused); w != nil {
			w.Update(app, ev)
		}
	} else if r.state.Clicking != "" {
		if w := find(widgets, r.state.Clicking); w != nil {
			w.Update(app, ev)
		}
	}

	switch ev.Kind {
	case EventPointerMove:
		r.pointerMove(widgets, ev.Point())
	case EventPointerDown:
		if ev.IsPrimary() {
			r.pointerDown(app, widgets, ev.Point())
		}
	case EventPointerUp:
		if ev.IsPrimary() {
			r.pointerUp(app, widgets, ev.Point())
		}
	case EventKeyDown:
		switch ev.Key {
		case KeyEscape:
			return true
		case KeyTab:
			r.cycleFocus(widgets, ev.Mods.Shift())
		}
	}
	return false
}

func (r *Router[S]) pointerMove(widgets []Widget[S], p Point) {
	r.state.Hovering = ""
	for _, w := range widgets {
		if !w.Frame().Contains(p) || w.ID() == r.state.Clicking {
			continue
		}
		r.state.Hovering = w.ID()
	}
}

func (r *Router[S]) pointerDown(app *S, widgets []Widget[S], p Point) {
	r.state.Clicking = ""
	hit := false
	var pressed Widget[S]
	for _, w := range widgets {
		if !w.Frame().Contains(p) {
			continue
		}
		hit = true
		if w.ID() != r.state.Hovering {
			continue
		}
		r.state.Clicking = w.ID()
		r.state.Hovering = ""
		if w.CanFocus() {
			r.state.Focused = w.ID()
		} else {
			r.state.Focused = ""
		}
		pressed = w
	}
	if !hit {
		r.state.Focused = ""
	}
	if ps, ok := pressed.(presser[S]); ok {
		ps.Press(app, p)
	}
}

func (r *Router[S]) pointerUp(app *S, widgets []Widget[S], p Point) {
	clicking := r.state.Clicking
	r.state.Clicking = ""
	if clicking == "" {
		return
	}
	for _, w := range widgets {
		if w.ID() == clicking && w.Frame().Contains(p) {
			w.Click(app)
			r.state.Hovering = w.ID()
			return
		}
	}
}

// cycleFocus moves focus to the next focusable widget in z-order, or the
// previous one when backward, wrapping at either end.
func (r *Router[S]) cycleFocus(widgets []Widget[S], backward bool) {
	var focusable []Widget[S]
	current := -1
	for _, w := range widgets {
		if !w.CanFocus() {
			continue
		}
		if w.ID() == r.state.Focused {
			current = len(focusable)
		}
		focusable = append(focusable, w)
	}
	if len(focusable) == 0 {
		return
	}
	next := 0
	switch {
	case current < 0 && backward:
		next = len(focusable) - 1
	case current >= 0 && backward:
		next = (current - 1 + len(focusable)) % len(focusable)
	case current >= 0:
		next = (current + 1) % len(focusable)
	}
	r.state.Focused = focusable[next].ID()
}

// find returns the last widget with id, or nil.
func find[S any](widgets []Widget[S], id WidgetID) Widget[S] {
	var found Widget[S]
	for _, w := range widgets {
		if w.ID() == id {
			found = w
		}
	}
	return found
}
