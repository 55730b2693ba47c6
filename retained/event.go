package retained

// ============================================================================
// Event Types
// ============================================================================

// EventKind identifies the kind of input event.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventKeyDown
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventTextInput
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "key_down"
	case EventPointerMove:
		return "pointer_move"
	case EventPointerDown:
		return "pointer_down"
	case EventPointerUp:
		return "pointer_up"
	case EventTextInput:
		return "text_input"
	}
	return "unknown"
}

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Keycode is a stable cross-platform key identifier.
type Keycode uint32

const (
	// Letters A-Z = 0-25
	KeyA Keycode = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

const (
	// Navigation = 48-55
	KeyUp       Keycode = 48
	KeyDown     Keycode = 49
	KeyLeft     Keycode = 50
	KeyRight    Keycode = 51
	KeyHome     Keycode = 52
	KeyEnd      Keycode = 53
	KeyPageUp   Keycode = 54
	KeyPageDown Keycode = 55

	// Editing = 56-62
	KeyBackspace Keycode = 56
	KeyDelete    Keycode = 57
	KeyInsert    Keycode = 58
	KeyEnter     Keycode = 59
	KeyTab       Keycode = 60
	KeyEscape    Keycode = 61
	KeySpace     Keycode = 62

	KeyUnknown Keycode = 999
)

var keyNames = map[string]Keycode{
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pagedown":  KeyPageDown,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"insert":    KeyInsert,
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"escape":    KeyEscape,
	"space":     KeySpace,
}

// KeyByName maps a lowercase key name ("a".."z", "enter", "pagedown", ...)
// to its Keycode.
func KeyByName(name string) (Keycode, bool) {
	if len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
		return KeyA + Keycode(name[0]-'a'), true
	}
	k, ok := keyNames[name]
	return k, ok
}

// Event is a single input event drained from the backend's queue.
// Fields not meaningful for a kind are zero.
type Event struct {
	Kind   EventKind
	X, Y   int
	Button MouseButton
	Key    Keycode
	Mods   Modifiers
	Text   string
}

// Point returns the pointer position carried by the event.
func (e Event) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

// IsPrimary reports whether a pointer event concerns the primary button.
func (e Event) IsPrimary() bool {
	return e.Button == MouseButtonLeft
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func KeyDownEvent(key Keycode, mods Modifiers) Event {
	return Event{Kind: EventKeyDown, Key: key, Mods: mods}
}

func PointerMoveEvent(x, y int) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

func PointerDownEvent(button MouseButton, x, y int) Event {
	return Event{Kind: EventPointerDown, Button: button, X: x, Y: y}
}

func PointerUpEvent(button MouseButton, x, y int) Event {
	return Event{Kind: EventPointerUp, Button: button, X: x, Y: y}
}

func TextInputEvent(text string) Event {
	return Event{Kind: EventTextInput, Text: text}
}

// ============================================================================
// Event Feed
// ============================================================================

// EventSource is a drainable queue of input events. Poll returns false
// once the queue is empty for this frame.
type EventSource interface {
	Poll() (Event, bool)
}

// EventQueue is a FIFO EventSource fed by a backend or a test.
type EventQueue struct {
	events []Event
}

// NewEventQueue returns a queue preloaded with events.
func NewEventQueue(events ...Event) *EventQueue {
	q := &EventQueue{}
	q.Push(events...)
	return q
}

// Push appends events to the back of the queue.
func (q *EventQueue) Push(events ...Event) {
	q.events = append(q.events, events...)
}

// Poll pops the front event.
func (q *EventQueue) Poll() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
