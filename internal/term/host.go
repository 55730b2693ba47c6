package term

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agiangrant/stackui/retained"
)

// StepFunc runs one frame of the engine and reports whether it quit.
type StepFunc func() (bool, error)

type tickMsg time.Time

// Host is the bubbletea model that paces the frame loop and feeds it input.
type Host struct {
	canvas   *Canvas
	events   *retained.EventQueue
	step     StepFunc
	interval time.Duration

	// pressed remembers the held button; some terminals report releases
	// without one.
	pressed retained.MouseButton
	err     error
}

// NewHost creates a host drawing into canvas. Input is pushed onto events,
// which the step function's loop must drain.
func NewHost(canvas *Canvas, events *retained.EventQueue, step StepFunc, fps int) *Host {
	if fps <= 0 {
		fps = 60
	}
	return &Host{
		canvas:   canvas,
		events:   events,
		step:     step,
		interval: time.Second / time.Duration(fps),
	}
}

func (h *Host) tick() tea.Cmd {
	return tea.Tick(h.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init draws the first frame and starts the ticker.
func (h *Host) Init() tea.Cmd {
	return h.frame()
}

func (h *Host) frame() tea.Cmd {
	quit, err := h.step()
	if err != nil {
		h.err = err
		return tea.Quit
	}
	if quit {
		return tea.Quit
	}
	return h.tick()
}

// Update translates terminal messages into engine events.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return h, h.frame()
	case tea.WindowSizeMsg:
		h.canvas.SetLimit(retained.Size{Width: uint32(msg.Width), Height: uint32(msg.Height)})
	case tea.KeyMsg:
		h.events.Push(translateKey(msg)...)
	case tea.MouseMsg:
		h.events.Push(h.translateMouse(msg)...)
	}
	return h, nil
}

// View returns the last presented frame.
func (h *Host) View() string {
	return h.canvas.Frame()
}

// Err returns the error that stopped the loop, if any.
func (h *Host) Err() error {
	return h.err
}

// Run runs the host in the alternate screen until the loop quits or ctx is done.
func Run(ctx context.Context, host *Host) error {
	p := tea.NewProgram(host,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
	}
	return host.Err()
}

func translateKey(msg tea.KeyMsg) []retained.Event {
	var mods retained.Modifiers
	if msg.Alt {
		mods |= retained.ModAlt
	}
	key := func(k retained.Keycode, m retained.Modifiers) []retained.Event {
		return []retained.Event{retained.KeyDownEvent(k, mods|m)}
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []retained.Event{retained.QuitEvent()}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return []retained.Event{retained.TextInputEvent(string(msg.Runes))}
	case tea.KeySpace:
		return []retained.Event{
			retained.KeyDownEvent(retained.KeySpace, mods),
			retained.TextInputEvent(" "),
		}
	case tea.KeyEnter:
		return key(retained.KeyEnter, 0)
	case tea.KeyTab:
		return key(retained.KeyTab, 0)
	case tea.KeyShiftTab:
		return key(retained.KeyTab, retained.ModShift)
	case tea.KeyEsc:
		return key(retained.KeyEscape, 0)
	case tea.KeyBackspace:
		return key(retained.KeyBackspace, 0)
	case tea.KeyCtrlW:
		return key(retained.KeyBackspace, retained.ModCtrl)
	case tea.KeyDelete:
		return key(retained.KeyDelete, 0)
	case tea.KeyInsert:
		return key(retained.KeyInsert, 0)
	case tea.KeyUp:
		return key(retained.KeyUp, 0)
	case tea.KeyDown:
		return key(retained.KeyDown, 0)
	case tea.KeyLeft:
		return key(retained.KeyLeft, 0)
	case tea.KeyRight:
		return key(retained.KeyRight, 0)
	case tea.KeyShiftLeft:
		return key(retained.KeyLeft, retained.ModShift)
	case tea.KeyShiftRight:
		return key(retained.KeyRight, retained.ModShift)
	case tea.KeyCtrlLeft:
		return key(retained.KeyLeft, retained.ModCtrl)
	case tea.KeyCtrlRight:
		return key(retained.KeyRight, retained.ModCtrl)
	case tea.KeyHome:
		return key(retained.KeyHome, 0)
	case tea.KeyEnd:
		return key(retained.KeyEnd, 0)
	case tea.KeyPgUp:
		return key(retained.KeyPageUp, 0)
	case tea.KeyPgDown:
		return key(retained.KeyPageDown, 0)
	case tea.KeyCtrlA:
		return key(retained.KeyA, retained.ModCtrl)
	}
	return nil
}

// translateMouse maps a terminal mouse report to engine events. A press is
// preceded by a move so the router sees the pointer over the target first.
func (h *Host) translateMouse(msg tea.MouseMsg) []retained.Event {
	switch msg.Action {
	case tea.MouseActionMotion:
		return []retained.Event{retained.PointerMoveEvent(msg.X, msg.Y)}
	case tea.MouseActionPress:
		button := toButton(msg.Button)
		if button == retained.MouseButtonNone {
			return nil
		}
		h.pressed = button
		return []retained.Event{
			retained.PointerMoveEvent(msg.X, msg.Y),
			retained.PointerDownEvent(button, msg.X, msg.Y),
		}
	case tea.MouseActionRelease:
		button := toButton(msg.Button)
		if button == retained.MouseButtonNone {
			button = h.pressed
		}
		h.pressed = retained.MouseButtonNone
		if button == retained.MouseButtonNone {
			return nil
		}
		return []retained.Event{retained.PointerUpEvent(button, msg.X, msg.Y)}
	}
	return nil
}

func toButton(b tea.MouseButton) retained.MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return retained.MouseButtonLeft
	case tea.MouseButtonRight:
		return retained.MouseButtonRight
	case tea.MouseButtonMiddle:
		return retained.MouseButtonMiddle
	}
	return retained.MouseButtonNone
}
