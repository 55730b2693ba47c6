package raster

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/stackui/retained"
)

// Script is a recorded input sequence replayed by headless runs.
//
//	[[event]]
//	kind = "pointer_down"
//	button = "left"
//	x = 40
//	y = 12
type Script struct {
	Events []ScriptEvent `toml:"event"`
}

// ScriptEvent is one [[event]] entry.
type ScriptEvent struct {
	Kind   string   `toml:"kind"`
	X      int      `toml:"x"`
	Y      int      `toml:"y"`
	Button string   `toml:"button"`
	Key    string   `toml:"key"`
	Mods   []string `toml:"mods"`
	Text   string   `toml:"text"`
}

// LoadScript reads and decodes a script file.
func LoadScript(path string) ([]retained.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	events, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return events, nil
}

// ParseScript decodes a TOML script into events.
func ParseScript(data []byte) ([]retained.Event, error) {
	var script Script
	if err := toml.Unmarshal(data, &script); err != nil {
		return nil, err
	}
	events := make([]retained.Event, 0, len(script.Events))
	for i, se := range script.Events {
		ev, err := se.toEvent()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (se ScriptEvent) toEvent() (retained.Event, error) {
	switch se.Kind {
	case "quit":
		return retained.QuitEvent(), nil
	case "pointer_move":
		return retained.PointerMoveEvent(se.X, se.Y), nil
	case "pointer_down", "pointer_up":
		button, err := parseButton(se.Button)
		if err != nil {
			return retained.Event{}, err
		}
		if se.Kind == "pointer_down" {
			return retained.PointerDownEvent(button, se.X, se.Y), nil
		}
		return retained.PointerUpEvent(button, se.X, se.Y), nil
	case "key_down":
		key, ok := retained.KeyByName(strings.ToLower(se.Key))
		if !ok {
			return retained.Event{}, fmt.Errorf("unknown key %q", se.Key)
		}
		mods, err := parseMods(se.Mods)
		if err != nil {
			return retained.Event{}, err
		}
		return retained.KeyDownEvent(key, mods), nil
	case "text_input":
		return retained.TextInputEvent(se.Text), nil
	}
	return retained.Event{}, fmt.Errorf("unknown event kind %q", se.Kind)
}

func parseButton(name string) (retained.MouseButton, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return retained.MouseButtonLeft, nil
	case "right":
		return retained.MouseButtonRight, nil
	case "middle":
		return retained.MouseButtonMiddle, nil
	}
	return retained.MouseButtonNone, fmt.Errorf("unknown button %q", name)
}

func parseMods(names []string) (retained.Modifiers, error) {
	var mods retained.Modifiers
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shift":
			mods |= retained.ModShift
		case "ctrl":
			mods |= retained.ModCtrl
		case "alt":
			mods |= retained.ModAlt
		case "super", "cmd":
			mods |= retained.ModSuper
		default:
			return 0, fmt.Errorf("unknown modifier %q", name)
		}
	}
	return mods, nil
}
