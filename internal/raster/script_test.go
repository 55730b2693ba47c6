package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/stackui/retained"
)

func TestParseScript(t *testing.T) {
	events, err := ParseScript([]byte(`
[[event]]
kind = "pointer_move"
x = 40
y = 12

[[event]]
kind = "pointer_down"
x = 40
y = 12

[[event]]
kind = "pointer_up"
button = "right"
x = 41
y = 12

[[event]]
kind = "text_input"
text = "hi"

[[event]]
kind = "key_down"
key = "A"
mods = ["ctrl", "shift"]

[[event]]
kind = "quit"
`))
	require.NoError(t, err)
	assert.Equal(t, []retained.Event{
		retained.PointerMoveEvent(40, 12),
		retained.PointerDownEvent(retained.MouseButtonLeft, 40, 12),
		retained.PointerUpEvent(retained.MouseButtonRight, 41, 12),
		retained.TextInputEvent("hi"),
		retained.KeyDownEvent(retained.KeyA, retained.ModCtrl|retained.ModShift),
		retained.QuitEvent(),
	}, events)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		msg    string
	}{
		{"kind", "[[event]]\nkind = \"wheel\"", `event 0: unknown event kind "wheel"`},
		{"key", "[[event]]\nkind = \"key_down\"\nkey = \"f13\"", `unknown key "f13"`},
		{"button", "[[event]]\nkind = \"pointer_down\"\nbutton = \"back\"", `unknown button "back"`},
		{"mods", "[[event]]\nkind = \"key_down\"\nkey = \"tab\"\nmods = [\"hyper\"]", `unknown modifier "hyper"`},
		{"toml", "[[event]\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[event]]\nkind = \"key_down\"\nkey = \"enter\"\n"), 0644))

	events, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, []retained.Event{retained.KeyDownEvent(retained.KeyEnter, 0)}, events)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to read")
}
