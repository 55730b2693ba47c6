package stackui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/stackui/retained"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
title = "demo"
width = 640

[backend]
kind = "term"

[theme]
spacing = 6
button = "bg-red-600 px-2"

[assets.images]
logo = "logo.png"
`), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", config.Window.Title)
	assert.Equal(t, uint32(640), config.Window.Width)
	assert.Equal(t, uint32(600), config.Window.Height, "zero values fall back to defaults")
	assert.Equal(t, 60, config.Loop.FPS)
	assert.Equal(t, BackendTerm, config.Backend.Kind)
	assert.Equal(t, map[string]string{"logo": "logo.png"}, config.Assets.Images)

	theme := config.Theme.Apply(retained.DefaultTheme())
	assert.Equal(t, uint32(6), theme.Spacing)
	assert.Equal(t, uint32(10), theme.Padding)
	assert.Equal(t, "bg-red-600 px-2", theme.Classes["button"])
	assert.Equal(t, retained.DefaultTheme().Classes["textbox"], theme.Classes["textbox"])
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(malformed, []byte("[window\nwidth ="), 0644))
	_, err := LoadConfig(malformed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse "+malformed)

	unknown := filepath.Join(dir, "kind.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("[backend]\nkind = \"vulkan\"\n"), 0644))
	_, err = LoadConfig(unknown)
	assert.ErrorContains(t, err, `invalid backend kind "vulkan"`)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	config := DefaultConfig()
	config.Backend.Kind = BackendRaster
	config.Backend.SnapshotDir = "frames"
	config.Theme.Padding = 4

	require.NoError(t, SaveConfig(path, config))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
