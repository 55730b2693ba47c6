// Package stackui holds the project configuration shared by the stackui
// command and applications embedding the engine.
package stackui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/stackui/retained"
)

// ConfigFile is the file name LoadConfig looks for.
const ConfigFile = "stackui.toml"

// Backend kinds.
const (
	BackendRaster = "raster"
	BackendTerm   = "term"
	BackendNative = "native"
)

// Config represents the stackui.toml configuration file
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Loop    LoopConfig    `toml:"loop"`
	Backend BackendConfig `toml:"backend"`
	Theme   ThemeConfig   `toml:"theme"`
	Assets  AssetsConfig  `toml:"assets"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type LoopConfig struct {
	FPS   int  `toml:"fps"`
	Debug bool `toml:"debug"`
}

type BackendConfig struct {
	// Kind is raster, term or native. Empty picks term on a terminal and
	// raster otherwise.
	Kind string `toml:"kind"`
	// Library is the path of the native renderer for the native backend.
	Library string `toml:"library"`
	// SnapshotDir receives a PNG of every presented frame (raster only).
	SnapshotDir string `toml:"snapshot_dir"`
	// Font is a TTF/OTF file for the raster backend. Empty uses Go Regular.
	Font string `toml:"font"`
}

// ThemeConfig overrides the backend's default theme. Zero values keep the
// default.
type ThemeConfig struct {
	Padding   uint32  `toml:"padding"`
	Spacing   uint32  `toml:"spacing"`
	FontSize  float32 `toml:"font_size"`
	Button    string  `toml:"button"`
	Text      string  `toml:"text"`
	CheckBox  string  `toml:"checkbox"`
	TextBox   string  `toml:"textbox"`
	ScrollBar string  `toml:"scrollbar"`
	Backdrop  string  `toml:"backdrop"`
}

type AssetsConfig struct {
	// Images maps names used by the application to image files.
	Images map[string]string `toml:"images"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "stackui",
			Width:  800,
			Height: 600,
		},
		Loop: LoopConfig{
			FPS: 60,
		},
		Assets: AssetsConfig{
			Images: map[string]string{},
		},
	}
}

// LoadConfig loads the configuration from path. An empty path searches
// the working directory and its parents for stackui.toml. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path == "" {
		found, err := FindConfig()
		if err != nil {
			return config, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	def := DefaultConfig()
	if config.Window.Width == 0 {
		config.Window.Width = def.Window.Width
	}
	if config.Window.Height == 0 {
		config.Window.Height = def.Window.Height
	}
	if config.Loop.FPS <= 0 {
		config.Loop.FPS = def.Loop.FPS
	}
	if config.Assets.Images == nil {
		config.Assets.Images = map[string]string{}
	}

	switch config.Backend.Kind {
	case "", BackendRaster, BackendTerm, BackendNative:
	default:
		return config, fmt.Errorf("invalid backend kind %q in %s", config.Backend.Kind, path)
	}
	return config, nil
}

// SaveConfig writes the configuration to path.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// FindConfig looks for stackui.toml in the working directory and its parents.
func FindConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", fmt.Errorf("no %s found", ConfigFile)
		}
		dir = parent
	}
}

// Apply overlays the configured values onto base.
func (t ThemeConfig) Apply(base retained.Theme) retained.Theme {
	if t.Padding > 0 {
		base.Padding = t.Padding
	}
	if t.Spacing > 0 {
		base.Spacing = t.Spacing
	}
	if t.FontSize > 0 {
		base.Font.Size = t.FontSize
	}

	classes := make(map[string]string, len(base.Classes))
	for k, v := range base.Classes {
		classes[k] = v
	}
	for kind, v := range map[retained.WidgetKind]string{
		retained.KindButton:    t.Button,
		retained.KindText:      t.Text,
		retained.KindCheckBox:  t.CheckBox,
		retained.KindTextBox:   t.TextBox,
		retained.KindScrollBar: t.ScrollBar,
		retained.KindBackdrop:  t.Backdrop,
	} {
		if v != "" {
			classes[string(kind)] = v
		}
	}
	base.Classes = classes
	return base
}

// Viewport returns the configured window size.
func (c Config) Viewport() retained.Size {
	return retained.Size{Width: c.Window.Width, Height: c.Window.Height}
}
