package retained

import (
	"sync"

	"github.com/agiangrant/stackui/tw"
)

// Theme holds the defaults widgets and views fall back to when their
// classes leave a property unset.
type Theme struct {
	Font       Font
	Background uint32 // surface clear colour
	Foreground uint32 // default text colour

	Padding uint32 // default view padding
	Spacing uint32 // default gap between stacked children

	// SpacingUnit is the size of one step of p-N, px-N and py-N.
	SpacingUnit uint32

	CheckGap           uint32 // gap between a checkbox glyph and its label
	TextBoxWidth       uint32
	ScrollBarThickness uint32
	ScrollBarLength    uint32

	// Classes holds the base class string for each widget or decoration
	// kind ("button", "textbox", "backdrop"...). Classes given at
	// construction are applied after these.
	Classes map[string]string
}

// DefaultTheme returns the theme for pixel backends.
func DefaultTheme() Theme {
	return Theme{
		Font:               Font{Size: 16},
		Background:         0x111827ff,
		Foreground:         0xf3f4f6ff,
		Padding:            10,
		Spacing:            10,
		SpacingUnit:        4,
		CheckGap:           8,
		TextBoxWidth:       200,
		ScrollBarThickness: 12,
		ScrollBarLength:    200,
		Classes: map[string]string{
			"button":    "bg-blue-600 hover:bg-blue-500 active:bg-blue-700 text-white px-4 py-2",
			"text":      "text-gray-100",
			"checkbox":  "text-gray-100 border-gray-400 hover:border-white active:border-blue-300 focus:border-blue-400",
			"textbox":   "bg-gray-800 text-gray-100 border border-gray-600 focus:border-blue-400 px-2 py-1",
			"scrollbar": "bg-gray-700 text-gray-300 hover:text-gray-100 active:text-blue-400 focus:text-blue-400",
			"divider":   "bg-gray-600",
			"backdrop":  "bg-black/50",
		},
	}
}

// TerminalTheme returns the theme for cell backends, where one unit is one
// character cell.
func TerminalTheme() Theme {
	return Theme{
		Font:               Font{Size: 1},
		Background:         0x000000ff,
		Foreground:         0xe5e7ebff,
		Padding:            1,
		Spacing:            1,
		SpacingUnit:        1,
		CheckGap:           1,
		TextBoxWidth:       24,
		ScrollBarThickness: 1,
		ScrollBarLength:    24,
		Classes: map[string]string{
			"button":    "bg-blue-700 hover:bg-blue-500 active:bg-blue-900 text-white px-1",
			"text":      "text-gray-100",
			"checkbox":  "text-gray-100 hover:text-white focus:text-blue-300",
			"textbox":   "bg-gray-700 text-gray-100 focus:bg-gray-600",
			"scrollbar": "bg-gray-700 text-gray-300 hover:text-gray-100 focus:text-blue-400",
			"divider":   "bg-gray-600",
			"backdrop":  "bg-black/50",
		},
	}
}

var (
	currentTheme   = DefaultTheme()
	currentThemeMu sync.RWMutex
)

// SetTheme installs t for every tree built afterwards.
func SetTheme(t Theme) {
	currentThemeMu.Lock()
	currentTheme = t
	currentThemeMu.Unlock()

	tw.SetConfig(tw.ThemeConfig{SpacingUnit: t.SpacingUnit})
	resetStyleCache()
}

// CurrentTheme returns the installed theme.
func CurrentTheme() Theme {
	currentThemeMu.RLock()
	defer currentThemeMu.RUnlock()
	return currentTheme
}

// themeClasses prefixes classes with the theme's base classes for kind.
func themeClasses(kind, classes string) string {
	base := CurrentTheme().Classes[kind]
	switch {
	case base == "":
		return classes
	case classes == "":
		return base
	}
	return base + " " + classes
}
