package tw

// State represents widget interaction state.
type State int

const (
	StateDefault State = iota
	StateHover
	StateActive
	StateFocus
)

// StyleProperties represents concrete style values. Nil fields are unset
// and fall through to the widget's defaults.
type StyleProperties struct {
	// Colors (0xRRGGBBAA)
	TextColor       *uint32
	BackgroundColor *uint32
	BorderColor     *uint32

	// Typography
	FontFamily *string
	FontSize   *float32

	// Spacing
	PaddingTop    *uint32
	PaddingRight  *uint32
	PaddingBottom *uint32
	PaddingLeft   *uint32

	// Sizing
	Width  *uint32
	Height *uint32

	// Borders
	BorderWidth *uint32
}

// ComputedStyles represents styles organized by interaction state.
type ComputedStyles struct {
	// Base styles (always apply)
	Base StyleProperties

	// State variants
	Hover  StyleProperties
	Active StyleProperties
	Focus  StyleProperties
}

// ThemeConfig holds the consumer's theme configuration.
// This is registered via SetConfig() at app startup.
type ThemeConfig struct {
	// SpacingUnit is the size of one step on the spacing scale (p-1, px-2...).
	// Pixel backends use 4, cell backends use 1.
	SpacingUnit uint32

	// ClassMap adds or overrides utility classes.
	ClassMap map[string]StyleProperties
}

// registeredConfig holds the consumer's theme configuration.
// If nil, falls back to framework defaults.
var registeredConfig *ThemeConfig

// SetConfig registers the consumer's theme configuration.
// Call it before building any tree: classes are parsed at construction time.
func SetConfig(config ThemeConfig) {
	registeredConfig = &config
}

// ResetConfig restores the framework defaults.
func ResetConfig() {
	registeredConfig = nil
}

// spacingUnit returns the registered spacing unit or the default of 4.
func spacingUnit() uint32 {
	if registeredConfig != nil && registeredConfig.SpacingUnit > 0 {
		return registeredConfig.SpacingUnit
	}
	return 4
}

// lookupClass finds a utility in the registered ClassMap first, then the defaults.
func lookupClass(name string) (StyleProperties, bool) {
	if registeredConfig != nil && registeredConfig.ClassMap != nil {
		if p, ok := registeredConfig.ClassMap[name]; ok {
			return p, true
		}
	}
	return builtinClass(name)
}
