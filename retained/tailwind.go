package retained

import (
	"sync"

	"github.com/agiangrant/stackui/tw"
)

// styleCache caches parsed styles for repeated class strings. Trees are
// rebuilt on every state change, so the same strings are parsed over and over.
var (
	styleCache   = make(map[string]*tw.ComputedStyles)
	styleCacheMu sync.RWMutex
)

// resolveStyles returns cached or freshly parsed styles for a class string.
func resolveStyles(classes string) *tw.ComputedStyles {
	if classes == "" {
		return &tw.ComputedStyles{}
	}

	styleCacheMu.RLock()
	if cached, ok := styleCache[classes]; ok {
		styleCacheMu.RUnlock()
		return cached
	}
	styleCacheMu.RUnlock()

	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := styleCache[classes]; ok {
		return cached
	}

	styles := tw.ParseClasses(classes)
	styleCache[classes] = &styles
	return &styles
}

// resetStyleCache drops every cached parse. Parses depend on the spacing
// unit, so a theme change invalidates them.
func resetStyleCache() {
	styleCacheMu.Lock()
	styleCache = make(map[string]*tw.ComputedStyles)
	styleCacheMu.Unlock()
}

// toTWState maps a widget's render state onto its class variant.
func toTWState(s WidgetState) tw.State {
	switch s {
	case StateHovering:
		return tw.StateHover
	case StateActive:
		return tw.StateActive
	case StateFocused:
		return tw.StateFocus
	}
	return tw.StateDefault
}

// paddingOf reads the padding of resolved styles, falling back to def per side.
func paddingOf(p tw.StyleProperties, def Insets) Insets {
	return Insets{
		Top:    tw.Dim(p.PaddingTop, def.Top),
		Right:  tw.Dim(p.PaddingRight, def.Right),
		Bottom: tw.Dim(p.PaddingBottom, def.Bottom),
		Left:   tw.Dim(p.PaddingLeft, def.Left),
	}
}

// fontOf overlays the font utilities of p onto def.
func fontOf(p tw.StyleProperties, def Font) Font {
	if p.FontFamily != nil {
		def.Family = *p.FontFamily
	}
	if p.FontSize != nil {
		def.Size = *p.FontSize
	}
	return def
}

// paintBox fills the background and border described by p.
func paintBox(c Canvas, r Rect, p tw.StyleProperties) {
	if bg := tw.Color(p.BackgroundColor, 0); bg&0xff != 0 {
		c.FillRect(r, bg)
	}
	if p.BorderColor != nil || p.BorderWidth != nil {
		strokeRect(c, r, tw.Dim(p.BorderWidth, 1), tw.Color(p.BorderColor, 0))
	}
}
