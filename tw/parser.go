package tw

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	State          State
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like bg-[#1da1f2]
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "bg", "text", "p"
	Value    string // e.g., "#1da1f2", "22px"
}

// ParseClasses parses a utility class string and returns computed styles.
// Example: "bg-blue-500 hover:bg-blue-600 focus:border-amber-400 p-2 text-[14px]"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)

		var partial StyleProperties
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			var ok bool
			partial, ok = lookupClass(parsed.BaseClass)
			if !ok {
				// Unknown class, silently ignore
				continue
			}
		}

		target := getTargetProperties(&computed, parsed)
		target.Merge(partial)
	}

	return computed
}

// parseClass splits a class into variant modifiers and base utility
// "hover:bg-blue-500" → ParsedClass{State: Hover, BaseClass: "bg-blue-500"}
// "p-[12px]" → ParsedClass{ArbitraryValue: {Property: "p", Value: "12px"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		State:     StateDefault,
		BaseClass: parts[len(parts)-1],
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "hover":
			pc.State = StateHover
		case "focus":
			pc.State = StateFocus
		case "active":
			pc.State = StateActive
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "bg-[#1da1f2]" → ArbitraryValue{Property: "bg", Value: "#1da1f2"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

// parseArbitraryValue converts an arbitrary value to StyleProperties at runtime
func parseArbitraryValue(arb *ArbitraryValue) StyleProperties {
	var partial StyleProperties

	switch arb.Property {
	case "w":
		partial.Width = parseDimension(arb.Value)
	case "h":
		partial.Height = parseDimension(arb.Value)

	case "p":
		if val := parseDimension(arb.Value); val != nil {
			partial.PaddingTop, partial.PaddingRight = val, val
			partial.PaddingBottom, partial.PaddingLeft = val, val
		}
	case "px":
		if val := parseDimension(arb.Value); val != nil {
			partial.PaddingLeft, partial.PaddingRight = val, val
		}
	case "py":
		if val := parseDimension(arb.Value); val != nil {
			partial.PaddingTop, partial.PaddingBottom = val, val
		}

	case "bg":
		partial.BackgroundColor = parseColor(arb.Value)
	case "border":
		if color := parseColor(arb.Value); color != nil {
			partial.BorderColor = color
		} else {
			partial.BorderWidth = parseDimension(arb.Value)
		}
	case "text":
		// text-[#fff] is a colour, text-[22px] is a font size
		if color := parseColor(arb.Value); color != nil {
			partial.TextColor = color
		} else if val := parseDimension(arb.Value); val != nil {
			size := float32(*val)
			partial.FontSize = &size
		}
	case "font":
		family := arb.Value
		partial.FontFamily = &family
	}

	return partial
}

// parseDimension parses a non-negative dimension ("12", "12px").
// Values are in backend units; there is no rem/percent support.
func parseDimension(value string) *uint32 {
	value = strings.TrimSuffix(strings.TrimSpace(value), "px")
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil
	}
	v := uint32(n)
	return &v
}

// parseColor parses #RGB, #RRGGBB and #RRGGBBAA into 0xRRGGBBAA.
func parseColor(value string) *uint32 {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return nil
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	switch len(hex) {
	case 6:
		var r, g, b uint32
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err == nil {
			color := (r << 24) | (g << 16) | (b << 8) | 0xFF
			return &color
		}
	case 8:
		n, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			color := uint32(n)
			return &color
		}
	}
	return nil
}

// withOpacity replaces the alpha channel of c with pct percent.
func withOpacity(c uint32, pct int) uint32 {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return c&0xFFFFFF00 | uint32(pct*255/100)
}

// getTargetProperties returns the StyleProperties bucket for the parsed variant
func getTargetProperties(computed *ComputedStyles, parsed ParsedClass) *StyleProperties {
	switch parsed.State {
	case StateHover:
		return &computed.Hover
	case StateFocus:
		return &computed.Focus
	case StateActive:
		return &computed.Active
	default:
		return &computed.Base
	}
}

// Merge merges p into s. Later values override earlier ones (last class wins).
func (s *StyleProperties) Merge(p StyleProperties) {
	if p.TextColor != nil {
		s.TextColor = p.TextColor
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = p.BackgroundColor
	}
	if p.BorderColor != nil {
		s.BorderColor = p.BorderColor
	}
	if p.FontFamily != nil {
		s.FontFamily = p.FontFamily
	}
	if p.FontSize != nil {
		s.FontSize = p.FontSize
	}
	if p.PaddingTop != nil {
		s.PaddingTop = p.PaddingTop
	}
	if p.PaddingRight != nil {
		s.PaddingRight = p.PaddingRight
	}
	if p.PaddingBottom != nil {
		s.PaddingBottom = p.PaddingBottom
	}
	if p.PaddingLeft != nil {
		s.PaddingLeft = p.PaddingLeft
	}
	if p.Width != nil {
		s.Width = p.Width
	}
	if p.Height != nil {
		s.Height = p.Height
	}
	if p.BorderWidth != nil {
		s.BorderWidth = p.BorderWidth
	}
}

// Resolve merges the base styles with the variant for state.
func (cs *ComputedStyles) Resolve(state State) StyleProperties {
	result := cs.Base
	switch state {
	case StateHover:
		result.Merge(cs.Hover)
	case StateActive:
		result.Merge(cs.Active)
	case StateFocus:
		result.Merge(cs.Focus)
	}
	return result
}

// Color returns *p or def when p is nil.
func Color(p *uint32, def uint32) uint32 {
	if p == nil {
		return def
	}
	return *p
}

// Dim returns *p or def when p is nil.
func Dim(p *uint32, def uint32) uint32 {
	if p == nil {
		return def
	}
	return *p
}
