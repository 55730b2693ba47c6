package tw

import (
	"strconv"
	"strings"
)

// palette maps "family-shade" to 0xRRGGBB.
var palette = map[string]uint32{
	"gray-100": 0xf3f4f6, "gray-200": 0xe5e7eb, "gray-300": 0xd1d5db,
	"gray-400": 0x9ca3af, "gray-500": 0x6b7280, "gray-600": 0x4b5563,
	"gray-700": 0x374151, "gray-800": 0x1f2937, "gray-900": 0x111827,

	"slate-100": 0xf1f5f9, "slate-200": 0xe2e8f0, "slate-300": 0xcbd5e1,
	"slate-400": 0x94a3b8, "slate-500": 0x64748b, "slate-600": 0x475569,
	"slate-700": 0x334155, "slate-800": 0x1e293b, "slate-900": 0x0f172a,

	"blue-100": 0xdbeafe, "blue-200": 0xbfdbfe, "blue-300": 0x93c5fd,
	"blue-400": 0x60a5fa, "blue-500": 0x3b82f6, "blue-600": 0x2563eb,
	"blue-700": 0x1d4ed8, "blue-800": 0x1e40af, "blue-900": 0x1e3a8a,

	"green-100": 0xdcfce7, "green-200": 0xbbf7d0, "green-300": 0x86efac,
	"green-400": 0x4ade80, "green-500": 0x22c55e, "green-600": 0x16a34a,
	"green-700": 0x15803d, "green-800": 0x166534, "green-900": 0x14532d,

	"red-100": 0xfee2e2, "red-200": 0xfecaca, "red-300": 0xfca5a5,
	"red-400": 0xf87171, "red-500": 0xef4444, "red-600": 0xdc2626,
	"red-700": 0xb91c1c, "red-800": 0x991b1b, "red-900": 0x7f1d1d,

	"amber-100": 0xfef3c7, "amber-200": 0xfde68a, "amber-300": 0xfcd34d,
	"amber-400": 0xfbbf24, "amber-500": 0xf59e0b, "amber-600": 0xd97706,
	"amber-700": 0xb45309, "amber-800": 0x92400e, "amber-900": 0x78350f,

	"white": 0xffffff,
	"black": 0x000000,
}

var fontSizes = map[string]float32{
	"xs":   12,
	"sm":   14,
	"base": 16,
	"lg":   18,
	"xl":   20,
	"2xl":  24,
}

// builtinClass resolves the framework's default utilities.
func builtinClass(name string) (StyleProperties, bool) {
	var p StyleProperties

	switch {
	case name == "border":
		one := uint32(1)
		p.BorderWidth = &one
		return p, true

	case strings.HasPrefix(name, "bg-"):
		if c, ok := namedColor(strings.TrimPrefix(name, "bg-")); ok {
			p.BackgroundColor = &c
			return p, true
		}

	case strings.HasPrefix(name, "text-"):
		rest := strings.TrimPrefix(name, "text-")
		if size, ok := fontSizes[rest]; ok {
			p.FontSize = &size
			return p, true
		}
		if c, ok := namedColor(rest); ok {
			p.TextColor = &c
			return p, true
		}

	case strings.HasPrefix(name, "border-"):
		rest := strings.TrimPrefix(name, "border-")
		if n, err := strconv.ParseUint(rest, 10, 32); err == nil {
			w := uint32(n)
			p.BorderWidth = &w
			return p, true
		}
		if c, ok := namedColor(rest); ok {
			p.BorderColor = &c
			return p, true
		}

	case strings.HasPrefix(name, "font-"):
		family := strings.TrimPrefix(name, "font-")
		p.FontFamily = &family
		return p, true

	case strings.HasPrefix(name, "px-"), strings.HasPrefix(name, "py-"), strings.HasPrefix(name, "p-"):
		idx := strings.Index(name, "-")
		steps, err := strconv.ParseUint(name[idx+1:], 10, 32)
		if err != nil {
			return p, false
		}
		v := uint32(steps) * spacingUnit()
		switch name[:idx] {
		case "p":
			p.PaddingTop, p.PaddingRight, p.PaddingBottom, p.PaddingLeft = &v, &v, &v, &v
		case "px":
			p.PaddingLeft, p.PaddingRight = &v, &v
		case "py":
			p.PaddingTop, p.PaddingBottom = &v, &v
		}
		return p, true

	case strings.HasPrefix(name, "w-"), strings.HasPrefix(name, "h-"):
		steps, err := strconv.ParseUint(name[2:], 10, 32)
		if err != nil {
			return p, false
		}
		v := uint32(steps) * spacingUnit()
		if name[0] == 'w' {
			p.Width = &v
		} else {
			p.Height = &v
		}
		return p, true
	}

	return p, false
}

// namedColor resolves "blue-500", "black/50" or "transparent" to 0xRRGGBBAA.
func namedColor(name string) (uint32, bool) {
	if name == "transparent" {
		return 0, true
	}

	opacity := 100
	if slash := strings.Index(name, "/"); slash != -1 {
		pct, err := strconv.Atoi(name[slash+1:])
		if err != nil {
			return 0, false
		}
		opacity = pct
		name = name[:slash]
	}

	rgb, ok := palette[name]
	if !ok {
		return 0, false
	}
	return withOpacity(rgb<<8|0xFF, opacity), true
}
