package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassesStates(t *testing.T) {
	styles := ParseClasses("bg-blue-500 hover:bg-blue-600 active:bg-blue-700 focus:border-amber-400 text-white")

	require.NotNil(t, styles.Base.BackgroundColor)
	assert.Equal(t, uint32(0x3b82f6ff), *styles.Base.BackgroundColor)
	assert.Equal(t, uint32(0xffffffff), *styles.Base.TextColor)

	require.NotNil(t, styles.Hover.BackgroundColor)
	assert.Equal(t, uint32(0x2563ebff), *styles.Hover.BackgroundColor)
	assert.Equal(t, uint32(0x1d4ed8ff), *styles.Active.BackgroundColor)
	assert.Equal(t, uint32(0xfbbf24ff), *styles.Focus.BorderColor)
}

func TestResolveFallsBackToBase(t *testing.T) {
	styles := ParseClasses("bg-gray-800 text-gray-100 hover:bg-gray-700")

	hover := styles.Resolve(StateHover)
	assert.Equal(t, uint32(0x374151ff), *hover.BackgroundColor)
	assert.Equal(t, uint32(0xf3f4f6ff), *hover.TextColor)

	focus := styles.Resolve(StateFocus)
	assert.Equal(t, uint32(0x1f2937ff), *focus.BackgroundColor)
}

func TestArbitraryValues(t *testing.T) {
	tests := []struct {
		name  string
		class string
		check func(t *testing.T, p StyleProperties)
	}{
		{"hex background", "bg-[#1da1f2]", func(t *testing.T, p StyleProperties) {
			assert.Equal(t, uint32(0x1da1f2ff), *p.BackgroundColor)
		}},
		{"hex with alpha", "bg-[#00000080]", func(t *testing.T, p StyleProperties) {
			assert.Equal(t, uint32(0x00000080), *p.BackgroundColor)
		}},
		{"shorthand hex", "text-[#fff]", func(t *testing.T, p StyleProperties) {
			assert.Equal(t, uint32(0xffffffff), *p.TextColor)
		}},
		{"font size", "text-[22px]", func(t *testing.T, p StyleProperties) {
			assert.Equal(t, float32(22), *p.FontSize)
		}},
		{"padding", "p-[12px]", func(t *testing.T, p StyleProperties) {
			assert.Equal(t, uint32(12), *p.PaddingTop)
			assert.Equal(t, uint32(12), *p.PaddingLeft)
		}},
		{"border width", "border-[3]", func(t *testing.T, p StyleProperties) {
			assert.Equal(t, uint32(3), *p.BorderWidth)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ParseClasses(tt.class).Base)
		})
	}
}

func TestOpacitySuffix(t *testing.T) {
	styles := ParseClasses("bg-black/50")
	require.NotNil(t, styles.Base.BackgroundColor)
	assert.Equal(t, uint32(0x0000007f), *styles.Base.BackgroundColor)
}

func TestSpacingUsesRegisteredUnit(t *testing.T) {
	defer ResetConfig()

	styles := ParseClasses("px-2 py-1")
	assert.Equal(t, uint32(8), *styles.Base.PaddingLeft)
	assert.Equal(t, uint32(4), *styles.Base.PaddingTop)

	SetConfig(ThemeConfig{SpacingUnit: 1})
	styles = ParseClasses("px-2 py-1")
	assert.Equal(t, uint32(2), *styles.Base.PaddingLeft)
	assert.Equal(t, uint32(1), *styles.Base.PaddingTop)
}

func TestRegisteredClassMapOverrides(t *testing.T) {
	defer ResetConfig()

	brand := uint32(0x123456ff)
	SetConfig(ThemeConfig{ClassMap: map[string]StyleProperties{
		"bg-brand": {BackgroundColor: &brand},
	}})

	styles := ParseClasses("bg-brand")
	require.NotNil(t, styles.Base.BackgroundColor)
	assert.Equal(t, brand, *styles.Base.BackgroundColor)
}

func TestUnknownClassesIgnored(t *testing.T) {
	styles := ParseClasses("flex rounded-lg shadow-md")
	assert.Equal(t, StyleProperties{}, styles.Base)
}
