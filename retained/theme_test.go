package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/stackui/tw"
)

func TestTerminalThemeScalesSpacing(t *testing.T) {
	SetTheme(TerminalTheme())
	t.Cleanup(func() {
		SetTheme(DefaultTheme())
		tw.ResetConfig()
	})

	b := Button[testApp]("OK", "p-2")
	root := VStack[testApp]("", b)
	size := Layout[testApp](root, newFakeCanvas(80, 24), viewport)

	// p-2 is two cells; the fake measurer still uses 8x16 per rune.
	assert.Equal(t, Size{Width: 16 + 4, Height: 16 + 4}, b.Frame().Size())
	assert.Equal(t, Size{Width: 20 + 2, Height: 20 + 2}, size)
}

func TestWidgetClassesOverrideTheme(t *testing.T) {
	b := Button[testApp]("OK", "px-0 py-0 w-[90px]")
	Layout[testApp](VStack[testApp]("", b), newFakeCanvas(800, 600), viewport)
	assert.Equal(t, Size{Width: 90, Height: 16}, b.Frame().Size())

	c := newFakeCanvas(800, 600)
	b.Render(c, StateHovering)
	hover := b.resolve(StateHovering)
	base := b.resolve(StateBase)
	assert.NotEqual(t, *base.BackgroundColor, *hover.BackgroundColor)
}
