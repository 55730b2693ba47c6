package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignIDs(t *testing.T) {
	named := Button[testApp]("named", "").WithID("save")
	anon := Button[testApp]("anon", "")
	text := Text[testApp]("t", "")
	check := CheckBox[testApp]("c", false, "")
	root := VStack[testApp]("", named, HStack[testApp]("", anon, text), check)

	require.NoError(t, AssignIDs[testApp](root))
	assert.Equal(t, WidgetID("save"), named.ID())
	assert.Equal(t, WidgetID("button#1"), anon.ID())
	assert.Equal(t, WidgetID("text#2"), text.ID())
	assert.Equal(t, WidgetID("checkbox#3"), check.ID())

	// Deterministic for an identical tree.
	again := Button[testApp]("anon", "")
	require.NoError(t, AssignIDs[testApp](VStack[testApp]("", Button[testApp]("named", "").WithID("save"), HStack[testApp]("", again))))
	assert.Equal(t, anon.ID(), again.ID())
}

func TestAssignIDsRejectsDuplicates(t *testing.T) {
	root := VStack[testApp]("",
		Button[testApp]("a", "").WithID("x"),
		VStack[testApp]("", Text[testApp]("b", "").WithID("x")),
	)
	err := AssignIDs[testApp](root)
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), `"x"`)
}
