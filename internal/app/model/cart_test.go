package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartLine_LineTotal(t *testing.T) {
	line := CartLine{UnitPrice: d("10.50"), Quantity: 3}
	assert.True(t, line.LineTotal().Equal(d("31.50")))
}

func TestCartLine_SameSelection(t *testing.T) {
	line := CartLine{ItemName: "Mamaka Bowl", Size: "Small", AddOns: []string{"Agave", "Bananas"}}

	assert.True(t, line.SameSelection("Mamaka Bowl", "Small", []string{"Agave", "Bananas"}))
	assert.False(t, line.SameSelection("Mamaka Bowl", "Regular", []string{"Agave", "Bananas"}))
	assert.False(t, line.SameSelection("Larry Bowl", "Small", []string{"Agave", "Bananas"}))
	assert.False(t, line.SameSelection("Mamaka Bowl", "Small", []string{"Agave"}))
	assert.False(t, line.SameSelection("Mamaka Bowl", "Small", nil))
}

func TestCart_RemoveLine_PreservesOrder(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		{ID: "a", ItemName: "Latte"},
		{ID: "b", ItemName: "Mamaka"},
		{ID: "c", ItemName: "Breakfast Tacos"},
	}}

	require.True(t, cart.RemoveLine("b"))
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "a", cart.Lines[0].ID)
	assert.Equal(t, "c", cart.Lines[1].ID)

	assert.False(t, cart.RemoveLine("b"))
}

func TestCart_FindLine(t *testing.T) {
	cart := &Cart{Lines: []CartLine{{ID: "a", Quantity: 1}}}

	line, found := cart.FindLine("a")
	require.True(t, found)
	line.Quantity = 5
	assert.Equal(t, 5, cart.Lines[0].Quantity)

	_, found = cart.FindLine("missing")
	assert.False(t, found)
}

func TestCart_Clear(t *testing.T) {
	cart := &Cart{Lines: []CartLine{{ID: "a"}}}
	cart.Clear()
	assert.True(t, cart.IsEmpty())
}
