package service

import (
	"testing"

	"github.com/mamakabowls/pos/internal/app/model"
	"github.com/mamakabowls/pos/internal/app/repository"
	"github.com/mamakabowls/pos/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func setupCartServiceTest(t *testing.T) (CartService, *model.Cart) {
	cat := catalog.Default()
	require.NoError(t, cat.Validate())
	return NewCartService(repository.NewCatalogRepository(cat)), &model.Cart{}
}

func TestCartService_AddLine_SizedWithAddOns(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	line, err := cartService.AddLine(cart, "Mamaka Bowl", "Small", []string{"Bananas", "Agave"}, 1)
	require.NoError(t, err)

	// base 9.50 + two 0.50 add-ons
	assert.True(t, line.UnitPrice.Equal(d("10.50")), "got %s", line.UnitPrice)
	assert.Equal(t, "Small", line.Size)
	assert.Equal(t, []string{"Agave", "Bananas"}, line.AddOns)
	assert.Equal(t, 1, line.Quantity)
	assert.NotEmpty(t, line.ID)
}

func TestCartService_AddLine_FlatItemGetsRegularSize(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	line, err := cartService.AddLine(cart, "Latte", "", nil, 2)
	require.NoError(t, err)
	assert.Equal(t, model.SizeRegular, line.Size)
	assert.True(t, line.UnitPrice.Equal(d("4.75")))
}

func TestCartService_AddLine_InvalidSize(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	_, err := cartService.AddLine(cart, "Mamaka Bowl", "Large", nil, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.True(t, cart.IsEmpty())

	// Sized items require an explicit size.
	_, err = cartService.AddLine(cart, "Mamaka Bowl", "", nil, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestCartService_AddLine_InvalidSizeOnFlatItem(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	// Flat-priced items only accept an empty size or Regular.
	_, err := cartService.AddLine(cart, "Latte", "Venti", nil, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.True(t, cart.IsEmpty())

	line, err := cartService.AddLine(cart, "Latte", model.SizeRegular, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SizeRegular, line.Size)
}

func TestCartService_AddLine_InvalidAddOn(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	_, err := cartService.AddLine(cart, "Mamaka Bowl", "Small", []string{"Bananas", "Sprinkles"}, 1)
	assert.ErrorIs(t, err, ErrInvalidAddOn)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_AddLine_ItemNotFound(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	_, err := cartService.AddLine(cart, "Pizza", "", nil, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCartService_AddLine_InvalidQuantity(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	_, err := cartService.AddLine(cart, "Latte", "", nil, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = cartService.AddLine(cart, "Latte", "", nil, -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCartService_AddLine_AddOnsNeverReducePrice(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	plain, err := cartService.AddLine(cart, "Mamaka", "", nil, 1)
	require.NoError(t, err)
	loaded, err := cartService.AddLine(cart, "Mamaka", "", []string{"Strawberry", "Chia Seeds", "Coconut Flakes"}, 1)
	require.NoError(t, err)

	assert.True(t, loaded.UnitPrice.GreaterThanOrEqual(plain.UnitPrice))
	assert.True(t, loaded.UnitPrice.Equal(d("8.00")))
}

func TestCartService_AddLine_MergesSameSelection(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	first, err := cartService.AddLine(cart, "Mamaka Bowl", "Small", []string{"Agave", "Bananas"}, 1)
	require.NoError(t, err)

	// Same item, size and add-on set in a different order merges.
	second, err := cartService.AddLine(cart, "Mamaka Bowl", "Small", []string{"Bananas", "Agave"}, 2)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestCartService_AddLine_DifferentSelectionAppends(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	_, err := cartService.AddLine(cart, "Mamaka Bowl", "Small", []string{"Agave"}, 1)
	require.NoError(t, err)
	_, err = cartService.AddLine(cart, "Mamaka Bowl", "Small", []string{"Bananas"}, 1)
	require.NoError(t, err)
	_, err = cartService.AddLine(cart, "Mamaka Bowl", "Regular", []string{"Agave"}, 1)
	require.NoError(t, err)

	assert.Len(t, cart.Lines, 3)
}

func TestCartService_AddLine_DuplicateAddOnCountedOnce(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	line, err := cartService.AddLine(cart, "Mamaka Bowl", "Small", []string{"Agave", "Agave"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Agave"}, line.AddOns)
	assert.True(t, line.UnitPrice.Equal(d("10.00")))
}

func TestCartService_SetQuantity(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	line, err := cartService.AddLine(cart, "Latte", "", nil, 1)
	require.NoError(t, err)

	require.NoError(t, cartService.SetQuantity(cart, line.ID, 4))
	assert.Equal(t, 4, cart.Lines[0].Quantity)
}

func TestCartService_SetQuantity_ZeroDeletesLine(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	line, err := cartService.AddLine(cart, "Latte", "", nil, 2)
	require.NoError(t, err)

	require.NoError(t, cartService.SetQuantity(cart, line.ID, 0))
	assert.True(t, cart.IsEmpty())
}

func TestCartService_SetQuantity_LineNotFound(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	err := cartService.SetQuantity(cart, "missing", 2)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestCartService_RemoveLine(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	line, err := cartService.AddLine(cart, "Latte", "", nil, 1)
	require.NoError(t, err)

	require.NoError(t, cartService.RemoveLine(cart, line.ID))
	assert.True(t, cart.IsEmpty())

	assert.ErrorIs(t, cartService.RemoveLine(cart, line.ID), ErrLineNotFound)
}

func TestCartService_Subtotal_OrderIndependent(t *testing.T) {
	cartService, cartA := setupCartServiceTest(t)
	_, cartB := setupCartServiceTest(t)

	_, err := cartService.AddLine(cartA, "Mamaka Bowl", "Small", []string{"Agave"}, 2)
	require.NoError(t, err)
	_, err = cartService.AddLine(cartA, "Latte", "", nil, 1)
	require.NoError(t, err)
	_, err = cartService.AddLine(cartA, "Breakfast Tacos", "", nil, 3)
	require.NoError(t, err)

	_, err = cartService.AddLine(cartB, "Breakfast Tacos", "", nil, 3)
	require.NoError(t, err)
	_, err = cartService.AddLine(cartB, "Latte", "", nil, 1)
	require.NoError(t, err)
	_, err = cartService.AddLine(cartB, "Mamaka Bowl", "Small", []string{"Agave"}, 2)
	require.NoError(t, err)

	assert.True(t, cartService.Subtotal(cartA).Equal(cartService.Subtotal(cartB)))
	// 2x10.00 + 4.75 + 3x3.25
	assert.True(t, cartService.Subtotal(cartA).Equal(d("34.50")))
}

func TestCartService_TaxAndTotal(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	// 11.00 * 0.0825 = 0.9075 -> 0.91 rounded
	assert.True(t, cartService.Tax(d("11.00")).Equal(d("0.91")))
	assert.True(t, cartService.Tax(decimal.Zero).Equal(decimal.Zero))

	_, err := cartService.AddLine(cart, "Mamaka Bowl", "Regular", nil, 1)
	require.NoError(t, err)
	assert.True(t, cartService.Total(cart).Equal(d("11.91")))
}

func TestCartService_Clear(t *testing.T) {
	cartService, cart := setupCartServiceTest(t)

	_, err := cartService.AddLine(cart, "Latte", "", nil, 1)
	require.NoError(t, err)
	cartService.Clear(cart)
	assert.True(t, cart.IsEmpty())
}
