package services

import (
	"testing"

	"crewcall-shop/models"
	"crewcall-shop/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) *CartService {
	t.Helper()
	return NewCartService(repositories.NewMemoryCartRepository())
}

func line(id string, price int64, qty int) models.CartLineItem {
	return models.CartLineItem{
		ID:       id,
		Name:     "item " + id,
		Price:    decimal.NewFromInt(price),
		Quantity: qty,
	}
}

func TestEmptyCartHasZeroCountAndTotal(t *testing.T) {
	svc := newCartService(t)

	cart, err := svc.GetCart("s1")
	require.NoError(t, err)

	assert.Equal(t, 0, cart.Count())
	assert.True(t, cart.TotalPrice().IsZero())
}

func TestCountSumsQuantitiesAcrossLines(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem("s1", line("a", 10, 2))
	require.NoError(t, err)
	cart, err := svc.AddItem("s1", line("b", 20, 3))
	require.NoError(t, err)

	assert.Equal(t, 5, cart.Count())
	assert.Len(t, cart.Items, 2)
}

func TestTotalPriceMatchesLineSum(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem("s1", line("a", 160, 2))
	require.NoError(t, err)
	_, err = svc.AddItem("s1", line("b", 274, 1))
	require.NoError(t, err)
	cart, err := svc.UpdateQuantity("s1", "a", 4)
	require.NoError(t, err)

	expected := decimal.Zero
	for _, item := range cart.Items {
		expected = expected.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, cart.TotalPrice().Equal(expected))
	assert.True(t, cart.TotalPrice().Equal(decimal.NewFromInt(914)))
}

func TestDuplicateAddMergesAndKeepsFirstPrice(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem("s1", line("a", 160, 2))
	require.NoError(t, err)
	cart, err := svc.AddItem("s1", line("a", 226, 3))
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].Price.Equal(decimal.NewFromInt(160)))

	// The policy holds on repeated additions.
	cart, err = svc.AddItem("s1", line("a", 353, 1))
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 6, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].Price.Equal(decimal.NewFromInt(160)))
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem("s1", line("a", 10, 2))
	require.NoError(t, err)

	for _, quantity := range []int{0, -1} {
		cart, err := svc.UpdateQuantity("s1", "a", quantity)
		require.NoError(t, err)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem("s1", line("a", 10, 2))
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity("s1", "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Len(t, cart.Items, 1)
}

func TestRemoveUnknownIDLeavesCartUnchanged(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem("s1", line("a", 10, 2))
	require.NoError(t, err)
	before, err := svc.GetCart("s1")
	require.NoError(t, err)

	after, err := svc.RemoveItem("s1", "missing")
	require.NoError(t, err)

	assert.Equal(t, before.Items, after.Items)
}

func TestRemoveItemDeletesLine(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem("s1", line("a", 10, 2))
	require.NoError(t, err)
	_, err = svc.AddItem("s1", line("b", 20, 1))
	require.NoError(t, err)

	cart, err := svc.RemoveItem("s1", "a")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "b", cart.Items[0].ID)
}

func TestAddItemQuantityBelowOneBecomesOne(t *testing.T) {
	svc := newCartService(t)

	cart, err := svc.AddItem("s1", line("a", 10, 0))
	require.NoError(t, err)

	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddProductResolvesTierPrice(t *testing.T) {
	svc := newCartService(t)

	cart, err := svc.AddProduct("s1", models.AddCartItemRequest{
		ProductID:        "notepad-01",
		SelectedQuantity: 50,
		Quantity:         2,
	})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, "notepad-01", item.ID)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(226)))
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 50, item.SelectedQuantity)
	assert.True(t, item.Customizable)
}

func TestAddProductUnknownIDFails(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddProduct("s1", models.AddCartItemRequest{ProductID: "nope", SelectedQuantity: 25})
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem("s1", line("a", 10, 2))
	require.NoError(t, err)

	other, err := svc.GetCart("s2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestClearEmptiesCart(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.AddItem("s1", line("a", 10, 2))
	require.NoError(t, err)
	require.NoError(t, svc.Clear("s1"))

	cart, err := svc.GetCart("s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalPrice().IsZero())
}
