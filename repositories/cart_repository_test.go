package repositories

import (
	"testing"

	"crewcall-shop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCartRepositoryMissingCartIsEmpty(t *testing.T) {
	repo := NewMemoryCartRepository()

	cart, err := repo.Get("unknown")
	require.NoError(t, err)
	assert.Equal(t, "unknown", cart.SessionID)
	assert.Empty(t, cart.Items)
}

func TestMemoryCartRepositorySaveAndGet(t *testing.T) {
	repo := NewMemoryCartRepository()

	cart := &models.Cart{
		SessionID: "s1",
		Items: []models.CartLineItem{
			{ID: "a", Price: decimal.NewFromInt(10), Quantity: 2},
		},
	}
	require.NoError(t, repo.Save(cart))

	loaded, err := repo.Get("s1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "a", loaded.Items[0].ID)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestMemoryCartRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryCartRepository()

	require.NoError(t, repo.Save(&models.Cart{
		SessionID: "s1",
		Items:     []models.CartLineItem{{ID: "a", Quantity: 2}},
	}))

	loaded, err := repo.Get("s1")
	require.NoError(t, err)
	loaded.Items[0].Quantity = 99
	loaded.Items = append(loaded.Items, models.CartLineItem{ID: "b"})

	again, err := repo.Get("s1")
	require.NoError(t, err)
	require.Len(t, again.Items, 1)
	assert.Equal(t, 2, again.Items[0].Quantity)
}

func TestMemoryCartRepositoryDelete(t *testing.T) {
	repo := NewMemoryCartRepository()

	require.NoError(t, repo.Save(&models.Cart{
		SessionID: "s1",
		Items:     []models.CartLineItem{{ID: "a", Quantity: 1}},
	}))
	require.NoError(t, repo.Delete("s1"))

	cart, err := repo.Get("s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Deleting a missing cart is fine.
	assert.NoError(t, repo.Delete("never-seen"))
}
