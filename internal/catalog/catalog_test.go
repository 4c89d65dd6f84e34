package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_FixedSets(t *testing.T) {
	cat := Default()

	assert.Len(t, cat.Products(), 3)
	assert.Len(t, cat.Customers(), 4)

	p, ok := cat.Product(3)
	require.True(t, ok)
	assert.Equal(t, "LPG 15kg", p.Name)

	c, ok := cat.Customer(4)
	require.True(t, ok)
	assert.Equal(t, "CCL", c.Name)

	_, ok = cat.Product(99)
	assert.False(t, ok)
	_, ok = cat.Customer(0)
	assert.False(t, ok)
}

func TestDefaultSeeds(t *testing.T) {
	cat := Default()

	inv := cat.DefaultInventory()
	require.Len(t, inv, 3)
	byProduct := make(map[int]int)
	for _, item := range inv {
		byProduct[item.ProductID] = item.StockFull
		assert.Zero(t, item.StockEmpty)
		assert.Zero(t, item.StockRepair)
	}
	assert.Equal(t, 50, byProduct[1])
	assert.Equal(t, 50, byProduct[2])
	assert.Equal(t, 100, byProduct[3])

	// One zeroed debt row per (customer, product) pair.
	debts := cat.DefaultDebts()
	require.Len(t, debts, 12)
	for _, d := range debts {
		assert.Zero(t, d.ActiveDebt)
	}
}
