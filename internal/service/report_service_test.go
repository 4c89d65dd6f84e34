package service

import (
	"testing"

	"progas-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setStock(t *testing.T, env *testEnv, productID, full int) {
	t.Helper()
	item, err := env.inventory.FindByProductID(productID)
	require.NoError(t, err)
	item.StockFull = full
	require.NoError(t, env.inventory.Save(item))
}

func TestGetStockSummary_LowFlagBoundary(t *testing.T) {
	env := newTestEnv(t)

	// isLow is true exactly when full <= 5.
	setStock(t, env, 1, 5)
	setStock(t, env, 2, 6)
	setStock(t, env, 3, 0)

	summary, err := env.reports.GetStockSummary()
	require.NoError(t, err)
	require.Len(t, summary, 3)

	byProduct := make(map[int]StockSummaryRow)
	for _, row := range summary {
		byProduct[row.Product.ID] = row
	}

	assert.True(t, byProduct[1].IsLow, "full=5 must be low")
	assert.False(t, byProduct[2].IsLow, "full=6 must not be low")
	assert.True(t, byProduct[3].IsLow, "full=0 must be low")
}

func TestGetStockSummary_ReportsAllBuckets(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.ProcessDelivery(1, items(3, 10), "photo", "signature", nil, nil)
	require.NoError(t, err)
	_, err = env.ledger.ProcessReturn(1, []model.TransactionItem{
		{ProductID: 3, Quantity: 4, IsDamaged: false},
		{ProductID: 3, Quantity: 2, IsDamaged: true},
	}, "")
	require.NoError(t, err)

	summary, err := env.reports.GetStockSummary()
	require.NoError(t, err)

	for _, row := range summary {
		if row.Product.ID != 3 {
			continue
		}
		assert.Equal(t, 90, row.Full)
		assert.Equal(t, 4, row.Empty)
		assert.Equal(t, 2, row.Repair)
	}
}

func TestGetAssetMatrix_ExcludesZeroDebts(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.ProcessDelivery(1, items(3, 7), "photo", "signature", nil, nil)
	require.NoError(t, err)

	matrix, err := env.reports.GetAssetMatrix()
	require.NoError(t, err)
	// Every catalog customer gets a row, debt or not.
	require.Len(t, matrix, 4)

	for _, row := range matrix {
		if row.Customer.ID == 1 {
			require.Len(t, row.Debts, 1)
			assert.Equal(t, 3, row.Debts[0].Product.ID)
			assert.Equal(t, 7, row.Debts[0].Quantity)
			assert.Equal(t, 7, row.Total)
			continue
		}
		// Seeded zero rows must not appear as debts.
		assert.Empty(t, row.Debts)
		assert.Equal(t, 0, row.Total)
	}
}

func TestGetAssetMatrix_TotalsAcrossProducts(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.ProcessDelivery(2, []model.TransactionItem{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 4},
	}, "photo", "signature", nil, nil)
	require.NoError(t, err)

	matrix, err := env.reports.GetAssetMatrix()
	require.NoError(t, err)

	for _, row := range matrix {
		if row.Customer.ID != 2 {
			continue
		}
		assert.Len(t, row.Debts, 2)
		assert.Equal(t, 7, row.Total)
	}
}
