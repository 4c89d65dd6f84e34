package service

import (
	"testing"
	"time"

	"progas-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(productID, quantity int) []model.TransactionItem {
	return []model.TransactionItem{{ProductID: productID, Quantity: quantity}}
}

func TestProcessDelivery_MovesStockToDebt(t *testing.T) {
	env := newTestEnv(t)

	// Seeded stock for LPG (product 3) is 100.
	tx, err := env.ledger.ProcessDelivery(1, items(3, 10), "photo", "signature", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 90, env.stock(t, 3).StockFull)
	assert.Equal(t, 10, env.debt(t, 1, 3))

	assert.Equal(t, model.TxDelivery, tx.Type)
	assert.Equal(t, 1, tx.CustomerID)
	require.Len(t, tx.Items, 1)
	assert.Equal(t, 3, tx.Items[0].ProductID)
	assert.Equal(t, 10, tx.Items[0].Quantity)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.False(t, tx.CreatedAt.IsZero())
}

func TestProcessDelivery_ClampsStockAtZero(t *testing.T) {
	env := newTestEnv(t)

	// Product 1 is seeded at 50; delivering 60 is not an error, stock
	// floors at zero while the debt records the full quantity.
	_, err := env.ledger.ProcessDelivery(2, items(1, 60), "photo", "signature", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, env.stock(t, 1).StockFull)
	assert.Equal(t, 60, env.debt(t, 2, 1))
}

func TestProcessDelivery_IsNotIdempotent(t *testing.T) {
	env := newTestEnv(t)

	// Submitting the same delivery twice doubles the effect. There is no
	// dedup; this is accepted behaviour, not a bug.
	for i := 0; i < 2; i++ {
		_, err := env.ledger.ProcessDelivery(1, items(3, 10), "photo", "signature", nil, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 80, env.stock(t, 3).StockFull)
	assert.Equal(t, 20, env.debt(t, 1, 3))

	all, err := env.txs.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProcessDelivery_RejectsUnknownIDs(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.ProcessDelivery(99, items(3, 10), "photo", "signature", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownCustomer)

	_, err = env.ledger.ProcessDelivery(1, items(99, 10), "photo", "signature", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownProduct)

	_, err = env.ledger.ProcessDelivery(1, nil, "photo", "signature", nil, nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestProcessDelivery_CarriesEvidenceAndGPS(t *testing.T) {
	env := newTestEnv(t)

	lat, lng := 13.7563, 100.5018
	tx, err := env.ledger.ProcessDelivery(1, items(2, 1), "photo-payload", "signature-payload", &lat, &lng)
	require.NoError(t, err)

	stored, err := env.txs.FindByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "photo-payload", stored.PhotoData)
	assert.Equal(t, "signature-payload", stored.SignatureData)
	require.NotNil(t, stored.GPSLat)
	require.NotNil(t, stored.GPSLng)
	assert.Equal(t, lat, *stored.GPSLat)
	assert.Equal(t, lng, *stored.GPSLng)
}

func TestProcessReturn_DamagedGoesToRepair(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.ProcessDelivery(1, items(3, 10), "photo", "signature", nil, nil)
	require.NoError(t, err)
	emptyBefore := env.stock(t, 3).StockEmpty

	tx, err := env.ledger.ProcessReturn(1, []model.TransactionItem{{ProductID: 3, Quantity: 10, IsDamaged: true}}, "")
	require.NoError(t, err)

	assert.Equal(t, model.TxReturn, tx.Type)
	assert.Equal(t, 0, env.debt(t, 1, 3))
	assert.Equal(t, 10, env.stock(t, 3).StockRepair)
	assert.Equal(t, emptyBefore, env.stock(t, 3).StockEmpty)
}

func TestProcessReturn_UndamagedGoesToEmpty(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.ProcessDelivery(2, items(1, 4), "photo", "signature", nil, nil)
	require.NoError(t, err)

	_, err = env.ledger.ProcessReturn(2, items(1, 4), "")
	require.NoError(t, err)

	assert.Equal(t, 0, env.debt(t, 2, 1))
	assert.Equal(t, 4, env.stock(t, 1).StockEmpty)
	assert.Equal(t, 0, env.stock(t, 1).StockRepair)
}

func TestProcessReturn_ClampsDebtAtZero(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.ProcessDelivery(1, items(3, 5), "photo", "signature", nil, nil)
	require.NoError(t, err)

	// Returning 10 against a debt of 5 clamps to zero, no overpayment error.
	_, err = env.ledger.ProcessReturn(1, items(3, 10), "")
	require.NoError(t, err)

	assert.Equal(t, 0, env.debt(t, 1, 3))
	assert.Equal(t, 10, env.stock(t, 3).StockEmpty)
}

func TestTransactions_ReadNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.ledger.ProcessDelivery(1, items(3, 1), "photo", "signature", nil, nil)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := env.ledger.ProcessReturn(1, items(3, 1), "")
	require.NoError(t, err)

	all, err := env.txs.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestResetAll_RestoresDefaults(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.ProcessDelivery(1, items(3, 30), "photo", "signature", nil, nil)
	require.NoError(t, err)
	_, err = env.ledger.ProcessReturn(1, items(3, 5), "")
	require.NoError(t, err)

	require.NoError(t, env.ledger.ResetAll())

	assert.Equal(t, 100, env.stock(t, 3).StockFull)
	assert.Equal(t, 0, env.stock(t, 3).StockEmpty)
	assert.Equal(t, 0, env.debt(t, 1, 3))

	all, err := env.txs.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}
