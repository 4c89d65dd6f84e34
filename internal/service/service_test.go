package service

import (
	"fmt"
	"strings"
	"testing"

	"progas-backend/internal/catalog"
	"progas-backend/internal/model"
	"progas-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	catalog   *catalog.Catalog
	inventory repository.InventoryRepository
	debts     repository.DebtRepository
	txs       repository.TransactionRepository
	ledger    LedgerService
	reports   ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.InventoryItem{}, &model.AssetDebt{}, &model.Transaction{}))

	cat := catalog.Default()
	inventory := repository.NewInventoryRepo(db)
	debts := repository.NewDebtRepo(db)
	txs := repository.NewTransactionRepo(db)

	require.NoError(t, inventory.SeedDefaults(cat.DefaultInventory()))
	require.NoError(t, debts.SeedDefaults(cat.DefaultDebts()))

	return &testEnv{
		db:        db,
		catalog:   cat,
		inventory: inventory,
		debts:     debts,
		txs:       txs,
		ledger:    NewLedgerService(cat, inventory, debts, txs, nil),
		reports:   NewReportService(cat, inventory, debts),
	}
}

func (e *testEnv) stock(t *testing.T, productID int) model.InventoryItem {
	t.Helper()
	item, err := e.inventory.FindByProductID(productID)
	require.NoError(t, err)
	return *item
}

func (e *testEnv) debt(t *testing.T, customerID, productID int) int {
	t.Helper()
	debt, err := e.debts.FindOrCreate(customerID, productID)
	require.NoError(t, err)
	return debt.ActiveDebt
}
