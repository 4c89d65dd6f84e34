package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"progas-backend/internal/catalog"
	"progas-backend/internal/model"
	"progas-backend/internal/repository"
	"progas-backend/internal/ws"

	"gorm.io/gorm"
)

var (
	ErrUnknownCustomer = errors.New("unknown customer")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrNoItems         = errors.New("transaction has no items")
)

type LedgerService interface {
	ProcessDelivery(customerID int, items []model.TransactionItem, photo, signature string, gpsLat, gpsLng *float64) (*model.Transaction, error)
	ProcessReturn(customerID int, items []model.TransactionItem, photo string) (*model.Transaction, error)
	ResetAll() error
}

type ledgerService struct {
	catalog       *catalog.Catalog
	inventoryRepo repository.InventoryRepository
	debtRepo      repository.DebtRepository
	txRepo        repository.TransactionRepository
	hub           *ws.Hub
}

func NewLedgerService(
	cat *catalog.Catalog,
	invRepo repository.InventoryRepository,
	debtRepo repository.DebtRepository,
	txRepo repository.TransactionRepository,
	hub *ws.Hub,
) LedgerService {
	return &ledgerService{
		catalog:       cat,
		inventoryRepo: invRepo,
		debtRepo:      debtRepo,
		txRepo:        txRepo,
		hub:           hub,
	}
}

// ProcessDelivery decrements full stock (clamped at zero, never an
// out-of-stock error) and raises the customer's debt, then appends the
// transaction record. Writes are state-then-log with no cross-store
// atomicity: the app assumes a single active operator.
func (s *ledgerService) ProcessDelivery(customerID int, items []model.TransactionItem, photo, signature string, gpsLat, gpsLng *float64) (*model.Transaction, error) {
	if err := s.checkRequest(customerID, items); err != nil {
		return nil, err
	}

	for _, item := range items {
		inv, err := s.inventoryRepo.FindByProductID(item.ProductID)
		if err == nil {
			inv.StockFull = max(0, inv.StockFull-item.Quantity)
			if err := s.inventoryRepo.Save(inv); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		debt, err := s.debtRepo.FindOrCreate(customerID, item.ProductID)
		if err != nil {
			return nil, err
		}
		debt.ActiveDebt += item.Quantity
		if err := s.debtRepo.Save(debt); err != nil {
			return nil, err
		}
	}

	tx := &model.Transaction{
		Type:          model.TxDelivery,
		CustomerID:    customerID,
		Items:         cloneItems(items),
		PhotoData:     photo,
		SignatureData: signature,
		GPSLat:        gpsLat,
		GPSLng:        gpsLng,
		CreatedAt:     time.Now(),
	}
	if err := s.txRepo.Append(tx); err != nil {
		return nil, err
	}

	s.broadcast(tx)
	return tx, nil
}

// ProcessReturn lowers the customer's debt (clamped at zero, returning more
// than owed is accepted) and routes each cylinder to the empty or repair
// bucket.
func (s *ledgerService) ProcessReturn(customerID int, items []model.TransactionItem, photo string) (*model.Transaction, error) {
	if err := s.checkRequest(customerID, items); err != nil {
		return nil, err
	}

	for _, item := range items {
		debt, err := s.debtRepo.FindOrCreate(customerID, item.ProductID)
		if err != nil {
			return nil, err
		}
		debt.ActiveDebt = max(0, debt.ActiveDebt-item.Quantity)
		if err := s.debtRepo.Save(debt); err != nil {
			return nil, err
		}

		inv, err := s.inventoryRepo.FindByProductID(item.ProductID)
		if err == nil {
			if item.IsDamaged {
				inv.StockRepair += item.Quantity
			} else {
				inv.StockEmpty += item.Quantity
			}
			if err := s.inventoryRepo.Save(inv); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	tx := &model.Transaction{
		Type:       model.TxReturn,
		CustomerID: customerID,
		Items:      cloneItems(items),
		PhotoData:  photo,
		CreatedAt:  time.Now(),
	}
	if err := s.txRepo.Append(tx); err != nil {
		return nil, err
	}

	s.broadcast(tx)
	return tx, nil
}

// ResetAll re-seeds all three stores to their defaults.
func (s *ledgerService) ResetAll() error {
	if err := s.inventoryRepo.ResetTo(s.catalog.DefaultInventory()); err != nil {
		return err
	}
	if err := s.debtRepo.ResetTo(s.catalog.DefaultDebts()); err != nil {
		return err
	}
	return s.txRepo.DeleteAll()
}

func (s *ledgerService) checkRequest(customerID int, items []model.TransactionItem) error {
	if _, ok := s.catalog.Customer(customerID); !ok {
		return ErrUnknownCustomer
	}
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if _, ok := s.catalog.Product(item.ProductID); !ok {
			return fmt.Errorf("%w: %d", ErrUnknownProduct, item.ProductID)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("quantity must be positive, got %d", item.Quantity)
		}
	}
	return nil
}

func (s *ledgerService) broadcast(tx *model.Transaction) {
	if s.hub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type": "ledger_update",
			"transaction": map[string]interface{}{
				"id":          tx.ID,
				"type":        tx.Type,
				"customer_id": tx.CustomerID,
				"items":       tx.Items,
				"created_at":  tx.CreatedAt,
			},
		}
		msg, _ := json.Marshal(payload)
		s.hub.Broadcast <- msg
	}()
}

func cloneItems(items []model.TransactionItem) []model.TransactionItem {
	out := make([]model.TransactionItem, len(items))
	copy(out, items)
	return out
}
