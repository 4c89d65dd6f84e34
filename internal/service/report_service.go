package service

import (
	"progas-backend/internal/catalog"
	"progas-backend/internal/repository"
)

// lowStockThreshold marks a product as low when its full stock falls to
// this count or below. Fixed business constant, not configurable.
const lowStockThreshold = 5

// CustomerDebt is one outstanding line in the asset matrix.
type CustomerDebt struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// AssetMatrixRow joins a customer against their outstanding debts. Customers
// with nothing on loan still get a row with an empty list and total 0.
type AssetMatrixRow struct {
	Customer catalog.Customer `json:"customer"`
	Debts    []CustomerDebt   `json:"debts"`
	Total    int              `json:"total"`
}

// StockSummaryRow is the per-product stock view for the dashboard.
type StockSummaryRow struct {
	Product catalog.Product `json:"product"`
	Full    int             `json:"full"`
	Empty   int             `json:"empty"`
	Repair  int             `json:"repair"`
	IsLow   bool            `json:"is_low"`
}

type ReportService interface {
	GetAssetMatrix() ([]AssetMatrixRow, error)
	GetStockSummary() ([]StockSummaryRow, error)
}

type reportService struct {
	catalog       *catalog.Catalog
	inventoryRepo repository.InventoryRepository
	debtRepo      repository.DebtRepository
}

func NewReportService(cat *catalog.Catalog, invRepo repository.InventoryRepository, debtRepo repository.DebtRepository) ReportService {
	return &reportService{
		catalog:       cat,
		inventoryRepo: invRepo,
		debtRepo:      debtRepo,
	}
}

// GetAssetMatrix projects debts > 0 per customer, joined against the
// catalog. Pure read, no mutation.
func (s *reportService) GetAssetMatrix() ([]AssetMatrixRow, error) {
	debts, err := s.debtRepo.FindAll()
	if err != nil {
		return nil, err
	}

	rows := make([]AssetMatrixRow, 0, len(s.catalog.Customers()))
	for _, cust := range s.catalog.Customers() {
		row := AssetMatrixRow{Customer: cust, Debts: []CustomerDebt{}}
		for _, d := range debts {
			if d.CustomerID != cust.ID || d.ActiveDebt <= 0 {
				continue
			}
			product, ok := s.catalog.Product(d.ProductID)
			if !ok {
				continue
			}
			row.Debts = append(row.Debts, CustomerDebt{Product: product, Quantity: d.ActiveDebt})
			row.Total += d.ActiveDebt
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GetStockSummary reports full/empty/repair per product. Products missing an
// inventory row read as all-zero.
func (s *reportService) GetStockSummary() ([]StockSummaryRow, error) {
	items, err := s.inventoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	byProduct := make(map[int]struct{ full, empty, repair int }, len(items))
	for _, item := range items {
		byProduct[item.ProductID] = struct{ full, empty, repair int }{
			item.StockFull, item.StockEmpty, item.StockRepair,
		}
	}

	rows := make([]StockSummaryRow, 0, len(s.catalog.Products()))
	for _, p := range s.catalog.Products() {
		stock := byProduct[p.ID]
		rows = append(rows, StockSummaryRow{
			Product: p,
			Full:    stock.full,
			Empty:   stock.empty,
			Repair:  stock.repair,
			IsLow:   stock.full <= lowStockThreshold,
		})
	}
	return rows, nil
}
