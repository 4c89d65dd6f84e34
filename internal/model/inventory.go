package model

// InventoryItem is one stock row per catalog product. Counts never go
// negative: the ledger clamps every decrement at zero.
type InventoryItem struct {
	ProductID   int `gorm:"primaryKey;column:product_id" json:"product_id"`
	StockFull   int `gorm:"not null;default:0;column:stock_full" json:"stock_full"`
	StockEmpty  int `gorm:"not null;default:0;column:stock_empty" json:"stock_empty"`
	StockRepair int `gorm:"not null;default:0;column:stock_repair" json:"stock_repair"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
