package model

// AssetDebt tracks cylinders currently on loan to a customer, one row per
// (customer, product) pair. ActiveDebt is clamped at zero on decrement: a
// return larger than the outstanding debt is not an error.
type AssetDebt struct {
	CustomerID int `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	ProductID  int `gorm:"primaryKey;column:product_id" json:"product_id"`
	ActiveDebt int `gorm:"not null;default:0;column:active_debt" json:"active_debt"`
}

func (AssetDebt) TableName() string {
	return "asset_debts"
}
