package repository

import (
	"progas-backend/internal/model"

	"gorm.io/gorm"
)

type DebtRepository interface {
	FindAll() ([]model.AssetDebt, error)
	FindByCustomer(customerID int) ([]model.AssetDebt, error)
	FindOrCreate(customerID, productID int) (*model.AssetDebt, error)
	Save(debt *model.AssetDebt) error
	SeedDefaults(defaults []model.AssetDebt) error
	ResetTo(defaults []model.AssetDebt) error
}

type debtRepo struct {
	db *gorm.DB
}

func NewDebtRepo(db *gorm.DB) DebtRepository {
	return &debtRepo{db}
}

func (r *debtRepo) FindAll() ([]model.AssetDebt, error) {
	var debts []model.AssetDebt
	err := r.db.Order("customer_id ASC, product_id ASC").Find(&debts).Error
	return debts, err
}

func (r *debtRepo) FindByCustomer(customerID int) ([]model.AssetDebt, error) {
	var debts []model.AssetDebt
	err := r.db.Where("customer_id = ?", customerID).Order("product_id ASC").Find(&debts).Error
	return debts, err
}

// FindOrCreate returns the debt row for the pair, creating it at zero if the
// customer has never borrowed this product.
func (r *debtRepo) FindOrCreate(customerID, productID int) (*model.AssetDebt, error) {
	debt := model.AssetDebt{CustomerID: customerID, ProductID: productID}
	err := r.db.Where("customer_id = ? AND product_id = ?", customerID, productID).
		FirstOrCreate(&debt).Error
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

func (r *debtRepo) Save(debt *model.AssetDebt) error {
	return r.db.Save(debt).Error
}

func (r *debtRepo) SeedDefaults(defaults []model.AssetDebt) error {
	for _, def := range defaults {
		debt := def
		err := r.db.Where("customer_id = ? AND product_id = ?", def.CustomerID, def.ProductID).
			FirstOrCreate(&debt).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *debtRepo) ResetTo(defaults []model.AssetDebt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.AssetDebt{}).Error; err != nil {
			return err
		}
		if len(defaults) == 0 {
			return nil
		}
		return tx.Create(&defaults).Error
	})
}
