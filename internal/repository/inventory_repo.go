package repository

import (
	"progas-backend/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	FindAll() ([]model.InventoryItem, error)
	FindByProductID(productID int) (*model.InventoryItem, error)
	Save(item *model.InventoryItem) error
	SeedDefaults(defaults []model.InventoryItem) error
	ResetTo(defaults []model.InventoryItem) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) FindAll() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Order("product_id ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByProductID(productID int) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.First(&item, "product_id = ?", productID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) Save(item *model.InventoryItem) error {
	return r.db.Save(item).Error
}

// SeedDefaults creates missing stock rows without touching existing counts.
func (r *inventoryRepo) SeedDefaults(defaults []model.InventoryItem) error {
	for _, def := range defaults {
		item := def
		if err := r.db.Where("product_id = ?", def.ProductID).FirstOrCreate(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

// ResetTo wipes the store and rewrites the default rows.
func (r *inventoryRepo) ResetTo(defaults []model.InventoryItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.InventoryItem{}).Error; err != nil {
			return err
		}
		if len(defaults) == 0 {
			return nil
		}
		return tx.Create(&defaults).Error
	})
}
