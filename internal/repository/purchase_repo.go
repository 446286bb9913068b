package repository

import (
	"go-dairy-books/internal/model"

	"gorm.io/gorm"
)

type PurchaseRepository interface {
	FindAll() ([]model.Purchase, error)
	FindByID(id uint) (*model.Purchase, error)
	Create(purchase *model.Purchase) error
	Update(purchase *model.Purchase) error
	Delete(id uint) error
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindByID(id uint) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := r.db.First(&purchase, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepo) Create(purchase *model.Purchase) error {
	return r.db.Create(purchase).Error
}

func (r *purchaseRepo) Update(purchase *model.Purchase) error {
	return r.db.Save(purchase).Error
}

func (r *purchaseRepo) Delete(id uint) error {
	return r.db.Delete(&model.Purchase{}, "id = ?", id).Error
}
