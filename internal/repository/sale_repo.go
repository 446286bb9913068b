package repository

import (
	"go-dairy-books/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	FindAll() ([]model.Sale, error)
	FindByID(id uint) (*model.Sale, error)
	Create(sale *model.Sale) error
	Update(sale *model.Sale) error
	Delete(id uint) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uint) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.First(&sale, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) Update(sale *model.Sale) error {
	return r.db.Save(sale).Error
}

func (r *saleRepo) Delete(id uint) error {
	return r.db.Delete(&model.Sale{}, "id = ?", id).Error
}
