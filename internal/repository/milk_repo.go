package repository

import (
	"go-dairy-books/internal/model"

	"gorm.io/gorm"
)

type MilkRepository interface {
	FindAll() ([]model.Milk, error)
	FindByID(id uint) (*model.Milk, error)
	Create(milk *model.Milk) error
	Update(milk *model.Milk) error
	Delete(id uint) error
}

type milkRepo struct {
	db *gorm.DB
}

func NewMilkRepo(db *gorm.DB) MilkRepository {
	return &milkRepo{db}
}

func (r *milkRepo) FindAll() ([]model.Milk, error) {
	var milks []model.Milk
	err := r.db.Find(&milks).Error
	return milks, err
}

func (r *milkRepo) FindByID(id uint) (*model.Milk, error) {
	var milk model.Milk
	if err := r.db.First(&milk, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &milk, nil
}

func (r *milkRepo) Create(milk *model.Milk) error {
	return r.db.Create(milk).Error
}

func (r *milkRepo) Update(milk *model.Milk) error {
	return r.db.Save(milk).Error
}

func (r *milkRepo) Delete(id uint) error {
	return r.db.Delete(&model.Milk{}, "id = ?", id).Error
}
