package repository

import (
	"go-dairy-books/internal/model"

	"gorm.io/gorm"
)

type ExpenseRepository interface {
	FindAll() ([]model.Expense, error)
	FindByID(id uint) (*model.Expense, error)
	Create(expense *model.Expense) error
	Update(expense *model.Expense) error
	Delete(id uint) error
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) FindAll() ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByID(id uint) (*model.Expense, error) {
	var expense model.Expense
	if err := r.db.First(&expense, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) Update(expense *model.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepo) Delete(id uint) error {
	return r.db.Delete(&model.Expense{}, "id = ?", id).Error
}
