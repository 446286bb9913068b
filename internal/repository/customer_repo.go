package repository

import (
	"go-dairy-books/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	FindAll() ([]model.Customer, error)
	FindByID(id uint) (*model.Customer, error)
	Create(customer *model.Customer) error
	Update(customer *model.Customer) error
	Delete(id uint) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create and Update write the customer row only. Milk entries have their
// own endpoints; association auto-save must never insert them as a side
// effect of a customer write.
func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Omit(clause.Associations).Create(customer).Error
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Omit(clause.Associations).Save(customer).Error
}

// Delete removes the row for good. Associated Milk entries are left
// untouched; the customer reference on them is informational only.
func (r *customerRepo) Delete(id uint) error {
	return r.db.Delete(&model.Customer{}, "id = ?", id).Error
}
