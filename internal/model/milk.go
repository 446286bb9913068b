package model

// Milk is a single collection entry. CustomerName is a denormalized copy
// of the customer's name at entry time; renaming the customer does not
// rewrite it. Quantity and money fields are free-form text, pending a
// product decision on precision/currency.
type Milk struct {
	BaseModel
	CustomerID   uint   `gorm:"index;not null" json:"customer_id" validate:"required"`
	CustomerName string `gorm:"type:varchar(255)" json:"customer_name" validate:"required"`
	MilkType     string `gorm:"type:varchar(50)" json:"milk_type" validate:"required"`
	Liters       string `gorm:"type:varchar(50)" json:"liters" validate:"required"`
	Fat          string `gorm:"type:varchar(50);default:''" json:"fat" validate:"required"`
	SNF          string `gorm:"type:varchar(50);default:''" json:"snf" validate:"required"`
	Amount       string `gorm:"type:varchar(50)" json:"amount" validate:"required"`
	IsPaid       string `gorm:"type:varchar(10);default:'No'" json:"is_paid" validate:"required"`
}
