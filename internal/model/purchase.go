package model

// Purchase mirrors Sale: same fields, opposite direction of money.
type Purchase struct {
	BaseModel
	CustomerName string `gorm:"type:varchar(255);index" json:"customer_name" validate:"required"`
	MilkType     string `gorm:"type:varchar(50)" json:"milk_type" validate:"required"`
	Liters       string `gorm:"type:varchar(50)" json:"liters" validate:"required"`
	Amount       string `gorm:"type:varchar(50)" json:"amount" validate:"required"`
	IsPaid       string `gorm:"type:varchar(10);default:'No'" json:"is_paid" validate:"required"`
}
