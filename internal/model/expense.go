package model

type Expense struct {
	BaseModel
	Remark string `gorm:"type:varchar(255);index" json:"remark" validate:"required"`
	Amount string `gorm:"type:varchar(50)" json:"amount" validate:"required"`
}
