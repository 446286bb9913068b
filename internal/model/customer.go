package model

type Customer struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);index;not null" json:"name" validate:"required"`
	Mobile  string `gorm:"type:varchar(20)" json:"mobile" validate:"required"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"required"`
	PAN     string `gorm:"type:varchar(20)" json:"pan" validate:"required"`
	Address string `json:"address" validate:"required"`

	// Relasi
	Milks []Milk `json:"milks,omitempty"`
}
