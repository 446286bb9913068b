package model

import "time"

// BaseModel handles the store-assigned integer primary key and standard
// timestamps. GORM stamps CreatedAt once on insert and refreshes
// UpdatedAt on every save.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
