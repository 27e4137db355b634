package entity

import (
	"time"
)

// Supplier is a subcontractor categorized by production capability.
// The category decides which pipeline stages it can be assigned to.
type Supplier struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	Name         string     `json:"name" gorm:"size:200;not null"`
	Category     string     `json:"category" gorm:"size:50;not null;index"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Email        string     `json:"email" gorm:"size:100"`
	CNPJ         string     `json:"cnpj" gorm:"size:18"`
	Address      string     `json:"address" gorm:"size:500"`
	Observations string     `json:"observations" gorm:"type:text"`
	Status       string     `json:"status" gorm:"size:20;not null;default:Ativo"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitzero" gorm:"index"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
