package entity

import (
	"time"
)

// Record status shared by clients and suppliers.
const (
	StatusActive   = "Ativo"
	StatusInactive = "Inativo"
)

// Client is a customer/brand contact record.
type Client struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	Name         string     `json:"name" gorm:"size:200;not null"`
	CompanyName  string     `json:"company_name" gorm:"size:200"`
	Email        string     `json:"email" gorm:"size:100"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Observations string     `json:"observations" gorm:"type:text"`
	Status       string     `json:"status" gorm:"size:20;not null;default:Ativo"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitzero" gorm:"index"`
}

func (Client) TableName() string {
	return "clients"
}
