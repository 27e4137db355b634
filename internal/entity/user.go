package entity

import (
	"time"
)

// User is a staff account. Sessions are JWT pairs validated by the auth
// middleware; passwords are stored as bcrypt hashes.
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	Status       string     `json:"status" gorm:"size:20;not null;default:Ativo"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitzero" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
