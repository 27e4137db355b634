package entity

import (
	"time"
)

// CompanySettings is a singleton configuration record rendered on
// printed documents and exports.
type CompanySettings struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	CompanyName  string    `json:"company_name" gorm:"size:200;not null"`
	CNPJ         string    `json:"cnpj" gorm:"size:18"`
	ContactEmail string    `json:"contact_email" gorm:"size:100"`
	Phone        string    `json:"phone" gorm:"size:20"`
	Address      string    `json:"address" gorm:"size:500"`
	FooterText   string    `json:"footer_text" gorm:"size:500"`
	LogoKey      string    `json:"logo_key" gorm:"size:200"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (CompanySettings) TableName() string {
	return "company_settings"
}

// DefaultCompanySettings returns the record created on first access.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		CompanyName: "Sow Brand",
		FooterText:  "Todos os direitos reservados.",
	}
}
