package entity

import (
	"time"
)

// Order-level statuses. The column is operator-editable free vocabulary;
// only Entregue carries meaning for the dashboard aggregates.
const (
	OrderStatusInProduction = "Em Produção"
	OrderStatusDelivered    = "Entregue"
)

// Pattern origin for the modeling stage.
const (
	PatternOriginInternal = "interno"
	PatternOriginClient   = "cliente"
)

// ProductionOrder is one garment order moving through the pipeline.
// The order number is assigned by staff, not generated.
type ProductionOrder struct {
	ID            string     `json:"id" gorm:"primaryKey;size:36"`
	OrderNumber   string     `json:"order_number" gorm:"size:50;not null;uniqueIndex"`
	ClientID      string     `json:"client_id" gorm:"size:36;not null;index"`
	Client        *Client    `json:"client,omitzero" gorm:"foreignKey:ClientID"`
	Product       string     `json:"product" gorm:"size:200;not null"`
	Quantity      int        `json:"quantity" gorm:"not null"`
	PatternOrigin string     `json:"pattern_origin" gorm:"size:20"`
	Status        string     `json:"status" gorm:"size:50;not null;default:Em Produção"`
	Deadline      *time.Time `json:"deadline,omitzero"`
	Stages        StageSet   `json:"stages" gorm:"type:jsonb"`
	Flag          string     `json:"flag,omitzero" gorm:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitzero" gorm:"index"`
}

func (ProductionOrder) TableName() string {
	return "production_orders"
}

// Delivered reports whether the order reached its terminal status.
func (o *ProductionOrder) Delivered() bool {
	return o.Status == OrderStatusDelivered
}

// DeadlineLate reports the deadline-based staleness signal used by the
// dashboard. Independent from the per-stage Atras. flag: an order can be
// deadline-late with no stage marked late, and vice versa.
func (o *ProductionOrder) DeadlineLate(now time.Time) bool {
	return o.Deadline != nil && o.Deadline.Before(now) && !o.Delivered()
}

// ClientCompany returns the joined client company name, empty when the
// client was not preloaded.
func (o *ProductionOrder) ClientCompany() string {
	if o.Client == nil {
		return ""
	}
	return o.Client.CompanyName
}
