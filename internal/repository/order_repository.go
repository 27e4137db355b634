package repository

import (
	"context"
	"strings"

	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.ProductionOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	var order entity.ProductionOrder
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByNumber(ctx context.Context, number string) (*entity.ProductionOrder, error) {
	var order entity.ProductionOrder
	err := r.db.WithContext(ctx).
		Where("order_number = ? AND deleted_at IS NULL", number).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *entity.ProductionOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// UpdateStages persists only the stages column. Last write wins; there
// is no version check between sessions.
func (r *OrderRepository) UpdateStages(ctx context.Context, id string, stages entity.StageSet) error {
	return r.db.WithContext(ctx).
		Model(&entity.ProductionOrder{}).
		Where("id = ?", id).
		Update("stages", stages).Error
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ProductionOrder{}).Error
}

type OrderListParams struct {
	ClientID string
	Keyword  string
}

// List returns orders matching the SQL-expressible filters, newest
// first, with the client joined for display fields. The stage-tab
// filter inspects the stages JSONB and is applied by the service.
func (r *OrderRepository) List(ctx context.Context, params OrderListParams) ([]entity.ProductionOrder, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.ProductionOrder{}).
		Preload("Client").
		Where("production_orders.deleted_at IS NULL")

	if params.ClientID != "" {
		query = query.Where("production_orders.client_id = ?", params.ClientID)
	}
	if params.Keyword != "" {
		kw := "%" + strings.ToLower(params.Keyword) + "%"
		query = query.
			Select("production_orders.*").
			Joins("LEFT JOIN clients ON clients.id = production_orders.client_id").
			Where("LOWER(production_orders.order_number) LIKE ? OR LOWER(production_orders.product) LIKE ? OR LOWER(clients.company_name) LIKE ?", kw, kw, kw)
	}

	var orders []entity.ProductionOrder
	err := query.Order("production_orders.created_at DESC").Find(&orders).Error
	return orders, err
}

// ListAll returns every live order, for dashboard aggregates.
func (r *OrderRepository) ListAll(ctx context.Context) ([]entity.ProductionOrder, error) {
	var orders []entity.ProductionOrder
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Find(&orders).Error
	return orders, err
}
