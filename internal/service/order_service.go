package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
)

// Stage-tab filter values for the order list.
const (
	TabAll        = "all"
	TabLate       = "late"
	TabInProgress = "in_progress"
	TabDone       = "done"
)

const deadlineLayout = "2006-01-02"

var ErrQuantityNotPositive = errors.New("quantity must be a positive integer")

type OrderService struct {
	repo       *repository.OrderRepository
	clientRepo *repository.ClientRepository
}

func NewOrderService(repo *repository.OrderRepository, clientRepo *repository.ClientRepository) *OrderService {
	return &OrderService{repo: repo, clientRepo: clientRepo}
}

type CreateOrderRequest struct {
	OrderNumber   string `json:"order_number" binding:"required"`
	ClientID      string `json:"client_id" binding:"required"`
	Product       string `json:"product" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	PatternOrigin string `json:"pattern_origin"`
	Deadline      string `json:"deadline"`
}

type UpdateOrderRequest struct {
	OrderNumber   string `json:"order_number"`
	ClientID      string `json:"client_id"`
	Product       string `json:"product"`
	Quantity      *int   `json:"quantity"`
	PatternOrigin string `json:"pattern_origin"`
	Status        string `json:"status"`
	Deadline      string `json:"deadline"`
}

// StagePatchRequest updates a subset of one stage's fields. Only the
// fields present in the request are touched.
type StagePatchRequest struct {
	Provider *string `json:"provider"`
	DateIn   *string `json:"date_in"`
	DateOut  *string `json:"date_out"`
	Status   *string `json:"status"`
}

func parseDeadline(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(deadlineLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline %q: %w", value, err)
	}
	return &t, nil
}

// Create registers a new order with an empty stage set: every stage
// starts out Pendente.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*entity.ProductionOrder, error) {
	if req.Quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}
	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	order := &entity.ProductionOrder{
		ID:            uuid.New().String(),
		OrderNumber:   req.OrderNumber,
		ClientID:      req.ClientID,
		Product:       req.Product,
		Quantity:      req.Quantity,
		PatternOrigin: req.PatternOrigin,
		Status:        entity.OrderStatusInProduction,
		Deadline:      deadline,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.Flag = order.Stages.Flag()
	return order, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Flag = order.Stages.Flag()
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, id string, req UpdateOrderRequest) (*entity.ProductionOrder, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	if req.OrderNumber != "" {
		order.OrderNumber = req.OrderNumber
	}
	if req.ClientID != "" {
		if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
			return nil, fmt.Errorf("client not found: %w", err)
		}
		order.ClientID = req.ClientID
	}
	if req.Product != "" {
		order.Product = req.Product
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, ErrQuantityNotPositive
		}
		order.Quantity = *req.Quantity
	}
	if req.PatternOrigin != "" {
		order.PatternOrigin = req.PatternOrigin
	}
	if req.Status != "" {
		order.Status = req.Status
	}
	if req.Deadline != "" {
		deadline, err := parseDeadline(req.Deadline)
		if err != nil {
			return nil, err
		}
		order.Deadline = deadline
	}

	order.Client = nil
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	order.Flag = order.Stages.Flag()
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// PatchStage applies a field-level update to one stage of one order and
// persists only the stages column. Sibling stages are never touched.
func (s *OrderService) PatchStage(ctx context.Context, id string, key entity.StageKey, req StagePatchRequest) (*entity.ProductionOrder, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	stages := order.Stages
	patch := func(field string, value *string) error {
		if value == nil {
			return nil
		}
		updated, err := stages.WithField(key, field, *value)
		if err != nil {
			return err
		}
		stages = updated
		return nil
	}
	if err := patch(entity.StageFieldProvider, req.Provider); err != nil {
		return nil, err
	}
	if err := patch(entity.StageFieldDateIn, req.DateIn); err != nil {
		return nil, err
	}
	if err := patch(entity.StageFieldDateOut, req.DateOut); err != nil {
		return nil, err
	}
	if err := patch(entity.StageFieldStatus, req.Status); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStages(ctx, id, stages); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}

	order.Stages = stages
	order.Flag = stages.Flag()
	return order, nil
}

type OrderListParams struct {
	Keyword  string
	ClientID string
	Tab      string
	Page     int
	Size     int
}

// matchesTab reports whether at least one stage carries the status the
// tab selects. "all" (or empty) is a no-op filter.
func matchesTab(order *entity.ProductionOrder, tab string) bool {
	var want string
	switch tab {
	case "", TabAll:
		return true
	case TabLate:
		want = entity.StageStatusLate
	case TabInProgress:
		want = entity.StageStatusInProgress
	case TabDone:
		want = entity.StageStatusDone
	default:
		return true
	}
	for _, key := range entity.StageKeys {
		if order.Stages.Status(key) == want {
			return true
		}
	}
	return false
}

// ListFiltered applies the composed filters without pagination: keyword
// and client in SQL, the stage tab over the stages column. All filters
// AND together and each is order-insensitive, so the result does not
// depend on application order. Used directly by exports and printing.
func (s *OrderService) ListFiltered(ctx context.Context, keyword, clientID, tab string) ([]entity.ProductionOrder, error) {
	orders, err := s.repo.List(ctx, repository.OrderListParams{
		ClientID: clientID,
		Keyword:  keyword,
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	filtered := orders[:0]
	for i := range orders {
		if matchesTab(&orders[i], tab) {
			orders[i].Flag = orders[i].Stages.Flag()
			filtered = append(filtered, orders[i])
		}
	}
	return filtered, nil
}

// List pages over the filtered result.
func (s *OrderService) List(ctx context.Context, params OrderListParams) ([]entity.ProductionOrder, int64, error) {
	filtered, err := s.ListFiltered(ctx, params.Keyword, params.ClientID, params.Tab)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(filtered))

	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	start := (params.Page - 1) * params.Size
	if start >= len(filtered) {
		return []entity.ProductionOrder{}, total, nil
	}
	end := min(start+params.Size, len(filtered))
	return filtered[start:end], total, nil
}
