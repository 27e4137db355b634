package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
)

type DashboardService struct {
	orderRepo *repository.OrderRepository
}

func NewDashboardService(orderRepo *repository.OrderRepository) *DashboardService {
	return &DashboardService{orderRepo: orderRepo}
}

// Summary holds the dashboard KPI cards. Late is the deadline-based
// signal (deadline passed, not delivered) and is intentionally separate
// from the per-stage Atras. flag.
type Summary struct {
	ActiveOrders   int `json:"active_orders"`
	PiecesInFlight int `json:"pieces_in_production"`
	Delivered      int `json:"delivered"`
	Late           int `json:"late"`
}

// StageVolume is one bar of the volume chart: total pieces in orders
// where the stage has left Pendente.
type StageVolume struct {
	Stage    entity.StageKey `json:"stage"`
	Label    string          `json:"label"`
	Quantity int             `json:"quantity"`
}

// StatusBreakdown counts orders by derived order-level flag.
type StatusBreakdown struct {
	Late       int `json:"late"`
	InProgress int `json:"in_progress"`
	Complete   int `json:"complete"`
	Pending    int `json:"pending"`
}

// ComputeSummary derives the KPI counts from a loaded order list.
func ComputeSummary(orders []entity.ProductionOrder, now time.Time) Summary {
	var sum Summary
	for i := range orders {
		o := &orders[i]
		if o.Delivered() {
			sum.Delivered++
		} else {
			sum.ActiveOrders++
		}
		sum.PiecesInFlight += o.Quantity
		if o.DeadlineLate(now) {
			sum.Late++
		}
	}
	return sum
}

// ComputeStageVolumes sums quantities per stage over orders where that
// stage's status is anything but Pendente.
func ComputeStageVolumes(orders []entity.ProductionOrder) []StageVolume {
	volumes := make([]StageVolume, 0, len(entity.StageKeys))
	for _, key := range entity.StageKeys {
		vol := StageVolume{Stage: key, Label: entity.StageLabel(key)}
		for i := range orders {
			if orders[i].Stages.Status(key) != entity.StageStatusPending {
				vol.Quantity += orders[i].Quantity
			}
		}
		volumes = append(volumes, vol)
	}
	return volumes
}

// ComputeStatusBreakdown tallies orders by order-level flag.
func ComputeStatusBreakdown(orders []entity.ProductionOrder) StatusBreakdown {
	var b StatusBreakdown
	for i := range orders {
		switch orders[i].Stages.Flag() {
		case entity.OrderFlagLate:
			b.Late++
		case entity.OrderFlagInProgress:
			b.InProgress++
		case entity.OrderFlagComplete:
			b.Complete++
		default:
			b.Pending++
		}
	}
	return b
}

func (s *DashboardService) Summary(ctx context.Context) (Summary, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load orders: %w", err)
	}
	return ComputeSummary(orders, time.Now()), nil
}

func (s *DashboardService) StageVolumes(ctx context.Context) ([]StageVolume, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return ComputeStageVolumes(orders), nil
}

func (s *DashboardService) StatusBreakdown(ctx context.Context) (StatusBreakdown, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return StatusBreakdown{}, fmt.Errorf("load orders: %w", err)
	}
	return ComputeStatusBreakdown(orders), nil
}
