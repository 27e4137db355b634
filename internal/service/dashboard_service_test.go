package service

import (
	"context"
	"testing"
	"time"

	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
	"github.com/sowbrand/manager-sowbrand/internal/testutil"
)

func TestComputeSummary(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -3)
	future := now.AddDate(0, 0, 3)

	orders := []entity.ProductionOrder{
		{Quantity: 100, Status: entity.OrderStatusInProduction, Deadline: &future},
		{Quantity: 50, Status: entity.OrderStatusInProduction, Deadline: &past},
		{Quantity: 30, Status: entity.OrderStatusDelivered, Deadline: &past},
		{Quantity: 20, Status: entity.OrderStatusInProduction},
	}

	sum := ComputeSummary(orders, now)
	if sum.ActiveOrders != 3 {
		t.Errorf("active = %d, want 3", sum.ActiveOrders)
	}
	if sum.PiecesInFlight != 200 {
		t.Errorf("pieces = %d, want 200", sum.PiecesInFlight)
	}
	if sum.Delivered != 1 {
		t.Errorf("delivered = %d, want 1", sum.Delivered)
	}
	// Deadline-based: the delivered order with a past deadline does not
	// count, the undelivered one does.
	if sum.Late != 1 {
		t.Errorf("late = %d, want 1", sum.Late)
	}
}

func TestComputeStageVolumes(t *testing.T) {
	orders := []entity.ProductionOrder{
		{Quantity: 100, Stages: entity.StageSet{Cut: entity.Stage{Status: entity.StageStatusDone}}},
		{Quantity: 50, Stages: entity.StageSet{Cut: entity.Stage{Status: entity.StageStatusInProgress}}},
		{Quantity: 80, Stages: entity.StageSet{Sew: entity.Stage{Status: entity.StageStatusLate}}},
		{Quantity: 30}, // all pending, counts nowhere
	}

	volumes := ComputeStageVolumes(orders)
	byStage := make(map[entity.StageKey]int)
	for _, vol := range volumes {
		byStage[vol.Stage] = vol.Quantity
	}

	if byStage[entity.StageCut] != 150 {
		t.Errorf("cut volume = %d, want 150", byStage[entity.StageCut])
	}
	if byStage[entity.StageSew] != 80 {
		t.Errorf("sew volume = %d, want 80", byStage[entity.StageSew])
	}
	if byStage[entity.StageFinish] != 0 {
		t.Errorf("finish volume = %d, want 0", byStage[entity.StageFinish])
	}
	if len(volumes) != len(entity.StageKeys) {
		t.Errorf("volumes len = %d, want one bar per stage", len(volumes))
	}
}

func TestComputeStatusBreakdown(t *testing.T) {
	orders := []entity.ProductionOrder{
		{Stages: entity.StageSet{Cut: entity.Stage{Status: entity.StageStatusLate}}},
		{Stages: entity.StageSet{Sew: entity.Stage{Status: entity.StageStatusInProgress}}},
		{Stages: entity.StageSet{Cut: entity.Stage{Status: entity.StageStatusDone}}},
		{},
	}

	b := ComputeStatusBreakdown(orders)
	if b.Late != 1 || b.InProgress != 1 || b.Complete != 1 || b.Pending != 1 {
		t.Errorf("breakdown = %+v, want one of each", b)
	}
}

// The end-to-end scenario: a fresh client and order move the dashboard
// counters and every stage starts out pending.
func TestDashboardAfterOrderCreation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	clientSvc := NewClientService(repos.Client)
	orderSvc := NewOrderService(repos.Order, repos.Client)
	dashSvc := NewDashboardService(repos.Order)
	ctx := context.Background()

	before, err := dashSvc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary before: %v", err)
	}

	client, err := clientSvc.Create(ctx, CreateClientRequest{Name: "Acme Co", CompanyName: "Acme Co"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	order, err := orderSvc.Create(ctx, CreateOrderRequest{
		OrderNumber: "PED-001",
		ClientID:    client.ID,
		Product:     "Camiseta",
		Quantity:    100,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	after, err := dashSvc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary after: %v", err)
	}
	if after.ActiveOrders != before.ActiveOrders+1 {
		t.Errorf("active = %d, want %d", after.ActiveOrders, before.ActiveOrders+1)
	}
	if after.PiecesInFlight != before.PiecesInFlight+100 {
		t.Errorf("pieces = %d, want %d", after.PiecesInFlight, before.PiecesInFlight+100)
	}

	for _, key := range entity.StageKeys {
		if got := order.Stages.Status(key); got != entity.StageStatusPending {
			t.Errorf("stage %s = %q, want pending", key, got)
		}
	}

	volumes, err := dashSvc.StageVolumes(ctx)
	if err != nil {
		t.Fatalf("stage volumes: %v", err)
	}
	for _, vol := range volumes {
		if vol.Quantity != 0 {
			t.Errorf("stage %s volume = %d, want 0 while all pending", vol.Stage, vol.Quantity)
		}
	}
}
