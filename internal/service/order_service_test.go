package service

import (
	"context"
	"testing"

	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
	"github.com/sowbrand/manager-sowbrand/internal/testutil"
)

func setupOrderService(t *testing.T) (*OrderService, *ClientService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return NewOrderService(repos.Order, repos.Client), NewClientService(repos.Client)
}

func mustCreateClient(t *testing.T, svc *ClientService, name, company string) *entity.Client {
	t.Helper()
	client, err := svc.Create(context.Background(), CreateClientRequest{
		Name:        name,
		CompanyName: company,
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}

func mustCreateOrder(t *testing.T, svc *OrderService, number, clientID, product string, qty int) *entity.ProductionOrder {
	t.Helper()
	order, err := svc.Create(context.Background(), CreateOrderRequest{
		OrderNumber: number,
		ClientID:    clientID,
		Product:     product,
		Quantity:    qty,
	})
	if err != nil {
		t.Fatalf("create order %s: %v", number, err)
	}
	return order
}

func mustPatchStage(t *testing.T, svc *OrderService, id string, key entity.StageKey, status string) {
	t.Helper()
	if _, err := svc.PatchStage(context.Background(), id, key, StagePatchRequest{Status: &status}); err != nil {
		t.Fatalf("patch stage %s: %v", key, err)
	}
}

func orderNumbers(orders []entity.ProductionOrder) map[string]bool {
	out := make(map[string]bool, len(orders))
	for i := range orders {
		out[orders[i].OrderNumber] = true
	}
	return out
}

func TestCreateOrderValidation(t *testing.T) {
	svc, clientSvc := setupOrderService(t)
	ctx := context.Background()
	client := mustCreateClient(t, clientSvc, "Ana", "Acme Co")

	if _, err := svc.Create(ctx, CreateOrderRequest{
		OrderNumber: "PED-000", ClientID: client.ID, Product: "Camiseta", Quantity: 0,
	}); err == nil {
		t.Error("expected error for non-positive quantity")
	}

	if _, err := svc.Create(ctx, CreateOrderRequest{
		OrderNumber: "PED-000", ClientID: "missing", Product: "Camiseta", Quantity: 10,
	}); err == nil {
		t.Error("expected error for unknown client")
	}

	order := mustCreateOrder(t, svc, "PED-001", client.ID, "Camiseta", 100)
	if order.Status != entity.OrderStatusInProduction {
		t.Errorf("new order status = %q", order.Status)
	}
	if order.Flag != entity.OrderFlagPending {
		t.Errorf("new order flag = %q, want pending", order.Flag)
	}
}

func TestPatchStagePersistsOnlyTheTarget(t *testing.T) {
	svc, clientSvc := setupOrderService(t)
	ctx := context.Background()
	client := mustCreateClient(t, clientSvc, "Ana", "Acme Co")
	order := mustCreateOrder(t, svc, "PED-001", client.ID, "Camiseta", 100)

	provider := "Costura Fina"
	if _, err := svc.PatchStage(ctx, order.ID, entity.StageSew, StagePatchRequest{Provider: &provider}); err != nil {
		t.Fatalf("patch provider: %v", err)
	}
	mustPatchStage(t, svc, order.ID, entity.StageCut, entity.StageStatusDone)

	got, err := svc.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.Stages.Sew.Provider != provider {
		t.Errorf("sew.provider = %q, want %q", got.Stages.Sew.Provider, provider)
	}
	if got.Stages.Sew.Status != "" {
		t.Errorf("sew.status = %q, want untouched", got.Stages.Sew.Status)
	}
	if got.Stages.Cut.Status != entity.StageStatusDone {
		t.Errorf("cut.status = %q, want %q", got.Stages.Cut.Status, entity.StageStatusDone)
	}
	if got.Stages.Modeling != (entity.Stage{}) {
		t.Errorf("modeling mutated: %+v", got.Stages.Modeling)
	}
}

func TestListFilters(t *testing.T) {
	svc, clientSvc := setupOrderService(t)
	ctx := context.Background()

	acme := mustCreateClient(t, clientSvc, "Ana", "Acme Co")
	urban := mustCreateClient(t, clientSvc, "Bruno", "Urban Wear")

	o1 := mustCreateOrder(t, svc, "PED-001", acme.ID, "Camiseta Básica", 100)
	o2 := mustCreateOrder(t, svc, "PED-002", acme.ID, "Moletom", 50)
	o3 := mustCreateOrder(t, svc, "PED-003", urban.ID, "Camiseta Oversized", 80)

	mustPatchStage(t, svc, o1.ID, entity.StageCut, entity.StageStatusLate)
	mustPatchStage(t, svc, o2.ID, entity.StageSew, entity.StageStatusInProgress)
	mustPatchStage(t, svc, o3.ID, entity.StageCut, entity.StageStatusDone)

	// Case-insensitive substring over number, product and company.
	got, err := svc.ListFiltered(ctx, "camiseta", "", TabAll)
	if err != nil {
		t.Fatalf("keyword filter: %v", err)
	}
	if nums := orderNumbers(got); len(nums) != 2 || !nums["PED-001"] || !nums["PED-003"] {
		t.Errorf("keyword filter = %v", nums)
	}

	got, err = svc.ListFiltered(ctx, "acme", "", TabAll)
	if err != nil {
		t.Fatalf("company keyword: %v", err)
	}
	if nums := orderNumbers(got); len(nums) != 2 || !nums["PED-001"] || !nums["PED-002"] {
		t.Errorf("company keyword = %v", nums)
	}

	// Stage tab keeps orders with at least one matching stage status.
	got, err = svc.ListFiltered(ctx, "", "", TabLate)
	if err != nil {
		t.Fatalf("tab filter: %v", err)
	}
	if nums := orderNumbers(got); len(nums) != 1 || !nums["PED-001"] {
		t.Errorf("late tab = %v", nums)
	}

	// Client filter is an exact id match.
	got, err = svc.ListFiltered(ctx, "", urban.ID, TabAll)
	if err != nil {
		t.Fatalf("client filter: %v", err)
	}
	if nums := orderNumbers(got); len(nums) != 1 || !nums["PED-003"] {
		t.Errorf("client filter = %v", nums)
	}

	// Filters AND together, independent of application order: the
	// combined result equals the intersection of individual results.
	byKeyword, _ := svc.ListFiltered(ctx, "camiseta", "", TabAll)
	byTab, _ := svc.ListFiltered(ctx, "", "", TabDone)
	combined, err := svc.ListFiltered(ctx, "camiseta", "", TabDone)
	if err != nil {
		t.Fatalf("combined filter: %v", err)
	}
	want := map[string]bool{}
	tabNums := orderNumbers(byTab)
	for num := range orderNumbers(byKeyword) {
		if tabNums[num] {
			want[num] = true
		}
	}
	gotNums := orderNumbers(combined)
	if len(gotNums) != len(want) {
		t.Fatalf("combined = %v, want %v", gotNums, want)
	}
	for num := range want {
		if !gotNums[num] {
			t.Errorf("combined missing %s", num)
		}
	}
}

func TestListPagination(t *testing.T) {
	svc, clientSvc := setupOrderService(t)
	ctx := context.Background()
	client := mustCreateClient(t, clientSvc, "Ana", "Acme Co")

	for _, num := range []string{"PED-001", "PED-002", "PED-003"} {
		mustCreateOrder(t, svc, num, client.ID, "Camiseta", 10)
	}

	page1, total, err := svc.List(ctx, OrderListParams{Page: 1, Size: 2})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if total != 3 || len(page1) != 2 {
		t.Fatalf("page 1: total=%d len=%d", total, len(page1))
	}

	page2, _, err := svc.List(ctx, OrderListParams{Page: 2, Size: 2})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("page 2 len=%d", len(page2))
	}

	page3, _, err := svc.List(ctx, OrderListParams{Page: 3, Size: 2})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if len(page3) != 0 {
		t.Errorf("page 3 should be empty, got %d", len(page3))
	}
}
