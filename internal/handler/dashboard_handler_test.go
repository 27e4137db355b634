package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
	"github.com/sowbrand/manager-sowbrand/internal/service"
	"github.com/sowbrand/manager-sowbrand/internal/testutil"
)

func TestDashboardEndpoints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedTestUser(t, db, "user-001", "Test Admin", "admin@test.com", "secret")

	repos := repository.NewRepositories(db)
	orderService := service.NewOrderService(repos.Order, repos.Client)
	dashboardHandler := NewDashboardHandler(service.NewDashboardService(repos.Order))

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.Summary)
	dashboard.GET("/stage-volume", dashboardHandler.StageVolumes)
	dashboard.GET("/status-breakdown", dashboardHandler.StatusBreakdown)
	token := testutil.MakeToken(t, "user-001", "Test Admin", "admin@test.com")

	client, err := service.NewClientService(repos.Client).Create(context.Background(), service.CreateClientRequest{
		Name: "Ana Souza", CompanyName: "Acme Co",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	order, err := orderService.Create(context.Background(), service.CreateOrderRequest{
		OrderNumber: "PED-001",
		ClientID:    client.ID,
		Product:     "Camiseta básica",
		Quantity:    120,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if _, err := orderService.PatchStage(context.Background(), order.ID, entity.StageCut, service.StagePatchRequest{
		Status: ptr(entity.StageStatusInProgress),
	}); err != nil {
		t.Fatalf("patch stage: %v", err)
	}

	w := testutil.DoJSON(t, router, http.MethodGet, "/api/v1/dashboard/summary", token, nil)
	testutil.RequireStatus(t, w, http.StatusOK)
	var summary service.Summary
	testutil.DecodeData(t, w, &summary)
	if summary.ActiveOrders != 1 || summary.PiecesInFlight != 120 || summary.Delivered != 0 {
		t.Errorf("summary = %+v", summary)
	}

	w = testutil.DoJSON(t, router, http.MethodGet, "/api/v1/dashboard/stage-volume", token, nil)
	testutil.RequireStatus(t, w, http.StatusOK)
	var volumes []service.StageVolume
	testutil.DecodeData(t, w, &volumes)
	if len(volumes) != len(entity.StageKeys) {
		t.Fatalf("volume bars = %d", len(volumes))
	}
	for _, v := range volumes {
		want := 0
		if v.Stage == entity.StageCut {
			want = 120
		}
		if v.Quantity != want {
			t.Errorf("volume for %s = %d, want %d", v.Stage, v.Quantity, want)
		}
	}

	w = testutil.DoJSON(t, router, http.MethodGet, "/api/v1/dashboard/status-breakdown", token, nil)
	testutil.RequireStatus(t, w, http.StatusOK)
	var breakdown service.StatusBreakdown
	testutil.DecodeData(t, w, &breakdown)
	if breakdown.InProgress != 1 || breakdown.Pending != 0 {
		t.Errorf("breakdown = %+v", breakdown)
	}
}

func ptr(s string) *string { return &s }
