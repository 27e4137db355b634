package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/sowbrand/manager-sowbrand/internal/repository"
	"github.com/sowbrand/manager-sowbrand/internal/service"
	"github.com/sowbrand/manager-sowbrand/internal/testutil"
	"github.com/xuri/excelize/v2"
)

func TestExportAndPrintEndpoints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedTestUser(t, db, "user-001", "Test Admin", "admin@test.com", "secret")

	repos := repository.NewRepositories(db)
	orderService := service.NewOrderService(repos.Order, repos.Client)
	exportHandler := NewExportHandler(
		service.NewExportService(repos.Order, repos.Settings),
		orderService,
	)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/orders/export", exportHandler.Export)
	api.GET("/orders/print", exportHandler.Print)
	token := testutil.MakeToken(t, "user-001", "Test Admin", "admin@test.com")

	client, err := service.NewClientService(repos.Client).Create(context.Background(), service.CreateClientRequest{
		Name: "Ana Souza", CompanyName: "Acme Co",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	if _, err := orderService.Create(context.Background(), service.CreateOrderRequest{
		OrderNumber: "PED-001",
		ClientID:    client.ID,
		Product:     "Camiseta básica",
		Quantity:    120,
	}); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	w := testutil.DoJSON(t, router, http.MethodGet, "/api/v1/orders/export", token, nil)
	testutil.RequireStatus(t, w, http.StatusOK)
	if disp := w.Header().Get("Content-Disposition"); !strings.Contains(disp, ".xlsx") {
		t.Errorf("Content-Disposition = %q", disp)
	}
	f, err := excelize.OpenReader(w.Body)
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer f.Close()
	cell, err := f.GetCellValue("Pedidos", "A2")
	if err != nil || cell != "PED-001" {
		t.Errorf("A2 = %q, err %v", cell, err)
	}

	w = testutil.DoJSON(t, router, http.MethodGet, "/api/v1/orders/print?orientation=landscape", token, nil)
	testutil.RequireStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, "PED-001") || !strings.Contains(body, "A4 landscape") {
		t.Errorf("print document missing expected content")
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}
