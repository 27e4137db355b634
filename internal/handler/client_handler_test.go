package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
	"github.com/sowbrand/manager-sowbrand/internal/service"
	"github.com/sowbrand/manager-sowbrand/internal/testutil"
)

func setupClientTest(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.SeedTestUser(t, db, "user-001", "Test Admin", "admin@test.com", "secret")

	repos := repository.NewRepositories(db)
	clientHandler := NewClientHandler(service.NewClientService(repos.Client))

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	clients := api.Group("/clients")
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	return router, testutil.MakeToken(t, "user-001", "Test Admin", "admin@test.com")
}

func TestClientCRUD(t *testing.T) {
	router, token := setupClientTest(t)

	// Create
	w := testutil.DoJSON(t, router, http.MethodPost, "/api/v1/clients", token, map[string]string{
		"name":         "Ana Souza",
		"company_name": "Acme Co",
		"email":        "ana@acme.com",
	})
	testutil.RequireStatus(t, w, http.StatusOK)
	var created entity.Client
	testutil.DecodeData(t, w, &created)
	if created.ID == "" || created.Status != entity.StatusActive {
		t.Fatalf("created client = %+v", created)
	}

	// Get
	w = testutil.DoJSON(t, router, http.MethodGet, "/api/v1/clients/"+created.ID, token, nil)
	testutil.RequireStatus(t, w, http.StatusOK)
	var fetched entity.Client
	testutil.DecodeData(t, w, &fetched)
	if fetched.CompanyName != "Acme Co" {
		t.Errorf("company = %q", fetched.CompanyName)
	}

	// Update
	w = testutil.DoJSON(t, router, http.MethodPut, "/api/v1/clients/"+created.ID, token, map[string]string{
		"phone":  "11 99999-0000",
		"status": entity.StatusInactive,
	})
	testutil.RequireStatus(t, w, http.StatusOK)
	var updated entity.Client
	testutil.DecodeData(t, w, &updated)
	if updated.Phone != "11 99999-0000" || updated.Status != entity.StatusInactive {
		t.Errorf("updated client = %+v", updated)
	}
	if updated.CompanyName != "Acme Co" {
		t.Errorf("untouched field changed: %q", updated.CompanyName)
	}

	// List
	w = testutil.DoJSON(t, router, http.MethodGet, "/api/v1/clients?keyword=acme", token, nil)
	testutil.RequireStatus(t, w, http.StatusOK)
	var listed struct {
		Items []entity.Client `json:"items"`
		Total int64           `json:"total"`
	}
	testutil.DecodeData(t, w, &listed)
	if listed.Total != 1 || len(listed.Items) != 1 {
		t.Fatalf("list = %+v", listed)
	}

	// Delete
	w = testutil.DoJSON(t, router, http.MethodDelete, "/api/v1/clients/"+created.ID, token, nil)
	testutil.RequireStatus(t, w, http.StatusOK)
	w = testutil.DoJSON(t, router, http.MethodGet, "/api/v1/clients/"+created.ID, token, nil)
	testutil.RequireStatus(t, w, http.StatusNotFound)
}

func TestClientCreateRequiresName(t *testing.T) {
	router, token := setupClientTest(t)

	w := testutil.DoJSON(t, router, http.MethodPost, "/api/v1/clients", token, map[string]string{
		"company_name": "Acme Co",
	})
	testutil.RequireStatus(t, w, http.StatusBadRequest)
}

func TestClientRoutesRequireAuth(t *testing.T) {
	router, _ := setupClientTest(t)

	w := testutil.DoJSON(t, router, http.MethodGet, "/api/v1/clients", "", nil)
	testutil.RequireStatus(t, w, http.StatusUnauthorized)
}
