package handler

import (
	"github.com/sowbrand/manager-sowbrand/internal/service"
)

// Handlers aggregates all HTTP handlers.
type Handlers struct {
	Auth      *AuthHandler
	Client    *ClientHandler
	Supplier  *SupplierHandler
	Order     *OrderHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
	Settings  *SettingsHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(services.Auth),
		Client:    NewClientHandler(services.Client),
		Supplier:  NewSupplierHandler(services.Supplier),
		Order:     NewOrderHandler(services.Order),
		Dashboard: NewDashboardHandler(services.Dashboard),
		Export:    NewExportHandler(services.Export, services.Order),
		Settings:  NewSettingsHandler(services.Settings),
	}
}
