package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/sowbrand/manager-sowbrand/internal/config"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
)

// Services aggregates all business services.
type Services struct {
	Auth      *AuthService
	Client    *ClientService
	Supplier  *SupplierService
	Order     *OrderService
	Dashboard *DashboardService
	Export    *ExportService
	Settings  *SettingsService
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	settings := NewSettingsService(repos.Settings, minioClient, cfg.MinIO.Bucket)
	return &Services{
		Auth:      NewAuthService(repos.User, rdb, cfg),
		Client:    NewClientService(repos.Client),
		Supplier:  NewSupplierService(repos.Supplier),
		Order:     NewOrderService(repos.Order, repos.Client),
		Dashboard: NewDashboardService(repos.Order),
		Export:    NewExportService(repos.Order, repos.Settings),
		Settings:  settings,
	}
}
