package repository

import "gorm.io/gorm"

// Repositories aggregates all data access objects.
type Repositories struct {
	User     *UserRepository
	Client   *ClientRepository
	Supplier *SupplierRepository
	Order    *OrderRepository
	Settings *SettingsRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Client:   NewClientRepository(db),
		Supplier: NewSupplierRepository(db),
		Order:    NewOrderRepository(db),
		Settings: NewSettingsRepository(db),
	}
}
