package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
)

type SupplierService struct {
	repo *repository.SupplierRepository
}

func NewSupplierService(repo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	CNPJ         string `json:"cnpj"`
	Address      string `json:"address"`
	Observations string `json:"observations"`
}

type UpdateSupplierRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	CNPJ         string `json:"cnpj"`
	Address      string `json:"address"`
	Observations string `json:"observations"`
	Status       string `json:"status"`
}

func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*entity.Supplier, error) {
	if !slices.Contains(entity.SupplierCategories, req.Category) {
		return nil, fmt.Errorf("unknown supplier category %q", req.Category)
	}

	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Category:     req.Category,
		Phone:        req.Phone,
		Email:        req.Email,
		CNPJ:         req.CNPJ,
		Address:      req.Address,
		Observations: req.Observations,
		Status:       entity.StatusActive,
	}

	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SupplierService) Update(ctx context.Context, id string, req UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("supplier not found: %w", err)
	}

	if req.Name != "" {
		supplier.Name = req.Name
	}
	if req.Category != "" {
		if !slices.Contains(entity.SupplierCategories, req.Category) {
			return nil, fmt.Errorf("unknown supplier category %q", req.Category)
		}
		supplier.Category = req.Category
	}
	if req.Phone != "" {
		supplier.Phone = req.Phone
	}
	if req.Email != "" {
		supplier.Email = req.Email
	}
	if req.CNPJ != "" {
		supplier.CNPJ = req.CNPJ
	}
	if req.Address != "" {
		supplier.Address = req.Address
	}
	if req.Observations != "" {
		supplier.Observations = req.Observations
	}
	if req.Status != "" {
		supplier.Status = req.Status
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *SupplierService) List(ctx context.Context, params repository.SupplierListParams) ([]entity.Supplier, int64, error) {
	return s.repo.List(ctx, params)
}

// EligibleProviders lists the assignable providers for one stage:
// active suppliers in the stage's category plus that stage's static
// in-house/client options.
func (s *SupplierService) EligibleProviders(ctx context.Context, stage entity.StageKey) ([]entity.ProviderOption, error) {
	suppliers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return entity.EligibleProviders(stage, suppliers), nil
}
