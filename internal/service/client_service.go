package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
)

type ClientService struct {
	repo *repository.ClientRepository
}

func NewClientService(repo *repository.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	CompanyName  string `json:"company_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Observations string `json:"observations"`
}

type UpdateClientRequest struct {
	Name         string `json:"name"`
	CompanyName  string `json:"company_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Observations string `json:"observations"`
	Status       string `json:"status"`
}

func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*entity.Client, error) {
	client := &entity.Client{
		ID:           uuid.New().String(),
		Name:         req.Name,
		CompanyName:  req.CompanyName,
		Email:        req.Email,
		Phone:        req.Phone,
		Observations: req.Observations,
		Status:       entity.StatusActive,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

func (s *ClientService) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClientService) Update(ctx context.Context, id string, req UpdateClientRequest) (*entity.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}

	if req.Name != "" {
		client.Name = req.Name
	}
	if req.CompanyName != "" {
		client.CompanyName = req.CompanyName
	}
	if req.Email != "" {
		client.Email = req.Email
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.Observations != "" {
		client.Observations = req.Observations
	}
	if req.Status != "" {
		client.Status = req.Status
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ClientService) List(ctx context.Context, params repository.ClientListParams) ([]entity.Client, int64, error) {
	return s.repo.List(ctx, params)
}
