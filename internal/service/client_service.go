package service

import (
	"context"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"
)

type ClientService interface {
	Create(ctx context.Context, c *model.Client) error
	Get(ctx context.Context, id uint) (*model.Client, error)
	List(ctx context.Context, f repository.ClientFilter, p pagination.Params) (*pagination.Page[model.Client], error)
	Update(ctx context.Context, id uint, patch repository.ClientPatch) (*model.Client, error)
	Delete(ctx context.Context, id uint) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

// Phone format and clientType enum membership are covered by the
// client_phone/client_type validation rules.
func (s *clientService) Create(ctx context.Context, c *model.Client) error {
	if errs := validator.ValidateStruct(c); len(errs) > 0 {
		return apperr.Validation("invalid data", errs)
	}
	return s.repo.Create(ctx, c)
}

func (s *clientService) Get(ctx context.Context, id uint) (*model.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *clientService) List(ctx context.Context, f repository.ClientFilter, p pagination.Params) (*pagination.Page[model.Client], error) {
	return s.repo.List(ctx, f, p)
}

func (s *clientService) Update(ctx context.Context, id uint, patch repository.ClientPatch) (*model.Client, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, apperr.Validation("invalid data", errs)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *clientService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
