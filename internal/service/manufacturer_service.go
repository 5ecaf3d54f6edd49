package service

import (
	"context"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"
)

type ManufacturerService interface {
	Create(ctx context.Context, m *model.Manufacturer) error
	Get(ctx context.Context, id uint) (*model.Manufacturer, error)
	List(ctx context.Context, f repository.ManufacturerFilter, p pagination.Params) (*pagination.Legacy[model.Manufacturer], error)
	Update(ctx context.Context, id uint, patch repository.ManufacturerPatch) (*model.Manufacturer, error)
	Delete(ctx context.Context, id uint) error
}

type manufacturerService struct {
	repo repository.ManufacturerRepository
}

func NewManufacturerService(repo repository.ManufacturerRepository) ManufacturerService {
	return &manufacturerService{repo: repo}
}

func (s *manufacturerService) Create(ctx context.Context, m *model.Manufacturer) error {
	if errs := validator.ValidateStruct(m); len(errs) > 0 {
		return apperr.Validation("invalid data", errs)
	}
	return s.repo.Create(ctx, m)
}

func (s *manufacturerService) Get(ctx context.Context, id uint) (*model.Manufacturer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *manufacturerService) List(ctx context.Context, f repository.ManufacturerFilter, p pagination.Params) (*pagination.Legacy[model.Manufacturer], error) {
	return s.repo.List(ctx, f, p)
}

func (s *manufacturerService) Update(ctx context.Context, id uint, patch repository.ManufacturerPatch) (*model.Manufacturer, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, apperr.Validation("invalid data", errs)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *manufacturerService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
