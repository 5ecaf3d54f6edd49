package service

import (
	"context"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"
)

type LocationService interface {
	Create(ctx context.Context, l *model.Location) error
	Get(ctx context.Context, id uint) (*model.Location, error)
	List(ctx context.Context, f repository.LocationFilter, p pagination.Params) (*pagination.Page[model.Location], error)
	Update(ctx context.Context, id uint, patch repository.LocationPatch) (*model.Location, error)
	Delete(ctx context.Context, id uint) error
}

type locationService struct {
	repo repository.LocationRepository
}

func NewLocationService(repo repository.LocationRepository) LocationService {
	return &locationService{repo: repo}
}

func (s *locationService) Create(ctx context.Context, l *model.Location) error {
	if errs := validator.ValidateStruct(l); len(errs) > 0 {
		return apperr.Validation("invalid data", errs)
	}
	return s.repo.Create(ctx, l)
}

func (s *locationService) Get(ctx context.Context, id uint) (*model.Location, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *locationService) List(ctx context.Context, f repository.LocationFilter, p pagination.Params) (*pagination.Page[model.Location], error) {
	return s.repo.List(ctx, f, p)
}

func (s *locationService) Update(ctx context.Context, id uint, patch repository.LocationPatch) (*model.Location, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, apperr.Validation("invalid data", errs)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *locationService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
