package service

import (
	"context"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"
)

type PlacementService interface {
	Create(ctx context.Context, pl *model.Placement) error
	Get(ctx context.Context, id uint) (*model.Placement, error)
	List(ctx context.Context, f repository.PlacementFilter, p pagination.Params) (*pagination.Page[model.Placement], error)
	Update(ctx context.Context, id uint, patch repository.PlacementPatch) (*model.Placement, error)
	Delete(ctx context.Context, id uint) error
}

type placementService struct {
	repo repository.PlacementRepository
}

func NewPlacementService(repo repository.PlacementRepository) PlacementService {
	return &placementService{repo: repo}
}

// Article and location references are enforced by the store's foreign
// keys; a rejection surfaces as the documented constraint payload.
func (s *placementService) Create(ctx context.Context, pl *model.Placement) error {
	if errs := validator.ValidateStruct(pl); len(errs) > 0 {
		return apperr.Validation("invalid data", errs)
	}
	return s.repo.Create(ctx, pl)
}

func (s *placementService) Get(ctx context.Context, id uint) (*model.Placement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *placementService) List(ctx context.Context, f repository.PlacementFilter, p pagination.Params) (*pagination.Page[model.Placement], error) {
	return s.repo.List(ctx, f, p)
}

func (s *placementService) Update(ctx context.Context, id uint, patch repository.PlacementPatch) (*model.Placement, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, apperr.Validation("invalid data", errs)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *placementService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
