package service

import (
	"context"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"
)

type BuyService interface {
	Create(ctx context.Context, b *model.Buy) error
	Get(ctx context.Context, id uint) (*model.Buy, error)
	List(ctx context.Context, f repository.BuyFilter, p pagination.Params) (*pagination.Page[model.Buy], error)
	Update(ctx context.Context, id uint, patch repository.BuyPatch) (*model.Buy, error)
	Delete(ctx context.Context, id uint) error
}

type buyService struct {
	repo repository.BuyRepository
}

func NewBuyService(repo repository.BuyRepository) BuyService {
	return &buyService{repo: repo}
}

func (s *buyService) Create(ctx context.Context, b *model.Buy) error {
	if errs := validator.ValidateStruct(b); len(errs) > 0 {
		return apperr.Validation("invalid data", errs)
	}
	return s.repo.Create(ctx, b)
}

func (s *buyService) Get(ctx context.Context, id uint) (*model.Buy, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *buyService) List(ctx context.Context, f repository.BuyFilter, p pagination.Params) (*pagination.Page[model.Buy], error) {
	return s.repo.List(ctx, f, p)
}

func (s *buyService) Update(ctx context.Context, id uint, patch repository.BuyPatch) (*model.Buy, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, apperr.Validation("invalid data", errs)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *buyService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
