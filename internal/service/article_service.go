package service

import (
	"context"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"
)

type ArticleService interface {
	Create(ctx context.Context, a *model.Article) error
	Get(ctx context.Context, id uint) (*model.Article, error)
	List(ctx context.Context, f repository.ArticleFilter, p pagination.Params) (*pagination.Page[model.Article], error)
	Update(ctx context.Context, id uint, patch repository.ArticlePatch) (*model.Article, error)
	Delete(ctx context.Context, id uint) error
}

type articleService struct {
	repo             repository.ArticleRepository
	manufacturerRepo repository.ManufacturerRepository
}

func NewArticleService(repo repository.ArticleRepository, mRepo repository.ManufacturerRepository) ArticleService {
	return &articleService{repo: repo, manufacturerRepo: mRepo}
}

// Create pre-empts the store on the two common failure paths so callers
// get a clearer message than a raw constraint code: a missing manufacturer
// and a duplicate barcode.
func (s *articleService) Create(ctx context.Context, a *model.Article) error {
	if errs := validator.ValidateStruct(a); len(errs) > 0 {
		return apperr.Validation("invalid data", errs)
	}

	m, err := s.manufacturerRepo.FindByID(ctx, a.ManufacturerID)
	if err != nil {
		return err
	}
	if m == nil {
		return apperr.Reference("manufacturer")
	}

	existing, err := s.repo.FindByBarcode(ctx, a.Barcode)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.Conflict("barcode")
	}

	return s.repo.Create(ctx, a)
}

func (s *articleService) Get(ctx context.Context, id uint) (*model.Article, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *articleService) List(ctx context.Context, f repository.ArticleFilter, p pagination.Params) (*pagination.Page[model.Article], error) {
	return s.repo.List(ctx, f, p)
}

// Update leaves referential checks to the store; the boundary translator
// turns a foreign-key rejection into the documented 400.
func (s *articleService) Update(ctx context.Context, id uint, patch repository.ArticlePatch) (*model.Article, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, apperr.Validation("invalid data", errs)
	}

	if patch.Barcode != nil {
		existing, err := s.repo.FindByBarcode(ctx, *patch.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.Conflict("barcode")
		}
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *articleService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
