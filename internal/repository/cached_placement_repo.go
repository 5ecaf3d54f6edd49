package repository

import (
	"context"
	"fmt"

	"go-warehouse-api/internal/cache"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"go.uber.org/zap"
)

type cachedPlacementRepo struct {
	PlacementRepository
	cache cache.Client
	log   *zap.Logger
}

func NewCachedPlacementRepo(inner PlacementRepository, c cache.Client, log *zap.Logger) PlacementRepository {
	return &cachedPlacementRepo{PlacementRepository: inner, cache: c, log: log}
}

func (r *cachedPlacementRepo) FindByID(ctx context.Context, id uint) (*model.Placement, error) {
	key := fmt.Sprintf("placements:%d", id)
	if pl, ok := cacheGet[model.Placement](ctx, r.cache, r.log, key); ok {
		return &pl, nil
	}
	pl, err := r.PlacementRepository.FindByID(ctx, id)
	if err != nil || pl == nil {
		return pl, err
	}
	cachePut(ctx, r.cache, r.log, key, pl)
	return pl, nil
}

func (r *cachedPlacementRepo) List(ctx context.Context, f PlacementFilter, p pagination.Params) (*pagination.Page[model.Placement], error) {
	key := "placements:all:" + f.CacheKey(p.Normalize())
	if page, ok := cacheGet[pagination.Page[model.Placement]](ctx, r.cache, r.log, key); ok {
		return &page, nil
	}
	page, err := r.PlacementRepository.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	cachePut(ctx, r.cache, r.log, key, page)
	return page, nil
}
