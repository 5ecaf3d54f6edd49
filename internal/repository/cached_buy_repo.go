package repository

import (
	"context"
	"fmt"

	"go-warehouse-api/internal/cache"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"go.uber.org/zap"
)

type cachedBuyRepo struct {
	BuyRepository
	cache cache.Client
	log   *zap.Logger
}

func NewCachedBuyRepo(inner BuyRepository, c cache.Client, log *zap.Logger) BuyRepository {
	return &cachedBuyRepo{BuyRepository: inner, cache: c, log: log}
}

func (r *cachedBuyRepo) FindByID(ctx context.Context, id uint) (*model.Buy, error) {
	key := fmt.Sprintf("buys:%d", id)
	if b, ok := cacheGet[model.Buy](ctx, r.cache, r.log, key); ok {
		return &b, nil
	}
	b, err := r.BuyRepository.FindByID(ctx, id)
	if err != nil || b == nil {
		return b, err
	}
	cachePut(ctx, r.cache, r.log, key, b)
	return b, nil
}

func (r *cachedBuyRepo) List(ctx context.Context, f BuyFilter, p pagination.Params) (*pagination.Page[model.Buy], error) {
	key := "buys:all:" + f.CacheKey(p.Normalize())
	if page, ok := cacheGet[pagination.Page[model.Buy]](ctx, r.cache, r.log, key); ok {
		return &page, nil
	}
	page, err := r.BuyRepository.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	cachePut(ctx, r.cache, r.log, key, page)
	return page, nil
}
