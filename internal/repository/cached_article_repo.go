package repository

import (
	"context"
	"fmt"

	"go-warehouse-api/internal/cache"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"go.uber.org/zap"
)

// cachedArticleRepo adds a cache-aside step in front of the read path.
// Writes pass through the embedded repository untouched.
type cachedArticleRepo struct {
	ArticleRepository
	cache cache.Client
	log   *zap.Logger
}

func NewCachedArticleRepo(inner ArticleRepository, c cache.Client, log *zap.Logger) ArticleRepository {
	return &cachedArticleRepo{ArticleRepository: inner, cache: c, log: log}
}

func (r *cachedArticleRepo) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	key := fmt.Sprintf("articles:%d", id)
	if a, ok := cacheGet[model.Article](ctx, r.cache, r.log, key); ok {
		return &a, nil
	}
	a, err := r.ArticleRepository.FindByID(ctx, id)
	if err != nil || a == nil {
		return a, err
	}
	cachePut(ctx, r.cache, r.log, key, a)
	return a, nil
}

func (r *cachedArticleRepo) List(ctx context.Context, f ArticleFilter, p pagination.Params) (*pagination.Page[model.Article], error) {
	key := "articles:all:" + f.CacheKey(p.Normalize())
	if page, ok := cacheGet[pagination.Page[model.Article]](ctx, r.cache, r.log, key); ok {
		return &page, nil
	}
	page, err := r.ArticleRepository.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	cachePut(ctx, r.cache, r.log, key, page)
	return page, nil
}
