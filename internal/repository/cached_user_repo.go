package repository

import (
	"context"
	"fmt"

	"go-warehouse-api/internal/cache"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"go.uber.org/zap"
)

// cachedUserRepo caches FindByID and List only. Username lookups back the
// login path and the uniqueness check, so they always hit the store.
type cachedUserRepo struct {
	UserRepository
	cache cache.Client
	log   *zap.Logger
}

func NewCachedUserRepo(inner UserRepository, c cache.Client, log *zap.Logger) UserRepository {
	return &cachedUserRepo{UserRepository: inner, cache: c, log: log}
}

// FindByID may serve a cached snapshot. The snapshot round-trips through
// JSON, which strips PasswordHash, so a user read here can never pass a
// CheckPassword call; credential checks must go through FindByUsername.
func (r *cachedUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	key := fmt.Sprintf("users:%d", id)
	if u, ok := cacheGet[model.User](ctx, r.cache, r.log, key); ok {
		return &u, nil
	}
	u, err := r.UserRepository.FindByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	cachePut(ctx, r.cache, r.log, key, u)
	return u, nil
}

func (r *cachedUserRepo) List(ctx context.Context, f UserFilter, p pagination.Params) (*pagination.Page[model.User], error) {
	key := "users:all:" + f.CacheKey(p.Normalize())
	if page, ok := cacheGet[pagination.Page[model.User]](ctx, r.cache, r.log, key); ok {
		return &page, nil
	}
	page, err := r.UserRepository.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	cachePut(ctx, r.cache, r.log, key, page)
	return page, nil
}
