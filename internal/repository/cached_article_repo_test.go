package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-warehouse-api/internal/cache"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubArticleRepo counts store hits and serves from an in-memory map.
type stubArticleRepo struct {
	articles    map[uint]*model.Article
	findCalls   int
	listCalls   int
	listResults []model.Article
}

func (s *stubArticleRepo) Create(_ context.Context, a *model.Article) error {
	s.articles[a.ID] = a
	return nil
}

func (s *stubArticleRepo) FindByID(_ context.Context, id uint) (*model.Article, error) {
	s.findCalls++
	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *stubArticleRepo) FindByBarcode(_ context.Context, barcode string) (*model.Article, error) {
	for _, a := range s.articles {
		if a.Barcode == barcode {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubArticleRepo) List(_ context.Context, _ ArticleFilter, p pagination.Params) (*pagination.Page[model.Article], error) {
	s.listCalls++
	p = p.Normalize()
	return pagination.NewPage(s.listResults, int64(len(s.listResults)), p), nil
}

func (s *stubArticleRepo) Update(_ context.Context, id uint, patch ArticlePatch) (*model.Article, error) {
	a, ok := s.articles[id]
	if !ok {
		return nil, errors.New("no row")
	}
	if patch.Description != nil {
		a.Description = patch.Description
	}
	if patch.Stock != nil {
		a.Stock = *patch.Stock
	}
	cp := *a
	return &cp, nil
}

func (s *stubArticleRepo) Delete(_ context.Context, id uint) error {
	delete(s.articles, id)
	return nil
}

// failingCache errors on every operation, simulating an unreachable backend.
type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, error) {
	return "", errors.New("connection refused")
}
func (failingCache) Set(context.Context, string, string, time.Duration) error {
	return errors.New("connection refused")
}
func (failingCache) Delete(context.Context, string) error { return errors.New("connection refused") }
func (failingCache) Ping(context.Context) error           { return errors.New("connection refused") }
func (failingCache) Close() error                         { return nil }

func newStub() *stubArticleRepo {
	desc := "baking soda"
	return &stubArticleRepo{articles: map[uint]*model.Article{
		1: {ID: 1, Barcode: "750123456789", Description: &desc, ManufacturerID: 1, Stock: 40},
	}}
}

func TestCachedFindByIDServesSecondReadFromCache(t *testing.T) {
	ctx := context.Background()
	stub := newStub()
	repo := NewCachedArticleRepo(stub, cache.NewMemory(), zap.NewNop())

	a, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, 1, stub.findCalls)

	again, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, a.Barcode, again.Barcode)
	assert.Equal(t, 1, stub.findCalls, "second read must not touch the store")
}

func TestCachedFindByIDAbsenceNotCached(t *testing.T) {
	ctx := context.Background()
	stub := newStub()
	repo := NewCachedArticleRepo(stub, cache.NewMemory(), zap.NewNop())

	a, err := repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, a)

	_, _ = repo.FindByID(ctx, 99)
	assert.Equal(t, 2, stub.findCalls, "absence is not a cacheable snapshot")
}

// Writes pass through without invalidation, so a read inside the TTL
// window returns the pre-write snapshot. After expiry the store wins.
func TestCachedReadStaleUntilExpiry(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	c, err := cache.NewRedis(cache.Config{Addr: srv.Addr()})
	require.NoError(t, err)
	defer c.Close()

	stub := newStub()
	repo := NewCachedArticleRepo(stub, c, zap.NewNop())

	before, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 40, before.Stock)

	newStock := 15
	_, err = repo.Update(ctx, 1, ArticlePatch{Stock: &newStock})
	require.NoError(t, err)

	stale, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 40, stale.Stock, "within the TTL the snapshot is served as-is")

	srv.FastForward(61 * time.Second)
	fresh, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 15, fresh.Stock)
}

func TestCachedListUsesCanonicalKey(t *testing.T) {
	ctx := context.Background()
	stub := newStub()
	stub.listResults = []model.Article{*stub.articles[1]}
	repo := NewCachedArticleRepo(stub, cache.NewMemory(), zap.NewNop())

	mID := uint(1)
	_, err := repo.List(ctx, ArticleFilter{ManufacturerID: &mID, Barcode: "750"}, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, stub.listCalls)

	// Same filter expressed with fresh pointers and default params.
	mID2 := uint(1)
	_, err = repo.List(ctx, ArticleFilter{Barcode: "750", ManufacturerID: &mID2}, pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, 1, stub.listCalls, "equivalent filters must share one cache entry")

	// A different page is a different entry.
	_, err = repo.List(ctx, ArticleFilter{Barcode: "750", ManufacturerID: &mID2}, pagination.Params{Page: 2, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, stub.listCalls)
}

func TestCachedReadsDegradeWhenCacheDown(t *testing.T) {
	ctx := context.Background()
	stub := newStub()
	repo := NewCachedArticleRepo(stub, failingCache{}, zap.NewNop())

	a, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, a)

	_, err = repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.findCalls, "every read falls through to the store")

	page, err := repo.List(ctx, ArticleFilter{}, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.NotNil(t, page)
}

func TestArticleFilterCacheKeyDeterministic(t *testing.T) {
	mID := uint(3)
	stock := 7
	f := ArticleFilter{Barcode: "abc", Description: "soap", ManufacturerID: &mID, Stock: &stock}
	p := pagination.Params{Page: 2, PerPage: 20}
	assert.Equal(t, f.CacheKey(p), f.CacheKey(p))
	assert.Equal(t,
		"barcode=abc&description=soap&manufacturerId=3&page=2&per_page=20&stock=7",
		f.CacheKey(p))
}
