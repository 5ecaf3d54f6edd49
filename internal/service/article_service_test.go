package service

import (
	"context"
	"testing"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockArticleRepo struct {
	articles map[uint]*model.Article
	nextID   uint
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{articles: map[uint]*model.Article{}, nextID: 1}
}

func (m *mockArticleRepo) Create(_ context.Context, a *model.Article) error {
	a.ID = m.nextID
	m.nextID++
	cp := *a
	m.articles[a.ID] = &cp
	return nil
}

func (m *mockArticleRepo) FindByID(_ context.Context, id uint) (*model.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *mockArticleRepo) FindByBarcode(_ context.Context, barcode string) (*model.Article, error) {
	for _, a := range m.articles {
		if a.Barcode == barcode {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockArticleRepo) List(_ context.Context, _ repository.ArticleFilter, p pagination.Params) (*pagination.Page[model.Article], error) {
	return pagination.NewPage[model.Article](nil, 0, p.Normalize()), nil
}

func (m *mockArticleRepo) Update(_ context.Context, id uint, patch repository.ArticlePatch) (*model.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, nil
	}
	if patch.Barcode != nil {
		a.Barcode = *patch.Barcode
	}
	if patch.Stock != nil {
		a.Stock = *patch.Stock
	}
	cp := *a
	return &cp, nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id uint) error {
	delete(m.articles, id)
	return nil
}

type mockManufacturerRepo struct {
	manufacturers map[uint]*model.Manufacturer
}

func (m *mockManufacturerRepo) Create(_ context.Context, mf *model.Manufacturer) error {
	m.manufacturers[mf.ID] = mf
	return nil
}

func (m *mockManufacturerRepo) FindByID(_ context.Context, id uint) (*model.Manufacturer, error) {
	mf, ok := m.manufacturers[id]
	if !ok {
		return nil, nil
	}
	return mf, nil
}

func (m *mockManufacturerRepo) List(_ context.Context, _ repository.ManufacturerFilter, p pagination.Params) (*pagination.Legacy[model.Manufacturer], error) {
	return pagination.NewLegacy[model.Manufacturer](nil, 0, p.Normalize()), nil
}

func (m *mockManufacturerRepo) Update(_ context.Context, id uint, _ repository.ManufacturerPatch) (*model.Manufacturer, error) {
	return m.manufacturers[id], nil
}

func (m *mockManufacturerRepo) Delete(_ context.Context, id uint) error {
	delete(m.manufacturers, id)
	return nil
}

func newArticleService() (ArticleService, *mockArticleRepo) {
	aRepo := newMockArticleRepo()
	mRepo := &mockManufacturerRepo{manufacturers: map[uint]*model.Manufacturer{
		1: {ID: 1, Name: "Acme"},
	}}
	return NewArticleService(aRepo, mRepo), aRepo
}

func TestCreateArticle(t *testing.T) {
	svc, _ := newArticleService()
	a := &model.Article{Barcode: "750123456789", ManufacturerID: 1, Stock: 5}
	require.NoError(t, svc.Create(context.Background(), a))
	assert.NotZero(t, a.ID)
}

func TestCreateArticleUnknownManufacturer(t *testing.T) {
	svc, _ := newArticleService()
	a := &model.Article{Barcode: "750123456789", ManufacturerID: 42}
	err := svc.Create(context.Background(), a)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindReference, appErr.Kind)
	assert.Equal(t, "manufacturer does not exist", appErr.Message)
}

func TestCreateArticleDuplicateBarcode(t *testing.T) {
	svc, _ := newArticleService()
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, &model.Article{Barcode: "750123456789", ManufacturerID: 1}))

	err := svc.Create(ctx, &model.Article{Barcode: "750123456789", ManufacturerID: 1})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, "barcode already exists", appErr.Message)
}

func TestCreateArticleValidation(t *testing.T) {
	svc, _ := newArticleService()
	err := svc.Create(context.Background(), &model.Article{Barcode: "x", ManufacturerID: 1})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.NotNil(t, appErr.Details)
}

func TestUpdateArticleBarcodeConflict(t *testing.T) {
	svc, _ := newArticleService()
	ctx := context.Background()
	first := &model.Article{Barcode: "750123456789", ManufacturerID: 1}
	require.NoError(t, svc.Create(ctx, first))
	second := &model.Article{Barcode: "750987654321", ManufacturerID: 1}
	require.NoError(t, svc.Create(ctx, second))

	// Moving to another article's barcode is a conflict.
	taken := first.Barcode
	_, err := svc.Update(ctx, second.ID, repository.ArticlePatch{Barcode: &taken})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)

	// Re-submitting your own barcode is fine.
	own := second.Barcode
	updated, err := svc.Update(ctx, second.ID, repository.ArticlePatch{Barcode: &own})
	require.NoError(t, err)
	assert.Equal(t, own, updated.Barcode)
}
