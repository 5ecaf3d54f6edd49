package repository

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"gorm.io/gorm"
)

// ArticleFilter narrows List results. String fields are substring matches,
// pointer fields are equality matches (so zero stays expressible).
type ArticleFilter struct {
	Barcode        string
	Description    string
	ManufacturerID *uint
	Stock          *int
}

func (f ArticleFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Barcode != "" {
		db = db.Where("codigo_barras ILIKE ?", "%"+f.Barcode+"%")
	}
	if f.Description != "" {
		db = db.Where("descripcion ILIKE ?", "%"+f.Description+"%")
	}
	if f.ManufacturerID != nil {
		db = db.Where("fabricante_id = ?", *f.ManufacturerID)
	}
	if f.Stock != nil {
		db = db.Where("stock = ?", *f.Stock)
	}
	return db
}

// CacheKey returns the canonical (sorted-key) serialization of the filter
// plus paging, so equivalent filters map to the same cache entry.
func (f ArticleFilter) CacheKey(p pagination.Params) string {
	v := url.Values{}
	if f.Barcode != "" {
		v.Set("barcode", f.Barcode)
	}
	if f.Description != "" {
		v.Set("description", f.Description)
	}
	if f.ManufacturerID != nil {
		v.Set("manufacturerId", strconv.FormatUint(uint64(*f.ManufacturerID), 10))
	}
	if f.Stock != nil {
		v.Set("stock", strconv.Itoa(*f.Stock))
	}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("per_page", strconv.Itoa(p.PerPage))
	return v.Encode()
}

type ArticlePatch struct {
	Barcode        *string `json:"barcode" validate:"omitempty,min=5"`
	Description    *string `json:"description"`
	ManufacturerID *uint   `json:"manufacturerId"`
	Stock          *int    `json:"stock" validate:"omitempty,min=0"`
}

func (p ArticlePatch) changes() map[string]any {
	m := map[string]any{}
	if p.Barcode != nil {
		m["codigo_barras"] = *p.Barcode
	}
	if p.Description != nil {
		m["descripcion"] = *p.Description
	}
	if p.ManufacturerID != nil {
		m["fabricante_id"] = *p.ManufacturerID
	}
	if p.Stock != nil {
		m["stock"] = *p.Stock
	}
	return m
}

type ArticleRepository interface {
	Create(ctx context.Context, a *model.Article) error
	FindByID(ctx context.Context, id uint) (*model.Article, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Article, error)
	List(ctx context.Context, f ArticleFilter, p pagination.Params) (*pagination.Page[model.Article], error)
	Update(ctx context.Context, id uint, patch ArticlePatch) (*model.Article, error)
	Delete(ctx context.Context, id uint) error
}

type articleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) ArticleRepository {
	return &articleRepo{db}
}

func (r *articleRepo) Create(ctx context.Context, a *model.Article) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *articleRepo) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	var a model.Article
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Article, error) {
	var a model.Article
	err := r.db.WithContext(ctx).First(&a, "codigo_barras = ?", barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) List(ctx context.Context, f ArticleFilter, p pagination.Params) (*pagination.Page[model.Article], error) {
	p = p.Normalize()

	var total int64
	if err := f.apply(r.db.WithContext(ctx).Model(&model.Article{})).Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Article{}
	if p.PerPage > 0 {
		err := f.apply(r.db.WithContext(ctx).Model(&model.Article{})).
			Order("id ASC").
			Limit(p.PerPage).
			Offset(p.Offset()).
			Find(&data).Error
		if err != nil {
			return nil, err
		}
	}
	return pagination.NewPage(data, total, p), nil
}

func (r *articleRepo) Update(ctx context.Context, id uint, patch ArticlePatch) (*model.Article, error) {
	if changes := patch.changes(); len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var a model.Article
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Article{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
