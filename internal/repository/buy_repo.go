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

type BuyFilter struct {
	ClientID    *uint
	PlacementID *uint
	Units       *int
}

func (f BuyFilter) apply(db *gorm.DB) *gorm.DB {
	if f.ClientID != nil {
		db = db.Where("cliente_id = ?", *f.ClientID)
	}
	if f.PlacementID != nil {
		db = db.Where("colocacion_id = ?", *f.PlacementID)
	}
	if f.Units != nil {
		db = db.Where("unidades = ?", *f.Units)
	}
	return db
}

func (f BuyFilter) CacheKey(p pagination.Params) string {
	v := url.Values{}
	if f.ClientID != nil {
		v.Set("clientId", strconv.FormatUint(uint64(*f.ClientID), 10))
	}
	if f.PlacementID != nil {
		v.Set("placementId", strconv.FormatUint(uint64(*f.PlacementID), 10))
	}
	if f.Units != nil {
		v.Set("units", strconv.Itoa(*f.Units))
	}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("per_page", strconv.Itoa(p.PerPage))
	return v.Encode()
}

type BuyPatch struct {
	ClientID    *uint `json:"clientId"`
	PlacementID *uint `json:"placementId"`
	Units       *int  `json:"units" validate:"omitempty,min=1"`
}

func (p BuyPatch) changes() map[string]any {
	m := map[string]any{}
	if p.ClientID != nil {
		m["cliente_id"] = *p.ClientID
	}
	if p.PlacementID != nil {
		m["colocacion_id"] = *p.PlacementID
	}
	if p.Units != nil {
		m["unidades"] = *p.Units
	}
	return m
}

type BuyRepository interface {
	Create(ctx context.Context, b *model.Buy) error
	FindByID(ctx context.Context, id uint) (*model.Buy, error)
	List(ctx context.Context, f BuyFilter, p pagination.Params) (*pagination.Page[model.Buy], error)
	Update(ctx context.Context, id uint, patch BuyPatch) (*model.Buy, error)
	Delete(ctx context.Context, id uint) error
}

type buyRepo struct {
	db *gorm.DB
}

func NewBuyRepo(db *gorm.DB) BuyRepository {
	return &buyRepo{db}
}

func (r *buyRepo) Create(ctx context.Context, b *model.Buy) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *buyRepo) FindByID(ctx context.Context, id uint) (*model.Buy, error) {
	var b model.Buy
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *buyRepo) List(ctx context.Context, f BuyFilter, p pagination.Params) (*pagination.Page[model.Buy], error) {
	p = p.Normalize()

	var total int64
	if err := f.apply(r.db.WithContext(ctx).Model(&model.Buy{})).Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Buy{}
	if p.PerPage > 0 {
		err := f.apply(r.db.WithContext(ctx).Model(&model.Buy{})).
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

func (r *buyRepo) Update(ctx context.Context, id uint, patch BuyPatch) (*model.Buy, error) {
	if changes := patch.changes(); len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Buy{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var b model.Buy
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *buyRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Buy{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
