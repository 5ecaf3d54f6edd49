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

type PlacementFilter struct {
	ArticleID   *uint
	LocationID  *uint
	DisplayName string
	Price       *float64
}

func (f PlacementFilter) apply(db *gorm.DB) *gorm.DB {
	if f.ArticleID != nil {
		db = db.Where("articulo_id = ?", *f.ArticleID)
	}
	if f.LocationID != nil {
		db = db.Where("ubicacion_id = ?", *f.LocationID)
	}
	if f.DisplayName != "" {
		db = db.Where("nombre_exhibido ILIKE ?", "%"+f.DisplayName+"%")
	}
	if f.Price != nil {
		db = db.Where("precio = ?", *f.Price)
	}
	return db
}

func (f PlacementFilter) CacheKey(p pagination.Params) string {
	v := url.Values{}
	if f.ArticleID != nil {
		v.Set("articleId", strconv.FormatUint(uint64(*f.ArticleID), 10))
	}
	if f.LocationID != nil {
		v.Set("locationId", strconv.FormatUint(uint64(*f.LocationID), 10))
	}
	if f.DisplayName != "" {
		v.Set("displayName", f.DisplayName)
	}
	if f.Price != nil {
		v.Set("price", strconv.FormatFloat(*f.Price, 'f', -1, 64))
	}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("per_page", strconv.Itoa(p.PerPage))
	return v.Encode()
}

type PlacementPatch struct {
	ArticleID   *uint    `json:"articleId"`
	LocationID  *uint    `json:"locationId"`
	DisplayName *string  `json:"displayName" validate:"omitempty,min=3"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
}

func (p PlacementPatch) changes() map[string]any {
	m := map[string]any{}
	if p.ArticleID != nil {
		m["articulo_id"] = *p.ArticleID
	}
	if p.LocationID != nil {
		m["ubicacion_id"] = *p.LocationID
	}
	if p.DisplayName != nil {
		m["nombre_exhibido"] = *p.DisplayName
	}
	if p.Price != nil {
		m["precio"] = *p.Price
	}
	return m
}

type PlacementRepository interface {
	Create(ctx context.Context, pl *model.Placement) error
	FindByID(ctx context.Context, id uint) (*model.Placement, error)
	List(ctx context.Context, f PlacementFilter, p pagination.Params) (*pagination.Page[model.Placement], error)
	Update(ctx context.Context, id uint, patch PlacementPatch) (*model.Placement, error)
	Delete(ctx context.Context, id uint) error
}

type placementRepo struct {
	db *gorm.DB
}

func NewPlacementRepo(db *gorm.DB) PlacementRepository {
	return &placementRepo{db}
}

func (r *placementRepo) Create(ctx context.Context, pl *model.Placement) error {
	return r.db.WithContext(ctx).Create(pl).Error
}

func (r *placementRepo) FindByID(ctx context.Context, id uint) (*model.Placement, error) {
	var pl model.Placement
	err := r.db.WithContext(ctx).First(&pl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pl, nil
}

func (r *placementRepo) List(ctx context.Context, f PlacementFilter, p pagination.Params) (*pagination.Page[model.Placement], error) {
	p = p.Normalize()

	var total int64
	if err := f.apply(r.db.WithContext(ctx).Model(&model.Placement{})).Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Placement{}
	if p.PerPage > 0 {
		err := f.apply(r.db.WithContext(ctx).Model(&model.Placement{})).
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

func (r *placementRepo) Update(ctx context.Context, id uint, patch PlacementPatch) (*model.Placement, error) {
	if changes := patch.changes(); len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Placement{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var pl model.Placement
	if err := r.db.WithContext(ctx).First(&pl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pl, nil
}

func (r *placementRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Placement{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
