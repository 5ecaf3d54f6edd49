package repository

import (
	"context"
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"gorm.io/gorm"
)

// ManufacturerFilter narrows List results. Empty fields are ignored.
type ManufacturerFilter struct {
	Name string
}

func (f ManufacturerFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = db.Where("nombre ILIKE ?", "%"+f.Name+"%")
	}
	return db
}

// ManufacturerPatch is the partial-update shape; nil fields are untouched.
type ManufacturerPatch struct {
	Name *string `json:"name" validate:"omitempty,required"`
}

func (p ManufacturerPatch) changes() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["nombre"] = *p.Name
	}
	return m
}

// ManufacturerRepository keeps the legacy current_page/last_page envelope
// its external callers still depend on.
type ManufacturerRepository interface {
	Create(ctx context.Context, m *model.Manufacturer) error
	FindByID(ctx context.Context, id uint) (*model.Manufacturer, error)
	List(ctx context.Context, f ManufacturerFilter, p pagination.Params) (*pagination.Legacy[model.Manufacturer], error)
	Update(ctx context.Context, id uint, patch ManufacturerPatch) (*model.Manufacturer, error)
	Delete(ctx context.Context, id uint) error
}

type manufacturerRepo struct {
	db *gorm.DB
}

func NewManufacturerRepo(db *gorm.DB) ManufacturerRepository {
	return &manufacturerRepo{db}
}

func (r *manufacturerRepo) Create(ctx context.Context, m *model.Manufacturer) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *manufacturerRepo) FindByID(ctx context.Context, id uint) (*model.Manufacturer, error) {
	var m model.Manufacturer
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *manufacturerRepo) List(ctx context.Context, f ManufacturerFilter, p pagination.Params) (*pagination.Legacy[model.Manufacturer], error) {
	p = p.Normalize()

	var total int64
	if err := f.apply(r.db.WithContext(ctx).Model(&model.Manufacturer{})).Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Manufacturer{}
	if p.PerPage > 0 {
		err := f.apply(r.db.WithContext(ctx).Model(&model.Manufacturer{})).
			Order("id ASC").
			Limit(p.PerPage).
			Offset(p.Offset()).
			Find(&data).Error
		if err != nil {
			return nil, err
		}
	}
	return pagination.NewLegacy(data, total, p), nil
}

func (r *manufacturerRepo) Update(ctx context.Context, id uint, patch ManufacturerPatch) (*model.Manufacturer, error) {
	if changes := patch.changes(); len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Manufacturer{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var m model.Manufacturer
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *manufacturerRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Manufacturer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
