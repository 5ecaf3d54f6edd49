package repository

import (
	"context"
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"gorm.io/gorm"
)

type LocationFilter struct {
	Name string
}

func (f LocationFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = db.Where("nombre ILIKE ?", "%"+f.Name+"%")
	}
	return db
}

type LocationPatch struct {
	Name *string `json:"name" validate:"omitempty,required"`
}

func (p LocationPatch) changes() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["nombre"] = *p.Name
	}
	return m
}

type LocationRepository interface {
	Create(ctx context.Context, l *model.Location) error
	FindByID(ctx context.Context, id uint) (*model.Location, error)
	List(ctx context.Context, f LocationFilter, p pagination.Params) (*pagination.Page[model.Location], error)
	Update(ctx context.Context, id uint, patch LocationPatch) (*model.Location, error)
	Delete(ctx context.Context, id uint) error
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db}
}

func (r *locationRepo) Create(ctx context.Context, l *model.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *locationRepo) FindByID(ctx context.Context, id uint) (*model.Location, error) {
	var l model.Location
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *locationRepo) List(ctx context.Context, f LocationFilter, p pagination.Params) (*pagination.Page[model.Location], error) {
	p = p.Normalize()

	var total int64
	if err := f.apply(r.db.WithContext(ctx).Model(&model.Location{})).Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Location{}
	if p.PerPage > 0 {
		err := f.apply(r.db.WithContext(ctx).Model(&model.Location{})).
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

func (r *locationRepo) Update(ctx context.Context, id uint, patch LocationPatch) (*model.Location, error) {
	if changes := patch.changes(); len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Location{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var l model.Location
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *locationRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Location{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
