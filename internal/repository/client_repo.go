package repository

import (
	"context"
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"gorm.io/gorm"
)

type ClientFilter struct {
	Name       string
	Phone      string
	ClientType model.ClientType
}

func (f ClientFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = db.Where("nombre ILIKE ?", "%"+f.Name+"%")
	}
	if f.Phone != "" {
		db = db.Where("telefono ILIKE ?", "%"+f.Phone+"%")
	}
	if f.ClientType != "" {
		db = db.Where("tipo_cliente = ?", f.ClientType)
	}
	return db
}

type ClientPatch struct {
	Name       *string           `json:"name" validate:"omitempty,min=2"`
	Phone      *string           `json:"phone" validate:"omitempty,client_phone"`
	ClientType *model.ClientType `json:"clientType" validate:"omitempty,client_type"`
}

func (p ClientPatch) changes() map[string]any {
	m := map[string]any{}
	if p.Name != nil {
		m["nombre"] = *p.Name
	}
	if p.Phone != nil {
		m["telefono"] = *p.Phone
	}
	if p.ClientType != nil {
		m["tipo_cliente"] = *p.ClientType
	}
	return m
}

type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	List(ctx context.Context, f ClientFilter, p pagination.Params) (*pagination.Page[model.Client], error)
	Update(ctx context.Context, id uint, patch ClientPatch) (*model.Client, error)
	Delete(ctx context.Context, id uint) error
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) List(ctx context.Context, f ClientFilter, p pagination.Params) (*pagination.Page[model.Client], error) {
	p = p.Normalize()

	var total int64
	if err := f.apply(r.db.WithContext(ctx).Model(&model.Client{})).Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Client{}
	if p.PerPage > 0 {
		err := f.apply(r.db.WithContext(ctx).Model(&model.Client{})).
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

func (r *clientRepo) Update(ctx context.Context, id uint, patch ClientPatch) (*model.Client, error) {
	if changes := patch.changes(); len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Client{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var c model.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Client{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
