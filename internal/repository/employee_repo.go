package repository

import (
	"context"
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"

	"gorm.io/gorm"
)

type EmployeeFilter struct {
	FirstName  string
	LastName   string
	NationalID string
	BloodType  model.BloodType
	Email      string
}

func (f EmployeeFilter) apply(db *gorm.DB) *gorm.DB {
	if f.FirstName != "" {
		db = db.Where("nombres ILIKE ?", "%"+f.FirstName+"%")
	}
	if f.LastName != "" {
		db = db.Where("apellidos ILIKE ?", "%"+f.LastName+"%")
	}
	if f.NationalID != "" {
		db = db.Where("cedula ILIKE ?", "%"+f.NationalID+"%")
	}
	if f.BloodType != "" {
		db = db.Where("tipo_sangre = ?", f.BloodType)
	}
	if f.Email != "" {
		db = db.Where("email ILIKE ?", "%"+f.Email+"%")
	}
	return db
}

type EmployeePatch struct {
	FirstName  *string          `json:"firstName" validate:"omitempty,min=2"`
	LastName   *string          `json:"lastName" validate:"omitempty,min=2"`
	NationalID *string          `json:"nationalId" validate:"omitempty,national_id"`
	Phone      *string          `json:"phone" validate:"omitempty,min=10"`
	BloodType  *model.BloodType `json:"bloodType" validate:"omitempty,blood_type"`
	Email      *string          `json:"email" validate:"omitempty,email"`
}

func (p EmployeePatch) changes() map[string]any {
	m := map[string]any{}
	if p.FirstName != nil {
		m["nombres"] = *p.FirstName
	}
	if p.LastName != nil {
		m["apellidos"] = *p.LastName
	}
	if p.NationalID != nil {
		m["cedula"] = *p.NationalID
	}
	if p.Phone != nil {
		m["telefono"] = *p.Phone
	}
	if p.BloodType != nil {
		m["tipo_sangre"] = *p.BloodType
	}
	if p.Email != nil {
		m["email"] = *p.Email
	}
	return m
}

type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	List(ctx context.Context, f EmployeeFilter, p pagination.Params) (*pagination.Page[model.Employee], error)
	Update(ctx context.Context, id uint, patch EmployeePatch) (*model.Employee, error)
	Delete(ctx context.Context, id uint) error
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) List(ctx context.Context, f EmployeeFilter, p pagination.Params) (*pagination.Page[model.Employee], error) {
	p = p.Normalize()

	var total int64
	if err := f.apply(r.db.WithContext(ctx).Model(&model.Employee{})).Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Employee{}
	if p.PerPage > 0 {
		err := f.apply(r.db.WithContext(ctx).Model(&model.Employee{})).
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

func (r *employeeRepo) Update(ctx context.Context, id uint, patch EmployeePatch) (*model.Employee, error) {
	if changes := patch.changes(); len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&model.Employee{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var e model.Employee
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
