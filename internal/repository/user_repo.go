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

type UserFilter struct {
	Username string
	Role     model.Role
}

func (f UserFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Username != "" {
		db = db.Where("username ILIKE ?", "%"+f.Username+"%")
	}
	if f.Role != "" {
		db = db.Where("rol = ?", f.Role)
	}
	return db
}

func (f UserFilter) CacheKey(p pagination.Params) string {
	v := url.Values{}
	if f.Username != "" {
		v.Set("username", f.Username)
	}
	if f.Role != "" {
		v.Set("role", string(f.Role))
	}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("per_page", strconv.Itoa(p.PerPage))
	return v.Encode()
}

// UserPatch carries already-hashed credentials; the plaintext never
// reaches this layer.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Role         *model.Role
	EmployeeID   *uint
}

func (p UserPatch) changes() map[string]any {
	m := map[string]any{}
	if p.Username != nil {
		m["username"] = *p.Username
	}
	if p.PasswordHash != nil {
		m["password_hash"] = *p.PasswordHash
	}
	if p.Role != nil {
		m["rol"] = *p.Role
	}
	if p.EmployeeID != nil {
		m["empleado_id"] = *p.EmployeeID
	}
	return m
}

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, f UserFilter, p pagination.Params) (*pagination.Page[model.User], error)
	Update(ctx context.Context, id uint, patch UserPatch) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepo) List(ctx context.Context, f UserFilter, p pagination.Params) (*pagination.Page[model.User], error) {
	p = p.Normalize()

	var total int64
	if err := f.apply(r.db.WithContext(ctx).Model(&model.User{})).Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.User{}
	if p.PerPage > 0 {
		err := f.apply(r.db.WithContext(ctx).Model(&model.User{})).
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

func (r *userRepo) Update(ctx context.Context, id uint, patch UserPatch) (*model.User, error) {
	if changes := patch.changes(); len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
