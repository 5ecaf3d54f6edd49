package service

import (
	"context"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"
)

// CreateUserInput carries the plaintext password; it is hashed here and
// never stored or returned.
type CreateUserInput struct {
	Username   string     `json:"username" validate:"required,min=3"`
	Password   string     `json:"password" validate:"required"`
	Role       model.Role `json:"role" validate:"required,user_role"`
	EmployeeID *uint      `json:"employeeId"`
}

// UpdateUserInput is the partial-update shape at the use-case boundary.
type UpdateUserInput struct {
	Username   *string     `json:"username" validate:"omitempty,min=3"`
	Password   *string     `json:"password"`
	Role       *model.Role `json:"role" validate:"omitempty,user_role"`
	EmployeeID *uint       `json:"employeeId"`
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, f repository.UserFilter, p pagination.Params) (*pagination.Page[model.User], error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, apperr.Validation("invalid data", errs)
	}
	if !validator.StrongPassword(in.Password) {
		return nil, apperr.Validation("password must be at least 10 characters with upper, lower, digit and special character", nil)
	}

	exists, err := s.repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("username")
	}

	u := &model.User{
		Username:   in.Username,
		Role:       in.Role,
		EmployeeID: in.EmployeeID,
	}
	if err := u.SetPassword(in.Password); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *userService) List(ctx context.Context, f repository.UserFilter, p pagination.Params) (*pagination.Page[model.User], error) {
	return s.repo.List(ctx, f, p)
}

func (s *userService) Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, apperr.Validation("invalid data", errs)
	}

	patch := repository.UserPatch{
		Username:   in.Username,
		Role:       in.Role,
		EmployeeID: in.EmployeeID,
	}

	if in.Username != nil {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, apperr.NotFound("user not found")
		}
		if *in.Username != current.Username {
			exists, err := s.repo.ExistsByUsername(ctx, *in.Username)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperr.Conflict("username")
			}
		}
	}

	if in.Password != nil {
		if !validator.StrongPassword(*in.Password) {
			return nil, apperr.Validation("password must be at least 10 characters with upper, lower, digit and special character", nil)
		}
		tmp := model.User{}
		if err := tmp.SetPassword(*in.Password); err != nil {
			return nil, err
		}
		patch.PasswordHash = &tmp.PasswordHash
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
