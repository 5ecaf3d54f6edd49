package service

import (
	"context"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/pagination"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"
)

type EmployeeService interface {
	Create(ctx context.Context, e *model.Employee) error
	Get(ctx context.Context, id uint) (*model.Employee, error)
	List(ctx context.Context, f repository.EmployeeFilter, p pagination.Params) (*pagination.Page[model.Employee], error)
	Update(ctx context.Context, id uint, patch repository.EmployeePatch) (*model.Employee, error)
	Delete(ctx context.Context, id uint) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, e *model.Employee) error {
	if errs := validator.ValidateStruct(e); len(errs) > 0 {
		return apperr.Validation("invalid data", errs)
	}
	return s.repo.Create(ctx, e)
}

func (s *employeeService) Get(ctx context.Context, id uint) (*model.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, f repository.EmployeeFilter, p pagination.Params) (*pagination.Page[model.Employee], error) {
	return s.repo.List(ctx, f, p)
}

func (s *employeeService) Update(ctx context.Context, id uint, patch repository.EmployeePatch) (*model.Employee, error) {
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, apperr.Validation("invalid data", errs)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *employeeService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
