package service

import (
	"context"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// LoginResult is the response for a successful login: the account, the
// linked employee record if one exists, and the signed credential.
type LoginResult struct {
	User     *model.User     `json:"user"`
	Employee *model.Employee `json:"employee"`
	Token    string          `json:"token"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authService struct {
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
}

func NewAuthService(userRepo repository.UserRepository, employeeRepo repository.EmployeeRepository) AuthService {
	return &authService{userRepo: userRepo, employeeRepo: employeeRepo}
}

// Login deliberately reports one indistinct message for unknown users and
// wrong passwords.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.CheckPassword(password) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid username or password")
	}

	var employee *model.Employee
	if u.EmployeeID != nil {
		employee, err = s.employeeRepo.FindByID(ctx, *u.EmployeeID)
		if err != nil {
			return nil, err
		}
	}

	token, err := jwt.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: u, Employee: employee, Token: token}, nil
}
