package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Create handles user registration
// POST /api/v1/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in service.CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	u, err := h.service.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(u)
}

// Get handles single-user lookup
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	u, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFound("user not found")
	}
	return c.JSON(u)
}

// GetByUsername handles lookup by the unique username
// GET /api/v1/users/username/:username
func (h *UserHandler) GetByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return apperr.Validation("invalid username", nil)
	}
	u, err := h.service.GetByUsername(c.Context(), username)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFound("user not found")
	}
	return c.JSON(u)
}

// List handles filtered user listing
// GET /api/v1/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	f := repository.UserFilter{
		Username: c.Query("username"),
		Role:     model.Role(c.Query("role")),
	}
	page, err := h.service.List(c.Context(), f, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Update handles partial user updates
// PUT /api/v1/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	var in service.UpdateUserInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	u, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// Delete handles user removal
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
