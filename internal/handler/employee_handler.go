package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	service service.EmployeeService
}

func NewEmployeeHandler(s service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: s}
}

// Create handles employee creation
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var e model.Employee
	if err := c.BodyParser(&e); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	if err := h.service.Create(c.Context(), &e); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// Get handles single-employee lookup
// GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "employee")
	if err != nil {
		return err
	}
	e, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if e == nil {
		return apperr.NotFound("employee not found")
	}
	return c.JSON(e)
}

// List handles filtered employee listing
// GET /api/v1/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	f := repository.EmployeeFilter{
		FirstName:  c.Query("first_name"),
		LastName:   c.Query("last_name"),
		NationalID: c.Query("national_id"),
		BloodType:  model.BloodType(c.Query("blood_type")),
		Email:      c.Query("email"),
	}
	page, err := h.service.List(c.Context(), f, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Update handles partial employee updates
// PUT /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "employee")
	if err != nil {
		return err
	}
	var patch repository.EmployeePatch
	if err := c.BodyParser(&patch); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	e, err := h.service.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(e)
}

// Delete handles employee removal
// DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "employee")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
