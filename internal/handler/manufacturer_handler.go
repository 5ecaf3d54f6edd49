package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ManufacturerHandler struct {
	service service.ManufacturerService
}

func NewManufacturerHandler(s service.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{service: s}
}

// Create handles manufacturer creation
// POST /api/v1/manufacturers
func (h *ManufacturerHandler) Create(c *fiber.Ctx) error {
	var m model.Manufacturer
	if err := c.BodyParser(&m); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	if err := h.service.Create(c.Context(), &m); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// Get handles single-manufacturer lookup
// GET /api/v1/manufacturers/:id
func (h *ManufacturerHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "manufacturer")
	if err != nil {
		return err
	}
	m, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if m == nil {
		return apperr.NotFound("manufacturer not found")
	}
	return c.JSON(m)
}

// List handles filtered listing with the legacy envelope
// GET /api/v1/manufacturers
func (h *ManufacturerHandler) List(c *fiber.Ctx) error {
	f := repository.ManufacturerFilter{Name: c.Query("name")}
	page, err := h.service.List(c.Context(), f, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Update handles partial manufacturer updates
// PUT /api/v1/manufacturers/:id
func (h *ManufacturerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "manufacturer")
	if err != nil {
		return err
	}
	var patch repository.ManufacturerPatch
	if err := c.BodyParser(&patch); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	m, err := h.service.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(m)
}

// Delete handles manufacturer removal
// DELETE /api/v1/manufacturers/:id
func (h *ManufacturerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "manufacturer")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
