package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	service service.LocationService
}

func NewLocationHandler(s service.LocationService) *LocationHandler {
	return &LocationHandler{service: s}
}

// Create handles location creation
// POST /api/v1/locations
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var l model.Location
	if err := c.BodyParser(&l); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	if err := h.service.Create(c.Context(), &l); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}

// Get handles single-location lookup
// GET /api/v1/locations/:id
func (h *LocationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "location")
	if err != nil {
		return err
	}
	l, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if l == nil {
		return apperr.NotFound("location not found")
	}
	return c.JSON(l)
}

// List handles filtered location listing
// GET /api/v1/locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	f := repository.LocationFilter{Name: c.Query("name")}
	page, err := h.service.List(c.Context(), f, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Update handles partial location updates
// PUT /api/v1/locations/:id
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "location")
	if err != nil {
		return err
	}
	var patch repository.LocationPatch
	if err := c.BodyParser(&patch); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	l, err := h.service.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(l)
}

// Delete handles location removal
// DELETE /api/v1/locations/:id
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "location")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
