package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PlacementHandler struct {
	service service.PlacementService
}

func NewPlacementHandler(s service.PlacementService) *PlacementHandler {
	return &PlacementHandler{service: s}
}

// Create handles placement creation
// POST /api/v1/placements
func (h *PlacementHandler) Create(c *fiber.Ctx) error {
	var p model.Placement
	if err := c.BodyParser(&p); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	if err := h.service.Create(c.Context(), &p); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Get handles single-placement lookup
// GET /api/v1/placements/:id
func (h *PlacementHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "placement")
	if err != nil {
		return err
	}
	p, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("placement not found")
	}
	return c.JSON(p)
}

// List handles filtered placement listing
// GET /api/v1/placements
func (h *PlacementHandler) List(c *fiber.Ctx) error {
	f := repository.PlacementFilter{
		ArticleID:   queryUint(c, "article_id"),
		LocationID:  queryUint(c, "location_id"),
		DisplayName: c.Query("display_name"),
		Price:       queryFloat(c, "price"),
	}
	page, err := h.service.List(c.Context(), f, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Update handles partial placement updates
// PUT /api/v1/placements/:id
func (h *PlacementHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "placement")
	if err != nil {
		return err
	}
	var patch repository.PlacementPatch
	if err := c.BodyParser(&patch); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	p, err := h.service.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// Delete handles placement removal
// DELETE /api/v1/placements/:id
func (h *PlacementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "placement")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
