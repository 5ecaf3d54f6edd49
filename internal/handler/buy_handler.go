package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BuyHandler struct {
	service service.BuyService
}

func NewBuyHandler(s service.BuyService) *BuyHandler {
	return &BuyHandler{service: s}
}

// Create handles purchase registration
// POST /api/v1/buys
func (h *BuyHandler) Create(c *fiber.Ctx) error {
	var b model.Buy
	if err := c.BodyParser(&b); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	if err := h.service.Create(c.Context(), &b); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

// Get handles single-purchase lookup
// GET /api/v1/buys/:id
func (h *BuyHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "buy")
	if err != nil {
		return err
	}
	b, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if b == nil {
		return apperr.NotFound("buy not found")
	}
	return c.JSON(b)
}

// List handles filtered purchase listing
// GET /api/v1/buys
func (h *BuyHandler) List(c *fiber.Ctx) error {
	f := repository.BuyFilter{
		ClientID:    queryUint(c, "client_id"),
		PlacementID: queryUint(c, "placement_id"),
		Units:       queryInt(c, "units"),
	}
	page, err := h.service.List(c.Context(), f, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Update handles partial purchase updates
// PUT /api/v1/buys/:id
func (h *BuyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "buy")
	if err != nil {
		return err
	}
	var patch repository.BuyPatch
	if err := c.BodyParser(&patch); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	b, err := h.service.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(b)
}

// Delete handles purchase removal
// DELETE /api/v1/buys/:id
func (h *BuyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "buy")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
