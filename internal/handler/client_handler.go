package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

// Create handles client creation
// POST /api/v1/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var cl model.Client
	if err := c.BodyParser(&cl); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	if err := h.service.Create(c.Context(), &cl); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(cl)
}

// Get handles single-client lookup
// GET /api/v1/clients/:id
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "client")
	if err != nil {
		return err
	}
	cl, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if cl == nil {
		return apperr.NotFound("client not found")
	}
	return c.JSON(cl)
}

// List handles filtered client listing
// GET /api/v1/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	f := repository.ClientFilter{
		Name:       c.Query("name"),
		Phone:      c.Query("phone"),
		ClientType: model.ClientType(c.Query("client_type")),
	}
	page, err := h.service.List(c.Context(), f, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Update handles partial client updates
// PUT /api/v1/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "client")
	if err != nil {
		return err
	}
	var patch repository.ClientPatch
	if err := c.BodyParser(&patch); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	cl, err := h.service.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(cl)
}

// Delete handles client removal
// DELETE /api/v1/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "client")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
