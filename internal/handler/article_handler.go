package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ArticleHandler struct {
	service service.ArticleService
}

func NewArticleHandler(s service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: s}
}

// Create handles article creation
// POST /api/v1/articles
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var a model.Article
	if err := c.BodyParser(&a); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	if err := h.service.Create(c.Context(), &a); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// Get handles single-article lookup
// GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "article")
	if err != nil {
		return err
	}
	a, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if a == nil {
		return apperr.NotFound("article not found")
	}
	return c.JSON(a)
}

// List handles filtered article listing
// GET /api/v1/articles
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	f := repository.ArticleFilter{
		Barcode:        c.Query("barcode"),
		Description:    c.Query("description"),
		ManufacturerID: queryUint(c, "manufacturer_id"),
		Stock:          queryInt(c, "stock"),
	}
	page, err := h.service.List(c.Context(), f, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Update handles partial article updates
// PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "article")
	if err != nil {
		return err
	}
	var patch repository.ArticlePatch
	if err := c.BodyParser(&patch); err != nil {
		return apperr.Validation("invalid JSON", nil)
	}
	a, err := h.service.Update(c.Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(a)
}

// Delete handles article removal
// DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "article")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
