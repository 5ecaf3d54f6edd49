package handler

import (
	"strconv"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// parseID rejects non-numeric path ids before anything touches the store.
func parseID(c *fiber.Ctx, entity string) (uint, error) {
	n, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || n == 0 {
		return 0, apperr.Validation("invalid "+entity+" id", nil)
	}
	return uint(n), nil
}

func pageParams(c *fiber.Ctx) pagination.Params {
	return pagination.Params{
		Page:    c.QueryInt("page", pagination.DefaultPage),
		PerPage: c.QueryInt("per_page", pagination.DefaultPerPage),
	}
}

// queryUint returns nil when the parameter is absent or malformed, so a
// bad filter value narrows nothing instead of failing the request.
func queryUint(c *fiber.Ctx, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	v := uint(n)
	return &v
}

func queryInt(c *fiber.Ctx, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func queryFloat(c *fiber.Ctx, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
