package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/service"
)

// pageFromQuery reads page/page_size query parameters. Out of range values
// are clamped by service.Page when the query runs.
func pageFromQuery(c *fiber.Ctx) service.Page {
	return service.Page{
		Number: c.QueryInt("page", 1),
		Size:   c.QueryInt("page_size", 10),
	}
}

// optionalQuery returns a pointer to the query value, or nil when absent.
func optionalQuery(c *fiber.Ctx, key string) *string {
	value := c.Query(key)
	if value == "" {
		return nil
	}
	return &value
}
