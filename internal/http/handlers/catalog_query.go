package handlers

import (
	"github.com/gofiber/fiber/v2"

	"harvesthub/internal/repos"
	"harvesthub/internal/validate"
)

// catalogFilter reads the shared list query params. An invalid search term is
// dropped rather than rejected so list pages still render.
func catalogFilter(c *fiber.Ctx) repos.CatalogFilter {
	f := repos.CatalogFilter{
		Category: c.Query("category"),
		Upcoming: c.Query("upcoming") == "true",
		FreeOnly: c.Query("free") == "true",
	}
	if q := c.Query("search"); q != "" {
		if s, okQ := validate.Q(q); okQ {
			f.Search = s
		}
	}
	return f
}

func pathID(c *fiber.Ctx) (int64, bool) {
	return validate.ID(c.Params("id"))
}
