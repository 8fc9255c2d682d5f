package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"harvesthub/internal/domain"
	applog "harvesthub/internal/log"
	"harvesthub/internal/services"
)

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}

// RequireUser resolves the bearer credential to a user and stores it in
// Locals. The booking subsystem trusts this resolution and never reads a
// user id from the request body.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": true, "message": "Authentication required",
			})
		}
		u, err := auth.CurrentUser(token)
		if err != nil || u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": true, "message": "Invalid or expired token",
			})
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// AdminOnly must run after RequireUser.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := CurrentUser(c)
		if u == nil || u.Role != domain.RoleAdmin {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": true, "message": "Admin access required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated caller, or nil on public routes.
func CurrentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
