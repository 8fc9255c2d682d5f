package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "harvesthub/internal/log"
	"harvesthub/internal/repos"
	"harvesthub/internal/services"
	"harvesthub/internal/validate"
)

type AuthHandler struct {
	Auth  *services.AuthService
	Users *repos.UserRepo
}

func NewAuthHandler(auth *services.AuthService, users *repos.UserRepo) *AuthHandler {
	return &AuthHandler{Auth: auth, Users: users}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	errs := map[string]string{}
	username, okU := validate.Username(req.Username)
	if !okU {
		errs["username"] = "Username must be 3-30 characters (letters, digits, . _ -)"
	}
	email, okE := validate.Email(req.Email)
	if !okE {
		errs["email"] = "Valid email required"
	}
	fullName, okF := validate.FullName(req.FullName)
	if !okF {
		errs["full_name"] = "Full name required"
	}
	if !validate.Password(req.Password) {
		errs["password"] = "Password must be 8-72 characters"
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Validation failed", "errors": errs,
		})
	}

	u, token, err := h.Auth.Register(username, email, req.Password, fullName)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "auth.register", map[string]any{"user_id": u.ID, "username": u.Username})
	return created(c, fiber.Map{"user": u, "token": token}, "Account created")
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "Username and password are required")
	}

	u, token, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"username": req.Username})
		return fail(c, err)
	}
	applog.Audit(c, "auth.login", map[string]any{"user_id": u.ID})
	return okMsg(c, fiber.Map{"user": u, "token": token}, "Login successful")
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return ok(c, CurrentUser(c))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := bearerToken(c); token != "" {
		if err := h.Auth.Logout(token); err != nil {
			return fail(c, err)
		}
	}
	return okMsg(c, nil, "Logged out")
}

// ListUsers is admin-only; password hashes never serialize.
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, users)
}
