// Package web renders the server-side pages of the booking client. All data
// comes from the JSON API (or the bundled fallback catalog when the API is
// unreachable); this process owns no database.
package web

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"harvesthub/internal/apperr"
	"harvesthub/internal/config"
	"harvesthub/internal/domain"
	applog "harvesthub/internal/log"
	"harvesthub/internal/webclient"
)

const tokenCookie = "hub_token"

type Handler struct {
	API      *webclient.Client
	Resolver *webclient.Resolver
	Chain    *webclient.Chain
}

func New(cfg config.Config) *Handler {
	api := webclient.NewClient(cfg.APIBaseURL)
	resolver := webclient.NewResolver(api.Health, cfg.ProbeTTL)
	chain := webclient.NewChain(
		&webclient.LiveSource{API: api, Resolver: resolver},
		&webclient.StaticSource{Catalog: webclient.NewFallback()},
	)
	return &Handler{API: api, Resolver: resolver, Chain: chain}
}

func (h *Handler) token(c *fiber.Ctx) string { return c.Cookies(tokenCookie) }

// viewer resolves the logged-in user, or nil for guests.
func (h *Handler) viewer(c *fiber.Ctx) *domain.User {
	tok := h.token(c)
	if tok == "" {
		return nil
	}
	u, err := h.API.WithToken(tok).Me(c.UserContext())
	if err != nil {
		return nil
	}
	return &u
}

type displayItem struct {
	webclient.Item
	PriceDisplay string
}

func display(items []webclient.Item) []displayItem {
	out := make([]displayItem, 0, len(items))
	for _, it := range items {
		out = append(out, displayItem{Item: it, PriceDisplay: webclient.FormatLKR(it.Price)})
	}
	return out
}

// Home lists workshops and events with an API-online badge. Either list
// degrades to the bundled snapshot independently.
func (h *Handler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()
	online := h.Resolver.Online(ctx)

	workshops, wsSource, err := h.Chain.Resolve(ctx, domain.KindWorkshop)
	if err != nil {
		applog.Error(c, "web.home.workshops", err, nil)
	}
	events, _, err := h.Chain.Resolve(ctx, domain.KindEvent)
	if err != nil {
		applog.Error(c, "web.home.events", err, nil)
	}

	return c.Render("home", fiber.Map{
		"User":      h.viewer(c),
		"Online":    online,
		"Source":    wsSource,
		"Workshops": display(workshops),
		"Events":    display(events),
	})
}

func (h *Handler) LoginForm(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"Next": c.Query("next", "/")})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	next := c.FormValue("next", "/")

	_, token, err := h.API.Login(c.UserContext(), username, password)
	if err != nil {
		msg := "Login failed. Please try again."
		if e, isApp := apperr.As(err); isApp && e.Kind == apperr.KindUnauthenticated {
			msg = "Invalid username or password."
		}
		applog.Security(c, "web.login.fail", map[string]any{"username": username})
		return c.Render("login", fiber.Map{"Err": msg, "Username": username, "Next": next})
	}

	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(24 * time.Hour),
	})
	if !validSameSitePath(next) {
		next = "/"
	}
	return c.Redirect(next, fiber.StatusSeeOther)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if tok := h.token(c); tok != "" {
		// Best effort; the cookie clears either way.
		_ = h.API.WithToken(tok).Logout(c.UserContext())
	}
	c.Cookie(&fiber.Cookie{Name: tokenCookie, Value: "", Expires: time.Now().Add(-time.Hour)})
	return c.Redirect("/", fiber.StatusSeeOther)
}

func validSameSitePath(p string) bool {
	return len(p) > 0 && p[0] == '/' && (len(p) == 1 || p[1] != '/')
}
