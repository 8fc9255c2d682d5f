package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "harvesthub/internal/log"
	"harvesthub/internal/repos"
	"harvesthub/internal/services"
	"harvesthub/internal/validate"
)

type SubscriptionHandler struct {
	Subs *services.SubscriptionService
}

func NewSubscriptionHandler(subs *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Subs: subs}
}

func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	u := CurrentUser(c)
	out, err := h.Subs.ListForUser(u.ID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

type subscriptionCreateReq struct {
	ProductID int64  `json:"product_id"`
	Frequency string `json:"frequency"`
	Quantity  int    `json:"quantity"`
}

func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	var req subscriptionCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ProductID < 1 {
		return badRequest(c, "product_id is required")
	}
	if req.Frequency != "" {
		f, okF := validate.Frequency(req.Frequency)
		if !okF {
			return badRequest(c, "Frequency must be weekly, biweekly, or monthly")
		}
		req.Frequency = f
	}

	u := CurrentUser(c)
	sub, err := h.Subs.Create(u.ID, req.ProductID, req.Frequency, req.Quantity)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "subscription.create", map[string]any{"subscription_id": sub.ID, "user_id": u.ID})
	return created(c, sub, "Subscription created")
}

type subscriptionUpdateReq struct {
	Frequency *string `json:"frequency"`
	Quantity  *int    `json:"quantity"`
	Status    *string `json:"status"`
}

func (h *SubscriptionHandler) Update(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid subscription id")
	}
	var req subscriptionUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Frequency != nil {
		f, okF := validate.Frequency(*req.Frequency)
		if !okF {
			return badRequest(c, "Frequency must be weekly, biweekly, or monthly")
		}
		req.Frequency = &f
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return badRequest(c, "Quantity must be at least 1")
	}
	if req.Status != nil && *req.Status != "active" && *req.Status != "paused" && *req.Status != "cancelled" {
		return badRequest(c, "Status must be active, paused, or cancelled")
	}

	u := CurrentUser(c)
	sub, err := h.Subs.Update(u.ID, id, repos.SubscriptionPatch{
		Frequency: req.Frequency,
		Quantity:  req.Quantity,
		Status:    req.Status,
	})
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "subscription.update", map[string]any{"subscription_id": id, "user_id": u.ID})
	return okMsg(c, sub, "Subscription updated")
}
