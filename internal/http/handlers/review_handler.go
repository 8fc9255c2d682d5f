package handlers

import (
	"github.com/gofiber/fiber/v2"

	"harvesthub/internal/domain"
	applog "harvesthub/internal/log"
	"harvesthub/internal/repos"
	"harvesthub/internal/services"
	"harvesthub/internal/validate"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

func queryID(c *fiber.Ctx, name string) *int64 {
	if raw := c.Query(name); raw != "" {
		if id, okID := validate.ID(raw); okID {
			return &id
		}
	}
	return nil
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	out, err := h.Reviews.List(repos.ReviewFilter{
		WorkshopID: queryID(c, "workshop_id"),
		EventID:    queryID(c, "event_id"),
		ProductID:  queryID(c, "product_id"),
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

type reviewCreateReq struct {
	WorkshopID *int64  `json:"workshop_id"`
	EventID    *int64  `json:"event_id"`
	ProductID  *int64  `json:"product_id"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment"`
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req reviewCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	u := CurrentUser(c)
	var comment *string
	if req.Comment != nil {
		s := validate.Text(*req.Comment)
		comment = &s
	}

	rv, err := h.Reviews.Create(domain.Review{
		UserID:     u.ID,
		WorkshopID: req.WorkshopID,
		EventID:    req.EventID,
		ProductID:  req.ProductID,
		Rating:     req.Rating,
		Comment:    comment,
	})
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "review.create", map[string]any{"review_id": rv.ID, "user_id": u.ID})
	return created(c, rv, "Review submitted")
}
