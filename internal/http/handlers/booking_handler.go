package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "harvesthub/internal/log"
	"harvesthub/internal/services"
	"harvesthub/internal/validate"
)

type BookingHandler struct {
	Bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// bookingCreateReq deliberately has no total_amount field. Whatever total a
// client previews or forges, the stored figure is recomputed server-side.
type bookingCreateReq struct {
	WorkshopID          *int64  `json:"workshop_id"`
	EventID             *int64  `json:"event_id"`
	BookingDate         string  `json:"booking_date"`
	Participants        int     `json:"participants"`
	SpecialRequirements *string `json:"special_requirements"`
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req bookingCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	u := CurrentUser(c)
	var special *string
	if req.SpecialRequirements != nil {
		s := validate.Text(*req.SpecialRequirements)
		special = &s
	}

	b, err := h.Bookings.Create(services.BookingRequest{
		BookingDate:         req.BookingDate,
		WorkshopID:          req.WorkshopID,
		EventID:             req.EventID,
		Participants:        req.Participants,
		SpecialRequirements: special,
	}, u.ID)
	if err != nil {
		return fail(c, err)
	}

	applog.Audit(c, "booking.create", map[string]any{
		"booking_id": b.ID, "user_id": u.ID, "total_amount": b.TotalAmount.String(),
	})
	return created(c, b, "Booking created successfully")
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	u := CurrentUser(c)
	out, err := h.Bookings.ListForUser(u.ID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
