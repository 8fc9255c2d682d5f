package web

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"harvesthub/internal/apperr"
	"harvesthub/internal/domain"
	applog "harvesthub/internal/log"
	"harvesthub/internal/validate"
	"harvesthub/internal/webclient"
)

func bookingKind(c *fiber.Ctx) domain.EntityKind {
	if c.Query("type") == "event" || c.FormValue("type") == "event" {
		return domain.KindEvent
	}
	return domain.KindWorkshop
}

// buildForm assembles the form for one request: resolve options through the
// source chain, then apply any pre-selection from the query string. The
// pre-selected entity wins over the freshly resolved list.
func (h *Handler) buildForm(c *fiber.Ctx, kind domain.EntityKind) (*webclient.Form, string) {
	form := webclient.NewForm(kind)
	items, source, err := h.Chain.Resolve(c.UserContext(), kind)
	if err != nil {
		applog.Error(c, "web.booking.sources", err, nil)
	}

	var preselected *webclient.Item
	if raw := c.Query("id", c.FormValue("entity_id")); raw != "" {
		if id, okID := validate.ID(raw); okID {
			for i := range items {
				if items[i].ID == id {
					preselected = &items[i]
					break
				}
			}
		}
	}
	if preselected != nil {
		form.Preselect(*preselected)
	}
	form.SetOptions(items)
	return form, source
}

func (h *Handler) renderBooking(c *fiber.Ctx, form *webclient.Form, source string, user *domain.User) error {
	return c.Render("booking", fiber.Map{
		"User":             user,
		"Form":             form,
		"Options":          display(form.Options),
		"Source":           source,
		"IsEvent":          form.Kind == domain.KindEvent,
		"PricePerPerson":   webclient.FormatLKR(form.PricePerPerson()),
		"Total":            form.TotalDisplay(),
		"ParticipantBound": form.ParticipantBound(),
		"Today":            time.Now().Format("2006-01-02"),
	})
}

// BookingForm renders the booking page. Guests are sent to login with the
// full booking URL as the return path so the selection survives the detour.
func (h *Handler) BookingForm(c *fiber.Ctx) error {
	user := h.viewer(c)
	if user == nil {
		return c.Redirect("/login?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusSeeOther)
	}
	form, source := h.buildForm(c, bookingKind(c))
	return h.renderBooking(c, form, source, user)
}

// BookingSubmit runs the state machine for one submission. Any failure path
// re-renders the form in Editing with every entered value preserved.
func (h *Handler) BookingSubmit(c *fiber.Ctx) error {
	user := h.viewer(c)
	if user == nil {
		return c.Redirect("/login?next="+url.QueryEscape("/booking"), fiber.StatusSeeOther)
	}

	kind := bookingKind(c)
	form, source := h.buildForm(c, kind)

	if raw := c.FormValue("entity_id"); raw != "" {
		if id, okID := validate.ID(raw); okID {
			form.Select(id)
		}
	}
	if d := c.FormValue("booking_date"); d != "" {
		form.BookingDate = d
	}
	if p := c.FormValue("participants"); p != "" {
		form.Participants = p
	}
	form.SpecialRequirements = c.FormValue("special_requirements")

	if !form.ValidateLocal(time.Now()) {
		form.Fail(webclient.FailValidation, "Please fix the highlighted fields.")
		return h.renderBooking(c, form, source, user)
	}
	if !form.BeginSubmit() {
		return h.renderBooking(c, form, source, user)
	}

	booking, err := h.API.WithToken(h.token(c)).CreateBooking(c.UserContext(), form.Payload())
	if err != nil {
		e, _ := apperr.As(err)
		switch {
		case e != nil && len(e.Fields) > 0:
			form.FailFields(e.Fields)
		case e != nil && e.Kind == apperr.KindBadRequest:
			form.Fail(webclient.FailValidation, e.Message)
		case e != nil && e.Kind == apperr.KindNotFound:
			form.Fail(webclient.FailValidation, "That listing is no longer available. Please reselect.")
		case e != nil && e.Kind == apperr.KindUnauthenticated:
			return c.Redirect("/login?next="+url.QueryEscape("/booking"), fiber.StatusSeeOther)
		default:
			applog.Error(c, "web.booking.submit", err, nil)
			form.Fail(webclient.FailServer, "Booking could not be submitted. Please try again.")
		}
		return h.renderBooking(c, form, source, user)
	}

	form.Succeed(booking)
	applog.Audit(c, "web.booking.success", map[string]any{"booking_id": booking.ID})
	return c.Render("booking_success", fiber.Map{
		"User":         user,
		"Booking":      booking,
		"Title":        form.Selected.Title,
		"Total":        webclient.FormatLKR(booking.TotalAmount),
		"Participants": booking.Participants,
		"RedirectAfter": 8, // seconds until the confirmation returns home
	})
}

// NotFound is the catch-all page.
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
}
