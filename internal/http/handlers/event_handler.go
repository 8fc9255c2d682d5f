package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"harvesthub/internal/domain"
	applog "harvesthub/internal/log"
	"harvesthub/internal/repos"
	"harvesthub/internal/services"
	"harvesthub/internal/validate"
)

type EventHandler struct {
	Catalog *services.CatalogService
}

func NewEventHandler(catalog *services.CatalogService) *EventHandler {
	return &EventHandler{Catalog: catalog}
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.ListEvents(catalogFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid event id")
	}
	e, err := h.Catalog.GetEvent(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, e)
}

type eventCreateReq struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Location    string          `json:"location"`
	Category    string          `json:"category"`
	Organizer   string          `json:"organizer"`
	IsFree      bool            `json:"is_free"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url"`
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req eventCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	errs := map[string]string{}
	if validate.Text(req.Title) == "" {
		errs["title"] = "Title is required"
	}
	date, okD := validate.Date(req.Date)
	if !okD {
		errs["date"] = "Valid date (YYYY-MM-DD) required"
	}
	if req.Price.IsNegative() {
		errs["price"] = "Price must not be negative"
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Validation failed", "errors": errs,
		})
	}

	e, err := h.Catalog.CreateEvent(domain.Event{
		Title:       validate.Text(req.Title),
		Description: validate.Text(req.Description),
		Date:        date,
		Time:        req.Time,
		Location:    validate.Text(req.Location),
		Category:    req.Category,
		Organizer:   validate.Text(req.Organizer),
		IsFree:      req.IsFree,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "event.create", map[string]any{"event_id": e.ID})
	return created(c, e, "Event created")
}

type eventUpdateReq struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
	Time        *string          `json:"time"`
	Location    *string          `json:"location"`
	Category    *string          `json:"category"`
	Organizer   *string          `json:"organizer"`
	IsFree      *bool            `json:"is_free"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid event id")
	}
	var req eventUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Date != nil {
		if _, okD := validate.Date(*req.Date); !okD {
			return badRequest(c, "Valid date (YYYY-MM-DD) required")
		}
	}
	if req.Price != nil && req.Price.IsNegative() {
		return badRequest(c, "Price must not be negative")
	}

	e, err := h.Catalog.UpdateEvent(id, repos.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Category:    req.Category,
		Organizer:   req.Organizer,
		IsFree:      req.IsFree,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "event.update", map[string]any{"event_id": id})
	return okMsg(c, e, "Event updated")
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid event id")
	}
	if err := h.Catalog.DeleteEvent(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "event.delete", map[string]any{"event_id": id})
	return okMsg(c, nil, "Event deleted")
}
