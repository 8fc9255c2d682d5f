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

type WorkshopHandler struct {
	Catalog *services.CatalogService
}

func NewWorkshopHandler(catalog *services.CatalogService) *WorkshopHandler {
	return &WorkshopHandler{Catalog: catalog}
}

func (h *WorkshopHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.ListWorkshops(catalogFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *WorkshopHandler) Get(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid workshop id")
	}
	w, err := h.Catalog.GetWorkshop(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, w)
}

type workshopCreateReq struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	MaxParticipants int             `json:"max_participants"`
	Location        string          `json:"location"`
	InstructorName  string          `json:"instructor_name"`
	ImageURL        *string         `json:"image_url"`
}

func (h *WorkshopHandler) Create(c *fiber.Ctx) error {
	var req workshopCreateReq
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

	w, err := h.Catalog.CreateWorkshop(domain.Workshop{
		Title:           validate.Text(req.Title),
		Description:     validate.Text(req.Description),
		Date:            date,
		Time:            req.Time,
		Price:           req.Price,
		Category:        req.Category,
		MaxParticipants: req.MaxParticipants,
		Location:        validate.Text(req.Location),
		InstructorName:  validate.Text(req.InstructorName),
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "workshop.create", map[string]any{"workshop_id": w.ID})
	return created(c, w, "Workshop created")
}

type workshopUpdateReq struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	Date            *string          `json:"date"`
	Time            *string          `json:"time"`
	Price           *decimal.Decimal `json:"price"`
	Category        *string          `json:"category"`
	MaxParticipants *int             `json:"max_participants"`
	Location        *string          `json:"location"`
	InstructorName  *string          `json:"instructor_name"`
	ImageURL        *string          `json:"image_url"`
}

func (h *WorkshopHandler) Update(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid workshop id")
	}
	var req workshopUpdateReq
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

	w, err := h.Catalog.UpdateWorkshop(id, repos.WorkshopPatch{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Price:           req.Price,
		Category:        req.Category,
		MaxParticipants: req.MaxParticipants,
		Location:        req.Location,
		InstructorName:  req.InstructorName,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "workshop.update", map[string]any{"workshop_id": id})
	return okMsg(c, w, "Workshop updated")
}

func (h *WorkshopHandler) Delete(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid workshop id")
	}
	if err := h.Catalog.DeleteWorkshop(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "workshop.delete", map[string]any{"workshop_id": id})
	return okMsg(c, nil, "Workshop deleted")
}
