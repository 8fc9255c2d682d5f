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

type ProductHandler struct {
	Catalog *services.CatalogService
}

func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{Catalog: catalog}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.ListProducts(catalogFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid product id")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, p)
}

type productCreateReq struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Price                decimal.Decimal `json:"price"`
	Category             string          `json:"category"`
	StockQuantity        int             `json:"stock_quantity"`
	SKU                  *string         `json:"sku"`
	ImageURL             *string         `json:"image_url"`
	SustainabilityRating *int            `json:"sustainability_rating"`
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	errs := map[string]string{}
	if validate.Text(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if req.Price.IsNegative() {
		errs["price"] = "Price must not be negative"
	}
	if req.StockQuantity < 0 {
		errs["stock_quantity"] = "Stock quantity must not be negative"
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Validation failed", "errors": errs,
		})
	}

	p, err := h.Catalog.CreateProduct(domain.Product{
		Name:                 validate.Text(req.Name),
		Description:          validate.Text(req.Description),
		Price:                req.Price,
		Category:             req.Category,
		StockQuantity:        req.StockQuantity,
		SKU:                  req.SKU,
		ImageURL:             req.ImageURL,
		SustainabilityRating: req.SustainabilityRating,
	})
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return created(c, p, "Product created")
}

type productUpdateReq struct {
	Name                 *string          `json:"name"`
	Description          *string          `json:"description"`
	Price                *decimal.Decimal `json:"price"`
	Category             *string          `json:"category"`
	StockQuantity        *int             `json:"stock_quantity"`
	SKU                  *string          `json:"sku"`
	ImageURL             *string          `json:"image_url"`
	SustainabilityRating *int             `json:"sustainability_rating"`
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid product id")
	}
	var req productUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return badRequest(c, "Price must not be negative")
	}

	p, err := h.Catalog.UpdateProduct(id, repos.ProductPatch{
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		Category:             req.Category,
		StockQuantity:        req.StockQuantity,
		SKU:                  req.SKU,
		ImageURL:             req.ImageURL,
		SustainabilityRating: req.SustainabilityRating,
	})
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": id})
	return okMsg(c, p, "Product updated")
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, okID := pathID(c)
	if !okID {
		return badRequest(c, "Invalid product id")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return okMsg(c, nil, "Product deleted")
}
