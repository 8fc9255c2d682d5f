package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"harvesthub/internal/repos"
	"harvesthub/internal/services"
)

// Deps wires repos, services and handlers off a single DB handle.
type Deps struct {
	Auth          *services.AuthService
	AuthHandler   *AuthHandler
	Workshops     *WorkshopHandler
	Events        *EventHandler
	Products      *ProductHandler
	BookingsH     *BookingHandler
	Reviews       *ReviewHandler
	Subscriptions *SubscriptionHandler
}

func Build(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	workshopRepo := repos.NewWorkshopRepo(db)
	eventRepo := repos.NewEventRepo(db)
	productRepo := repos.NewProductRepo(db)
	bookingRepo := repos.NewBookingRepo(db)
	reviewRepo := repos.NewReviewRepo(db)
	subRepo := repos.NewSubscriptionRepo(db)

	auth := &services.AuthService{Users: userRepo}
	catalog := services.NewCatalogService(workshopRepo, eventRepo, productRepo)
	bookings := services.NewBookingService(bookingRepo, workshopRepo, eventRepo)
	reviews := services.NewReviewService(reviewRepo, workshopRepo, eventRepo, productRepo)
	subs := services.NewSubscriptionService(subRepo, productRepo)

	return &Deps{
		Auth:          auth,
		AuthHandler:   NewAuthHandler(auth, userRepo),
		Workshops:     NewWorkshopHandler(catalog),
		Events:        NewEventHandler(catalog),
		Products:      NewProductHandler(catalog),
		BookingsH:     NewBookingHandler(bookings),
		Reviews:       NewReviewHandler(reviews),
		Subscriptions: NewSubscriptionHandler(subs),
	}
}

// Register mounts the API route table under /api.
func (d *Deps) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "HarvestHub API is running"})
	})

	user := RequireUser(d.Auth)
	admin := AdminOnly()

	auth := api.Group("/auth")
	auth.Post("/register", d.AuthHandler.Register)
	auth.Post("/login", d.AuthHandler.Login)
	auth.Get("/me", user, d.AuthHandler.Me)
	auth.Post("/logout", user, d.AuthHandler.Logout)
	auth.Get("/users", user, admin, d.AuthHandler.ListUsers)

	ws := api.Group("/workshops")
	ws.Get("/", d.Workshops.List)
	ws.Get("/:id", d.Workshops.Get)
	ws.Post("/", user, admin, d.Workshops.Create)
	ws.Put("/:id", user, admin, d.Workshops.Update)
	ws.Delete("/:id", user, admin, d.Workshops.Delete)

	ev := api.Group("/events")
	ev.Get("/", d.Events.List)
	ev.Get("/:id", d.Events.Get)
	ev.Post("/", user, admin, d.Events.Create)
	ev.Put("/:id", user, admin, d.Events.Update)
	ev.Delete("/:id", user, admin, d.Events.Delete)

	pr := api.Group("/products")
	pr.Get("/", d.Products.List)
	pr.Get("/:id", d.Products.Get)
	pr.Post("/", user, admin, d.Products.Create)
	pr.Put("/:id", user, admin, d.Products.Update)
	pr.Delete("/:id", user, admin, d.Products.Delete)

	bk := api.Group("/bookings", user)
	bk.Get("/", d.BookingsH.List)
	bk.Post("/", d.BookingsH.Create)

	rv := api.Group("/reviews")
	rv.Get("/", d.Reviews.List)
	rv.Post("/", user, d.Reviews.Create)

	sb := api.Group("/subscriptions", user)
	sb.Get("/", d.Subscriptions.List)
	sb.Post("/", d.Subscriptions.Create)
	sb.Put("/:id", d.Subscriptions.Update)
}
