package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"harvesthub/internal/config"
	"harvesthub/internal/http/web"
	applog "harvesthub/internal/log"
)

func main() {
	cfg := config.Load()
	applog.Init(cfg.Env)
	defer applog.Sync()

	engine := html.New("./web/templates", ".html")
	engine.Reload(cfg.Env != "production")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	h := web.New(cfg)

	app.Get("/", h.Home)

	app.Get("/login", h.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{
				"Err": "Too many attempts. Please try again later.",
			})
		},
	}), h.Login)
	app.Post("/logout", h.Logout)

	app.Get("/booking", h.BookingForm)
	app.Post("/booking", h.BookingSubmit)

	app.Use(h.NotFound)

	port := os.Getenv("WEB_PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
