package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/staffing/api/http/handlers"
)

// Register вешает маршруты на приложение. Всё, кроме проб, закрыто authMW.
func Register(app *fiber.App, health *handlers.HealthHandler, requests *handlers.RequestsHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// пробы для оркестратора
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	rg := v1.Group("/requests", authMW)
	rg.Post("/", requests.Create)
	rg.Post("/preview", requests.Preview)
	rg.Get("/", requests.List)
	rg.Get("/:id", requests.Get)
	rg.Get("/:id/export", requests.Export)
	rg.Delete("/:id", requests.Delete)
}
