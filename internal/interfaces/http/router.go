package http

import (
	"github.com/gofiber/fiber/v2"
)

// Cada binario registra solo sus rutas. Las lecturas y los health probes son
// públicos; crear, actualizar y borrar requieren Bearer Token.

// RegisterProductRoutes registra las rutas del servicio de productos.
func RegisterProductRoutes(app *fiber.App, h *ProductHandler, health *HealthHandler, jwtSecret string) {
	registerHealth(app, health)

	api := app.Group("/api/v1")
	api.Get("/", h.List)
	api.Get("/:code", h.Get)

	protected := api.Group("/", AuthMiddleware(jwtSecret))
	protected.Post("/", h.Create)
	protected.Put("/:code", h.Update)
	protected.Delete("/:code", h.Delete)
}

// RegisterSellerRoutes registra las rutas del servicio de vendedores.
func RegisterSellerRoutes(app *fiber.App, h *SellerHandler, health *HealthHandler, jwtSecret string) {
	registerHealth(app, health)

	api := app.Group("/api/v1")
	api.Get("/", h.List)
	api.Get("/:code", h.Get)

	protected := api.Group("/", AuthMiddleware(jwtSecret))
	protected.Post("/", h.Create)
	protected.Put("/:code", h.Update)
	protected.Delete("/:code", h.Delete)
}

// RegisterSaleRoutes registra las rutas del servicio de ventas (sin update).
func RegisterSaleRoutes(app *fiber.App, h *SaleHandler, health *HealthHandler, jwtSecret string) {
	registerHealth(app, health)

	api := app.Group("/api/v1")
	api.Get("/", h.List)
	api.Get("/:id", h.Get)

	protected := api.Group("/", AuthMiddleware(jwtSecret))
	protected.Post("/", h.Create)
	protected.Delete("/:id", h.Delete)
}

func registerHealth(app *fiber.App, health *HealthHandler) {
	app.Get("/health/live", health.Live)
	app.Get("/health/ready", health.Ready)
}
