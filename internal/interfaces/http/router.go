package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restock-api/internal/application/alerts"
	"github.com/jhoicas/Restock-api/internal/application/auth"
	"github.com/jhoicas/Restock-api/internal/application/inventory"
	"github.com/jhoicas/Restock-api/internal/application/locations"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	AlertUC     *alerts.UseCase
	LocationUC  *locations.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.InventoryUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.ListLowStock)
	items.Get("/expiring", itemHandler.ListExpiring)
	items.Get("/:id", itemHandler.GetByID)
	items.Patch("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Alerts (protegido)
	alertGroup := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alertGroup.Post("/", alertHandler.Create)
	alertGroup.Get("/", alertHandler.List)
	alertGroup.Get("/:id", alertHandler.GetByID)
	alertGroup.Patch("/:id/resolve", alertHandler.Resolve)
	alertGroup.Delete("/:id", alertHandler.Delete)

	// Locations (protegido)
	locGroup := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locGroup.Post("/", locationHandler.Create)
	locGroup.Get("/", locationHandler.List)
	locGroup.Get("/:id", locationHandler.GetByID)
	locGroup.Get("/:id/stats", locationHandler.Stats)
	locGroup.Patch("/:id", locationHandler.Update)
	locGroup.Delete("/:id", locationHandler.Delete)
}
