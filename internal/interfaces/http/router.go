package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurant-pos/internal/application/cart"
	"github.com/jhoicas/restaurant-pos/internal/application/catalog"
	"github.com/jhoicas/restaurant-pos/internal/application/ordering"
	"github.com/jhoicas/restaurant-pos/internal/application/session"
	"github.com/jhoicas/restaurant-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session  *session.Store
	Ordering *ordering.UseCase
	Catalog  *catalog.Service
	Carts    *cart.Registry
}

// Router registra las rutas de la estación.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.Session)
	tableHandler := NewTableHandler(deps.Session, deps.Ordering)
	orderHandler := NewOrderHandler(deps.Ordering, deps.Catalog, deps.Carts)

	// Auth (público)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Vistas protegidas (requieren sesión)
	guard := Guard(deps.Session)

	app.Get("/", guard, tableHandler.Dashboard)

	// Abrir mesa: solo meseros
	app.Post("/tables/:id/open", guard,
		RequireRole(deps.Session, entity.RolePelayan),
		tableHandler.OpenTable,
	)

	orders := app.Group("/orders", guard)
	orders.Get("/:id", orderHandler.Show)
	orders.Get("/:id/menu", orderHandler.Menu)
	orders.Post("/:id/lines", orderHandler.AddLine)
	orders.Patch("/:id/lines/:lineID", orderHandler.SetQuantity)
	orders.Delete("/:id/lines/:lineID", orderHandler.RemoveLine)
	orders.Post("/:id/submit", orderHandler.Submit)

	// Cuenta imprimible: solo cajeros
	orders.Get("/:id/bill",
		RequireRole(deps.Session, entity.RoleKasir),
		orderHandler.Bill,
	)
}
