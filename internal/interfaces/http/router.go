package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/fulfillment"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FulfillUC *fulfillment.UseCase
	CatalogUC *usecase.CatalogUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Surtido de órdenes (protegido)
	warehouses := protected.Group("/warehouses")
	fulfillmentHandler := NewFulfillmentHandler(deps.FulfillUC)
	warehouses.Post("/products", fulfillmentHandler.AddProductToWarehouse)

	// Consultas de catálogo (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	warehouses.Get("/:id", catalogHandler.GetWarehouse)

	products := protected.Group("/products")
	products.Get("/:id", catalogHandler.GetProduct)

	orders := protected.Group("/orders")
	orders.Get("/pending", catalogHandler.ListPendingOrders)
}
