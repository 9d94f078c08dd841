package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
	"github.com/tu-usuario/warehouse-api/internal/domain"
)

// CatalogHandler consultas de solo lectura: productos, bodegas y órdenes pendientes.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// GetProduct godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	product, err := h.uc.GetProduct(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "An error occurred: " + err.Error()})
	}
	return c.JSON(fiber.Map{
		"id_product":  product.ID,
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
	})
}

// GetWarehouse godoc
// @Summary      Obtener bodega por ID
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Router       /api/warehouses/{id} [get]
func (h *CatalogHandler) GetWarehouse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	warehouse, err := h.uc.GetWarehouse(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrWarehouseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "WAREHOUSE_NOT_FOUND", Message: "Warehouse not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "An error occurred: " + err.Error()})
	}
	return c.JSON(fiber.Map{
		"id_warehouse": warehouse.ID,
		"name":         warehouse.Name,
		"address":      warehouse.Address,
	})
}

// ListPendingOrders godoc
// @Summary      Listar órdenes pendientes de surtir
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Router       /api/orders/pending [get]
func (h *CatalogHandler) ListPendingOrders(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	orders, err := h.uc.ListPendingOrders(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "An error occurred: " + err.Error()})
	}
	out := make([]fiber.Map, 0, len(orders))
	for _, o := range orders {
		out = append(out, fiber.Map{
			"id_order":   o.ID,
			"id_product": o.ProductID,
			"amount":     o.Amount,
			"created_at": o.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "orders": out})
}
