package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/fulfillment"
	"github.com/tu-usuario/warehouse-api/internal/domain"
)

// Fulfiller es lo que el handler necesita del caso de uso de surtido.
type Fulfiller interface {
	Fulfill(ctx context.Context, in fulfillment.Input) (int, error)
}

// FulfillmentHandler maneja el POST de entrada de mercancía a bodega.
type FulfillmentHandler struct {
	uc Fulfiller
}

// NewFulfillmentHandler construye el handler.
func NewFulfillmentHandler(uc Fulfiller) *FulfillmentHandler {
	return &FulfillmentHandler{uc: uc}
}

// AddProductToWarehouse godoc
// @Summary      Registrar entrada de producto a bodega (surtir orden)
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FulfillmentRequest  true  "id_product, id_warehouse, amount (>0), created_at"
// @Success      200   {integer}  int  "id del registro product_warehouse creado"
// @Failure      400   {object}   dto.ErrorResponse
// @Failure      404   {object}   dto.ErrorResponse
// @Failure      409   {object}   dto.ErrorResponse
// @Failure      500   {object}   dto.ErrorResponse
// @Router       /api/warehouses/products [post]
func (h *FulfillmentHandler) AddProductToWarehouse(c *fiber.Ctx) error {
	var in dto.FulfillmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Rechazo rápido: amount <= 0 jamás llega al store.
	if in.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Amount must be greater than 0"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	recordID, err := h.uc.Fulfill(c.Context(), fulfillment.Input{
		ProductID:   in.IDProduct,
		WarehouseID: in.IDWarehouse,
		Amount:      in.Amount,
		CreatedAt:   in.CreatedAt,
	})
	if err != nil {
		return writeFulfillmentError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(recordID)
}

// writeFulfillmentError mapea errores de dominio a la tabla de estados del API.
// Los casos esperados llevan mensaje preciso; lo inesperado se reporta opaco (500)
// con un detalle corto, sin internals.
func writeFulfillmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Amount must be greater than 0"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "Product not found"})
	case errors.Is(err, domain.ErrWarehouseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "WAREHOUSE_NOT_FOUND", Message: "Warehouse not found"})
	case errors.Is(err, domain.ErrNoMatchingOrder):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "No valid order found for this product"})
	case errors.Is(err, domain.ErrOrderFulfilled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_FULFILLED", Message: "Order is already fulfilled"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "An error occurred: " + err.Error()})
	}
}
