package dto

import "time"

// FulfillmentRequest cuerpo del POST /api/warehouses/products.
// Todos los campos son obligatorios; amount debe ser > 0 (se valida antes de abrir
// cualquier transacción).
type FulfillmentRequest struct {
	IDProduct   int       `json:"id_product" validate:"required"`
	IDWarehouse int       `json:"id_warehouse" validate:"required"`
	Amount      int       `json:"amount" validate:"required,gt=0"`
	CreatedAt   time.Time `json:"created_at" validate:"required"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
